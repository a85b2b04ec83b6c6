package weworkremotely

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"github.com/Stv21/job-scrapping-repo/internal/models"

	"github.com/gocolly/colly/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	defaultBaseURL = "https://weworkremotely.com/categories/remote-programming-jobs"
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	requestTimeout = 30 * time.Second
)

// Scraper pulls the WeWorkRemotely programming category page and extracts
// the listing cards whose title matches the search term. It is the
// alternate path when the primary API source fails.
type Scraper struct {
	BaseURL string
	limit   int
}

func New(limit int) *Scraper {
	if limit <= 0 {
		limit = 10
	}
	return &Scraper{
		BaseURL: defaultBaseURL,
		limit:   limit,
	}
}

func (s *Scraper) Name() string {
	return "WeWorkRemotely"
}

func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

// termTokens splits a search term into the words worth matching on.
func termTokens(term string) []string {
	var tokens []string
	for _, w := range strings.Fields(normalizeText(term)) {
		if len(w) >= 3 {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

func matchesTerm(title string, tokens []string) bool {
	normalized := normalizeText(title)
	for _, tok := range tokens {
		if strings.Contains(normalized, tok) {
			return true
		}
	}
	return false
}

// Fetch scrapes the category page once and keeps cards matching the term,
// capped at the configured limit.
func (s *Scraper) Fetch(ctx context.Context, term string) ([]models.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens := termTokens(term)

	c := colly.NewCollector(colly.UserAgent(userAgent))
	c.SetRequestTimeout(requestTimeout)

	var listings []models.Listing
	var visitErr error

	c.OnHTML("li.feature", func(e *colly.HTMLElement) {
		if len(listings) >= s.limit {
			return
		}

		href := e.ChildAttr("a", "href")
		if href == "" {
			return
		}

		title := strings.TrimSpace(e.ChildText("span.title"))
		company := strings.TrimSpace(e.ChildText("span.company"))
		if title == "" || company == "" {
			log.Printf("⚠️ Skipping WWR card with missing title/company")
			return
		}

		if len(tokens) > 0 && !matchesTerm(title, tokens) {
			return
		}

		listings = append(listings, models.Listing{
			Title:      title,
			Company:    company,
			Location:   "Remote",
			SalaryInfo: "Not specified",
			URL:        e.Request.AbsoluteURL(href),
			SourceSite: "WeWorkRemotely",
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		visitErr = fmt.Errorf("weworkremotely: fetching %s: %w", r.Request.URL, err)
	})

	if err := c.Visit(s.BaseURL); err != nil {
		return nil, fmt.Errorf("weworkremotely: visit: %w", err)
	}
	c.Wait()

	if visitErr != nil {
		return nil, visitErr
	}
	return listings, nil
}
