package wellfound

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/Stv21/job-scrapping-repo/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const defaultEndpoint = "https://wellfound.com/graphql"

// headers that mimic the talent-web client; Wellfound rejects bare requests
var requestHeaders = map[string]string{
	"Accept":                                  "*/*",
	"Accept-Language":                         "en-GB,en;q=0.7",
	"Apollographql-Client-Name":               "talent-web",
	"Content-Type":                            "application/json",
	"Origin":                                  "https://wellfound.com",
	"Referer":                                 "https://wellfound.com/jobs",
	"Sec-Fetch-Dest":                          "empty",
	"Sec-Fetch-Mode":                          "same-origin",
	"Sec-Fetch-Site":                          "same-origin",
	"User-Agent":                              "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"X-Angellist-D-Client-Referrer-Resource":  "/jobs",
	"X-Apollo-Operation-Name":                 "JobSearchResultsX",
	"X-Requested-With":                        "XMLHttpRequest",
}

// Scraper queries the Wellfound job-search GraphQL API for one term at a
// time and normalizes the startup/job nodes it returns.
type Scraper struct {
	Endpoint string
	client   *http.Client
}

func New(client *http.Client) *Scraper {
	return &Scraper{
		Endpoint: defaultEndpoint,
		client:   client,
	}
}

func (s *Scraper) Name() string {
	return "Wellfound"
}

type searchPayload struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	Extensions    map[string]any `json:"extensions"`
}

func buildPayload(term string) searchPayload {
	return searchPayload{
		OperationName: "JobSearchResultsX",
		Variables: map[string]any{
			"filterConfigurationInput": map[string]any{
				"page":             1,
				"customJobTitles":  []string{term},
				"equity":           map[string]any{"min": nil, "max": nil},
				"remotePreference": "REMOTE_OPEN",
				"salary":           map[string]any{"min": nil, "max": nil},
				"yearsExperience":  map[string]any{"min": nil, "max": nil},
			},
		},
		Extensions: map[string]any{
			"operationId": "tfe/2aeb9d7cc572a94adfe2b888b32e64eb8b7fb77215b168ba4256b08f9a94f37b",
		},
	}
}

type searchResponse struct {
	Data struct {
		Talent struct {
			JobSearchResults struct {
				Startups struct {
					Edges []struct {
						Node node `json:"node"`
					} `json:"edges"`
				} `json:"startups"`
			} `json:"jobSearchResults"`
		} `json:"talent"`
	} `json:"data"`
}

type node struct {
	Typename               string       `json:"__typename"`
	Name                   string       `json:"name"`
	Slug                   string       `json:"slug"`
	Location               string       `json:"location"`
	HighlightedJobListings []jobPosting `json:"highlightedJobListings"`
	PromotedStartup        *node        `json:"promotedStartup"`
	FeaturedStartups       []node       `json:"featuredStartups"`
}

type jobPosting struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Compensation *compensation `json:"compensation"`
}

type compensation struct {
	MinSalary int    `json:"minSalary"`
	MaxSalary int    `json:"maxSalary"`
	Currency  string `json:"currency"`
	Equity    *struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"equity"`
}

// Fetch posts one search query and extracts job listings from the result
// nodes. A 403 means the source blocked us; the caller decides what to do.
func (s *Scraper) Fetch(ctx context.Context, term string) ([]models.Listing, error) {
	body, err := json.Marshal(buildPayload(term))
	if err != nil {
		return nil, fmt.Errorf("wellfound: marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("wellfound: building request: %w", err)
	}
	for k, v := range requestHeaders {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wellfound: request for %q: %w", term, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("wellfound returned 403 for %q: %w", term, models.ErrSourceBlocked)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wellfound returned status %d for %q", resp.StatusCode, term)
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("wellfound: decoding response for %q: %w", term, models.ErrMalformedPayload)
	}

	var listings []models.Listing
	for _, edge := range data.Data.Talent.JobSearchResults.Startups.Edges {
		listing, err := extractListing(edge.Node)
		if err != nil {
			log.Printf("⚠️ Skipping wellfound node: %v", err)
			continue
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// extractListing normalizes one result node based on its type. Nodes
// without a highlighted job are a parse error, not a fatal one.
func extractListing(n node) (models.Listing, error) {
	var startup *node

	switch n.Typename {
	case "StartupSearchResult":
		startup = &n
	case "PromotedResult":
		startup = n.PromotedStartup
		if startup == nil {
			startup = &n
		}
	case "FeaturedStartups":
		// take the first featured startup only
		for i := range n.FeaturedStartups {
			f := n.FeaturedStartups[i]
			if f.PromotedStartup != nil {
				startup = f.PromotedStartup
			} else {
				startup = &f
			}
			break
		}
		if startup == nil {
			return models.Listing{}, fmt.Errorf("featured node with no startups: %w", models.ErrMalformedPayload)
		}
	default:
		return models.Listing{}, fmt.Errorf("unknown node type %q: %w", n.Typename, models.ErrMalformedPayload)
	}

	if len(startup.HighlightedJobListings) == 0 {
		return models.Listing{}, fmt.Errorf("startup %q has no job listings: %w", startup.Name, models.ErrMalformedPayload)
	}
	posting := startup.HighlightedJobListings[0]

	location := startup.Location
	if location == "" {
		location = "Remote"
	}

	return models.Listing{
		Title:      posting.Title,
		Company:    startup.Name,
		Location:   location,
		SalaryInfo: formatSalary(posting.Compensation),
		URL:        fmt.Sprintf("https://wellfound.com/company/%s/jobs/%s", startup.Slug, posting.ID),
		SourceSite: "Wellfound",
	}, nil
}

var salaryPrinter = message.NewPrinter(language.English)

// formatSalary renders a compensation block as free-form salary text,
// e.g. "USD 50,000 - 70,000 | Equity: 0.1-0.5%".
func formatSalary(c *compensation) string {
	if c == nil {
		return "Not specified"
	}

	var parts []string
	if c.MinSalary > 0 && c.MaxSalary > 0 {
		currency := c.Currency
		if currency == "" {
			currency = "USD"
		}
		parts = append(parts, salaryPrinter.Sprintf("%s %d - %d", currency, c.MinSalary, c.MaxSalary))
	}
	if c.Equity != nil {
		parts = append(parts, fmt.Sprintf("Equity: %g-%g%%", c.Equity.Min, c.Equity.Max))
	}

	if len(parts) == 0 {
		return "Not specified"
	}
	return strings.Join(parts, " | ")
}
