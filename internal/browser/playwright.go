package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Stv21/job-scrapping-repo/internal/models"

	"github.com/playwright-community/playwright-go"
)

// selectors whose presence marks the description as ready to read,
// most specific first
var descriptionSelectors = []string{
	`[data-test="job-description"]`,
	".job-description",
	"#job-description",
	".description",
	`[class*="description"]`,
	"main",
	".content",
}

const (
	// anything shorter is navigation chrome, not a description
	minDescriptionLen = 100
	maxBodyChars      = 2000
)

// Manager owns one playwright session for the whole enrichment phase:
// launched once, released once.
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	timeout time.Duration
}

func NewManager(headless bool, timeout time.Duration) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not launch playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	page, err := b.NewPage(playwright.BrowserNewPageOptions{
		Viewport: &playwright.Size{Width: 1920, Height: 1080},
	})
	if err != nil {
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("could not create page: %w", err)
	}

	return &Manager{
		pw:      pw,
		browser: b,
		page:    page,
		timeout: timeout,
	}, nil
}

// Close releases the whole session. Safe to call exactly once from any
// exit path.
func (m *Manager) Close() {
	if m.browser != nil {
		m.browser.Close()
	}
	if m.pw != nil {
		m.pw.Stop()
	}
}

// FetchDescription navigates to a job detail page, waits (bounded) for a
// content marker and returns the description text. Errors distinguish a
// failed navigation from a marker that never appeared.
func (m *Manager) FetchDescription(ctx context.Context, jobURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	timeoutMS := playwright.Float(float64(m.timeout.Milliseconds()))

	if _, err := m.page.Goto(jobURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   timeoutMS,
	}); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", jobURL, err)
	}

	// One bounded wait for any marker; a comma-joined selector matches the
	// first of them to appear.
	combined := strings.Join(descriptionSelectors, ", ")
	marker := m.page.Locator(combined).First()
	if err := marker.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: timeoutMS,
	}); err != nil {
		return "", fmt.Errorf("waiting for content on %s: %w", jobURL, models.ErrContentTimeout)
	}

	// Prefer the most specific marker that carries substantial text.
	for _, sel := range descriptionSelectors {
		loc := m.page.Locator(sel)
		count, err := loc.Count()
		if err != nil || count == 0 {
			continue
		}
		text, err := loc.First().InnerText(playwright.LocatorInnerTextOptions{
			Timeout: playwright.Float(1000),
		})
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if len(text) >= minDescriptionLen {
			return text, nil
		}
	}

	// Markers were thin; fall back to the page body when it has substance.
	body, err := m.page.Locator("body").InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(1000),
	})
	if err == nil {
		body = strings.TrimSpace(body)
		if len(body) >= minDescriptionLen {
			return truncate(body, maxBodyChars), nil
		}
	}

	return "", fmt.Errorf("page %s: %w", jobURL, models.ErrNoDescription)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
