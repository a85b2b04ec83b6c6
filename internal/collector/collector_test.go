package collector

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Stv21/job-scrapping-repo/internal/models"
	"github.com/Stv21/job-scrapping-repo/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource returns canned listings or errors per term and records calls.
type fakeSource struct {
	name    string
	results map[string][]models.Listing
	errs    map[string]error
	calls   []string
}

func (f *fakeSource) Fetch(ctx context.Context, term string) ([]models.Listing, error) {
	f.calls = append(f.calls, term)
	if err := f.errs[term]; err != nil {
		return nil, err
	}
	return f.results[term], nil
}

func (f *fakeSource) Name() string { return f.name }

func listing(url string) models.Listing {
	return models.Listing{Title: "Job " + url, URL: url, SourceSite: "fake"}
}

func TestCollect_PrimarySucceedsFallbackUntouched(t *testing.T) {
	primary := &fakeSource{
		name: "primary",
		results: map[string][]models.Listing{
			"Data Analyst": {listing("https://p/1"), listing("https://p/2")},
		},
	}
	fallback := &fakeSource{name: "fallback"}

	c := New(primary, fallback, 0)
	got := c.Collect(context.Background(), []string{"Data Analyst"})

	assert.Len(t, got, 2)
	assert.Empty(t, fallback.calls, "fallback must not be consulted when primary delivers")
}

func TestCollect_PrimaryErrorFallsBack(t *testing.T) {
	primary := &fakeSource{
		name: "primary",
		errs: map[string]error{"Data Analyst": errors.New("boom")},
	}
	fallback := &fakeSource{
		name: "fallback",
		results: map[string][]models.Listing{
			"Data Analyst": {listing("https://f/1")},
		},
	}

	c := New(primary, fallback, 0)
	got := c.Collect(context.Background(), []string{"Data Analyst"})

	require.Len(t, got, 1)
	assert.Equal(t, "https://f/1", got[0].URL)
}

func TestCollect_PrimaryEmptyFallsBack(t *testing.T) {
	primary := &fakeSource{name: "primary"}
	fallback := &fakeSource{
		name: "fallback",
		results: map[string][]models.Listing{
			"Data Analyst": {listing("https://f/1")},
		},
	}

	c := New(primary, fallback, 0)
	got := c.Collect(context.Background(), []string{"Data Analyst"})

	require.Len(t, got, 1)
	assert.Equal(t, []string{"Data Analyst"}, fallback.calls)
}

func TestCollect_FailedTermDoesNotAbortOthers(t *testing.T) {
	primary := &fakeSource{
		name: "primary",
		errs: map[string]error{"Broken Term": errors.New("network down")},
		results: map[string][]models.Listing{
			"Good Term": {listing("https://p/1")},
		},
	}
	fallback := &fakeSource{
		name: "fallback",
		errs: map[string]error{"Broken Term": errors.New("also down")},
	}

	c := New(primary, fallback, 0)
	got := c.Collect(context.Background(), []string{"Broken Term", "Good Term"})

	require.Len(t, got, 1)
	assert.Equal(t, "https://p/1", got[0].URL)
}

func TestCollect_AllSourcesEmptyYieldsSampleData(t *testing.T) {
	primary := &fakeSource{name: "primary"}
	fallback := &fakeSource{name: "fallback"}

	c := New(primary, fallback, 0)
	got := c.Collect(context.Background(), []string{"Data Analyst", "Python Developer"})

	require.NotEmpty(t, got)
	for _, l := range got {
		assert.Equal(t, scraper.SampleSource, l.SourceSite,
			"sample fallback must be tagged distinctly from scraped data")
	}
}

func TestCollect_DeduplicatesAcrossTerms(t *testing.T) {
	shared := listing("https://p/shared")
	primary := &fakeSource{
		name: "primary",
		results: map[string][]models.Listing{
			"Term A": {shared, listing("https://p/a")},
			"Term B": {shared, listing("https://p/b")},
		},
	}
	fallback := &fakeSource{name: "fallback"}

	c := New(primary, fallback, 0)
	got := c.Collect(context.Background(), []string{"Term A", "Term B"})

	urls := make(map[string]int)
	for _, l := range got {
		urls[l.URL]++
	}
	assert.Len(t, got, 3)
	assert.Equal(t, 1, urls["https://p/shared"])
}

func TestCollect_VisitsEveryTerm(t *testing.T) {
	var terms []string
	for i := 0; i < 4; i++ {
		terms = append(terms, fmt.Sprintf("Term %d", i))
	}
	primary := &fakeSource{name: "primary"}
	fallback := &fakeSource{name: "fallback"}

	c := New(primary, fallback, 0)
	c.Collect(context.Background(), terms)

	assert.Equal(t, terms, primary.calls)
	assert.Equal(t, terms, fallback.calls)
}
