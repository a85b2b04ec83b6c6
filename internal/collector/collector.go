package collector

import (
	"context"
	"log"
	"time"

	"github.com/Stv21/job-scrapping-repo/internal/dedup"
	"github.com/Stv21/job-scrapping-repo/internal/models"
	"github.com/Stv21/job-scrapping-repo/internal/scraper"
)

// Collector runs phase 1: for each search term it tries the primary source
// first and falls through to the alternate source when the primary errors
// or comes back empty. When everything is empty the fixed sample batch
// keeps the pipeline exercisable.
type Collector struct {
	primary  scraper.Source
	fallback scraper.Source
	delay    time.Duration
}

func New(primary, fallback scraper.Source, delay time.Duration) *Collector {
	return &Collector{
		primary:  primary,
		fallback: fallback,
		delay:    delay,
	}
}

// Collect gathers normalized listings for all terms. A failing term only
// logs a warning; it never aborts collection for the other terms.
func (c *Collector) Collect(ctx context.Context, terms []string) []models.Listing {
	var all []models.Listing

	for i, term := range terms {
		if i > 0 {
			c.pause(ctx)
		}
		log.Printf("🔍 Searching for %q", term)
		all = append(all, c.collectTerm(ctx, term)...)
	}

	unique := dedup.ByURL(all)
	if len(unique) < len(all) {
		log.Printf("🔁 Dropped %d duplicate URLs within the batch", len(all)-len(unique))
	}

	if len(unique) == 0 {
		log.Printf("📝 All sources came back empty, using sample data so the pipeline stays exercisable")
		return scraper.SampleListings()
	}
	return unique
}

func (c *Collector) collectTerm(ctx context.Context, term string) []models.Listing {
	listings, err := c.primary.Fetch(ctx, term)
	if err == nil && len(listings) > 0 {
		log.Printf("  ✅ %s: %d listings for %q", c.primary.Name(), len(listings), term)
		return listings
	}
	if err != nil {
		log.Printf("  ⚠️ %s failed for %q: %v. Trying %s...", c.primary.Name(), term, err, c.fallback.Name())
	} else {
		log.Printf("  ⚠️ %s returned nothing for %q. Trying %s...", c.primary.Name(), term, c.fallback.Name())
	}

	c.pause(ctx)

	listings, err = c.fallback.Fetch(ctx, term)
	if err != nil {
		log.Printf("  ⚠️ %s also failed for %q: %v. Term yields no records.", c.fallback.Name(), term, err)
		return nil
	}
	log.Printf("  ✅ %s: %d listings for %q", c.fallback.Name(), len(listings), term)
	return listings
}

// pause applies the courtesy delay between outbound requests; a cancelled
// context just cuts the pause short.
func (c *Collector) pause(ctx context.Context) {
	if c.delay <= 0 {
		return
	}
	select {
	case <-time.After(c.delay):
	case <-ctx.Done():
	}
}
