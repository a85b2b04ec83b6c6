package enricher

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Stv21/job-scrapping-repo/internal/models"
	"github.com/Stv21/job-scrapping-repo/internal/scraper"
)

// DescriptionFetcher loads a job detail page and extracts its description
// text. The playwright manager implements it; tests swap in a fake.
type DescriptionFetcher interface {
	FetchDescription(ctx context.Context, jobURL string) (string, error)
}

// DescriptionStore is the slice of the storage gateway the enricher needs.
type DescriptionStore interface {
	UpdateDescription(ctx context.Context, id int64, description string) error
}

// Summary counts how each item ended up.
type Summary struct {
	Extracted  int
	TimedOut   int
	LoadFailed int
}

// Enricher runs phase 3: strictly sequential, one attempt per item, in the
// order the storage gateway returned them. A failed item is left NULL and
// never aborts the rest of the run.
type Enricher struct {
	fetcher DescriptionFetcher
	store   DescriptionStore
	delay   time.Duration
}

func New(fetcher DescriptionFetcher, store DescriptionStore, delay time.Duration) *Enricher {
	return &Enricher{
		fetcher: fetcher,
		store:   store,
		delay:   delay,
	}
}

func (e *Enricher) Run(ctx context.Context, items []models.PendingJob) Summary {
	var s Summary

	for i, item := range items {
		if i > 0 {
			e.pause(ctx)
		}

		switch e.enrichOne(ctx, item) {
		case models.StatusExtracted:
			s.Extracted++
			log.Printf("✅ Updated description for job %d", item.ID)
		case models.StatusTimedOut:
			s.TimedOut++
			log.Printf("⚠️ Job %d: content never appeared, leaving description empty", item.ID)
		case models.StatusLoadFailed:
			s.LoadFailed++
			log.Printf("⚠️ Job %d: page load failed, leaving description empty", item.ID)
		}
	}

	return s
}

func (e *Enricher) enrichOne(ctx context.Context, item models.PendingJob) models.EnrichmentStatus {
	log.Printf("🔍 Loading description for job %d (%s)", item.ID, item.URL)

	var text string
	if item.SourceSite == scraper.SampleSource {
		// synthetic records never hit the network
		text = sampleDescription(item.ID)
	} else {
		var err error
		text, err = e.fetcher.FetchDescription(ctx, item.URL)
		if err != nil {
			if errors.Is(err, models.ErrContentTimeout) || errors.Is(err, models.ErrNoDescription) {
				return models.StatusTimedOut
			}
			return models.StatusLoadFailed
		}
	}

	if err := e.store.UpdateDescription(ctx, item.ID, text); err != nil {
		log.Printf("⚠️ Failed to store description for job %d: %v", item.ID, err)
		return models.StatusLoadFailed
	}
	return models.StatusExtracted
}

func (e *Enricher) pause(ctx context.Context) {
	if e.delay <= 0 {
		return
	}
	select {
	case <-time.After(e.delay):
	case <-ctx.Done():
	}
}
