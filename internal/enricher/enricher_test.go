package enricher

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

type fakeFetcher struct {
	texts map[string]string
	errs  map[string]error
	calls []string
}

func (f *fakeFetcher) FetchDescription(ctx context.Context, jobURL string) (string, error) {
	f.calls = append(f.calls, jobURL)
	if err := f.errs[jobURL]; err != nil {
		return "", err
	}
	return f.texts[jobURL], nil
}

type fakeStore struct {
	updates map[int64][]string
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{updates: make(map[int64][]string)}
}

func (s *fakeStore) UpdateDescription(ctx context.Context, id int64, description string) error {
	if s.err != nil {
		return s.err
	}
	s.updates[id] = append(s.updates[id], description)
	return nil
}

func pending(id int64, url string) models.PendingJob {
	return models.PendingJob{ID: id, URL: url, SourceSite: "Wellfound"}
}

func TestRun_SuccessUpdatesExactlyOnce(t *testing.T) {
	fetcher := &fakeFetcher{texts: map[string]string{
		"https://x/1": "Full description one",
		"https://x/2": "Full description two",
	}}
	store := newFakeStore()

	sum := New(fetcher, store, 0).Run(context.Background(), []models.PendingJob{
		pending(1, "https://x/1"),
		pending(2, "https://x/2"),
	})

	assert.Equal(t, Summary{Extracted: 2}, sum)
	require.Len(t, store.updates[1], 1, "each record gets exactly one update call")
	assert.Equal(t, "Full description one", store.updates[1][0])
	assert.Equal(t, []string{"Full description two"}, store.updates[2])
}

func TestRun_TimeoutLeavesRecordUntouchedAndContinues(t *testing.T) {
	fetcher := &fakeFetcher{
		texts: map[string]string{"https://x/2": "second description"},
		errs: map[string]error{
			"https://x/1": fmt.Errorf("waiting for content: %w", models.ErrContentTimeout),
		},
	}
	store := newFakeStore()

	sum := New(fetcher, store, 0).Run(context.Background(), []models.PendingJob{
		pending(1, "https://x/1"),
		pending(2, "https://x/2"),
	})

	assert.Equal(t, Summary{Extracted: 1, TimedOut: 1}, sum)
	assert.Empty(t, store.updates[1], "timed out item must stay NULL")
	assert.Len(t, store.updates[2], 1)
}

func TestRun_NavigationErrorIsLoadFailed(t *testing.T) {
	fetcher := &fakeFetcher{errs: map[string]error{
		"https://x/1": errors.New("net::ERR_NAME_NOT_RESOLVED"),
	}}
	store := newFakeStore()

	sum := New(fetcher, store, 0).Run(context.Background(), []models.PendingJob{
		pending(1, "https://x/1"),
	})

	assert.Equal(t, Summary{LoadFailed: 1}, sum)
	assert.Empty(t, store.updates)
}

func TestRun_ThinPageCountsAsTimedOut(t *testing.T) {
	fetcher := &fakeFetcher{errs: map[string]error{
		"https://x/1": fmt.Errorf("page: %w", models.ErrNoDescription),
	}}
	store := newFakeStore()

	sum := New(fetcher, store, 0).Run(context.Background(), []models.PendingJob{
		pending(1, "https://x/1"),
	})

	assert.Equal(t, Summary{TimedOut: 1}, sum)
}

func TestRun_SampleRecordsSkipTheFetcher(t *testing.T) {
	fetcher := &fakeFetcher{}
	store := newFakeStore()

	items := []models.PendingJob{
		{ID: 1, URL: "https://example.com/job/senior-data-analyst-1", SourceSite: scraper.SampleSource},
		{ID: 2, URL: "https://example.com/job/python-developer-2", SourceSite: scraper.SampleSource},
	}

	sum := New(fetcher, store, 0).Run(context.Background(), items)

	assert.Equal(t, Summary{Extracted: 2}, sum)
	assert.Empty(t, fetcher.calls, "sample records must never hit the network")
	assert.NotEmpty(t, store.updates[1])
	assert.NotEqual(t, store.updates[1][0], store.updates[2][0], "canned texts cycle by id")
}

func TestRun_StoreErrorCountsAsFailure(t *testing.T) {
	fetcher := &fakeFetcher{texts: map[string]string{"https://x/1": "desc"}}
	store := newFakeStore()
	store.err = errors.New("connection reset")

	sum := New(fetcher, store, 0).Run(context.Background(), []models.PendingJob{
		pending(1, "https://x/1"),
	})

	assert.Equal(t, Summary{LoadFailed: 1}, sum)
}

func TestRun_ProcessesInGivenOrder(t *testing.T) {
	fetcher := &fakeFetcher{texts: map[string]string{
		"https://x/1": "a", "https://x/2": "b", "https://x/3": "c",
	}}
	store := newFakeStore()

	New(fetcher, store, 0).Run(context.Background(), []models.PendingJob{
		pending(3, "https://x/3"),
		pending(1, "https://x/1"),
		pending(2, "https://x/2"),
	})

	assert.Equal(t, []string{"https://x/3", "https://x/1", "https://x/2"}, fetcher.calls)
}

func TestSampleDescription_CyclesByID(t *testing.T) {
	assert.Equal(t, sampleDescriptions[0], sampleDescription(1))
	assert.Equal(t, sampleDescriptions[1], sampleDescription(2))
	assert.Equal(t, sampleDescriptions[2], sampleDescription(3))
	assert.Equal(t, sampleDescriptions[0], sampleDescription(4))
}
