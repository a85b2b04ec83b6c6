package dedup

import (
	"github.com/Stv21/job-scrapping-repo/internal/models"

	mapset "github.com/deckarep/golang-set/v2"
)

// ByURL collapses listings that share a job_url, keeping the first
// occurrence and its position. Listings without a URL are dropped — they
// could never be deduplicated or enriched later. The database UNIQUE
// constraint remains the durable second line of defense.
func ByURL(listings []models.Listing) []models.Listing {
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if l.URL == "" {
			continue
		}
		// Add reports false when the URL was already present
		if !seen.Add(l.URL) {
			continue
		}
		out = append(out, l)
	}
	return out
}
