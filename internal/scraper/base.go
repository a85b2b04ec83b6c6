// Define an interface for all listing sources
// Ensure consistency

package scraper

import (
	"context"

	"github.com/Stv21/job-scrapping-repo/internal/models"
)

//Source defines the interface that all listing sources must implement
type Source interface {
	//Fetch retrieves normalized listings for one search term
	Fetch(ctx context.Context, term string) ([]models.Listing, error)

	//Name is the source site tag (Wellfound, WeWorkRemotely, ...)
	Name() string
}
