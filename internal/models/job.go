package models

import (
	"time"
)

// EnrichmentStatus tracks one listing through the description enrichment
// state machine.
type EnrichmentStatus string

const (
	StatusPending    EnrichmentStatus = "PENDING"
	StatusLoading    EnrichmentStatus = "LOADING"
	StatusExtracted  EnrichmentStatus = "EXTRACTED"
	StatusTimedOut   EnrichmentStatus = "TIMED_OUT"
	StatusLoadFailed EnrichmentStatus = "LOAD_FAILED"
)

// Listing is a normalized job record as first discovered, before storage
// assigns an id. The description stays empty until the enrichment phase.
type Listing struct {
	Title      string `json:"job_title"`
	Company    string `json:"company_name"`
	Location   string `json:"location"`
	URL        string `json:"job_url"`
	SalaryInfo string `json:"salary_info"`
	SourceSite string `json:"source_site"`
}

// JobListing is a stored row from the job_listings table.
type JobListing struct {
	ID          int64     `json:"id"`
	Title       string    `json:"job_title"`
	Company     string    `json:"company_name"`
	Location    string    `json:"location"`
	URL         string    `json:"job_url"`
	SalaryInfo  string    `json:"salary_info"`
	Description *string   `json:"job_description,omitempty"`
	SourceSite  string    `json:"source_site"`
	ScrapedAt   time.Time `json:"scraped_at"`
}

// PendingJob is the slice of a stored row the enricher works from.
type PendingJob struct {
	ID         int64
	URL        string
	SourceSite string
}
