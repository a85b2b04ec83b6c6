package scraper

import "github.com/Stv21/job-scrapping-repo/internal/models"

// SampleSource tags synthetic records so consumers can always tell them
// apart from genuinely scraped data.
const SampleSource = "sample-data"

// SampleListings is the fixed fallback batch used when every real source
// comes back empty, so the rest of the pipeline stays exercisable.
func SampleListings() []models.Listing {
	return []models.Listing{
		{
			Title:      "Senior Data Analyst",
			Company:    "TechCorp International",
			Location:   "Remote, UK",
			SalaryInfo: "£45,000 - £65,000",
			URL:        "https://example.com/job/senior-data-analyst-1",
			SourceSite: SampleSource,
		},
		{
			Title:      "Python Developer",
			Company:    "DataFlow Solutions",
			Location:   "London, UK",
			SalaryInfo: "£50,000 - £70,000",
			URL:        "https://example.com/job/python-developer-2",
			SourceSite: SampleSource,
		},
		{
			Title:      "Business Data Scientist",
			Company:    "Analytics Pro Ltd",
			Location:   "Manchester, UK",
			SalaryInfo: "£55,000 - £75,000",
			URL:        "https://example.com/job/data-scientist-3",
			SourceSite: SampleSource,
		},
		{
			Title:      "Junior Data Analyst",
			Company:    "StartupTech",
			Location:   "Remote",
			SalaryInfo: "£30,000 - £45,000",
			URL:        "https://example.com/job/junior-analyst-4",
			SourceSite: SampleSource,
		},
		{
			Title:      "Senior Python Engineer",
			Company:    "FinTech Innovations",
			Location:   "Edinburgh, UK",
			SalaryInfo: "£60,000 - £80,000",
			URL:        "https://example.com/job/python-engineer-5",
			SourceSite: SampleSource,
		},
	}
}
