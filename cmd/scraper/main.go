package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Stv21/job-scrapping-repo/internal/browser"
	"github.com/Stv21/job-scrapping-repo/internal/collector"
	"github.com/Stv21/job-scrapping-repo/internal/config"
	"github.com/Stv21/job-scrapping-repo/internal/database"
	"github.com/Stv21/job-scrapping-repo/internal/enricher"
	"github.com/Stv21/job-scrapping-repo/internal/reporter"
	"github.com/Stv21/job-scrapping-repo/internal/scraper"
	"github.com/Stv21/job-scrapping-repo/internal/scraper/wellfound"
	"github.com/Stv21/job-scrapping-repo/internal/scraper/weworkremotely"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	os.Exit(run())
}

// run executes phases 1-3 in order. Exit 0 even when individual items were
// skipped; non-zero only on unrecoverable setup failure.
func run() int {
	configPath := os.Getenv("SCRAPER_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("❌ Failed to load config: %v", err)
		return 1
	}
	log.Printf("🔧 Config loaded. Search terms: %v", cfg.SearchTerms)

	//setup context with timeout = 15 mins
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	log.Println("🚀 Starting job scraper...")

	repo, err := database.ConnectDB(ctx, cfg.Postgres.ConnString())
	if err != nil {
		log.Printf("❌ Failed to connect to database: %v", err)
		return 1
	}
	defer repo.Close()
	log.Println("✅ Database connection established")

	if err := repo.EnsureSchema(ctx); err != nil {
		log.Printf("❌ Failed to set up database: %v", err)
		return 1
	}
	log.Println("✅ Database table setup complete")

	rep, err := reporter.New(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Printf("⚠️ Telegram reporter unavailable: %v. Continuing without it.", err)
		rep = nil
	}

	//phase 1: collect listings and store them
	log.Println("\n📊 Phase 1: Collecting job listings...")
	client := &http.Client{Timeout: 30 * time.Second}
	col := collector.New(
		wellfound.New(client),
		weworkremotely.New(cfg.MaxPerSource),
		cfg.RequestDelay(),
	)
	listings := col.Collect(ctx, cfg.SearchTerms)
	log.Printf("📦 Collected %d unique listings", len(listings))

	inserted, err := repo.InsertBatch(ctx, listings)
	if err != nil {
		// phase failure, not a run failure: earlier rows are committed and
		// enrichment of existing rows can still proceed
		log.Printf("⚠️ Insert stopped early: %v", err)
	}
	log.Printf("✅ Phase 1 complete: %d new rows stored (%d already known)", inserted, len(listings)-inserted)

	//phase 2: find rows still missing a description
	log.Println("\n🎯 Phase 2: Finding jobs without descriptions...")
	pending, err := repo.MissingDescriptions(ctx, cfg.EnrichLimit)
	if err != nil {
		log.Printf("⚠️ Could not query jobs without descriptions: %v", err)
		rep.SendError(err)
		return 0
	}
	log.Printf("📋 Found %d jobs needing descriptions", len(pending))

	//phase 3: enrich them one by one
	var sum enricher.Summary
	if len(pending) > 0 {
		log.Println("\n📄 Phase 3: Scraping job descriptions...")

		needsBrowser := false
		for _, p := range pending {
			if p.SourceSite != scraper.SampleSource {
				needsBrowser = true
				break
			}
		}

		var fetcher enricher.DescriptionFetcher
		if needsBrowser {
			mgr, err := browser.NewManager(!cfg.Headful, cfg.EnrichTimeout())
			if err != nil {
				log.Printf("❌ Failed to start browser: %v", err)
				log.Println("💡 Tip: run 'go run github.com/playwright-community/playwright-go/cmd/playwright install chromium'")
				rep.SendError(err)
				return 1
			}
			defer mgr.Close()
			fetcher = mgr
			log.Println("✅ Browser session ready")
		}

		sum = enricher.New(fetcher, repo, cfg.RequestDelay()).Run(ctx, pending)
		log.Printf("✅ Phase 3 complete: %d enriched, %d timed out, %d failed to load",
			sum.Extracted, sum.TimedOut, sum.LoadFailed)
	} else {
		log.Println("✅ All jobs already have descriptions")
	}

	if err := rep.SendRunSummary(len(listings), inserted, sum); err != nil {
		log.Printf("⚠️ Failed to send run summary: %v", err)
	}

	log.Println("\n🎉 Run complete.")
	return 0
}
