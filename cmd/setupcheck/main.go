// Validates the environment before a scraper run: database reachability,
// table shape, and browser availability.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Stv21/job-scrapping-repo/internal/config"
	"github.com/Stv21/job-scrapping-repo/internal/database"

	"github.com/playwright-community/playwright-go"
)

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Println("🚀 Running setup validation")
	fmt.Println("========================================")

	configPath := os.Getenv("SCRAPER_CONFIG")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("❌ Config check failed: %v", err)
		return 1
	}
	fmt.Println("✅ Config loaded")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if !checkDatabase(ctx, cfg) {
		return 1
	}
	if !checkBrowser() {
		return 1
	}

	fmt.Println("\n🎉 All checks passed! Ready to run cmd/scraper.")
	return 0
}

func checkDatabase(ctx context.Context, cfg *config.Config) bool {
	fmt.Println("\n🔍 Testing database connection...")

	repo, err := database.ConnectDB(ctx, cfg.Postgres.ConnString())
	if err != nil {
		log.Printf("❌ Database connection failed: %v", err)
		return false
	}
	defer repo.Close()
	fmt.Println("✅ Database connection successful")

	cols, err := repo.TableColumns(ctx)
	if err != nil {
		log.Printf("❌ Could not inspect table: %v", err)
		return false
	}
	if len(cols) == 0 {
		fmt.Println("⚠️ job_listings table does not exist yet - it will be created on first run")
		return true
	}

	fmt.Println("✅ job_listings table exists")
	fmt.Println("📋 Table structure:")
	for _, c := range cols {
		fmt.Printf("   - %s: %s\n", c.Name, c.DataType)
	}

	count, err := repo.CountListings(ctx)
	if err != nil {
		log.Printf("❌ Count query failed: %v", err)
		return false
	}
	fmt.Printf("📊 Current jobs in database: %d\n", count)
	return true
}

func checkBrowser() bool {
	fmt.Println("\n🌐 Testing browser availability...")

	pw, err := playwright.Run()
	if err != nil {
		log.Printf("❌ Playwright failed to start: %v", err)
		log.Println("💡 Tip: run 'go run github.com/playwright-community/playwright-go/cmd/playwright install chromium'")
		return false
	}
	defer pw.Stop()

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		log.Printf("❌ Chromium failed to launch: %v", err)
		return false
	}
	defer b.Close()

	fmt.Println("✅ Browser launches")
	return true
}
