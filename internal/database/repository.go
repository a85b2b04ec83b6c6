package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Stv21/job-scrapping-repo/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the storage gateway over the job_listings table. It owns a
// single pgx pool, opened at process start and released exactly once.
type Repository struct {
	db *pgxpool.Pool
}

func ConnectDB(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Ping to ensure connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// EnsureSchema creates the job_listings table if it does not exist. The
// column set is a fixed contract shared with downstream consumers.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS job_listings (
		id SERIAL PRIMARY KEY,
		job_title VARCHAR(255),
		company_name VARCHAR(255),
		location VARCHAR(255),
		job_url VARCHAR(512) UNIQUE,
		salary_info TEXT,
		job_description TEXT,
		source_site VARCHAR(100),
		scraped_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := r.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create job_listings table: %w", err)
	}
	return nil
}

// InsertBatch inserts listings one by one, ignoring job_url conflicts.
// A duplicate never fails the batch and never counts as inserted. Returns
// the number of rows actually written.
func (r *Repository) InsertBatch(ctx context.Context, listings []models.Listing) (int, error) {
	query := `
		INSERT INTO job_listings (job_title, company_name, location, job_url, salary_info, source_site)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (job_url) DO NOTHING`

	inserted := 0
	for _, l := range listings {
		tag, err := r.db.Exec(ctx, query,
			l.Title, l.Company, l.Location, l.URL, l.SalaryInfo, l.SourceSite)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert listing %s: %w", l.URL, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// MissingDescriptions returns listings whose description has not been
// filled yet, oldest id first. limit <= 0 means no limit.
func (r *Repository) MissingDescriptions(ctx context.Context, limit int) ([]models.PendingJob, error) {
	query := `
		SELECT id, job_url, source_site
		FROM job_listings
		WHERE job_description IS NULL
		ORDER BY id ASC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs without descriptions: %w", err)
	}
	defer rows.Close()

	var pending []models.PendingJob
	for rows.Next() {
		var p models.PendingJob
		if err := rows.Scan(&p.ID, &p.URL, &p.SourceSite); err != nil {
			return nil, fmt.Errorf("failed to scan pending job: %w", err)
		}
		pending = append(pending, p)
	}
	return pending, rows.Err()
}

// UpdateDescription fills job_description for one row. Updating an id that
// does not exist is a no-op, not an error.
func (r *Repository) UpdateDescription(ctx context.Context, id int64, description string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE job_listings SET job_description = $1 WHERE id = $2", description, id)
	if err != nil {
		return fmt.Errorf("failed to update description for job %d: %w", id, err)
	}
	return nil
}

// GetListingByURL retrieves a full row by its natural key.
func (r *Repository) GetListingByURL(ctx context.Context, jobURL string) (*models.JobListing, error) {
	var j models.JobListing
	query := `
		SELECT id, job_title, company_name, location, job_url, salary_info, job_description, source_site, scraped_at
		FROM job_listings
		WHERE job_url = $1`
	err := r.db.QueryRow(ctx, query, jobURL).
		Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.URL, &j.SalaryInfo, &j.Description, &j.SourceSite, &j.ScrapedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("listing not found")
		}
		return nil, fmt.Errorf("failed to get listing by url: %w", err)
	}
	return &j, nil
}

// CountListings returns the total number of stored rows.
func (r *Repository) CountListings(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM job_listings").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return count, nil
}

// Column describes one column of the job_listings table, for setup checks.
type Column struct {
	Name     string
	DataType string
}

// TableColumns lists the job_listings columns in ordinal position, or nil
// if the table does not exist yet.
func (r *Repository) TableColumns(ctx context.Context) ([]Column, error) {
	rows, err := r.db.Query(ctx, `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_name = 'job_listings'
		ORDER BY ordinal_position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query table columns: %w", err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var c Column
		if err := rows.Scan(&c.Name, &c.DataType); err != nil {
			return nil, fmt.Errorf("failed to scan column info: %w", err)
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}
