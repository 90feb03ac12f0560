package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/jonesrussell/siteleads/internal/config"
	"github.com/jonesrussell/siteleads/internal/domain"
	"github.com/jonesrussell/siteleads/internal/logger"
)

// Connection pool settings.
const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 5 * time.Minute
	defaultPingTimeout     = 5 * time.Second
)

// NewPostgresConnection opens and verifies a PostgreSQL connection.
func NewPostgresConnection(cfg config.PostgresConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), defaultPingTimeout)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		return nil, fmt.Errorf("failed to ping database: %w", pingErr)
	}

	return db, nil
}

// PostgresSink persists leads into the leads table, one row per lead,
// keyed by run ID and submission index.
type PostgresSink struct {
	db  *sqlx.DB
	log logger.Interface
}

// NewPostgresSink creates a sink over an open connection.
func NewPostgresSink(db *sqlx.DB, log logger.Interface) *PostgresSink {
	return &PostgresSink{
		db:  db,
		log: log.WithComponent("storage"),
	}
}

// Save inserts all leads of the run in a single transaction. Re-saving
// the same run and index overwrites the previous row.
func (s *PostgresSink) Save(ctx context.Context, run domain.AnalysisRun) error {
	const query = `
		INSERT INTO leads (run_id, lead_index, url, title, score, mobile_friendly, https, page_size_kb, issues, draft_subject, draft_body, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (run_id, lead_index) DO UPDATE SET
			url = EXCLUDED.url,
			title = EXCLUDED.title,
			score = EXCLUDED.score,
			mobile_friendly = EXCLUDED.mobile_friendly,
			https = EXCLUDED.https,
			page_size_kb = EXCLUDED.page_size_kb,
			issues = EXCLUDED.issues,
			draft_subject = EXCLUDED.draft_subject,
			draft_body = EXCLUDED.draft_body,
			analyzed_at = EXCLUDED.analyzed_at
	`

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin save transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	for _, lead := range run.Leads {
		issues, marshalErr := json.Marshal(lead.Result.Issues)
		if marshalErr != nil {
			return fmt.Errorf("failed to encode issues for %s: %w", lead.URL, marshalErr)
		}

		_, execErr := tx.ExecContext(
			ctx, query,
			run.ID, lead.Index, lead.URL, lead.Title,
			lead.Result.Score, lead.Result.MobileFriendly, lead.Result.Secure, lead.Result.PageSizeKB,
			issues, lead.Draft.Subject, lead.Draft.Body, lead.AnalyzedAt,
		)
		if execErr != nil {
			return fmt.Errorf("failed to insert lead %s: %w", lead.URL, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return fmt.Errorf("failed to commit save transaction: %w", commitErr)
	}

	s.log.Info("saved analysis run", "run_id", run.ID, "leads", len(run.Leads))

	return nil
}
