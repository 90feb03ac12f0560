// Package analyze implements the analyze command for scoring websites
// and generating outreach drafts.
package analyze

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/siteleads/cmd/common"
	"github.com/jonesrussell/siteleads/internal/domain"
	"github.com/jonesrussell/siteleads/internal/fetcher"
	"github.com/jonesrussell/siteleads/internal/leads"
	"github.com/jonesrussell/siteleads/internal/report"
	"github.com/jonesrussell/siteleads/internal/storage"
	"github.com/jonesrussell/siteleads/internal/worker"
)

// Cmd represents the analyze command.
var Cmd = &cobra.Command{
	Use:   "analyze [url]",
	Short: "Analyze websites and generate lead reports",
	Long: `Analyze fetches each website, scores its quality issues, extracts
contact details, and generates a cold outreach email draft.

Examples:
  # Analyze a single site
  siteleads analyze https://example.com

  # Analyze a batch of sites from a file (one URL per line)
  siteleads analyze --batch urls.txt

  # Emit JSON instead of the text report
  siteleads analyze https://example.com --json
`,
	RunE: runAnalyze,
}

// Command returns the analyze command for use in the root command
func Command() *cobra.Command {
	Cmd.Flags().StringP("batch", "b", "", "File with URLs, one per line")
	Cmd.Flags().Bool("json", false, "JSON output")

	return Cmd
}

// runAnalyze executes the analyze command.
func runAnalyze(cmd *cobra.Command, args []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	urls, err := collectURLs(cmd.Flag("batch").Value.String(), args)
	if err != nil {
		return err
	}

	f := fetcher.NewHTTPFetcher(fetcher.Config{
		Timeout:   deps.Config.Fetcher.Timeout,
		UserAgent: deps.Config.Fetcher.UserAgent,
	})
	pool := worker.NewPool(f, deps.Logger, deps.Config.Analyzer.Concurrency)

	run := domain.AnalysisRun{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}
	run.Leads = pool.AnalyzeURLs(cmd.Context(), urls)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		if err := report.JSON(os.Stdout, run.Leads); err != nil {
			return err
		}
	} else {
		for _, lead := range run.Leads {
			fmt.Fprintln(os.Stdout, report.Lead(lead))
		}
	}

	sink, err := buildSink(deps)
	if err != nil {
		return err
	}

	if err := sink.Save(cmd.Context(), run); err != nil {
		return fmt.Errorf("failed to save analysis run: %w", err)
	}

	return nil
}

// collectURLs resolves the input URLs from the batch flag or the argument.
func collectURLs(batchFile string, args []string) ([]string, error) {
	if batchFile != "" {
		urls, err := leads.ReadURLList(batchFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read batch file: %w", err)
		}

		return urls, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("a URL argument or --batch file is required")
	}

	return args[:1], nil
}

// buildSink assembles the persistence sinks for the run. JSON file
// persistence is always on, Postgres joins when configured.
func buildSink(deps common.CommandDeps) (storage.Sink, error) {
	sinks := storage.MultiSink{
		storage.NewJSONFileSink(deps.Config.Analyzer.LeadsDir, deps.Logger),
	}

	if deps.Config.Postgres.Enabled {
		pg, err := newPostgresSink(deps)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, pg)
	}

	return sinks, nil
}

func newPostgresSink(deps common.CommandDeps) (storage.Sink, error) {
	db, err := storage.NewPostgresConnection(deps.Config.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return storage.NewPostgresSink(db, deps.Logger), nil
}
