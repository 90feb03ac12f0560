// Package leads implements the leads command for scoring search-result
// metadata as outreach opportunities.
package leads

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/siteleads/cmd/common"
	"github.com/jonesrussell/siteleads/internal/domain"
	internalleads "github.com/jonesrussell/siteleads/internal/leads"
	"github.com/jonesrussell/siteleads/internal/report"
	"github.com/jonesrussell/siteleads/internal/storage"
	"github.com/jonesrussell/siteleads/internal/worker"
)

// Cmd represents the leads command.
var Cmd = &cobra.Command{
	Use:   "leads",
	Short: "Score business leads from search-result metadata",
	Long: `Leads scores business listings without fetching their sites. Each
entry gets an opportunity score from 0 to 100 where lower means a worse
site and a hotter lead.

The input file lists leads in YAML:

  leads:
    - title: "Joe's Plumbing | Chicago"
      url: "https://joesplumbing.example"
      snippet: "Plumbing services since 1995"

Examples:
  # Score leads and print the ranked table
  siteleads leads --file leads.yml

  # Emit JSON instead
  siteleads leads --file leads.yml --json
`,
	RunE: runLeads,
}

// Command returns the leads command for use in the root command
func Command() *cobra.Command {
	Cmd.Flags().StringP("file", "f", "", "YAML file with lead metadata")
	Cmd.Flags().Bool("json", false, "JSON output")

	if err := Cmd.MarkFlagRequired("file"); err != nil {
		fmt.Fprintf(os.Stderr, "Error marking file flag as required: %v\n", err)
		os.Exit(1)
	}

	return Cmd
}

// runLeads executes the leads command.
func runLeads(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	path := cmd.Flag("file").Value.String()
	metas, err := internalleads.NewLoader(path).Load()
	if err != nil {
		return fmt.Errorf("failed to load leads from %s: %w", path, err)
	}

	deps.Logger.Info("scoring leads", "file", path, "count", len(metas))

	pool := worker.NewPool(nil, deps.Logger, deps.Config.Analyzer.Concurrency)

	run := domain.AnalysisRun{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Leads:     pool.ScoreLeads(metas),
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		if err := report.JSON(os.Stdout, run.Leads); err != nil {
			return err
		}
	} else {
		report.BatchTable(os.Stdout, run.Leads)
	}

	sink := storage.NewJSONFileSink(deps.Config.Analyzer.LeadsDir, deps.Logger)
	if err := sink.Save(cmd.Context(), run); err != nil {
		return fmt.Errorf("failed to save analysis run: %w", err)
	}

	return nil
}
