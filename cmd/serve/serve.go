// Package serve implements the serve command for running the HTTP API.
package serve

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/siteleads/cmd/common"
	"github.com/jonesrussell/siteleads/internal/api"
	"github.com/jonesrussell/siteleads/internal/fetcher"
	"github.com/jonesrussell/siteleads/internal/storage"
	"github.com/jonesrussell/siteleads/internal/worker"
)

// Cmd represents the serve command.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve runs the analysis HTTP API.

Endpoints:
  GET  /health               liveness check
  POST /api/v1/analyze       analyze one website
  POST /api/v1/leads/score   score lead metadata in batch
  POST /api/v1/audit         capture a free site audit request
`,
	RunE: runServe,
}

// Command returns the serve command for use in the root command
func Command() *cobra.Command {
	return Cmd
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	f := fetcher.NewHTTPFetcher(fetcher.Config{
		Timeout:   deps.Config.Fetcher.Timeout,
		UserAgent: deps.Config.Fetcher.UserAgent,
	})
	pool := worker.NewPool(f, deps.Logger, deps.Config.Analyzer.Concurrency)
	audits := storage.NewAuditLog(deps.Config.Analyzer.LeadsDir, deps.Logger)

	router := api.SetupRouter(deps.Logger, pool, audits)
	server := api.NewServer(deps.Config.Server, deps.Logger, router)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
