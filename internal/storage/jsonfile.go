package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonesrussell/siteleads/internal/domain"
	"github.com/jonesrussell/siteleads/internal/logger"
)

const (
	// runFileTimestamp names saved runs by start minute.
	runFileTimestamp = "20060102-1504"

	leadsDirPerm = 0o755
	runFilePerm  = 0o644
)

// JSONFileSink saves each analysis run as an indented JSON file named
// analysis-YYYYMMDD-HHMM.json under the leads directory.
type JSONFileSink struct {
	dir string
	log logger.Interface
}

// NewJSONFileSink creates a sink writing under dir, creating it on first save.
func NewJSONFileSink(dir string, log logger.Interface) *JSONFileSink {
	return &JSONFileSink{
		dir: dir,
		log: log.WithComponent("storage"),
	}
}

// Save writes the run to a timestamped file. An existing file for the
// same minute is overwritten.
func (s *JSONFileSink) Save(ctx context.Context, run domain.AnalysisRun) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("saving run %s: %w", run.ID, err)
	}

	if err := os.MkdirAll(s.dir, leadsDirPerm); err != nil {
		return fmt.Errorf("creating leads directory: %w", err)
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding run %s: %w", run.ID, err)
	}

	path := s.runPath(run.StartedAt)
	if err := os.WriteFile(path, data, runFilePerm); err != nil {
		return fmt.Errorf("writing run file: %w", err)
	}

	s.log.Info("saved analysis run", "path", path, "leads", len(run.Leads))

	return nil
}

// runPath returns the destination file for a run started at the given time.
func (s *JSONFileSink) runPath(startedAt time.Time) string {
	name := "analysis-" + startedAt.Format(runFileTimestamp) + ".json"

	return filepath.Join(s.dir, name)
}
