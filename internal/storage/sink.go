// Package storage persists analysis runs. The engine itself never
// writes anywhere; callers pick a sink and hand it the finished run.
package storage

import (
	"context"

	"github.com/jonesrussell/siteleads/internal/domain"
)

// Sink persists one analysis run.
type Sink interface {
	Save(ctx context.Context, run domain.AnalysisRun) error
}

// MultiSink fans a run out to several sinks, stopping at the first error.
type MultiSink []Sink

// Save writes the run to each sink in order.
func (m MultiSink) Save(ctx context.Context, run domain.AnalysisRun) error {
	for _, sink := range m {
		if err := sink.Save(ctx, run); err != nil {
			return err
		}
	}

	return nil
}
