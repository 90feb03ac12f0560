package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jonesrussell/siteleads/internal/domain"
	"github.com/jonesrussell/siteleads/internal/logger"
)

// auditFileName is the append-only log of captured audit requests.
const auditFileName = "audit_requests.json"

// AuditLog appends audit requests to a JSON array file. Appends are
// serialized with a mutex since the file is rewritten whole each time.
type AuditLog struct {
	mu   sync.Mutex
	path string
	log  logger.Interface
}

// NewAuditLog creates an audit log stored under dir.
func NewAuditLog(dir string, log logger.Interface) *AuditLog {
	return &AuditLog{
		path: filepath.Join(dir, auditFileName),
		log:  log.WithComponent("storage"),
	}
}

// Append reads the existing entries, adds the request, and writes the
// file back. A missing file starts an empty log.
func (a *AuditLog) Append(ctx context.Context, req domain.AuditRequest) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("appending audit request: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	entries, err := a.readEntries()
	if err != nil {
		return err
	}

	entries = append(entries, req)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding audit log: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(a.path), leadsDirPerm); err != nil {
		return fmt.Errorf("creating audit log directory: %w", err)
	}
	if err := os.WriteFile(a.path, data, runFilePerm); err != nil {
		return fmt.Errorf("writing audit log: %w", err)
	}

	a.log.Info("captured audit request", "business", req.Business, "total", len(entries))

	return nil
}

// Entries returns all captured audit requests in append order.
func (a *AuditLog) Entries() ([]domain.AuditRequest, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.readEntries()
}

func (a *AuditLog) readEntries() ([]domain.AuditRequest, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.AuditRequest{}, nil
		}

		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	var entries []domain.AuditRequest
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing audit log: %w", err)
	}

	return entries, nil
}
