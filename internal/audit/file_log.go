package audit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"agapept/internal/domain"
)

// FileLog appends submission records to a plain-text file.
type FileLog struct {
	path string
	mu   sync.Mutex
}

// NewFileLog creates the parent directory of path if needed. The file itself
// is opened per append so external rotation keeps working.
func NewFileLog(path string) (*FileLog, error) {
	if path == "" {
		return nil, fmt.Errorf("audit log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audit log directory: %w", err)
	}
	return &FileLog{path: path}, nil
}

var _ domain.AuditLog = (*FileLog)(nil)

// Path returns the file records are appended to.
func (l *FileLog) Path() string {
	return l.path
}

func (l *FileLog) Append(ctx context.Context, s *domain.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	record := FormatRecord(s)

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open audit log %s: %w", l.path, err)
	}
	if _, err := f.WriteString(record); err != nil {
		f.Close()
		return fmt.Errorf("failed to append audit record: %w", err)
	}
	return f.Close()
}
