package credentials

import (
	"context"
	"fmt"
	"os"

	"github.com/2beens/weblogin/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// FileStore reads the credentials file on every verification, so edits to
// the file apply to the next login without a restart.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
	}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load builds a fresh table from the credentials file. Any failure is logged
// and yields an empty table.
func (s *FileStore) Load() Table {
	table, err := s.load()
	if err != nil {
		log.Errorf("load credentials: %s", err)
		return Table{}
	}
	return table
}

func (s *FileStore) load() (Table, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("close credentials file %s: %s", s.path, err)
		}
	}()

	table, err := ParseTable(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	return table, nil
}

func (s *FileStore) Verify(ctx context.Context, username, password string) bool {
	_, span := tracing.GlobalTracer.Start(ctx, "credentials.fileStore.verify")
	defer span.End()

	table := s.Load()
	span.SetAttributes(attribute.Int("credentials.count", len(table)))

	return table.Verify(ctx, username, password)
}
