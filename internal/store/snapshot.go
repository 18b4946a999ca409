package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/days-together/internal/logger"
)

const (
	snapshotTempPrefix = "days-together-tmp-"
	snapshotTimeLayout = "20060102-150405"
)

// Snapshot is the YAML document written by [SnapshotExporter.Export].
// Conversations are keyed by "<owner>_<friend>".
type Snapshot struct {
	ExportedAt    time.Time      `yaml:"exported_at"`
	Entries       map[string]any `yaml:"entries"`
	Conversations map[string]any `yaml:"conversations,omitempty"`
}

// SnapshotExporter dumps the whole key-value store into a YAML file.
type SnapshotExporter struct {
	kv     KeyValueRepository
	dir    string
	logger *logger.Logger
	now    func() time.Time
}

func NewSnapshotExporter(kv KeyValueRepository, dir string, logger *logger.Logger) *SnapshotExporter {
	return &SnapshotExporter{
		kv:     kv,
		dir:    dir,
		logger: logger,
		now:    time.Now,
	}
}

// Export writes the snapshot and returns the path of the created file.
// JSON values are decoded so lists and objects read naturally in YAML.
func (e *SnapshotExporter) Export(ctx context.Context) (string, error) {
	values, err := e.kv.List(ctx, "")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	conversations, err := e.kv.List(ctx, MessagesKeyPrefix)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	now := e.now().UTC()
	snapshot := Snapshot{
		ExportedAt:    now,
		Entries:       make(map[string]any, len(values)),
		Conversations: make(map[string]any, len(conversations)),
	}
	for k, v := range values {
		if strings.HasPrefix(k, MessagesKeyPrefix) {
			continue
		}
		snapshot.Entries[k] = decodeValue(v)
	}
	for k, v := range conversations {
		snapshot.Conversations[strings.TrimPrefix(k, MessagesKeyPrefix)] = decodeValue(v)
	}

	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("%w: encode yaml: %w", ErrExportFailed, err)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create export dir: %w", ErrExportFailed, err)
	}

	path := filepath.Join(e.dir, fmt.Sprintf("days-together-%s.yaml", now.Format(snapshotTimeLayout)))
	if err := writeFileAtomic(path, data, 0o600); err != nil {
		e.logger.Err(err).Str("func", "SnapshotExporter.Export").Str("path", path).Msg("failed to write snapshot")
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	e.logger.Info().Str("func", "SnapshotExporter.Export").Str("path", path).Int("entries", len(snapshot.Entries)).Int("conversations", len(conversations)).Msg("snapshot exported")
	return path, nil
}

func decodeValue(v string) any {
	if len(v) == 0 || (v[0] != '{' && v[0] != '[') {
		return v
	}

	var decoded any
	if err := json.Unmarshal([]byte(v), &decoded); err != nil {
		return v
	}
	return decoded
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(filename), snapshotTempPrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return nil
}
