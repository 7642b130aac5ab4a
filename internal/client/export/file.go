package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type FileExporter struct {
	dir string
}

func NewFileExporter(dir string) *FileExporter {
	return &FileExporter{dir: dir}
}

func (f *FileExporter) Export(_ context.Context, s Snapshot) (string, error) {
	data, err := s.encode()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(f.dir, s.Name())
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}
