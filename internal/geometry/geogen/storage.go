package geogen

import (
	"fmt"
	"os"
	"path/filepath"
)

// ============================================================
// File Storage
// ============================================================

// FileStorage writes translated theorems into one directory.
type FileStorage struct {
	root string
}

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{root: root}
}

// Path is the file of a theorem. Directory parts of the name are dropped.
func (s *FileStorage) Path(name string) string {
	return filepath.Join(s.root, filepath.Base(name))
}

func (s *FileStorage) EnsureDir() error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("mkdir output dir: %w", err)
	}
	return nil
}

// Save writes every theorem and returns the written paths.
func (s *FileStorage) Save(theorems []Theorem) ([]string, error) {
	if err := s.EnsureDir(); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(theorems))
	for _, th := range theorems {
		path := s.Path(th.Name)
		if err := os.WriteFile(path, []byte(th.Source), 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
