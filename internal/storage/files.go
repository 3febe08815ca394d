// Package storage abstracts the file store that keeps avatars and other
// generated content. The account core only needs the three calls below;
// backends beyond the local filesystem live elsewhere.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore is the narrow contract the account core consumes.
type FileStore interface {
	Has(path string) (bool, error)
	Move(src, dst string) error
	Save(path string, content []byte) error
}

// LocalStore keeps files under a root directory on the local filesystem.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

func (s *LocalStore) abs(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(path))
}

// Has reports whether a regular file exists at path.
func (s *LocalStore) Has(path string) (bool, error) {
	info, err := os.Stat(s.abs(path))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// Move relocates a file, creating the destination directory as needed.
func (s *LocalStore) Move(src, dst string) error {
	target := s.abs(dst)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", dst, err)
	}
	if err := os.Rename(s.abs(src), target); err != nil {
		return fmt.Errorf("move %s -> %s: %w", src, dst, err)
	}
	return nil
}

// Save writes content at path, overwriting any previous file.
func (s *LocalStore) Save(path string, content []byte) error {
	target := s.abs(path)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", path, err)
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
