// Package files is the read-only file-system boundary for eg: existence
// checks, whole-file reads, and directory listings over a billy.Filesystem.
package files

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// ExampleSuffix is the file name suffix of every example file.
const ExampleSuffix = ".md"

// ErrInvalidPath is returned when a directory is required but empty.
var ErrInvalidPath = errors.New("directory path cannot be empty")

// Store reads example files and the egrc.
type Store struct {
	fs billy.Filesystem
}

// New wraps fs. Paths handed to the Store are made absolute first, so fs
// should be rooted at "/".
func New(fs billy.Filesystem) *Store {
	return &Store{fs: fs}
}

// NewOS returns a Store over the host file system.
func NewOS() *Store {
	return New(osfs.New("/"))
}

// EntryPath returns where the examples for program live under dir. The file
// is not required to exist.
func EntryPath(dir, program string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("entry path for %q: %w", program, ErrInvalidPath)
	}
	return filepath.Join(dir, program+ExampleSuffix), nil
}

// Exists reports whether path is a regular file. Missing paths are not an error.
func (s *Store) Exists(path string) bool {
	if path == "" {
		return false
	}
	fi, err := s.fs.Stat(abs(path))
	return err == nil && fi.Mode().IsRegular()
}

// IsDir reports whether path is a directory.
func (s *Store) IsDir(path string) bool {
	if path == "" {
		return false
	}
	fi, err := s.fs.Stat(abs(path))
	return err == nil && fi.IsDir()
}

// Read returns the full contents of path.
func (s *Store) Read(path string) (string, error) {
	data, err := util.ReadFile(s.fs, abs(path))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// List returns the names of the regular files in dir. Order is whatever the
// underlying file system yields; callers that need order must sort.
func (s *Store) List(dir string) ([]string, error) {
	if dir == "" {
		return nil, ErrInvalidPath
	}
	infos, err := s.fs.ReadDir(abs(dir))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		if fi.IsDir() {
			continue
		}
		names = append(names, fi.Name())
	}
	return names, nil
}

func abs(path string) string {
	if p, err := filepath.Abs(path); err == nil {
		return p
	}
	return filepath.Clean(path)
}
