package refqueue

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const queueFileMode fs.FileMode = 0o644

// FileStore keeps the queue in a line-oriented text file, one entry per line.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path. The file is
// created on first append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// ReadAll returns the trimmed lines of the file. A missing file reads as an
// empty queue.
func (f *FileStore) ReadAll(_ context.Context) ([]string, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open queue file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var entries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		entries = append(entries, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read queue file: %w", err)
	}
	return entries, nil
}

// ReplaceAll rewrites the file through a temporary sibling and a rename so a
// failed write never leaves a truncated queue behind.
func (f *FileStore) ReplaceAll(_ context.Context, entries []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp queue file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	w := bufio.NewWriter(tmp)
	for _, entry := range entries {
		_, _ = w.WriteString(entry)
		_ = w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp queue file: %w", err)
	}
	if err := tmp.Chmod(queueFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp queue file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp queue file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace queue file: %w", err)
	}
	return nil
}

// Append adds entry as a new line at the end of the file.
func (f *FileStore) Append(_ context.Context, entry string) error {
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, queueFileMode)
	if err != nil {
		return fmt.Errorf("open queue file: %w", err)
	}
	if _, err := file.WriteString(entry + "\n"); err != nil {
		_ = file.Close()
		return fmt.Errorf("append queue entry: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close queue file: %w", err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }
