package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"time"
)

// UploadedFile is an open stored upload
type UploadedFile struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
	ModTime     time.Time
}

// LocalUploadStore keeps uploads in a directory on local disk. Writes are not
// synchronized; the last writer of a filename wins.
type LocalUploadStore struct {
	dir string
}

// NewLocalUploadStore creates the upload directory if needed and returns a store over it
func NewLocalUploadStore(dir string) (*LocalUploadStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalUploadStore{dir: abs}, nil
}

// Dir returns the absolute upload directory
func (s *LocalUploadStore) Dir() string {
	return s.dir
}

// Save writes content to the named file, replacing any existing file
func (s *LocalUploadStore) Save(ctx context.Context, filename string, content io.Reader, contentType string) error {
	path, err := s.resolve(filename)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, content); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Open opens the named upload for reading
func (s *LocalUploadStore) Open(ctx context.Context, filename string) (*UploadedFile, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return nil, ErrUploadNotFound
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, ErrUploadNotFound
	}

	return &UploadedFile{
		Body:        f,
		Size:        info.Size(),
		ContentType: contentTypeFor(filename),
		ModTime:     info.ModTime(),
	}, nil
}

// resolve maps a filename to a path and guarantees it stays inside the upload directory
func (s *LocalUploadStore) resolve(filename string) (string, error) {
	if !IsSafeFilename(filename) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	path := filepath.Join(s.dir, filename)
	if rel, err := filepath.Rel(s.dir, path); err != nil || rel != filename {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	return path, nil
}

func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
