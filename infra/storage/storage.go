// Package storage stores uploaded profile pictures on the local filesystem
// and hands back the relative path persisted on the user record.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore saves uploads under a base directory and exposes them under a
// URL prefix.
type FileStore struct {
	dir       string
	urlPrefix string
}

// NewFileStore creates the base directory if needed.
func NewFileStore(dir, urlPrefix string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

// Dir returns the base directory uploads are written to.
func (s *FileStore) Dir() string { return s.dir }

// URLPrefix returns the public prefix uploads are served under.
func (s *FileStore) URLPrefix() string { return s.urlPrefix }

// Save writes the uploaded file under a random name, keeping the original
// extension, and returns the relative URL path to persist.
func (s *FileStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close() //nolint:errcheck

	name := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	dstPath := filepath.Join(s.dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close() //nolint:errcheck

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath) //nolint:errcheck
		return "", err
	}
	return s.urlPrefix + "/" + name, nil
}
