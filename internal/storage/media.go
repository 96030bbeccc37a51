package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/job-board/internal/config"
)

// MediaStore persists uploaded binary blobs and resolves their public URLs.
type MediaStore interface {
	Save(dir, filename string, src io.Reader) (string, error)
	URL(key string) string
	Remove(key string) error
}

// DiskStore keeps media files under a local root directory, keyed
// <dir>/<uuid><ext>.
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore constructs a disk-backed media store.
func NewDiskStore(cfg config.MediaConfig) *DiskStore {
	return &DiskStore{root: cfg.Root, baseURL: strings.TrimSuffix(cfg.BaseURL, "/")}
}

// Save writes the blob and returns its storage key.
func (s *DiskStore) Save(dir, filename string, src io.Reader) (string, error) {
	key := path.Join(dir, uuid.NewString()+strings.ToLower(filepath.Ext(filename)))
	dest := filepath.Join(s.root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return key, nil
}

// URL resolves the public URL for a storage key.
func (s *DiskStore) URL(key string) string {
	if key == "" {
		return ""
	}
	return s.baseURL + "/" + key
}

// Remove deletes a stored blob. Missing files are not an error.
func (s *DiskStore) Remove(key string) error {
	if key == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Root returns the on-disk media root for static serving.
func (s *DiskStore) Root() string {
	return s.root
}
