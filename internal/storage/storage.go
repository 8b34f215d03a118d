// Package storage reads sources and writes results through afs, so inputs
// and outputs can be local paths or any URL scheme afs supports.
package storage

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minio/highwayhash"
	"github.com/viant/afs"
)

const fileMode os.FileMode = 0o644

// digestKey is fixed so digests are comparable across runs.
var digestKey = []byte("lakenames-output-digest-key-0001")

// Store is a thin wrapper over an afs.Service.
type Store struct {
	fs afs.Service
}

// New creates a store backed by afs.New().
func New() *Store {
	return &Store{fs: afs.New()}
}

// URL turns a plain path into a file URL. Locations that already carry a
// scheme are returned unchanged.
func URL(location string) string {
	if strings.Contains(location, "://") {
		return location
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		abs = location
	}
	return "file://" + filepath.ToSlash(abs)
}

// Read returns the content at location. A missing location returns an
// error wrapping os.ErrNotExist.
func (s *Store) Read(ctx context.Context, location string) ([]byte, error) {
	u := URL(location)
	ok, err := s.fs.Exists(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", location, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", location, os.ErrNotExist)
	}

	data, err := s.fs.DownloadWithURL(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", location, err)
	}
	return data, nil
}

// Write stores data at location. Local files are uploaded to a temporary
// sibling and renamed into place, so a failed write never leaves a
// truncated destination. Other schemes are uploaded directly.
func (s *Store) Write(ctx context.Context, location string, data []byte) error {
	u := URL(location)

	path, local := strings.CutPrefix(u, "file://")
	if !local {
		if err := s.fs.Upload(ctx, u, fileMode, bytes.NewReader(data)); err != nil {
			return fmt.Errorf("write %s: %w", location, err)
		}
		return nil
	}

	path = filepath.FromSlash(path)
	tmp := path + ".tmp"
	if err := s.fs.Upload(ctx, u+".tmp", fileMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", location, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("move %s into place: %w", location, err)
	}
	return nil
}

// Digest returns the hex HighwayHash-64 of data.
func Digest(data []byte) (string, error) {
	h, err := highwayhash.New64(digestKey)
	if err != nil {
		return "", err
	}
	if _, err := h.Write(data); err != nil {
		return "", err
	}
	var sum [8]byte
	binary.BigEndian.PutUint64(sum[:], h.Sum64())
	return hex.EncodeToString(sum[:]), nil
}
