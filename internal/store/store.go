// Package store persists whole named JSON documents to a directory on local
// disk. Each collection is one file; every write rewrites the file in full.
// Single-process use only: there is no locking and no protection against
// concurrent external writers.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/azim218/RentMyWaifu/internal/common"
)

type Store struct {
	dir string
}

// New returns a Store rooted at dir. The directory must already exist.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the named document into out. If the backing file does not
// exist, out is left untouched (the caller's default) and found is false;
// the file is not created. Unparseable content fails with
// common.ErrCorruptStore.
func (s *Store) Load(name string, out any) (found bool, err error) {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", name, err)
	}

	if err := json.Unmarshal(b, out); err != nil {
		return false, fmt.Errorf("decode %s: %w: %v", name, common.ErrCorruptStore, err)
	}

	return true, nil
}

// Save serializes v with human-readable indentation and overwrites the named
// document.
func (s *Store) Save(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), b, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}
