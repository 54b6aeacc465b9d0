package cache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// DiskStore persists one JSON document per key. Persistence is an
// optimization, not a correctness requirement: every failure path reads as
// a cache miss and writes never surface errors to the caller.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

func (s *DiskStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read unmarshals the stored document for key into v. Absence, unreadable
// files and corrupt JSON all report a plain miss.
func (s *DiskStore) Read(key string, v any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Debug().Str("key", key).Err(err).Msg("corrupt cache file, treating as miss")
		return false
	}
	return true
}

// Write stores v as the whole document for key, best-effort.
func (s *DiskStore) Write(key string, v any) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Debug().Str("key", key).Err(err).Msg("cache dir unavailable, skipping persist")
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Debug().Str("key", key).Err(err).Msg("cache value not serializable, skipping persist")
		return
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		log.Debug().Str("key", key).Err(err).Msg("cache persist failed")
	}
}
