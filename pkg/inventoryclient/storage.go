package inventoryclient

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Storage persists cache snapshots between client instances
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// NoopStorage disables persistence. It is the default.
type NoopStorage struct{}

func (NoopStorage) Load() ([]byte, error) { return nil, nil }

func (NoopStorage) Save([]byte) error { return nil }

// FileStorage keeps the snapshot in a single file on disk
type FileStorage struct {
	Path string
}

func NewFileStorage(path string) FileStorage {
	return FileStorage{Path: path}
}

func (s FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}

	return data, err
}

func (s FileStorage) Save(data []byte) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(s.Path, data, 0o644)
}

type cacheSnapshotEntry struct {
	Key   string   `json:"key"`
	Value []byte   `json:"value"`
	Tags  []string `json:"tags"`
}

// persistSnapshot saves the live cache entries through the configured
// storage
func (c *InventoryClient) persistSnapshot() {
	entries := c.cache.Dump()

	snapshot := make([]cacheSnapshotEntry, 0, len(entries))
	for _, e := range entries {
		body, ok := e.Value.([]byte)
		if !ok {
			continue
		}

		snapshot = append(snapshot, cacheSnapshotEntry{
			Key:   e.Key,
			Value: body,
			Tags:  e.Tags,
		})
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		logrus.WithError(err).Warn("Error encoding the cache snapshot")
		return
	}

	if err := c.storage.Save(data); err != nil {
		logrus.WithError(err).Warn("Error persisting the cache snapshot")
	}
}

// restoreSnapshot reloads a previously persisted snapshot. Restored
// entries restart with a full TTL.
func (c *InventoryClient) restoreSnapshot() {
	data, err := c.storage.Load()
	if err != nil {
		logrus.WithError(err).Warn("Error loading the cache snapshot")
		return
	}

	if len(data) == 0 {
		return
	}

	var snapshot []cacheSnapshotEntry
	if err := json.Unmarshal(data, &snapshot); err != nil {
		logrus.WithError(err).Warn("Error decoding the cache snapshot")
		return
	}

	for _, e := range snapshot {
		c.cache.Set(e.Key, e.Value, c.cacheTTL, e.Tags...)
	}
}
