// Package store keeps the per-user cart and favorites collections: reactive
// in memory, persisted through an injected key-value storage, isolated
// between users sharing a device.
package store

import (
	"encoding/json"
	"os"
	"sync"
)

// Storage is a string-keyed, string-valued persistence boundary. It mirrors
// browser local storage, which is what the collections ultimately live in on
// the client.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// MemoryStorage is a Storage kept entirely in memory.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStorage) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// FileStorage is a write-through Storage backed by one JSON file holding the
// whole key map. Writers in other processes race last-writer-wins, the same
// way browser tabs do on a shared local storage key.
type FileStorage struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// OpenFileStorage loads the file at path, starting from an empty map when
// the file is missing or its JSON is corrupt.
func OpenFileStorage(path string) (*FileStorage, error) {
	fs := &FileStorage{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &fs.data); err != nil {
		// Corrupt state resets to empty rather than failing the store.
		fs.data = make(map[string]string)
	}
	return fs, nil
}

func (f *FileStorage) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

func (f *FileStorage) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return f.flush()
}

func (f *FileStorage) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return f.flush()
}

func (f *FileStorage) flush() error {
	raw, err := json.Marshal(f.data)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o644)
}
