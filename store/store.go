package store

import (
	"encoding/json"
	"log"
	"reflect"
	"sync"
)

// Item is one cart line or favorite entry. Quantity is only meaningful for
// cart items; favorites are boolean presence.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	Quantity  int     `json:"quantity,omitempty"`
}

// userStore is the shared core of Cart and Favorites: a mutex-guarded
// snapshot persisted under <prefix><userID|guest>, republished to
// subscribers after every mutation. Storage is durability only; the
// in-memory snapshot is the source of truth.
type userStore struct {
	prefix  string
	storage Storage
	session *Session

	mu    sync.Mutex
	items []Item
	subs  []chan []Item
}

func newUserStore(prefix string, storage Storage, session *Session) *userStore {
	s := &userStore{
		prefix:  prefix,
		storage: storage,
		session: session,
	}
	s.items = s.load()
	return s
}

func (s *userStore) key() string {
	return s.prefix + s.session.KeySuffix()
}

// load reads the collection for the current key. Missing or corrupt stored
// JSON yields an empty collection rather than an error.
func (s *userStore) load() []Item {
	raw, ok := s.storage.Get(s.key())
	if !ok {
		return nil
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

// save persists the new snapshot and republishes it. Caller holds s.mu.
func (s *userStore) save(items []Item) {
	raw, err := json.Marshal(items)
	if err == nil {
		if err := s.storage.Set(s.key(), string(raw)); err != nil {
			log.Printf("⚠️ store: failed to persist %s: %v", s.key(), err)
		}
	}
	s.items = items
	s.publish()
}

// publish sends a snapshot to every subscriber. A subscriber that is not
// draining its channel misses this snapshot instead of blocking the
// mutation. Caller holds s.mu.
func (s *userStore) publish() {
	snapshot := s.snapshot()
	for _, sub := range s.subs {
		select {
		case sub <- snapshot:
		default:
		}
	}
}

// snapshot copies the current items. Caller holds s.mu.
func (s *userStore) snapshot() []Item {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Items returns a defensive copy of the current collection.
func (s *userStore) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe registers a listener receiving the full collection after every
// mutation. The current snapshot is delivered immediately, so a late
// subscriber (a navbar badge wired after startup) starts from the real
// state instead of empty. The channel is buffered so slow listeners cannot
// stall writers.
func (s *userStore) Subscribe() <-chan []Item {
	ch := make(chan []Item, 8)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	ch <- s.snapshot()
	s.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener and closes its channel.
func (s *userStore) Unsubscribe(ch <-chan []Item) {
	if ch == nil {
		return
	}
	target := reflect.ValueOf(ch).Pointer()
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if reflect.ValueOf(sub).Pointer() == target {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			close(sub)
			return
		}
	}
}

// Remove deletes the entry for productID. Removing an absent entry is a
// no-op that still persists and republishes.
func (s *userStore) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	s.save(items)
}

// Clear empties the collection.
func (s *userStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save([]Item{})
}

// Reload re-reads the storage key and republishes. The key is re-derived
// from the session, so calling this after login or logout swaps the visible
// collection to the new user's.
func (s *userStore) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = s.load()
	s.publish()
}
