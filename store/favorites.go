package store

const favoritesKeyPrefix = "fav_"

// Favorites is the per-user favorites list. Presence is boolean: adding an
// already-favorited product changes nothing.
type Favorites struct {
	*userStore
}

func NewFavorites(storage Storage, session *Session) *Favorites {
	return &Favorites{userStore: newUserStore(favoritesKeyPrefix, storage, session)}
}

// Add marks a product as favorite. No-op if it already is.
func (f *Favorites) Add(item Item) {
	item.Quantity = 0 // favorites carry no quantity

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.ProductID == item.ProductID {
			return
		}
	}
	f.save(append(f.snapshot(), item))
}

// Toggle adds the product when absent and removes it when present,
// returning true when the product ended up favorited.
func (f *Favorites) Toggle(item Item) bool {
	if f.IsFavorite(item.ProductID) {
		f.Remove(item.ProductID)
		return false
	}
	f.Add(item)
	return true
}

// IsFavorite reports whether the product is in the current user's list.
func (f *Favorites) IsFavorite(productID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// Count returns the number of favorites, shown on the navbar badge.
func (f *Favorites) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}
