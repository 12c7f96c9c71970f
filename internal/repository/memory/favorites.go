package memory

import "sync"

// FavoriteSet is the set of offering ids the session has bookmarked.
// Membership is permissive: ids are not validated against the catalog, to
// match the toggle-anything behavior of the browsing surface.
type FavoriteSet struct {
	mu  sync.RWMutex
	ids map[int64]struct{}
}

func NewFavoriteSet() *FavoriteSet {
	return &FavoriteSet{ids: make(map[int64]struct{})}
}

// Toggle flips membership of id and reports the resulting state: true if id
// is now a favorite. Toggling twice restores the original membership.
func (f *FavoriteSet) Toggle(id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.ids[id]; ok {
		delete(f.ids, id)
		return false
	}

	f.ids[id] = struct{}{}
	return true
}

// Contains reports whether id is currently a favorite.
func (f *FavoriteSet) Contains(id int64) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, ok := f.ids[id]
	return ok
}

// Len reports the number of favorites.
func (f *FavoriteSet) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.ids)
}
