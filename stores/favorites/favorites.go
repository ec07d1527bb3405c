// Package favorites keeps a per-user list of hearted products. Favorites
// only exist for signed-in shoppers: without a session every read comes back
// empty and every write is a no-op.
package favorites

import (
	"time"

	"github.com/samber/lo"

	"github.com/MRxhaqq/Luxury-Hijabi/models"
	"github.com/MRxhaqq/Luxury-Hijabi/storage"
)

// Store reads and mutates one favorites key per user.
type Store struct {
	db    storage.Adapter
	scope storage.KeyScope
	now   func() time.Time
}

// New wires a favorites store. scope resolves the signed-in user; pass
// session.Store.Scope in production.
func New(db storage.Adapter, scope storage.KeyScope) *Store {
	return &Store{db: db, scope: scope, now: time.Now}
}

// List returns the user's favorites, or nil for guests.
func (s *Store) List() []models.FavoriteEntry {
	key, ok := s.key()
	if !ok {
		return nil
	}
	return storage.Read(s.db, key, []models.FavoriteEntry(nil))
}

// IsFavorited reports whether the product is in the user's favorites.
func (s *Store) IsFavorited(productID string) bool {
	return lo.ContainsBy(s.List(), func(e models.FavoriteEntry) bool {
		return e.ID == productID
	})
}

// Toggle adds the product if absent and removes it if present, reporting
// which branch ran: true means the product is now favorited. Guests always
// get false and nothing is written.
func (s *Store) Toggle(p models.Product) bool {
	key, ok := s.key()
	if !ok {
		return false
	}

	entries := storage.Read(s.db, key, []models.FavoriteEntry(nil))
	kept := lo.Filter(entries, func(e models.FavoriteEntry, _ int) bool {
		return e.ID != p.ID
	})
	if len(kept) < len(entries) {
		storage.Write(s.db, key, kept)
		return false
	}

	entries = append(entries, models.FavoriteEntry{Product: p, FavoritedAt: s.now()})
	storage.Write(s.db, key, entries)
	return true
}

// Remove drops the product from favorites. No-op for guests or unknown ids.
func (s *Store) Remove(productID string) {
	key, ok := s.key()
	if !ok {
		return
	}
	entries := storage.Read(s.db, key, []models.FavoriteEntry(nil))
	kept := lo.Filter(entries, func(e models.FavoriteEntry, _ int) bool {
		return e.ID != productID
	})
	if len(kept) == len(entries) {
		return
	}
	storage.Write(s.db, key, kept)
}

func (s *Store) key() (string, bool) {
	userID, ok := s.scope()
	if !ok {
		return "", false
	}
	return storage.FavoritesKey(userID), true
}
