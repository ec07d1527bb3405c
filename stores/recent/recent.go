// Package recent tracks the last products a shopper looked at, newest first.
// Unlike favorites it works for guests too, on a shared guest key.
package recent

import (
	"time"

	"github.com/samber/lo"

	"github.com/MRxhaqq/Luxury-Hijabi/models"
	"github.com/MRxhaqq/Luxury-Hijabi/storage"
)

// MaxEntries caps the list; older views fall off the end.
const MaxEntries = 8

// Store reads and mutates one recently-viewed key per user, or the guest key.
type Store struct {
	db    storage.Adapter
	scope storage.KeyScope
	now   func() time.Time
}

// New wires a recently-viewed store. scope resolves the signed-in user; for
// guests the store falls back to the shared guest key.
func New(db storage.Adapter, scope storage.KeyScope) *Store {
	return &Store{db: db, scope: scope, now: time.Now}
}

// List returns up to MaxEntries entries, most recent first.
func (s *Store) List() []models.RecentlyViewedEntry {
	return storage.Read(s.db, s.key(), []models.RecentlyViewedEntry(nil))
}

// Add records a product view at the front of the list. A product already in
// the list moves to the front instead of duplicating; the list then truncates
// to MaxEntries.
func (s *Store) Add(p models.Product) {
	entries := s.List()
	entries = lo.Filter(entries, func(e models.RecentlyViewedEntry, _ int) bool {
		return e.ID != p.ID
	})
	entries = append([]models.RecentlyViewedEntry{{Product: p, ViewedAt: s.now()}}, entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	storage.Write(s.db, s.key(), entries)
}

func (s *Store) key() string {
	userID, ok := s.scope()
	if !ok {
		return storage.GuestRecentsKey
	}
	return storage.RecentsKey(userID)
}
