package recent

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRxhaqq/Luxury-Hijabi/models"
	"github.com/MRxhaqq/Luxury-Hijabi/storage"
)

func signedIn(userID string) storage.KeyScope {
	return func() (string, bool) { return userID, true }
}

func guest() (string, bool) { return "", false }

func product(id string) models.Product {
	return models.Product{ID: id, Name: "Hijab " + id, Price: 15}
}

// TestAdd_DedupesAndCaps verifies that the same product nine times plus
// seven distinct products leaves exactly eight entries with the most
// recently added first.
func TestAdd_DedupesAndCaps(t *testing.T) {
	t.Parallel()

	s := New(storage.NewMemory(), signedIn("u1"))
	for i := 0; i < 9; i++ {
		s.Add(product("repeat"))
	}
	for i := 0; i < 7; i++ {
		s.Add(product(fmt.Sprintf("p%d", i)))
	}

	entries := s.List()
	require.Len(t, entries, MaxEntries)
	assert.Equal(t, "p6", entries[0].ID)
	assert.Equal(t, "repeat", entries[len(entries)-1].ID)
}

// TestAdd_MovesExistingToFront verifies a re-view relocates, not duplicates.
func TestAdd_MovesExistingToFront(t *testing.T) {
	t.Parallel()

	s := New(storage.NewMemory(), signedIn("u1"))
	s.Add(product("p1"))
	s.Add(product("p2"))
	s.Add(product("p1"))

	entries := s.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "p1", entries[0].ID)
	assert.Equal(t, "p2", entries[1].ID)
}

// TestGuest_SharedKey verifies guests still get a history on the shared key.
func TestGuest_SharedKey(t *testing.T) {
	t.Parallel()

	db := storage.NewMemory()
	s := New(db, guest)
	s.Add(product("p1"))

	entries := s.List()
	require.Len(t, entries, 1)

	_, ok := db.Get(storage.GuestRecentsKey)
	assert.True(t, ok)
}

// TestScoping_PerUser verifies per-user histories stay separate.
func TestScoping_PerUser(t *testing.T) {
	t.Parallel()

	db := storage.NewMemory()
	alice := New(db, signedIn("alice"))
	bella := New(db, signedIn("bella"))

	alice.Add(product("p1"))

	assert.Len(t, alice.List(), 1)
	assert.Empty(t, bella.List())
}
