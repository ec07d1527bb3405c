// Package storage is the persistence layer for the storefront state. It
// exposes a small key-value adapter over JSON payloads; every store owns its
// keys exclusively and goes through Read/Write rather than touching an
// adapter's encoding directly.
//
// Failure policy: reads degrade to the caller's default on a missing key or
// a corrupt payload, and writes are best-effort. Nothing in this package ever
// returns an error to a store — the in-memory state a store just computed
// stays authoritative for the rest of the page lifetime even if persisting
// it failed.
package storage

import "encoding/json"

// Well-known keys. Favorites and recently-viewed keys are derived per user,
// everything else is a single shared key per browser scope.
const (
	KeyAccounts = "accounts"
	KeySession  = "session"
	KeyCart     = "cart"
	KeyOrders   = "orders"
	KeyTheme    = "theme"

	favoritesPrefix = "favorites_"
	recentsPrefix   = "recents_"

	// GuestRecentsKey is the shared fallback for shoppers with no session.
	GuestRecentsKey = recentsPrefix + "guest"
)

// FavoritesKey returns the favorites key for one user.
func FavoritesKey(userID string) string { return favoritesPrefix + userID }

// RecentsKey returns the recently-viewed key for one user.
func RecentsKey(userID string) string { return recentsPrefix + userID }

// KeyScope resolves the storage scope for per-user stores: the active user id
// and whether there is a session at all. Injected so favorites/recents never
// depend on the session store directly.
type KeyScope func() (userID string, ok bool)

// Adapter is the raw key-value contract. Implementations must treat SetMulti
// as a single write: either every entry lands or none does.
type Adapter interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
	SetMulti(entries map[string]string)
}

// Read decodes the JSON payload under key into T. An absent key or a payload
// that fails to decode both yield def — corruption means "no data" here.
func Read[T any](a Adapter, key string, def T) T {
	raw, ok := a.Get(key)
	if !ok {
		return def
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return def
	}
	return out
}

// Write JSON-encodes v under key. Encoding or persistence failures are
// absorbed; the caller's state is already correct in memory.
func Write(a Adapter, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	a.Set(key, string(raw))
}

// WriteMulti encodes every value and hands the batch to the adapter as one
// write. Entries that fail to encode drop out of the batch.
func WriteMulti(a Adapter, values map[string]any) {
	entries := make(map[string]string, len(values))
	for key, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			continue
		}
		entries[key] = string(raw)
	}
	if len(entries) > 0 {
		a.SetMulti(entries)
	}
}
