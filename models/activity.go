package models

import "time"

// FavoriteEntry is a product a signed-in shopper has hearted. Guests cannot
// have favorites at all.
type FavoriteEntry struct {
	Product
	FavoritedAt time.Time `json:"favorited_at"`
}

// RecentlyViewedEntry is a product the shopper opened, newest first. The
// list is capped; re-viewing moves an entry back to the front.
type RecentlyViewedEntry struct {
	Product
	ViewedAt time.Time `json:"viewed_at"`
}
