// Package theme holds the UI color preference as an explicit observable
// object: constructed once at startup, subscribed to by any interested
// consumer, never ambient package state.
package theme

import (
	"sync"

	"github.com/MRxhaqq/Luxury-Hijabi/models"
	"github.com/MRxhaqq/Luxury-Hijabi/storage"
)

// OSPreference reports the operating system's color preference, if it has
// one. Injected so the resolution order stays testable.
type OSPreference func() (models.Theme, bool)

// Store resolves and broadcasts the active theme. Resolution order at
// construction: persisted choice > OS preference > light.
type Store struct {
	db     storage.Adapter
	osPref OSPreference

	mu       sync.Mutex
	mode     models.Theme
	explicit bool
	subs     map[int]func(models.Theme)
	nextSub  int
}

// New builds the theme store, resolving the initial mode.
func New(db storage.Adapter, osPref OSPreference) *Store {
	s := &Store{
		db:     db,
		osPref: osPref,
		mode:   models.ThemeLight,
		subs:   map[int]func(models.Theme){},
	}
	if stored := storage.Read(db, storage.KeyTheme, models.Theme("")); stored.Valid() {
		s.mode = stored
		s.explicit = true
	} else if osPref != nil {
		if mode, ok := osPref(); ok && mode.Valid() {
			s.mode = mode
		}
	}
	return s
}

// Mode returns the active theme.
func (s *Store) Mode() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Set records an explicit choice: persisted immediately and broadcast
// synchronously to every subscriber.
func (s *Store) Set(mode models.Theme) {
	if !mode.Valid() {
		return
	}
	s.mu.Lock()
	s.mode = mode
	s.explicit = true
	subs := s.snapshot()
	s.mu.Unlock()

	storage.Write(s.db, storage.KeyTheme, mode)
	for _, fn := range subs {
		fn(mode)
	}
}

// Toggle flips between light and dark and returns the new mode.
func (s *Store) Toggle() models.Theme {
	next := models.ThemeDark
	if s.Mode() == models.ThemeDark {
		next = models.ThemeLight
	}
	s.Set(next)
	return next
}

// Subscribe registers a callback for theme changes and returns its
// unsubscribe func. Callbacks run synchronously on the mutating call.
func (s *Store) Subscribe(fn func(models.Theme)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// SystemChanged follows an OS-level preference flip. Honored only while no
// explicit choice has been persisted; it does not itself persist anything.
func (s *Store) SystemChanged(mode models.Theme) {
	if !mode.Valid() {
		return
	}
	s.mu.Lock()
	if s.explicit || s.mode == mode {
		s.mu.Unlock()
		return
	}
	s.mode = mode
	subs := s.snapshot()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(mode)
	}
}

// snapshot copies the subscriber list so callbacks run outside the lock.
// Callers must hold mu.
func (s *Store) snapshot() []func(models.Theme) {
	out := make([]func(models.Theme), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
