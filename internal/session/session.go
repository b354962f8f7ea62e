// Package session tracks a player's persistent progress (level reached,
// coin balance, best score) across runs. Reward policy lives here, not
// in the game core: the core reports events, the session turns them
// into coins and progress.
package session

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/bubblepop/internal/core"
)

// Record is the persisted shape of a player's progress.
type Record struct {
	Player    string
	Level     int
	Coins     int
	BestScore int
}

// ProgressStore abstracts progress persistence so the session does not
// depend on the storage package. Load returns nil when the player has
// no saved progress.
type ProgressStore interface {
	Load(player string) (*Record, error)
	Save(rec Record) error
}

// Session is a live progress tracker for one player. Safe for
// concurrent use; the SSH server shares screens between goroutines.
type Session struct {
	store ProgressStore

	mu  sync.Mutex
	rec Record
}

// New loads the player's saved progress from the store, or starts fresh
// at level 1. A nil store yields a purely in-memory session.
func New(player string, store ProgressStore) (*Session, error) {
	s := &Session{
		store: store,
		rec:   Record{Player: player, Level: 1},
	}

	if store != nil {
		saved, err := store.Load(player)
		if err != nil {
			return nil, fmt.Errorf("session: cannot load progress for %s: %w", player, err)
		}
		if saved != nil {
			s.rec = *saved
		}
	}

	return s, nil
}

// Apply folds one tick's game events into the session. Each popped
// bubble earns coinsPerBubble coins; a cleared level advances the
// persistent level marker.
func (s *Session) Apply(events []core.Event, coinsPerBubble int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ev := range events {
		switch ev.Kind {
		case core.EventMatch:
			s.rec.Coins += ev.Value * coinsPerBubble
		case core.EventLevelCleared:
			if ev.Value+1 > s.rec.Level {
				s.rec.Level = ev.Value + 1
			}
		}
	}
}

// RecordScore updates the best score if the run beat it.
func (s *Session) RecordScore(score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score > s.rec.BestScore {
		s.rec.BestScore = score
	}
}

// SpendCoins deducts coins if the balance covers the cost.
// Returns false without changing the balance otherwise.
func (s *Session) SpendCoins(cost int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cost < 0 || s.rec.Coins < cost {
		return false
	}
	s.rec.Coins -= cost
	return true
}

// Coins returns the current coin balance.
func (s *Session) Coins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Coins
}

// Level returns the highest level the player has reached.
func (s *Session) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Level
}

// BestScore returns the player's best run score.
func (s *Session) BestScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.BestScore
}

// Flush persists the current progress. No-op without a store.
func (s *Session) Flush() error {
	s.mu.Lock()
	rec := s.rec
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	if err := s.store.Save(rec); err != nil {
		return fmt.Errorf("session: cannot save progress for %s: %w", rec.Player, err)
	}
	return nil
}
