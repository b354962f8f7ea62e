package main

import (
	"fmt"
	"os"

	"github.com/vovakirdan/bubblepop/internal/platform/tui"
	"github.com/vovakirdan/bubblepop/internal/session"
	"github.com/vovakirdan/bubblepop/internal/storage"
)

// localSession builds a progress session for the local player. Progress
// persists in the runs database when available, otherwise it lives only
// for the duration of the process.
func localSession(store *storage.Store) *session.Session {
	player := os.Getenv("USER")
	if player == "" {
		player = "local"
	}

	sess, err := session.New(player, tui.NewProgressStore(store))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load progress: %v\n", err)
		sess, _ = session.New(player, session.NewMemoryStore())
	}
	return sess
}
