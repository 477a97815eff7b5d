// Package chat holds the conversation log and the dispatch controller
// that drives the send/receive lifecycle.
package chat

import (
	"sync"

	"github.com/diogo/procchat/internal/models"
)

// Log is the append-only conversation history. Turns are kept in creation
// order and are never mutated or removed. Writes are serialized by the
// controller; the mutex is still needed because the UI reads snapshots
// from its own goroutine.
type Log struct {
	mu    sync.RWMutex
	turns []models.Turn
}

// NewLog creates an empty conversation log.
func NewLog() *Log {
	return &Log{}
}

// Append adds a turn to the end of the log. It never fails.
func (l *Log) Append(turn models.Turn) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.turns = append(l.turns, turn)
}

// Snapshot returns a copy of the full history in creation order.
func (l *Log) Snapshot() []models.Turn {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Len returns the number of turns in the log.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.turns)
}
