package testutil

import (
	"context"
	"sync"

	"github.com/bisagn/formalgen/internal/domain/document"
	ierr "github.com/bisagn/formalgen/internal/errors"
)

// InMemoryDocumentLogStore is an in-memory implementation of the
// document.LogRepository interface
type InMemoryDocumentLogStore struct {
	mu      sync.Mutex
	entries []*document.LogEntry

	// FailAppend forces Append to return an error, for exercising the
	// fire-and-forget logging path.
	FailAppend bool
}

// NewInMemoryDocumentLogStore creates a new instance of InMemoryDocumentLogStore
func NewInMemoryDocumentLogStore() *InMemoryDocumentLogStore {
	return &InMemoryDocumentLogStore{}
}

// Append stores a log entry in the in-memory store
func (s *InMemoryDocumentLogStore) Append(ctx context.Context, entry *document.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailAppend {
		return ierr.NewError("log store unavailable").
			WithHint("Failed to record the generated document").
			Mark(ierr.ErrDatabase)
	}

	s.entries = append(s.entries, entry)
	return nil
}

// List returns matching entries, newest first
func (s *InMemoryDocumentLogStore) List(ctx context.Context, filter document.LogFilter) ([]*document.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*document.LogEntry
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if filter.DocumentType != "" && e.DocumentType != filter.DocumentType {
			continue
		}
		if filter.Language != "" && e.Language != filter.Language {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

// Entries returns a snapshot of all stored entries in insertion order
func (s *InMemoryDocumentLogStore) Entries() []*document.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*document.LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear removes all entries from the in-memory store
func (s *InMemoryDocumentLogStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
