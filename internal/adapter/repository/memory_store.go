package repository

import (
	"sync"

	"roomatch/internal/domain/entity"
)

// MemoryStore backs the in-memory repositories. All five repositories
// share one store and one mutex, which is what makes cross-collection
// operations (match find-or-create, message append) atomic without a
// database.
//
// It serves two jobs: the STORE_BACKEND=memory mode for local
// development, and the repository fake in tests.
type MemoryStore struct {
	mu sync.Mutex

	users    map[string]entity.User
	listings map[string]entity.Listing
	likes    map[string]entity.Like    // keyed userID_targetID
	matches  map[string]entity.Match   // keyed by pair key
	messages map[string]entity.Message // keyed by message ID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]entity.User),
		listings: make(map[string]entity.Listing),
		likes:    make(map[string]entity.Like),
		matches:  make(map[string]entity.Match),
		messages: make(map[string]entity.Message),
	}
}
