package repository

import (
	"context"
	"sort"

	"roomatch/internal/domain/entity"
	"roomatch/internal/domain/repository"
	"roomatch/pkg/errors"
)

type memoryMessageRepository struct {
	store *MemoryStore
}

func NewMemoryMessageRepository(store *MemoryStore) repository.MessageRepository {
	return &memoryMessageRepository{store: store}
}

func (r *memoryMessageRepository) Append(ctx context.Context, message *entity.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	match, ok := r.store.matches[message.MatchID]
	if !ok {
		return errors.NotFound("Match", nil)
	}

	r.store.messages[message.ID] = *message

	if message.CreatedAt.After(match.LastMessageAt) {
		match.LastMessageAt = message.CreatedAt
		r.store.matches[match.ID] = match
	}
	return nil
}

func (r *memoryMessageRepository) ListByMatch(ctx context.Context, matchID string) ([]*entity.Message, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var messages []*entity.Message
	for _, message := range r.store.messages {
		if message.MatchID == matchID {
			m := message
			messages = append(messages, &m)
		}
	}

	sort.Slice(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	return messages, nil
}

func (r *memoryMessageRepository) MarkRead(ctx context.Context, matchID, messageID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	message, ok := r.store.messages[messageID]
	if !ok || message.MatchID != matchID {
		return errors.NotFound("Message", nil)
	}
	message.Read = true
	r.store.messages[messageID] = message
	return nil
}
