package repository

import (
	"context"
	"sort"
	"time"

	"roomatch/internal/domain/entity"
	"roomatch/internal/domain/repository"
	"roomatch/pkg/errors"
)

type memoryMatchRepository struct {
	store *MemoryStore
}

func NewMemoryMatchRepository(store *MemoryStore) repository.MatchRepository {
	return &memoryMatchRepository{store: store}
}

func (r *memoryMatchRepository) FindOrCreate(ctx context.Context, userA, userB, listingRef string) (*entity.Match, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := entity.PairKey(userA, userB, listingRef)
	if existing, ok := r.store.matches[key]; ok {
		match := existing
		return &match, false, nil
	}

	m, err := entity.NewMatch(userA, userB, listingRef, time.Now())
	if err != nil {
		return nil, false, errors.Internal("Failed to create match", err)
	}
	r.store.matches[key] = *m

	match := *m
	return &match, true, nil
}

func (r *memoryMatchRepository) FindByPair(ctx context.Context, userA, userB, listingRef string) (*entity.Match, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	match, ok := r.store.matches[entity.PairKey(userA, userB, listingRef)]
	if !ok {
		return nil, nil
	}
	m := match
	return &m, nil
}

func (r *memoryMatchRepository) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	match, ok := r.store.matches[id]
	if !ok {
		return nil, errors.NotFound("Match", nil)
	}
	m := match
	return &m, nil
}

func (r *memoryMatchRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Match, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matches []*entity.Match
	for _, match := range r.store.matches {
		if match.HasUser(userID) {
			m := match
			matches = append(matches, &m)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].LastMessageAt.Equal(matches[j].LastMessageAt) {
			return matches[i].ID < matches[j].ID
		}
		return matches[i].LastMessageAt.After(matches[j].LastMessageAt)
	})

	return matches, nil
}
