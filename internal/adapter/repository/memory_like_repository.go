package repository

import (
	"context"
	"sort"
	"time"

	"roomatch/internal/domain/entity"
	"roomatch/internal/domain/repository"
)

type memoryLikeRepository struct {
	store *MemoryStore
}

func NewMemoryLikeRepository(store *MemoryStore) repository.LikeRepository {
	return &memoryLikeRepository{store: store}
}

func (r *memoryLikeRepository) Record(ctx context.Context, userID, targetID string) (*entity.Like, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := likeDocID(userID, targetID)
	if existing, ok := r.store.likes[id]; ok {
		like := existing
		return &like, nil
	}

	like := entity.Like{
		ID:        id,
		UserID:    userID,
		TargetID:  targetID,
		CreatedAt: time.Now(),
	}
	r.store.likes[id] = like
	return &like, nil
}

func (r *memoryLikeRepository) Exists(ctx context.Context, userID, targetID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	_, ok := r.store.likes[likeDocID(userID, targetID)]
	return ok, nil
}

func (r *memoryLikeRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Like, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var likes []*entity.Like
	for _, like := range r.store.likes {
		if like.UserID == userID {
			l := like
			likes = append(likes, &l)
		}
	}

	sort.Slice(likes, func(i, j int) bool {
		if likes[i].CreatedAt.Equal(likes[j].CreatedAt) {
			return likes[i].ID < likes[j].ID
		}
		return likes[i].CreatedAt.Before(likes[j].CreatedAt)
	})

	return likes, nil
}

func (r *memoryLikeRepository) Remove(ctx context.Context, userID, targetID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := likeDocID(userID, targetID)
	if _, ok := r.store.likes[id]; !ok {
		return false, nil
	}
	delete(r.store.likes, id)
	return true, nil
}
