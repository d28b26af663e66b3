package repository

import (
	"context"

	"roomatch/internal/domain/entity"
)

type LikeRepository interface {
	// Record persists the (user, target) edge. If the edge already
	// exists the stored like is returned unchanged; recording is
	// idempotent, never an error.
	Record(ctx context.Context, userID, targetID string) (*entity.Like, error)

	// Exists reports whether the user has liked the target.
	Exists(ctx context.Context, userID, targetID string) (bool, error)

	// ListByUser returns all likes recorded by the user.
	ListByUser(ctx context.Context, userID string) ([]*entity.Like, error)

	// Remove deletes the edge and reports whether one existed.
	Remove(ctx context.Context, userID, targetID string) (bool, error)
}
