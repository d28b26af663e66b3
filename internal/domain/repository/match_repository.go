package repository

import (
	"context"

	"roomatch/internal/domain/entity"
)

type MatchRepository interface {
	// FindOrCreate resolves the (pair, listingRef) combination to its
	// single match, creating it if absent. Implementations must be
	// race-safe: two concurrent calls for the same key return the same
	// match and leave exactly one record behind. The second return
	// value reports whether a new match was created by this call.
	FindOrCreate(ctx context.Context, userA, userB, listingRef string) (*entity.Match, bool, error)

	// FindByPair returns the match for the normalized pair and listing
	// reference, or nil when none exists.
	FindByPair(ctx context.Context, userA, userB, listingRef string) (*entity.Match, error)

	GetByID(ctx context.Context, id string) (*entity.Match, error)

	// ListByUser returns the user's matches ordered by most recent
	// LastMessageAt first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Match, error)
}
