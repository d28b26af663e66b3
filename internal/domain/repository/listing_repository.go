package repository

import (
	"context"

	"roomatch/internal/domain/entity"
)

// ListingFilter narrows ListingRepository.List. Zero values mean "no
// constraint".
type ListingFilter struct {
	ActiveOnly     bool
	OwnerID        string
	ExcludeOwnerID string
	ExcludeIDs     []string
}

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id string) error

	// List returns listings matching the filter, newest first.
	List(ctx context.Context, filter ListingFilter) ([]*entity.Listing, error)

	// ListActiveByOwner returns the owner's active listings ordered by
	// ascending creation time, ties broken by ID. The match engine's
	// first-hit rule depends on this order being deterministic.
	ListActiveByOwner(ctx context.Context, ownerID string) ([]*entity.Listing, error)
}
