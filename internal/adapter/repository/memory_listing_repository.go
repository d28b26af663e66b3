package repository

import (
	"context"
	"sort"

	"roomatch/internal/domain/entity"
	"roomatch/internal/domain/repository"
	"roomatch/pkg/errors"
)

type memoryListingRepository struct {
	store *MemoryStore
}

func NewMemoryListingRepository(store *MemoryStore) repository.ListingRepository {
	return &memoryListingRepository{store: store}
}

func (r *memoryListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.listings[listing.ID] = *listing
	return nil
}

func (r *memoryListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	listing, ok := r.store.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	return &listing, nil
}

func (r *memoryListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.listings[listing.ID]; !ok {
		return errors.NotFound("Listing", nil)
	}
	r.store.listings[listing.ID] = *listing
	return nil
}

func (r *memoryListingRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.listings[id]; !ok {
		return errors.NotFound("Listing", nil)
	}
	delete(r.store.listings, id)
	return nil
}

func (r *memoryListingRepository) List(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	excluded := make(map[string]bool, len(filter.ExcludeIDs))
	for _, id := range filter.ExcludeIDs {
		excluded[id] = true
	}

	var listings []*entity.Listing
	for _, listing := range r.store.listings {
		if filter.ActiveOnly && !listing.IsActive {
			continue
		}
		if filter.OwnerID != "" && listing.OwnerID != filter.OwnerID {
			continue
		}
		if filter.ExcludeOwnerID != "" && listing.OwnerID == filter.ExcludeOwnerID {
			continue
		}
		if excluded[listing.ID] {
			continue
		}
		l := listing
		listings = append(listings, &l)
	}

	sort.Slice(listings, func(i, j int) bool {
		if listings[i].CreatedAt.Equal(listings[j].CreatedAt) {
			return listings[i].ID > listings[j].ID
		}
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})

	return listings, nil
}

func (r *memoryListingRepository) ListActiveByOwner(ctx context.Context, ownerID string) ([]*entity.Listing, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var listings []*entity.Listing
	for _, listing := range r.store.listings {
		if listing.OwnerID != ownerID || !listing.IsActive {
			continue
		}
		l := listing
		listings = append(listings, &l)
	}

	sort.Slice(listings, func(i, j int) bool {
		if listings[i].CreatedAt.Equal(listings[j].CreatedAt) {
			return listings[i].ID < listings[j].ID
		}
		return listings[i].CreatedAt.Before(listings[j].CreatedAt)
	})

	return listings, nil
}
