package repository

import (
	"context"
	"sort"

	"roomatch/internal/domain/entity"
	"roomatch/internal/domain/repository"
	"roomatch/pkg/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{client: client}
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	_, err := r.client.Collection("listings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	doc, err := r.client.Collection("listings").Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	var listing entity.Listing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}
	listing.ID = doc.Ref.ID

	return &listing, nil
}

func (r *firestoreListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	_, err := r.client.Collection("listings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("listings").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) List(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	query := r.client.Collection("listings").Query
	if filter.ActiveOnly {
		query = query.Where("isActive", "==", true)
	}
	if filter.OwnerID != "" {
		query = query.Where("ownerId", "==", filter.OwnerID)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	excluded := make(map[string]bool, len(filter.ExcludeIDs))
	for _, id := range filter.ExcludeIDs {
		excluded[id] = true
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var listings []*entity.Listing
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list listings", err)
		}

		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			continue
		}
		listing.ID = doc.Ref.ID

		if filter.ExcludeOwnerID != "" && listing.OwnerID == filter.ExcludeOwnerID {
			continue
		}
		if excluded[listing.ID] {
			continue
		}
		listings = append(listings, &listing)
	}

	return listings, nil
}

func (r *firestoreListingRepository) ListActiveByOwner(ctx context.Context, ownerID string) ([]*entity.Listing, error) {
	iter := r.client.Collection("listings").
		Where("ownerId", "==", ownerID).
		Where("isActive", "==", true).
		Documents(ctx)
	defer iter.Stop()

	var listings []*entity.Listing
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list owner listings", err)
		}

		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			continue
		}
		listing.ID = doc.Ref.ID
		listings = append(listings, &listing)
	}

	// Ordered in code rather than by the query so no composite index
	// is needed; callers depend on this order being stable.
	sort.Slice(listings, func(i, j int) bool {
		if listings[i].CreatedAt.Equal(listings[j].CreatedAt) {
			return listings[i].ID < listings[j].ID
		}
		return listings[i].CreatedAt.Before(listings[j].CreatedAt)
	})

	return listings, nil
}
