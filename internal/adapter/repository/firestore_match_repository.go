package repository

import (
	"context"
	"time"

	"roomatch/internal/domain/entity"
	"roomatch/internal/domain/repository"
	"roomatch/pkg/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type firestoreMatchRepository struct {
	client *firestore.Client
}

func NewFirestoreMatchRepository(client *firestore.Client) repository.MatchRepository {
	return &firestoreMatchRepository{client: client}
}

func (r *firestoreMatchRepository) FindOrCreate(ctx context.Context, userA, userB, listingRef string) (*entity.Match, bool, error) {
	docRef := r.client.Collection("matches").Doc(entity.PairKey(userA, userB, listingRef))

	var match entity.Match
	var created bool

	// The pair key is the document ID, so concurrent calls for the
	// same pair contend on one document and the transaction decides a
	// single winner.
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		created = false

		doc, err := tx.Get(docRef)
		if err == nil {
			return doc.DataTo(&match)
		}
		if !IsNotFound(err) {
			return err
		}

		m, err := entity.NewMatch(userA, userB, listingRef, time.Now())
		if err != nil {
			return err
		}
		if err := tx.Create(docRef, m); err != nil {
			return err
		}
		match = *m
		created = true
		return nil
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, false, appErr
		}
		return nil, false, errors.Internal("Failed to find or create match", err)
	}

	return &match, created, nil
}

func (r *firestoreMatchRepository) FindByPair(ctx context.Context, userA, userB, listingRef string) (*entity.Match, error) {
	doc, err := r.client.Collection("matches").Doc(entity.PairKey(userA, userB, listingRef)).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Internal("Failed to get match", err)
	}

	var match entity.Match
	if err := doc.DataTo(&match); err != nil {
		return nil, errors.Internal("Failed to parse match data", err)
	}
	return &match, nil
}

func (r *firestoreMatchRepository) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	doc, err := r.client.Collection("matches").Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Match", err)
		}
		return nil, errors.Internal("Failed to get match", err)
	}

	var match entity.Match
	if err := doc.DataTo(&match); err != nil {
		return nil, errors.Internal("Failed to parse match data", err)
	}
	return &match, nil
}

func (r *firestoreMatchRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Match, error) {
	iter := r.client.Collection("matches").
		Where("users", "array-contains", userID).
		OrderBy("lastMessageAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var matches []*entity.Match
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list matches", err)
		}

		var match entity.Match
		if err := doc.DataTo(&match); err != nil {
			continue
		}
		matches = append(matches, &match)
	}

	return matches, nil
}
