package repository

import (
	"context"
	"fmt"
	"time"

	"roomatch/internal/domain/entity"
	"roomatch/internal/domain/repository"
	"roomatch/pkg/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type firestoreLikeRepository struct {
	client *firestore.Client
}

func NewFirestoreLikeRepository(client *firestore.Client) repository.LikeRepository {
	return &firestoreLikeRepository{client: client}
}

func likeDocID(userID, targetID string) string {
	return fmt.Sprintf("%s_%s", userID, targetID)
}

func (r *firestoreLikeRepository) Record(ctx context.Context, userID, targetID string) (*entity.Like, error) {
	docRef := r.client.Collection("likes").Doc(likeDocID(userID, targetID))

	like := entity.Like{
		ID:        docRef.ID,
		UserID:    userID,
		TargetID:  targetID,
		CreatedAt: time.Now(),
	}

	// The document ID is the uniqueness constraint: Create fails with
	// AlreadyExists if the edge was recorded before, in which case the
	// stored like wins.
	_, err := docRef.Create(ctx, like)
	if err != nil {
		if !IsAlreadyExists(err) {
			return nil, errors.Internal("Failed to record like", err)
		}
		doc, err := docRef.Get(ctx)
		if err != nil {
			return nil, errors.Internal("Failed to load existing like", err)
		}
		if err := doc.DataTo(&like); err != nil {
			return nil, errors.Internal("Failed to parse like data", err)
		}
		like.ID = doc.Ref.ID
	}

	return &like, nil
}

func (r *firestoreLikeRepository) Exists(ctx context.Context, userID, targetID string) (bool, error) {
	doc, err := r.client.Collection("likes").Doc(likeDocID(userID, targetID)).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, errors.Internal("Failed to check like", err)
	}
	return doc.Exists(), nil
}

func (r *firestoreLikeRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Like, error) {
	iter := r.client.Collection("likes").Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	var likes []*entity.Like
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list likes", err)
		}

		var like entity.Like
		if err := doc.DataTo(&like); err != nil {
			continue
		}
		like.ID = doc.Ref.ID
		likes = append(likes, &like)
	}

	return likes, nil
}

func (r *firestoreLikeRepository) Remove(ctx context.Context, userID, targetID string) (bool, error) {
	docRef := r.client.Collection("likes").Doc(likeDocID(userID, targetID))

	doc, err := docRef.Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, errors.Internal("Failed to check like", err)
	}
	if !doc.Exists() {
		return false, nil
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return false, errors.Internal("Failed to remove like", err)
	}
	return true, nil
}
