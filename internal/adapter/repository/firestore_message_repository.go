package repository

import (
	"context"

	"roomatch/internal/domain/entity"
	"roomatch/internal/domain/repository"
	"roomatch/pkg/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{client: client}
}

func (r *firestoreMessageRepository) Append(ctx context.Context, message *entity.Message) error {
	matchRef := r.client.Collection("matches").Doc(message.MatchID)
	messageRef := r.client.Collection("messages").Doc(message.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(matchRef)
		if err != nil {
			return err
		}

		var match entity.Match
		if err := doc.DataTo(&match); err != nil {
			return err
		}

		if err := tx.Create(messageRef, message); err != nil {
			return err
		}

		// lastMessageAt only ever advances; a delayed retry must not
		// drag the ordering key backwards.
		if message.CreatedAt.After(match.LastMessageAt) {
			return tx.Update(matchRef, []firestore.Update{
				{Path: "lastMessageAt", Value: message.CreatedAt},
			})
		}
		return nil
	})
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Match", err)
		}
		return errors.Internal("Failed to append message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) ListByMatch(ctx context.Context, matchID string) ([]*entity.Message, error) {
	iter := r.client.Collection("messages").
		Where("matchId", "==", matchID).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			continue
		}
		message.ID = doc.Ref.ID
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *firestoreMessageRepository) MarkRead(ctx context.Context, matchID, messageID string) error {
	docRef := r.client.Collection("messages").Doc(messageID)

	doc, err := docRef.Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Message", err)
		}
		return errors.Internal("Failed to get message", err)
	}

	var message entity.Message
	if err := doc.DataTo(&message); err != nil {
		return errors.Internal("Failed to parse message data", err)
	}
	if message.MatchID != matchID {
		return errors.NotFound("Message", nil)
	}

	if _, err := docRef.Update(ctx, []firestore.Update{{Path: "read", Value: true}}); err != nil {
		return errors.Internal("Failed to mark message read", err)
	}
	return nil
}
