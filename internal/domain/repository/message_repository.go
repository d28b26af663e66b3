package repository

import (
	"context"

	"roomatch/internal/domain/entity"
)

type MessageRepository interface {
	// Append stores the message and advances the match's LastMessageAt
	// to the message timestamp as one logical unit: either both writes
	// land or neither does. LastMessageAt never moves backwards.
	Append(ctx context.Context, message *entity.Message) error

	// ListByMatch returns the match's messages ordered by ascending
	// creation time.
	ListByMatch(ctx context.Context, matchID string) ([]*entity.Message, error)

	// MarkRead flips the read flag on a message.
	MarkRead(ctx context.Context, matchID, messageID string) error
}
