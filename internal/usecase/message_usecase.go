package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"roomatch/internal/domain/entity"
	"roomatch/internal/domain/repository"
	"roomatch/internal/infrastructure/ratelimit"
	"roomatch/pkg/errors"
	"roomatch/pkg/logger"
)

type MessageUseCase struct {
	matchRepo   repository.MatchRepository
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	notifier    Notifier
	rateLimiter *ratelimit.RateLimiter
}

func NewMessageUseCase(
	matchRepo repository.MatchRepository,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
) *MessageUseCase {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &MessageUseCase{
		matchRepo:   matchRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		rateLimiter: ratelimit.NewRateLimiter(),
	}
}

// PostMessage appends a message to a match's thread. Only the match's
// two users may write; validation runs before any mutation, and the
// append plus the LastMessageAt bump land together or not at all.
func (uc *MessageUseCase) PostMessage(ctx context.Context, matchID, senderID, content string) (*entity.MessageView, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasUser(senderID) {
		logger.Warn("User %s attempted to post into match %s they are not part of", senderID, matchID)
		return nil, errors.NotAuthorized("Not authorized to send messages in this match", nil)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.EmptyContent("Message content is required")
	}

	if allowed, _ := uc.rateLimiter.Allow(senderID, "post_message"); !allowed {
		return nil, errors.TooManyRequests("Sending messages too quickly, slow down")
	}

	message := &entity.Message{
		ID:        uuid.New().String(),
		MatchID:   matchID,
		SenderID:  senderID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := uc.messageRepo.Append(ctx, message); err != nil {
		return nil, err
	}

	view := &entity.MessageView{Message: message}
	if sender, err := uc.userRepo.GetByID(ctx, senderID); err == nil && sender != nil {
		info := sender.Info()
		view.Sender = &info
		uc.notifier.MessageCreated(message, info)
	}

	return view, nil
}

// ListMessages returns the thread ascending by creation time,
// restricted to the match's two users.
func (uc *MessageUseCase) ListMessages(ctx context.Context, matchID, requesterID string) ([]*entity.MessageView, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasUser(requesterID) {
		return nil, errors.NotAuthorized("Not authorized to view this match", nil)
	}

	messages, err := uc.messageRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	senders := make(map[string]*entity.UserInfo)
	views := make([]*entity.MessageView, 0, len(messages))
	for _, message := range messages {
		view := &entity.MessageView{Message: message}
		info, ok := senders[message.SenderID]
		if !ok {
			if sender, err := uc.userRepo.GetByID(ctx, message.SenderID); err == nil && sender != nil {
				i := sender.Info()
				info = &i
			}
			senders[message.SenderID] = info
		}
		view.Sender = info
		views = append(views, view)
	}

	return views, nil
}

// MarkMessageRead flips the read flag, restricted to the match's
// users.
func (uc *MessageUseCase) MarkMessageRead(ctx context.Context, matchID, messageID, requesterID string) error {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if !match.HasUser(requesterID) {
		return errors.NotAuthorized("Not authorized to view this match", nil)
	}
	return uc.messageRepo.MarkRead(ctx, matchID, messageID)
}
