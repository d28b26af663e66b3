package usecase

import (
	"roomatch/internal/domain/entity"
)

// Notifier is the output port for real-time events. The match and
// message flows emit through it after their writes commit; delivery is
// best effort and a failing notifier must never fail the write.
type Notifier interface {
	MatchCreated(match *entity.Match, users []entity.UserInfo)
	MessageCreated(message *entity.Message, sender entity.UserInfo)
}

// NoopNotifier discards events. Used in tests and as a fallback when
// no transport is wired.
type NoopNotifier struct{}

func (NoopNotifier) MatchCreated(*entity.Match, []entity.UserInfo)    {}
func (NoopNotifier) MessageCreated(*entity.Message, entity.UserInfo) {}
