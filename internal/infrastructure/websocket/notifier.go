package websocket

import (
	"encoding/json"
	"time"

	"roomatch/internal/domain/entity"
	"roomatch/pkg/logger"
)

// Notifier bridges the match and message flows onto WebSocket
// delivery. Match events go directly to both users; message events go
// to the match's room plus both users, so a party who hasn't joined
// the room still sees the conversation move in their match list.
type Notifier struct {
	manager *Manager
}

func NewNotifier(manager *Manager) *Notifier {
	return &Notifier{manager: manager}
}

func (n *Notifier) MatchCreated(match *entity.Match, users []entity.UserInfo) {
	payload, err := json.Marshal(WSMessage{
		Type: MessageTypeMatch,
		Data: map[string]interface{}{
			"match":      match,
			"user_infos": users,
		},
		Timestamp: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		logger.Error("Failed to encode match event: %v", err)
		return
	}

	for _, userID := range match.Users {
		n.manager.SendToUser(userID, payload)
	}
}

func (n *Notifier) MessageCreated(message *entity.Message, sender entity.UserInfo) {
	payload, err := json.Marshal(WSMessage{
		Type: MessageTypeMessage,
		Data: map[string]interface{}{
			"message": message,
			"sender":  sender,
		},
		Timestamp: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		logger.Error("Failed to encode message event: %v", err)
		return
	}

	n.manager.SendToMatchRoom(message.MatchID, payload)
}
