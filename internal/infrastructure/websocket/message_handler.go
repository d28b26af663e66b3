package websocket

import (
	"encoding/json"
	"time"

	"roomatch/pkg/logger"
)

// WebSocket frame types
const (
	MessageTypePing       = "ping"
	MessageTypePong       = "pong"
	MessageTypeJoinMatch  = "join_match"
	MessageTypeLeaveMatch = "leave_match"
	MessageTypeTyping     = "typing"
	MessageTypeMatch      = "match"
	MessageTypeMessage    = "message"
	MessageTypeError      = "error"
)

type WSMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type JoinMatchData struct {
	MatchID string `json:"match_id"`
}

type TypingData struct {
	MatchID string `json:"match_id"`
	UserID  string `json:"user_id"`
	Typing  bool   `json:"typing"`
}

type ErrorData struct {
	Message string `json:"message"`
}

// HandleClientMessage dispatches one incoming frame.
func (m *Manager) HandleClientMessage(client *Client, messageBytes []byte) {
	var wsMessage WSMessage
	if err := json.Unmarshal(messageBytes, &wsMessage); err != nil {
		logger.Warn("Bad WebSocket frame from %s: %v", client.UserID, err)
		m.sendErrorToClient(client, "Invalid message format")
		return
	}

	switch wsMessage.Type {
	case MessageTypePing:
		m.sendToClient(client, WSMessage{
			Type:      MessageTypePong,
			Timestamp: time.Now().Format(time.RFC3339),
		})

	case MessageTypeJoinMatch:
		var data JoinMatchData
		if !decodeData(wsMessage.Data, &data) || data.MatchID == "" {
			m.sendErrorToClient(client, "join_match requires match_id")
			return
		}
		m.JoinMatchRoom(data.MatchID, client)

	case MessageTypeLeaveMatch:
		var data JoinMatchData
		if !decodeData(wsMessage.Data, &data) || data.MatchID == "" {
			m.sendErrorToClient(client, "leave_match requires match_id")
			return
		}
		m.LeaveMatchRoom(data.MatchID, client)

	case MessageTypeTyping:
		var data TypingData
		if !decodeData(wsMessage.Data, &data) || data.MatchID == "" {
			return
		}
		data.UserID = client.UserID
		m.broadcastToRoom(data.MatchID, WSMessage{
			Type:      MessageTypeTyping,
			Data:      data,
			Timestamp: time.Now().Format(time.RFC3339),
		})

	default:
		logger.Debug("Ignoring WebSocket frame type %q from %s", wsMessage.Type, client.UserID)
	}
}

func decodeData(raw interface{}, out interface{}) bool {
	bytes, err := json.Marshal(raw)
	if err != nil {
		return false
	}
	return json.Unmarshal(bytes, out) == nil
}

func (m *Manager) sendToClient(client *Client, message WSMessage) {
	payload, err := json.Marshal(message)
	if err != nil {
		return
	}
	select {
	case client.Send <- payload:
	default:
	}
}

func (m *Manager) sendErrorToClient(client *Client, text string) {
	m.sendToClient(client, WSMessage{
		Type:      MessageTypeError,
		Data:      ErrorData{Message: text},
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (m *Manager) broadcastToRoom(matchID string, message WSMessage) {
	payload, err := json.Marshal(message)
	if err != nil {
		return
	}
	m.SendToMatchRoom(matchID, payload)
}
