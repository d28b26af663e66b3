package websocket

import (
	"context"
	"sync"

	"roomatch/pkg/logger"

	"github.com/gorilla/websocket"
)

// Client is one authenticated WebSocket connection.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Manager tracks connected clients and match rooms. A room carries the
// live conversation of one match; clients join and leave rooms with
// join_match / leave_match frames.
type Manager struct {
	clients    map[string]*Client
	rooms      map[string]map[string]*Client // matchID -> userID -> client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		rooms:      make(map[string]map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.UserID] = client
				m.mutex.Unlock()
				logger.Debug("Client registered: %s", client.UserID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.UserID]; ok {
					delete(m.clients, client.UserID)
					for matchID, room := range m.rooms {
						delete(room, client.UserID)
						if len(room) == 0 {
							delete(m.rooms, matchID)
						}
					}
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Debug("Client unregistered: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// JoinMatchRoom subscribes the client to a match's live events.
func (m *Manager) JoinMatchRoom(matchID string, client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	room, ok := m.rooms[matchID]
	if !ok {
		room = make(map[string]*Client)
		m.rooms[matchID] = room
	}
	room[client.UserID] = client
}

// LeaveMatchRoom unsubscribes the client from a match's live events.
func (m *Manager) LeaveMatchRoom(matchID string, client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	room, ok := m.rooms[matchID]
	if !ok {
		return
	}
	delete(room, client.UserID)
	if len(room) == 0 {
		delete(m.rooms, matchID)
	}
}

// SendToMatchRoom delivers a payload to every client in the match's
// room. Slow clients are dropped rather than blocking the room.
func (m *Manager) SendToMatchRoom(matchID string, message []byte) {
	m.mutex.RLock()
	room := m.rooms[matchID]
	clients := make([]*Client, 0, len(room))
	for _, client := range room {
		clients = append(clients, client)
	}
	m.mutex.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- message:
		default:
			logger.Warn("Dropping slow client %s from room %s", client.UserID, matchID)
			m.LeaveMatchRoom(matchID, client)
		}
	}
}

// SendToUser delivers a payload to one connected user, if online.
func (m *Manager) SendToUser(userID string, message []byte) {
	m.mutex.RLock()
	client, ok := m.clients[userID]
	m.mutex.RUnlock()

	if !ok {
		return
	}
	select {
	case client.Send <- message:
	default:
		logger.Warn("Dropping message for slow client %s", userID)
	}
}

// ReadPump reads frames from the connection until it closes.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("WebSocket read error for %s: %v", c.UserID, err)
			}
			break
		}

		m.HandleClientMessage(c, message)
	}
}

// WritePump writes queued frames to the connection until Send closes.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Error("WebSocket write error for %s: %v", c.UserID, err)
			return
		}
	}
}
