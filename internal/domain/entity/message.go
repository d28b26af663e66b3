package entity

import "time"

type Message struct {
	ID       string `json:"id" firestore:"id"`
	MatchID  string `json:"match_id" firestore:"matchId"`
	SenderID string `json:"sender_id" firestore:"senderId"`
	Content  string `json:"content" firestore:"content"`
	Read     bool   `json:"read" firestore:"read"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// MessageView is a message with the sender resolved to display form.
type MessageView struct {
	*Message
	Sender *UserInfo `json:"sender,omitempty"`
}
