package entity

import (
	"strings"
	"time"
)

// Like is a directed interest edge from a user toward a target. The
// target is a listing ID, or a synthetic buyer reference when the like
// points at another user directly.
type Like struct {
	ID       string `json:"id" firestore:"id"`
	UserID   string `json:"user_id" firestore:"userId"`
	TargetID string `json:"target_id" firestore:"targetId"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

const buyerRefPrefix = "buyer-"

// BuyerRef builds the synthetic target identifier that lets a
// user-likes-user action reuse listing-scoped matching.
func BuyerRef(userID string) string {
	return buyerRefPrefix + userID
}

// IsBuyerRef reports whether a target identifier is synthetic.
func IsBuyerRef(targetID string) bool {
	return strings.HasPrefix(targetID, buyerRefPrefix)
}

// BuyerIDFromRef recovers the user ID from a synthetic buyer reference.
func BuyerIDFromRef(targetID string) string {
	return strings.TrimPrefix(targetID, buyerRefPrefix)
}
