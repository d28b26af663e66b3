package entity

import (
	"fmt"
	"time"
)

// Match is a confirmed mutual relationship between exactly two users,
// scoped to a listing (real or synthetic). The user pair is stored in
// canonical sorted order so a pair is represented once regardless of
// who liked whom first.
type Match struct {
	ID        string    `json:"id" firestore:"id"`
	Users     [2]string `json:"users" firestore:"users"`
	ListingID string    `json:"listing_id" firestore:"listingId"`

	MatchedAt     time.Time `json:"matched_at" firestore:"matchedAt"`
	LastMessageAt time.Time `json:"last_message_at" firestore:"lastMessageAt"`
}

// NormalizePair returns the two user IDs in canonical order.
func NormalizePair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// PairKey is the order-independent identity of a (pair, listing)
// combination. It doubles as the match document ID, which is what
// enforces at-most-one match per pair and listing.
func PairKey(userA, userB, listingRef string) string {
	lo, hi := NormalizePair(userA, userB)
	return fmt.Sprintf("%s_%s_%s", lo, hi, listingRef)
}

// NewMatch builds a match with the pair normalized and the key-derived
// ID set. The two users must be distinct.
func NewMatch(userA, userB, listingRef string, now time.Time) (*Match, error) {
	if userA == userB {
		return nil, fmt.Errorf("match requires two distinct users, got %q twice", userA)
	}
	lo, hi := NormalizePair(userA, userB)
	return &Match{
		ID:            PairKey(lo, hi, listingRef),
		Users:         [2]string{lo, hi},
		ListingID:     listingRef,
		MatchedAt:     now,
		LastMessageAt: now,
	}, nil
}

// HasUser reports whether the given user is one of the match's two
// parties.
func (m *Match) HasUser(userID string) bool {
	return m.Users[0] == userID || m.Users[1] == userID
}

// OtherUser returns the counterpart of the given user in the pair.
func (m *Match) OtherUser(userID string) string {
	if m.Users[0] == userID {
		return m.Users[1]
	}
	return m.Users[0]
}

// MatchView is a match with both users and the listing resolved to
// display form. For buyer matches the listing is synthesized by the
// projection layer.
type MatchView struct {
	*Match
	UserInfos []UserInfo   `json:"user_infos"`
	Listing   *ListingView `json:"listing,omitempty"`
}
