package entity

import (
	"time"
)

type ListingPreferences struct {
	NumRoommates     string   `json:"num_roommates,omitempty" firestore:"numRoommates,omitempty"`
	PreferredGenders []string `json:"preferred_genders,omitempty" firestore:"preferredGenders,omitempty"`
}

type Listing struct {
	ID             string             `json:"id" firestore:"id"`
	OwnerID        string             `json:"owner_id" firestore:"ownerId"`
	Title          string             `json:"title" firestore:"title"`
	Price          float64            `json:"price" firestore:"price"`
	Neighborhood   string             `json:"neighborhood" firestore:"neighborhood"`
	StartDate      time.Time          `json:"start_date" firestore:"startDate"`
	EndDate        time.Time          `json:"end_date" firestore:"endDate"`
	Images         []string           `json:"images" firestore:"images"`
	Vibes          []string           `json:"vibes,omitempty" firestore:"vibes,omitempty"`
	PromptQuestion string             `json:"prompt_question,omitempty" firestore:"promptQuestion,omitempty"`
	PromptAnswer   string             `json:"prompt_answer,omitempty" firestore:"promptAnswer,omitempty"`
	Preferences    ListingPreferences `json:"preferences" firestore:"preferences"`
	IsActive       bool               `json:"is_active" firestore:"isActive"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ListingView is a listing with its owner resolved to display form.
type ListingView struct {
	*Listing
	Owner *UserInfo `json:"owner,omitempty"`
}
