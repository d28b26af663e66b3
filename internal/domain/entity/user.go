package entity

import (
	"time"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleBoth   = "both"
)

type Preferences struct {
	PriceMin           float64  `json:"price_min" firestore:"priceMin"`
	PriceMax           float64  `json:"price_max" firestore:"priceMax"`
	NumRoommates       string   `json:"num_roommates,omitempty" firestore:"numRoommates,omitempty"`
	PreferredGenders   []string `json:"preferred_genders,omitempty" firestore:"preferredGenders,omitempty"`
	PreferredLocations []string `json:"preferred_locations,omitempty" firestore:"preferredLocations,omitempty"`
}

type User struct {
	ID           string      `json:"id" firestore:"id"`
	Email        string      `json:"email" firestore:"email"`
	Name         string      `json:"name" firestore:"name"`
	PasswordHash string      `json:"-" firestore:"passwordHash"`
	Role         string      `json:"role" firestore:"role"` // "buyer", "seller", "both"
	ProfileImage string      `json:"profile_image,omitempty" firestore:"profileImage,omitempty"`
	Preferences  Preferences `json:"preferences" firestore:"preferences"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// UserInfo is the display projection embedded in match and message
// views. It never carries credentials.
type UserInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image,omitempty"`
}

func (u *User) Info() UserInfo {
	return UserInfo{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
	}
}
