package models

import (
	"time"

	"github.com/google/uuid"
)

// Member is a club member; IsCurrent separates active members from alumni.
type Member struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Year      string    `json:"year"`
	Branch    string    `json:"branch"`
	Email     string    `json:"email"`
	ImageURL  *string   `json:"imageUrl"`
	IsCurrent bool      `json:"isCurrent"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertMember is the creation payload. IsCurrent defaults to true when the
// field is absent.
type InsertMember struct {
	Name      string  `json:"name"`
	Year      string  `json:"year"`
	Branch    string  `json:"branch"`
	Email     string  `json:"email"`
	ImageURL  *string `json:"imageUrl"`
	IsCurrent *bool   `json:"isCurrent"`
}

// MemberPatch carries a partial update; nil fields are left untouched. A JSON
// null decodes the same as an absent field, so nullable fields cannot be
// cleared through a patch.
type MemberPatch struct {
	Name      *string `json:"name"`
	Year      *string `json:"year"`
	Branch    *string `json:"branch"`
	Email     *string `json:"email"`
	ImageURL  *string `json:"imageUrl"`
	IsCurrent *bool   `json:"isCurrent"`
}
