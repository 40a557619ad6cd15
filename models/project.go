package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a club project with its impact statement and team.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Year        string    `json:"year"`
	Impact      string    `json:"impact"`
	Status      string    `json:"status"`
	ImageURL    *string   `json:"imageUrl"`
	TeamMembers []string  `json:"teamMembers"`
	IsCurrent   bool      `json:"isCurrent"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InsertProject is the creation payload. Status defaults to "ongoing" and
// IsCurrent to true.
type InsertProject struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Year        string   `json:"year"`
	Impact      string   `json:"impact"`
	Status      string   `json:"status"`
	ImageURL    *string  `json:"imageUrl"`
	TeamMembers []string `json:"teamMembers"`
	IsCurrent   *bool    `json:"isCurrent"`
}

// ProjectPatch carries a partial update; nil fields are left untouched. A JSON
// null decodes the same as an absent field, so nullable fields cannot be
// cleared through a patch.
type ProjectPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Year        *string   `json:"year"`
	Impact      *string   `json:"impact"`
	Status      *string   `json:"status"`
	ImageURL    *string   `json:"imageUrl"`
	TeamMembers *[]string `json:"teamMembers"`
	IsCurrent   *bool     `json:"isCurrent"`
}
