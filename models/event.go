package models

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a club event shown on the public site.
// Status is one of "upcoming", "ongoing" or "past" by convention; the
// repository stores whatever string the validated request carried.
type Event struct {
	ID                      uuid.UUID `json:"id"`
	Title                   string    `json:"title"`
	Date                    string    `json:"date"`
	Location                string    `json:"location"`
	Description             string    `json:"description"`
	Category                string    `json:"category"`
	ImageURL                *string   `json:"imageUrl"`
	ExternalRegistrationURL *string   `json:"externalRegistrationUrl"`
	Status                  string    `json:"status"`
	CreatedAt               time.Time `json:"createdAt"`
}

// InsertEvent is the creation payload. Status defaults to "upcoming" when
// left empty.
type InsertEvent struct {
	Title                   string  `json:"title"`
	Date                    string  `json:"date"`
	Location                string  `json:"location"`
	Description             string  `json:"description"`
	Category                string  `json:"category"`
	ImageURL                *string `json:"imageUrl"`
	ExternalRegistrationURL *string `json:"externalRegistrationUrl"`
	Status                  string  `json:"status"`
}

// EventPatch carries a partial update; nil fields are left untouched. A JSON
// null decodes the same as an absent field, so imageUrl and
// externalRegistrationUrl cannot be cleared through a patch, only replaced.
type EventPatch struct {
	Title                   *string `json:"title"`
	Date                    *string `json:"date"`
	Location                *string `json:"location"`
	Description             *string `json:"description"`
	Category                *string `json:"category"`
	ImageURL                *string `json:"imageUrl"`
	ExternalRegistrationURL *string `json:"externalRegistrationUrl"`
	Status                  *string `json:"status"`
}
