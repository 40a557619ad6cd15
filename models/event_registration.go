package models

import (
	"time"

	"github.com/google/uuid"
)

// EventRegistration is one attendee signup for an event. Registrations are
// append-only and survive deletion of their event.
type EventRegistration struct {
	ID           uuid.UUID `json:"id"`
	EventID      uuid.UUID `json:"eventId"`
	Name         string    `json:"name"`
	RollNumber   string    `json:"rollNumber"`
	Branch       string    `json:"branch"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// InsertEventRegistration is the signup payload.
type InsertEventRegistration struct {
	EventID    uuid.UUID `json:"eventId"`
	Name       string    `json:"name"`
	RollNumber string    `json:"rollNumber"`
	Branch     string    `json:"branch"`
	Email      string    `json:"email"`
}
