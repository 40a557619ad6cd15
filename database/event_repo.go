package database

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vasavi-eco-club/club-site-backend/models"
)

// EventRepo stores events in insertion order. The repo does not validate
// status strings; the request boundary does.
type EventRepo struct {
	mu     sync.Mutex
	events map[uuid.UUID]models.Event
	order  []uuid.UUID
}

func NewEventRepo() *EventRepo {
	return &EventRepo{events: make(map[uuid.UUID]models.Event)}
}

// FindAll returns all events in insertion order.
func (r *EventRepo) FindAll() []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]models.Event, 0, len(r.order))
	for _, id := range r.order {
		events = append(events, r.events[id])
	}
	return events
}

// FindByID returns the event under id, or nil if absent.
func (r *EventRepo) FindByID(id uuid.UUID) *models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return nil
	}
	return &event
}

// Add creates an event from the draft, assigning a fresh id and creation
// timestamp. An empty status defaults to "upcoming".
func (r *EventRepo) Add(draft models.InsertEvent) *models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := draft.Status
	if status == "" {
		status = "upcoming"
	}
	event := models.Event{
		ID:                      uuid.New(),
		Title:                   draft.Title,
		Date:                    draft.Date,
		Location:                draft.Location,
		Description:             draft.Description,
		Category:                draft.Category,
		ImageURL:                draft.ImageURL,
		ExternalRegistrationURL: draft.ExternalRegistrationURL,
		Status:                  status,
		CreatedAt:               time.Now().UTC(),
	}
	r.events[event.ID] = event
	r.order = append(r.order, event.ID)
	return &event
}

// Update merges the non-nil patch fields into the stored event. Returns nil
// if no event exists under id; this is not an upsert. ID and CreatedAt are
// never touched.
func (r *EventRepo) Update(id uuid.UUID, patch models.EventPatch) *models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return nil
	}
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Category != nil {
		event.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		event.ImageURL = patch.ImageURL
	}
	if patch.ExternalRegistrationURL != nil {
		event.ExternalRegistrationURL = patch.ExternalRegistrationURL
	}
	if patch.Status != nil {
		event.Status = *patch.Status
	}
	r.events[id] = event
	return &event
}

// Delete removes the event and reports whether anything was removed. A
// second call with the same id returns false. Registrations for the event
// are intentionally left in place; there is no cascade.
func (r *EventRepo) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return false
	}
	delete(r.events, id)
	r.order = removeID(r.order, id)
	return true
}

// removeID drops id from an insertion-order slice.
func removeID(order []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, existing := range order {
		if existing == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
