package database

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vasavi-eco-club/club-site-backend/models"
)

// EventRegistrationRepo stores signups. Registrations are append-only and
// do not check that their event still exists; deleting an event leaves its
// registrations behind (the original behaves this way, preserved on
// purpose rather than silently adding a cascade).
type EventRegistrationRepo struct {
	mu            sync.Mutex
	registrations map[uuid.UUID]models.EventRegistration
	order         []uuid.UUID
}

func NewEventRegistrationRepo() *EventRegistrationRepo {
	return &EventRegistrationRepo{registrations: make(map[uuid.UUID]models.EventRegistration)}
}

// Add creates a registration with a fresh id and timestamp.
func (r *EventRegistrationRepo) Add(draft models.InsertEventRegistration) *models.EventRegistration {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg := models.EventRegistration{
		ID:           uuid.New(),
		EventID:      draft.EventID,
		Name:         draft.Name,
		RollNumber:   draft.RollNumber,
		Branch:       draft.Branch,
		Email:        draft.Email,
		RegisteredAt: time.Now().UTC(),
	}
	r.registrations[reg.ID] = reg
	r.order = append(r.order, reg.ID)
	return &reg
}

// FindByEvent returns all registrations for eventID in insertion order.
func (r *EventRegistrationRepo) FindByEvent(eventID uuid.UUID) []models.EventRegistration {
	r.mu.Lock()
	defer r.mu.Unlock()

	regs := make([]models.EventRegistration, 0)
	for _, id := range r.order {
		if reg := r.registrations[id]; reg.EventID == eventID {
			regs = append(regs, reg)
		}
	}
	return regs
}
