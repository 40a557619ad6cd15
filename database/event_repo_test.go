package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasavi-eco-club/club-site-backend/models"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func sampleEvent() models.InsertEvent {
	return models.InsertEvent{
		Title:       "Tree Plantation Drive",
		Date:        "2026-03-12",
		Location:    "Campus Grounds",
		Description: "Planting 200 saplings around the campus.",
		Category:    "Drive",
		Status:      "upcoming",
	}
}

func TestEventRepo_AddAndFind(t *testing.T) {
	repo := NewEventRepo()

	created := repo.Add(sampleEvent())
	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	found := repo.FindByID(created.ID)
	require.NotNil(t, found)
	assert.Equal(t, *created, *found)

	assert.Nil(t, repo.FindByID(uuid.New()))
}

func TestEventRepo_StatusDefaultsToUpcoming(t *testing.T) {
	repo := NewEventRepo()

	draft := sampleEvent()
	draft.Status = ""
	created := repo.Add(draft)

	assert.Equal(t, "upcoming", created.Status)

	draft.Status = "ongoing"
	assert.Equal(t, "ongoing", repo.Add(draft).Status)
}

func TestEventRepo_FindAllInsertionOrder(t *testing.T) {
	repo := NewEventRepo()

	first := repo.Add(sampleEvent())
	second := repo.Add(sampleEvent())
	third := repo.Add(sampleEvent())

	all := repo.FindAll()
	require.Len(t, all, 3)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, third.ID, all[2].ID)
}

func TestEventRepo_UpdateMergesPartialFields(t *testing.T) {
	repo := NewEventRepo()
	created := repo.Add(sampleEvent())

	updated := repo.Update(created.ID, models.EventPatch{Title: strPtr("Mega Plantation Drive")})
	require.NotNil(t, updated)

	assert.Equal(t, "Mega Plantation Drive", updated.Title)
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, created.Location, updated.Location)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestEventRepo_UpdateUnknownIDIsNotUpsert(t *testing.T) {
	repo := NewEventRepo()

	assert.Nil(t, repo.Update(uuid.New(), models.EventPatch{Title: strPtr("ghost")}))
	assert.Empty(t, repo.FindAll())
}

func TestEventRepo_DeleteIsIdempotent(t *testing.T) {
	repo := NewEventRepo()
	created := repo.Add(sampleEvent())

	assert.True(t, repo.Delete(created.ID))
	assert.False(t, repo.Delete(created.ID))
	assert.Nil(t, repo.FindByID(created.ID))
}

func TestEventRepo_DeleteDoesNotCascadeRegistrations(t *testing.T) {
	events := NewEventRepo()
	registrations := NewEventRegistrationRepo()

	event := events.Add(sampleEvent())
	registrations.Add(models.InsertEventRegistration{
		EventID:    event.ID,
		Name:       "Asha",
		RollNumber: "160121",
		Branch:     "CSE",
		Email:      "asha@example.edu",
	})

	require.True(t, events.Delete(event.ID))
	assert.Len(t, registrations.FindByEvent(event.ID), 1)
}

func TestEventRegistrationRepo_FindByEvent(t *testing.T) {
	events := NewEventRepo()
	registrations := NewEventRegistrationRepo()

	eventA := events.Add(sampleEvent())
	eventB := events.Add(sampleEvent())

	first := registrations.Add(models.InsertEventRegistration{
		EventID: eventA.ID, Name: "Asha", RollNumber: "160121", Branch: "CSE", Email: "asha@example.edu",
	})
	registrations.Add(models.InsertEventRegistration{
		EventID: eventB.ID, Name: "Ravi", RollNumber: "160122", Branch: "ECE", Email: "ravi@example.edu",
	})
	second := registrations.Add(models.InsertEventRegistration{
		EventID: eventA.ID, Name: "Meena", RollNumber: "160123", Branch: "EEE", Email: "meena@example.edu",
	})

	regs := registrations.FindByEvent(eventA.ID)
	require.Len(t, regs, 2)
	assert.Equal(t, first.ID, regs[0].ID)
	assert.Equal(t, second.ID, regs[1].ID)
	assert.False(t, regs[0].RegisteredAt.IsZero())
}
