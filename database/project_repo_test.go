package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasavi-eco-club/club-site-backend/models"
)

func sampleProject() models.InsertProject {
	return models.InsertProject{
		Title:       "Rainwater Harvesting",
		Description: "Harvesting pits across the campus hostels.",
		Year:        "2025-2026",
		Impact:      "40,000 litres captured per monsoon",
		TeamMembers: []string{"Asha Rao", "Ravi Kumar"},
	}
}

func TestProjectRepo_Defaults(t *testing.T) {
	repo := NewProjectRepo()

	created := repo.Add(sampleProject())
	assert.Equal(t, "ongoing", created.Status)
	assert.True(t, created.IsCurrent)

	completedDraft := sampleProject()
	completedDraft.Status = "completed"
	completedDraft.IsCurrent = boolPtr(false)
	completed := repo.Add(completedDraft)
	assert.Equal(t, "completed", completed.Status)
	assert.False(t, completed.IsCurrent)
}

func TestProjectRepo_FindCurrent(t *testing.T) {
	repo := NewProjectRepo()

	current := repo.Add(sampleProject())
	archivedDraft := sampleProject()
	archivedDraft.IsCurrent = boolPtr(false)
	repo.Add(archivedDraft)

	currentOnly := repo.FindCurrent()
	require.Len(t, currentOnly, 1)
	assert.Equal(t, current.ID, currentOnly[0].ID)
}

func TestProjectRepo_UpdateTeamMembers(t *testing.T) {
	repo := NewProjectRepo()
	created := repo.Add(sampleProject())

	team := []string{"Meena Iyer"}
	updated := repo.Update(created.ID, models.ProjectPatch{TeamMembers: &team})
	require.NotNil(t, updated)

	assert.Equal(t, team, updated.TeamMembers)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Impact, updated.Impact)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestProjectRepo_RoundTrip(t *testing.T) {
	repo := NewProjectRepo()

	draft := sampleProject()
	draft.ImageURL = strPtr("/uploads/image-1700000000000-1234.png")
	created := repo.Add(draft)

	found := repo.FindByID(created.ID)
	require.NotNil(t, found)
	assert.Equal(t, draft.Title, found.Title)
	assert.Equal(t, draft.Description, found.Description)
	assert.Equal(t, draft.Year, found.Year)
	assert.Equal(t, draft.Impact, found.Impact)
	assert.Equal(t, draft.TeamMembers, found.TeamMembers)
	assert.Equal(t, draft.ImageURL, found.ImageURL)
}
