package database

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vasavi-eco-club/club-site-backend/models"
)

// ProjectRepo stores projects in insertion order.
type ProjectRepo struct {
	mu       sync.Mutex
	projects map[uuid.UUID]models.Project
	order    []uuid.UUID
}

func NewProjectRepo() *ProjectRepo {
	return &ProjectRepo{projects: make(map[uuid.UUID]models.Project)}
}

// FindAll returns all projects in insertion order.
func (r *ProjectRepo) FindAll() []models.Project {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects := make([]models.Project, 0, len(r.order))
	for _, id := range r.order {
		projects = append(projects, r.projects[id])
	}
	return projects
}

// FindCurrent returns projects with IsCurrent set, in insertion order.
func (r *ProjectRepo) FindCurrent() []models.Project {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects := make([]models.Project, 0)
	for _, id := range r.order {
		if project := r.projects[id]; project.IsCurrent {
			projects = append(projects, project)
		}
	}
	return projects
}

// FindByID returns the project under id, or nil if absent.
func (r *ProjectRepo) FindByID(id uuid.UUID) *models.Project {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[id]
	if !ok {
		return nil
	}
	return &project
}

// Add creates a project from the draft. Status defaults to "ongoing" and
// IsCurrent to true.
func (r *ProjectRepo) Add(draft models.InsertProject) *models.Project {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := draft.Status
	if status == "" {
		status = "ongoing"
	}
	isCurrent := true
	if draft.IsCurrent != nil {
		isCurrent = *draft.IsCurrent
	}
	project := models.Project{
		ID:          uuid.New(),
		Title:       draft.Title,
		Description: draft.Description,
		Year:        draft.Year,
		Impact:      draft.Impact,
		Status:      status,
		ImageURL:    draft.ImageURL,
		TeamMembers: draft.TeamMembers,
		IsCurrent:   isCurrent,
		CreatedAt:   time.Now().UTC(),
	}
	r.projects[project.ID] = project
	r.order = append(r.order, project.ID)
	return &project
}

// Update merges the non-nil patch fields into the stored project. Returns
// nil if no project exists under id.
func (r *ProjectRepo) Update(id uuid.UUID, patch models.ProjectPatch) *models.Project {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[id]
	if !ok {
		return nil
	}
	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Year != nil {
		project.Year = *patch.Year
	}
	if patch.Impact != nil {
		project.Impact = *patch.Impact
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	if patch.ImageURL != nil {
		project.ImageURL = patch.ImageURL
	}
	if patch.TeamMembers != nil {
		project.TeamMembers = *patch.TeamMembers
	}
	if patch.IsCurrent != nil {
		project.IsCurrent = *patch.IsCurrent
	}
	r.projects[id] = project
	return &project
}

// Delete removes the project and reports whether anything was removed.
func (r *ProjectRepo) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return false
	}
	delete(r.projects, id)
	r.order = removeID(r.order, id)
	return true
}
