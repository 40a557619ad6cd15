package database

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vasavi-eco-club/club-site-backend/models"
)

// MemberRepo stores members in insertion order.
type MemberRepo struct {
	mu      sync.Mutex
	members map[uuid.UUID]models.Member
	order   []uuid.UUID
}

func NewMemberRepo() *MemberRepo {
	return &MemberRepo{members: make(map[uuid.UUID]models.Member)}
}

// FindAll returns all members in insertion order.
func (r *MemberRepo) FindAll() []models.Member {
	r.mu.Lock()
	defer r.mu.Unlock()

	members := make([]models.Member, 0, len(r.order))
	for _, id := range r.order {
		members = append(members, r.members[id])
	}
	return members
}

// FindCurrent returns members with IsCurrent set, in insertion order.
func (r *MemberRepo) FindCurrent() []models.Member {
	r.mu.Lock()
	defer r.mu.Unlock()

	members := make([]models.Member, 0)
	for _, id := range r.order {
		if member := r.members[id]; member.IsCurrent {
			members = append(members, member)
		}
	}
	return members
}

// FindByID returns the member under id, or nil if absent.
func (r *MemberRepo) FindByID(id uuid.UUID) *models.Member {
	r.mu.Lock()
	defer r.mu.Unlock()

	member, ok := r.members[id]
	if !ok {
		return nil
	}
	return &member
}

// Add creates a member from the draft. IsCurrent defaults to true when the
// draft leaves it unset.
func (r *MemberRepo) Add(draft models.InsertMember) *models.Member {
	r.mu.Lock()
	defer r.mu.Unlock()

	isCurrent := true
	if draft.IsCurrent != nil {
		isCurrent = *draft.IsCurrent
	}
	member := models.Member{
		ID:        uuid.New(),
		Name:      draft.Name,
		Year:      draft.Year,
		Branch:    draft.Branch,
		Email:     draft.Email,
		ImageURL:  draft.ImageURL,
		IsCurrent: isCurrent,
		CreatedAt: time.Now().UTC(),
	}
	r.members[member.ID] = member
	r.order = append(r.order, member.ID)
	return &member
}

// Update merges the non-nil patch fields into the stored member. Returns
// nil if no member exists under id.
func (r *MemberRepo) Update(id uuid.UUID, patch models.MemberPatch) *models.Member {
	r.mu.Lock()
	defer r.mu.Unlock()

	member, ok := r.members[id]
	if !ok {
		return nil
	}
	if patch.Name != nil {
		member.Name = *patch.Name
	}
	if patch.Year != nil {
		member.Year = *patch.Year
	}
	if patch.Branch != nil {
		member.Branch = *patch.Branch
	}
	if patch.Email != nil {
		member.Email = *patch.Email
	}
	if patch.ImageURL != nil {
		member.ImageURL = patch.ImageURL
	}
	if patch.IsCurrent != nil {
		member.IsCurrent = *patch.IsCurrent
	}
	r.members[id] = member
	return &member
}

// Delete removes the member and reports whether anything was removed.
func (r *MemberRepo) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[id]; !ok {
		return false
	}
	delete(r.members, id)
	r.order = removeID(r.order, id)
	return true
}
