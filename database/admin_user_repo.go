package database

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vasavi-eco-club/club-site-backend/models"
)

// AdminUserRepo holds the admin principals. In practice exactly one is
// seeded at startup; there is no registration flow.
type AdminUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.AdminUser
	order []uuid.UUID
}

func NewAdminUserRepo() *AdminUserRepo {
	return &AdminUserRepo{users: make(map[uuid.UUID]models.AdminUser)}
}

// Add inserts a new admin user with passwordHash already bcrypt-hashed.
func (r *AdminUserRepo) Add(username, passwordHash, email string) *models.AdminUser {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := models.AdminUser{
		ID:        uuid.New(),
		Username:  username,
		Password:  passwordHash,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	r.users[user.ID] = user
	r.order = append(r.order, user.ID)
	return &user
}

// FindByID returns the user under id, or nil if absent.
func (r *AdminUserRepo) FindByID(id uuid.UUID) *models.AdminUser {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil
	}
	return &user
}

// FindByUsername returns the user with an exact, case-sensitive username
// match, or nil if absent.
func (r *AdminUserRepo) FindByUsername(username string) *models.AdminUser {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if user := r.users[id]; user.Username == username {
			return &user
		}
	}
	return nil
}
