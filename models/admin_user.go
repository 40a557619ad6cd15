package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is the single seeded principal allowed into the admin panel.
// Password holds a bcrypt hash and never leaves the server.
type AdminUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
