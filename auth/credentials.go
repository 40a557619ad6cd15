package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/vasavi-eco-club/club-site-backend/database"
	"github.com/vasavi-eco-club/club-site-backend/models"
)

// ErrInvalidCredentials is returned for an unknown username and for a wrong
// password alike, so a caller cannot tell which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials authenticates username/password pairs against the seeded
// admin principals.
type Credentials struct {
	users *database.AdminUserRepo
}

func NewCredentials(users *database.AdminUserRepo) Credentials {
	return Credentials{users: users}
}

// Authenticate looks the username up exactly (case-sensitive, no
// normalization) and compares the password against the stored bcrypt hash.
func (c Credentials) Authenticate(username, password string) (*models.AdminUser, error) {
	user := c.users.FindByUsername(username)
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// HashPassword bcrypt-hashes a plaintext password for seeding.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
