package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasavi-eco-club/club-site-backend/database"
)

func seededCredentials(t *testing.T) Credentials {
	t.Helper()

	hash, err := HashPassword("admin123")
	require.NoError(t, err)

	repo := database.NewAdminUserRepo()
	repo.Add("admin", hash, "admin@ecoclub.edu")
	return NewCredentials(repo)
}

func TestCredentials_Authenticate(t *testing.T) {
	credentials := seededCredentials(t)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := credentials.Authenticate("admin", "admin123")
		require.NoError(t, err)
		assert.Equal(t, "admin", user.Username)
		assert.Equal(t, "admin@ecoclub.edu", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := credentials.Authenticate("admin", "hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username matches wrong password error", func(t *testing.T) {
		_, err := credentials.Authenticate("nobody", "admin123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("username lookup is case-sensitive", func(t *testing.T) {
		_, err := credentials.Authenticate("Admin", "admin123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
