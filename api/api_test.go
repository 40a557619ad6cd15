package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/vasavi-eco-club/club-site-backend/auth"
	"github.com/vasavi-eco-club/club-site-backend/database"
	"github.com/vasavi-eco-club/club-site-backend/models"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T, db database.Database) *chi.Mux {
	t.Helper()

	return newRouter(db, withConfig(map[string]string{
		"JWT_SECRET":       testSecret,
		"UPLOAD_DIR":       t.TempDir(),
		"ACCEPTED_ORIGINS": "*",
	}))
}

func seedTestAdmin(t *testing.T, db database.Database) *models.AdminUser {
	t.Helper()

	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)
	return db.AdminUserRepo().Add("admin", hash, "admin@ecoclub.edu")
}

// loginToken runs the real login flow and returns the issued bearer token.
func loginToken(t *testing.T, router *chi.Mux) string {
	t.Helper()

	rec := doJSON(router, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "admin", "password": "admin123"}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token)
	return body.Data.Token
}

func doJSON(router *chi.Mux, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
