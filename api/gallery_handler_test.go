package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasavi-eco-club/club-site-backend/database"
)

// multipartUpload builds a multipart body with an image part plus the
// metadata fields the admin panel sends.
func multipartUpload(t *testing.T, filename, contentType string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func galleryFields() map[string]string {
	return map[string]string{
		"title":    "Plantation Drive",
		"category": "Events",
		"date":     "March 2026",
	}
}

func TestGalleryUpload(t *testing.T) {
	db := database.New()
	seedTestAdmin(t, db)

	uploadDir := t.TempDir()
	router := newRouter(db, withConfig(map[string]string{
		"JWT_SECRET":       testSecret,
		"UPLOAD_DIR":       uploadDir,
		"ACCEPTED_ORIGINS": "*",
	}))
	token := loginToken(t, router)

	t.Run("stores the file and a record pointing at it", func(t *testing.T) {
		body, contentType := multipartUpload(t, "photo.png", "image/png", []byte("fake image bytes"), galleryFields())

		req := httptest.NewRequest(http.MethodPost, "/api/admin/gallery", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		images := db.GalleryRepo().FindAll()
		require.Len(t, images, 1)
		assert.Equal(t, "Plantation Drive", images[0].Title)
		assert.True(t, strings.HasPrefix(images[0].ImageURL, "/uploads/image-"))
		assert.True(t, strings.HasSuffix(images[0].ImageURL, ".png"))

		stored := filepath.Join(uploadDir, strings.TrimPrefix(images[0].ImageURL, "/uploads/"))
		contents, err := os.ReadFile(stored)
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(contents))
	})

	t.Run("rejects non-image files", func(t *testing.T) {
		body, contentType := multipartUpload(t, "notes.txt", "text/plain", []byte("not an image"), galleryFields())

		req := httptest.NewRequest(http.MethodPost, "/api/admin/gallery", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Only image files are allowed!", decodeEnvelope(t, rec).Message)
		assert.Len(t, db.GalleryRepo().FindAll(), 1, "no new record for the rejected file")
	})

	t.Run("rejects a missing file", func(t *testing.T) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		for key, value := range galleryFields() {
			require.NoError(t, writer.WriteField(key, value))
		}
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/admin/gallery", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No image file provided", decodeEnvelope(t, rec).Message)
	})

	t.Run("upload requires a token", func(t *testing.T) {
		body, contentType := multipartUpload(t, "photo.png", "image/png", []byte("fake image bytes"), galleryFields())

		req := httptest.NewRequest(http.MethodPost, "/api/admin/gallery", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("delete removes the record only once", func(t *testing.T) {
		images := db.GalleryRepo().FindAll()
		require.NotEmpty(t, images)
		id := images[0].ID.String()

		rec := doJSON(router, http.MethodDelete, "/api/admin/gallery/"+id, nil, token)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(router, http.MethodDelete, "/api/admin/gallery/"+id, nil, token)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("accepts a file of exactly five megabytes", func(t *testing.T) {
		body, contentType := multipartUpload(t, "photo.png", "image/png",
			bytes.Repeat([]byte{0xAB}, 5<<20), galleryFields())

		req := httptest.NewRequest(http.MethodPost, "/api/admin/gallery", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, db.GalleryRepo().FindAll(), 1)
	})

	t.Run("rejects a file over five megabytes", func(t *testing.T) {
		body, contentType := multipartUpload(t, "photo.png", "image/png",
			bytes.Repeat([]byte{0xAB}, 5<<20+1), galleryFields())

		req := httptest.NewRequest(http.MethodPost, "/api/admin/gallery", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Image exceeds the 5MB size limit", decodeEnvelope(t, rec).Message)
		assert.Len(t, db.GalleryRepo().FindAll(), 1, "no record for the rejected file")
	})
}
