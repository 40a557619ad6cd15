package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vasavi-eco-club/club-site-backend/database"
	"github.com/vasavi-eco-club/club-site-backend/errs"
	"github.com/vasavi-eco-club/club-site-backend/models"
)

type galleryHandler struct {
	responder   Responder
	logger      zerolog.Logger
	galleryRepo *database.GalleryRepo
	uploadDir   string
}

func newGalleryHandler(galleryRepo *database.GalleryRepo, uploadDir string) galleryHandler {
	logger := log.With().Str("handlerName", "galleryHandler").Logger()

	return galleryHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		galleryRepo: galleryRepo,
		uploadDir:   uploadDir,
	}
}

func (h galleryHandler) getAllImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images := h.galleryRepo.FindAll()
		h.responder.WriteSuccess(w, images, "Gallery images retrieved successfully")
	}
}

// uploadImage stores a multipart image on disk and persists a gallery
// record pointing at its served path. Metadata arrives as ordinary form
// fields next to the file.
func (h galleryHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, err := saveUploadedImage(w, r, "image", h.uploadDir)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		title := r.FormValue("title")
		category := r.FormValue("category")
		date := r.FormValue("date")
		if title == "" || category == "" || date == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title, category and date are required"))
			return
		}

		image := h.galleryRepo.Add(models.InsertGalleryImage{
			Title:    title,
			ImageURL: "/uploads/" + filename,
			Category: category,
			Date:     date,
		})

		h.responder.WriteSuccess(w, image, "Image uploaded successfully")
	}
}

// deleteImage removes the gallery record. The file on disk is left behind;
// records are the source of truth for what the site shows.
func (h galleryHandler) deleteImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uuid.Parse(chi.URLParam(r, "imageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Image not found"))
			return
		}

		if !h.galleryRepo.Delete(imageID) {
			h.responder.WriteError(w, errs.NewNotFoundError("Image not found"))
			return
		}

		h.responder.WriteMessage(w, "Image deleted successfully")
	}
}
