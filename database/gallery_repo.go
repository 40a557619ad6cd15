package database

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vasavi-eco-club/club-site-backend/models"
)

// GalleryRepo stores gallery records in insertion order. Deleting a record
// does not remove the underlying file from disk.
type GalleryRepo struct {
	mu     sync.Mutex
	images map[uuid.UUID]models.GalleryImage
	order  []uuid.UUID
}

func NewGalleryRepo() *GalleryRepo {
	return &GalleryRepo{images: make(map[uuid.UUID]models.GalleryImage)}
}

// FindAll returns all gallery images in insertion order.
func (r *GalleryRepo) FindAll() []models.GalleryImage {
	r.mu.Lock()
	defer r.mu.Unlock()

	images := make([]models.GalleryImage, 0, len(r.order))
	for _, id := range r.order {
		images = append(images, r.images[id])
	}
	return images
}

// Add creates a gallery record with a fresh id and upload timestamp.
func (r *GalleryRepo) Add(draft models.InsertGalleryImage) *models.GalleryImage {
	r.mu.Lock()
	defer r.mu.Unlock()

	image := models.GalleryImage{
		ID:         uuid.New(),
		Title:      draft.Title,
		ImageURL:   draft.ImageURL,
		Category:   draft.Category,
		Date:       draft.Date,
		UploadedAt: time.Now().UTC(),
	}
	r.images[image.ID] = image
	r.order = append(r.order, image.ID)
	return &image
}

// Delete removes the record and reports whether anything was removed.
func (r *GalleryRepo) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.images[id]; !ok {
		return false
	}
	delete(r.images, id)
	r.order = removeID(r.order, id)
	return true
}
