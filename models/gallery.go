package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryImage is an uploaded photo; ImageURL points at the served file
// under /uploads.
type GalleryImage struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	ImageURL   string    `json:"imageUrl"`
	Category   string    `json:"category"`
	Date       string    `json:"date"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// InsertGalleryImage is the creation payload.
type InsertGalleryImage struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Category string `json:"category"`
	Date     string `json:"date"`
}
