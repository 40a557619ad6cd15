package models

import (
	"time"

	"github.com/google/uuid"
)

// Metric is an impact figure for the home page. Value is a display string
// ("12,000 kg"), not a number; no aggregation happens server-side.
type Metric struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Value       string    `json:"value"`
	Description *string   `json:"description"`
	Icon        string    `json:"icon"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InsertMetric is the creation payload.
type InsertMetric struct {
	Title       string  `json:"title"`
	Value       string  `json:"value"`
	Description *string `json:"description"`
	Icon        string  `json:"icon"`
}

// MetricPatch carries a partial update; nil fields are left untouched. A JSON
// null decodes the same as an absent field, so description cannot be cleared
// through a patch. Any successful patch refreshes UpdatedAt.
type MetricPatch struct {
	Title       *string `json:"title"`
	Value       *string `json:"value"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}
