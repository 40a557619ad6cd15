package database

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vasavi-eco-club/club-site-backend/models"
)

// MetricRepo stores impact metrics in insertion order.
type MetricRepo struct {
	mu      sync.Mutex
	metrics map[uuid.UUID]models.Metric
	order   []uuid.UUID
}

func NewMetricRepo() *MetricRepo {
	return &MetricRepo{metrics: make(map[uuid.UUID]models.Metric)}
}

// FindAll returns all metrics in insertion order.
func (r *MetricRepo) FindAll() []models.Metric {
	r.mu.Lock()
	defer r.mu.Unlock()

	metrics := make([]models.Metric, 0, len(r.order))
	for _, id := range r.order {
		metrics = append(metrics, r.metrics[id])
	}
	return metrics
}

// FindByID returns the metric under id, or nil.
func (r *MetricRepo) FindByID(id uuid.UUID) *models.Metric {
	r.mu.Lock()
	defer r.mu.Unlock()

	metric, ok := r.metrics[id]
	if !ok {
		return nil
	}
	return &metric
}

// Add creates a metric with a fresh id and update timestamp.
func (r *MetricRepo) Add(draft models.InsertMetric) *models.Metric {
	r.mu.Lock()
	defer r.mu.Unlock()

	metric := models.Metric{
		ID:          uuid.New(),
		Title:       draft.Title,
		Value:       draft.Value,
		Description: draft.Description,
		Icon:        draft.Icon,
		UpdatedAt:   time.Now().UTC(),
	}
	r.metrics[metric.ID] = metric
	r.order = append(r.order, metric.ID)
	return &metric
}

// Update merges the non-nil patch fields into the stored metric and
// refreshes UpdatedAt. Returns nil if no metric exists under id.
func (r *MetricRepo) Update(id uuid.UUID, patch models.MetricPatch) *models.Metric {
	r.mu.Lock()
	defer r.mu.Unlock()

	metric, ok := r.metrics[id]
	if !ok {
		return nil
	}
	if patch.Title != nil {
		metric.Title = *patch.Title
	}
	if patch.Value != nil {
		metric.Value = *patch.Value
	}
	if patch.Description != nil {
		metric.Description = patch.Description
	}
	if patch.Icon != nil {
		metric.Icon = *patch.Icon
	}
	metric.UpdatedAt = time.Now().UTC()
	r.metrics[id] = metric
	return &metric
}

// Delete removes the metric and reports whether anything was removed.
func (r *MetricRepo) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.metrics[id]; !ok {
		return false
	}
	delete(r.metrics, id)
	r.order = removeID(r.order, id)
	return true
}
