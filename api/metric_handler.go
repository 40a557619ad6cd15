package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vasavi-eco-club/club-site-backend/database"
	"github.com/vasavi-eco-club/club-site-backend/errs"
	"github.com/vasavi-eco-club/club-site-backend/models"
)

type metricHandler struct {
	responder  Responder
	logger     zerolog.Logger
	metricRepo *database.MetricRepo
}

func newMetricHandler(metricRepo *database.MetricRepo) metricHandler {
	logger := log.With().Str("handlerName", "metricHandler").Logger()

	return metricHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		metricRepo: metricRepo,
	}
}

func (h metricHandler) getAllMetrics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics := h.metricRepo.FindAll()
		h.responder.WriteSuccess(w, metrics, "Metrics retrieved successfully")
	}
}

func (h metricHandler) createMetric() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft models.InsertMetric
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode metric request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if draft.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}
		if draft.Value == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("value is required"))
			return
		}

		metric := h.metricRepo.Add(draft)
		h.responder.WriteSuccess(w, metric, "Metric created successfully")
	}
}

func (h metricHandler) updateMetric() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricID, err := uuid.Parse(chi.URLParam(r, "metricID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Metric not found"))
			return
		}

		var patch models.MetricPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode metric request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		metric := h.metricRepo.Update(metricID, patch)
		if metric == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Metric not found"))
			return
		}

		h.responder.WriteSuccess(w, metric, "Metric updated successfully")
	}
}

func (h metricHandler) deleteMetric() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricID, err := uuid.Parse(chi.URLParam(r, "metricID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Metric not found"))
			return
		}

		if !h.metricRepo.Delete(metricID) {
			h.responder.WriteError(w, errs.NewNotFoundError("Metric not found"))
			return
		}

		h.responder.WriteMessage(w, "Metric deleted successfully")
	}
}
