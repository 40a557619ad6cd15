package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vasavi-eco-club/club-site-backend/errs"
)

// envelope is the uniform response shape consumed by the frontend.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

// Responder writes envelope-shaped JSON responses and keeps error detail on
// the server side.
type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteSuccess writes a 200 envelope with data and a human-readable message.
func (r Responder) WriteSuccess(w http.ResponseWriter, data interface{}, message string) {
	r.writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Message: message})
}

// WriteMessage writes a 200 envelope with no data payload.
func (r Responder) WriteMessage(w http.ResponseWriter, message string) {
	r.writeJSON(w, http.StatusOK, envelope{Success: true, Message: message})
}

// WriteError maps an ApiErr onto its status code. Anything else is logged in
// full and surfaced as a generic 500; clients never see internal detail.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		r.writeJSON(w, http.StatusInternalServerError, envelope{Success: false, Message: "Internal server error"})
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().Msg(apiErr.GetFullError())
	}
	r.writeJSON(w, apiErr.StatusCode, envelope{Success: false, Message: apiErr.Error()})
}

func (r Responder) writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(body)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}
