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

type eventHandler struct {
	responder        Responder
	logger           zerolog.Logger
	eventRepo        *database.EventRepo
	registrationRepo *database.EventRegistrationRepo
}

func newEventHandler(eventRepo *database.EventRepo, registrationRepo *database.EventRegistrationRepo) eventHandler {
	logger := log.With().Str("handlerName", "eventHandler").Logger()

	return eventHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
	}
}

// getAllEvents returns every event, public.
func (h eventHandler) getAllEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events := h.eventRepo.FindAll()
		h.responder.WriteSuccess(w, events, "Events retrieved successfully")
	}
}

// registerForEvent records a signup for an event. Registration is refused
// for events whose status is "past"; nothing is stored in that case.
func (h eventHandler) registerForEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := uuid.Parse(chi.URLParam(r, "eventID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Event not found"))
			return
		}

		var body struct {
			Name       string `json:"name"`
			RollNumber string `json:"rollNumber"`
			Branch     string `json:"branch"`
			Email      string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if body.Name == "" || body.RollNumber == "" || body.Branch == "" || body.Email == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name, rollNumber, branch and email are required"))
			return
		}

		event := h.eventRepo.FindByID(eventID)
		if event == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Event not found"))
			return
		}
		if event.Status == "past" {
			h.responder.WriteError(w, errs.NewBadRequestError("Registration is closed for past events"))
			return
		}

		registration := h.registrationRepo.Add(models.InsertEventRegistration{
			EventID:    eventID,
			Name:       body.Name,
			RollNumber: body.RollNumber,
			Branch:     body.Branch,
			Email:      body.Email,
		})

		// TODO: send the confirmation email the success message promises.

		h.responder.WriteSuccess(w, registration,
			"Registration successful. An email has been sent regarding your registration.")
	}
}

// createEvent creates a new event; admin only.
func (h eventHandler) createEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft models.InsertEvent
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode event request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if draft.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}
		if draft.Date == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("date is required"))
			return
		}

		event := h.eventRepo.Add(draft)
		h.responder.WriteSuccess(w, event, "Event created successfully")
	}
}

// updateEvent merges the provided fields into an existing event.
func (h eventHandler) updateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := uuid.Parse(chi.URLParam(r, "eventID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Event not found"))
			return
		}

		var patch models.EventPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode event request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		event := h.eventRepo.Update(eventID, patch)
		if event == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Event not found"))
			return
		}

		h.responder.WriteSuccess(w, event, "Event updated successfully")
	}
}

// deleteEvent removes an event. Its registrations are kept; there is no
// cascade.
func (h eventHandler) deleteEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := uuid.Parse(chi.URLParam(r, "eventID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Event not found"))
			return
		}

		if !h.eventRepo.Delete(eventID) {
			h.responder.WriteError(w, errs.NewNotFoundError("Event not found"))
			return
		}

		h.responder.WriteMessage(w, "Event deleted successfully")
	}
}

// getEventRegistrations lists an event's signups; admin only.
func (h eventHandler) getEventRegistrations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := uuid.Parse(chi.URLParam(r, "eventID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Event not found"))
			return
		}

		registrations := h.registrationRepo.FindByEvent(eventID)
		h.responder.WriteSuccess(w, registrations, "Registrations retrieved successfully")
	}
}
