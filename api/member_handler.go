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

type memberHandler struct {
	responder  Responder
	logger     zerolog.Logger
	memberRepo *database.MemberRepo
}

func newMemberHandler(memberRepo *database.MemberRepo) memberHandler {
	logger := log.With().Str("handlerName", "memberHandler").Logger()

	return memberHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		memberRepo: memberRepo,
	}
}

// getCurrentMembers returns active members only; alumni stay hidden from
// the public page.
func (h memberHandler) getCurrentMembers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members := h.memberRepo.FindCurrent()
		h.responder.WriteSuccess(w, members, "Members retrieved successfully")
	}
}

func (h memberHandler) createMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft models.InsertMember
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode member request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if draft.Name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name is required"))
			return
		}

		member := h.memberRepo.Add(draft)
		h.responder.WriteSuccess(w, member, "Member added successfully")
	}
}

func (h memberHandler) updateMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := uuid.Parse(chi.URLParam(r, "memberID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Member not found"))
			return
		}

		var patch models.MemberPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode member request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		member := h.memberRepo.Update(memberID, patch)
		if member == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Member not found"))
			return
		}

		h.responder.WriteSuccess(w, member, "Member updated successfully")
	}
}

func (h memberHandler) deleteMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := uuid.Parse(chi.URLParam(r, "memberID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Member not found"))
			return
		}

		if !h.memberRepo.Delete(memberID) {
			h.responder.WriteError(w, errs.NewNotFoundError("Member not found"))
			return
		}

		h.responder.WriteMessage(w, "Member deleted successfully")
	}
}
