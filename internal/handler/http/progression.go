// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-save-keeper/internal/app"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/utils"
	"github.com/MKhiriev/go-save-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getProgression(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	progression, err := h.services.ProgressionService.GetProgression(r.Context(), username)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getProgression").Str("username", username).Send()
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, progression, http.StatusOK)
}

// pushProgression stores the counters for the account of the bearer token.
// A push that would lower a stored counter answers 409.
func (h *Handler) pushProgression(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, found := utils.GetUsernameFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.pushProgression").Msg("no username in context")
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var req models.ProgressionPushRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.pushProgression").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	progression, err := h.services.ProgressionService.PushProgression(ctx, username, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pushProgression").Str("username", username).Msg("progression push rejected")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, progression, http.StatusOK)
}
