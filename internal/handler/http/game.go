package http

import (
	"net/http"

	"github.com/MKhiriev/go-save-keeper/internal/app"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/utils"
	"github.com/MKhiriev/go-save-keeper/models"
)

func (h *Handler) saveGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, found := utils.GetUsernameFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.saveGame").Msg("no username in context")
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var record models.SealedRecord
	if err := utils.ReadJSON(r, &record); err != nil {
		log.Err(err).Str("func", "*Handler.saveGame").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.SaveService.StoreRecord(ctx, username, record); err != nil {
		log.Err(err).Str("func", "*Handler.saveGame").Str("username", username).Msg("error storing sealed record")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) loadGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, found := utils.GetUsernameFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.loadGame").Msg("no username in context")
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	record, err := h.services.SaveService.LoadRecord(ctx, username)
	if err != nil {
		log.Err(err).Str("func", "*Handler.loadGame").Str("username", username).Msg("error loading sealed record")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}
