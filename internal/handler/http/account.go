package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-save-keeper/internal/app"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/utils"
	"github.com/MKhiriev/go-save-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.ReadJSON(r, &credentials); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("registration failed")
		if statusFromError(err) == http.StatusInternalServerError {
			http.Error(w, app.MsgRegistrationFailed, http.StatusInternalServerError)
			return
		}
		writeError(w, err)
		return
	}

	h.respondWithToken(w, r, account)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.ReadJSON(r, &credentials); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("login failed")
		if statusFromError(err) == http.StatusInternalServerError {
			http.Error(w, app.MsgLoginFailed, http.StatusInternalServerError)
			return
		}
		writeError(w, err)
		return
	}

	log.Debug().Str("username", account.Username).Msg("account successfully logged in")

	h.respondWithToken(w, r, account)
}

// respondWithToken writes account as JSON with a freshly issued bearer token
// in the Authorization header.
func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, account models.Account) {
	token, err := h.services.AuthService.CreateToken(r.Context(), account)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, account, http.StatusOK)
}
