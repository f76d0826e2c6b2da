package http

import (
	"net/http"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/utils"
)

func (h *Handler) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.LeaderboardService.Leaderboard(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getLeaderboard").Msg("error building leaderboard")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
