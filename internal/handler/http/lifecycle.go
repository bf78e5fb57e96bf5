package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
)

// setLifecycle records whether the hosting app is visible. Backgrounding
// starts the vault timeout clocks.
func (h *Handler) setLifecycle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body lifecycleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.setLifecycle").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	state, err := body.toModel()
	if err != nil {
		log.Err(err).Str("func", "*Handler.setLifecycle").Msg("invalid lifecycle state")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.services.Foreground.SetForegroundState(state)
	log.Debug().Str("state", state.String()).Msg("app lifecycle updated")

	w.WriteHeader(http.StatusNoContent)
}
