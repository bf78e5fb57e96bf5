package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/utils"
	"github.com/MKhiriev/go-pass-provider/models"
)

func (h *Handler) getVaultState(w http.ResponseWriter, r *http.Request) {
	state := h.services.LockManager.VaultStateFlow().Value()
	utils.WriteJSON(w, newVaultStateResponse(state), http.StatusOK)
}

func (h *Handler) lockActiveVault(w http.ResponseWriter, r *http.Request) {
	h.services.LockManager.LockVaultForCurrentUser(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lockVault(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	h.services.LockManager.LockVault(r.Context(), userID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unlockVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var body unlockRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.unlockVault").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := h.services.Unlock.UnlockWithMasterPassword(r.Context(), userID, body.MasterPassword)
	if err != nil {
		log.Err(err).Str("func", "*Handler.unlockVault").Str("user_id", userID).Msg("error unlocking vault")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	status := http.StatusOK
	if result != models.VaultUnlockResultSuccess {
		status = statusFromUnlockResult(result)
	}

	log.Info().Str("user_id", userID).Str("result", result.String()).Msg("vault unlock attempted")
	utils.WriteJSON(w, unlockResponse{Result: result.String()}, status)
}
