package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/utils"
	"github.com/MKhiriev/go-pass-provider/models"
)

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	state := h.services.Auth.UserState()
	if state == nil {
		state = &models.UserState{Accounts: []models.Account{}}
	}

	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.NewAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	account, err := h.services.Accounts.CreateAccount(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg("error creating account")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Info().Str("user_id", account.UserID).Msg("account created")
	utils.WriteJSON(w, account, http.StatusCreated)
}

func (h *Handler) switchAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body switchAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.switchAccount").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.services.Auth.SwitchAccount(r.Context(), body.UserID); err != nil {
		log.Err(err).Str("func", "*Handler.switchAccount").Str("user_id", body.UserID).Msg("error switching account")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// logoutAccount locks the vault and soft-logs the account out, the same
// as a logout timeout action.
func (h *Handler) logoutAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	h.services.LockManager.LockVault(r.Context(), userID)
	if err := h.services.Logout.SoftLogout(r.Context(), userID); err != nil {
		logger.FromRequest(r).Err(err).
			Str("func", "*Handler.logoutAccount").
			Str("user_id", userID).
			Msg("error logging out")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	utils.WriteJSON(w, h.settingsFor(r, userID), http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var body settingsUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.updateSettings").Msg("invalid settings were passed")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if body.Timeout != nil {
		if err := h.services.Settings.SetVaultTimeout(r.Context(), userID, *body.Timeout); err != nil {
			log.Err(err).Str("func", "*Handler.updateSettings").Str("user_id", userID).Msg("error storing vault timeout")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
	}
	if body.Action != nil {
		if err := h.services.Settings.SetVaultTimeoutAction(r.Context(), userID, *body.Action); err != nil {
			log.Err(err).Str("func", "*Handler.updateSettings").Str("user_id", userID).Msg("error storing vault timeout action")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, h.settingsFor(r, userID), http.StatusOK)
}

func (h *Handler) settingsFor(r *http.Request, userID string) settingsResponse {
	return settingsResponse{
		Timeout: h.services.Settings.VaultTimeoutFlow(r.Context(), userID).Value(),
		Action:  h.services.Settings.VaultTimeoutActionFlow(r.Context(), userID).Value(),
	}
}

// userIDParam reads the {userID} path segment and answers 400 when it is
// blank.
func userIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		http.Error(w, ErrEmptyUserID.Error(), statusFromError(ErrEmptyUserID))
		return "", false
	}
	return userID, true
}
