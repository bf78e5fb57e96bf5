package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-provider/internal/credential"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/utils"
	"github.com/MKhiriev/go-pass-provider/models"
)

const (
	saveLoginFailedMessage = "Unable to save the password."
	readLoginFailedMessage = "Unable to read the password."
	vaultLockedMessage     = "The vault is locked."
)

// activityRecorder is the activity host of a single completion request.
type activityRecorder struct {
	code     models.ActivityResultCode
	result   models.ActivityResult
	finished bool
}

func (a *activityRecorder) SetResult(code models.ActivityResultCode, result models.ActivityResult) {
	a.code = code
	a.result = result
}

func (a *activityRecorder) Finish() { a.finished = true }

// complete runs fn against a fresh completion manager and writes whatever
// result it set.
func (h *Handler) complete(w http.ResponseWriter, r *http.Request, fn func(credential.CompletionManager)) {
	host := &activityRecorder{code: models.ActivityResultCanceled}
	fn(credential.NewCompletionManager(host, h.handles, logger.FromRequest(r)))

	if !host.finished || host.code != models.ActivityResultOK {
		logger.FromRequest(r).Error().Str("func", "*Handler.complete").Msg("completion did not finish the activity")
		http.Error(w, "completion was not finished", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, host.result, http.StatusOK)
}

func (h *Handler) completePasskeyRegistration(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body passkeyCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.completePasskeyRegistration").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if _, err := h.handles.ResolveAction(body.Token, credential.ActionCreatePasskey); err != nil {
		log.Err(err).Str("func", "*Handler.completePasskeyRegistration").Msg("rejected activation handle")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	result, err := body.registrationResult()
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.complete(w, r, func(m credential.CompletionManager) { m.CompleteFido2Registration(result) })
}

func (h *Handler) completePasskeyAssertion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body passkeyCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.completePasskeyAssertion").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if _, err := h.handles.ResolveAction(body.Token, credential.ActionGetPasskey); err != nil {
		log.Err(err).Str("func", "*Handler.completePasskeyAssertion").Msg("rejected activation handle")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	result, err := body.assertionResult()
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.complete(w, r, func(m credential.CompletionManager) { m.CompleteFido2Assertion(result) })
}

func (h *Handler) completePasswordRegistration(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body passwordRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.completePasswordRegistration").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	claims, err := h.handles.ResolveAction(body.Token, credential.ActionCreatePassword)
	if err != nil {
		log.Err(err).Str("func", "*Handler.completePasswordRegistration").Msg("rejected activation handle")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	login := models.LoginCredential{Name: body.Name, Username: body.Username, Password: body.Password}

	var result models.PasswordRegisterCredentialResult = models.PasswordRegisterSuccess{}
	if !h.services.LockManager.IsVaultUnlocked(claims.Extras.UserID) {
		log.Warn().
			Str("func", "*Handler.completePasswordRegistration").
			Str("user_id", claims.Extras.UserID).
			Msg("vault locked, login not saved")
		result = models.PasswordRegisterError{Message: vaultLockedMessage}
	} else if _, err := h.services.Vault.SaveLogin(r.Context(), claims.Extras.UserID, login, body.URI); err != nil {
		log.Err(err).
			Str("func", "*Handler.completePasswordRegistration").
			Str("user_id", claims.Extras.UserID).
			Msg("failed to save login")
		result = models.PasswordRegisterError{Message: saveLoginFailedMessage}
	}

	h.complete(w, r, func(m credential.CompletionManager) { m.CompletePasswordRegistration(result) })
}

func (h *Handler) completePasswordAssertion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body passwordAssertionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.completePasswordAssertion").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	claims, err := h.handles.ResolveAction(body.Token, credential.ActionGetPassword)
	if err != nil {
		log.Err(err).Str("func", "*Handler.completePasswordAssertion").Msg("rejected activation handle")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if !h.services.LockManager.IsVaultUnlocked(claims.Extras.UserID) {
		log.Warn().
			Str("func", "*Handler.completePasswordAssertion").
			Str("user_id", claims.Extras.UserID).
			Msg("vault locked, login not read")
		result := models.PasswordAssertionError{Message: vaultLockedMessage}
		h.complete(w, r, func(m credential.CompletionManager) { m.CompletePasswordAssertion(result) })
		return
	}

	var result models.PasswordCredentialAssertionResult
	login, err := h.services.Vault.GetLogin(r.Context(), claims.Extras.UserID, claims.Extras.CipherID)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.completePasswordAssertion").
			Str("user_id", claims.Extras.UserID).
			Msg("failed to read login")
		result = models.PasswordAssertionError{Message: readLoginFailedMessage}
	} else {
		result = models.PasswordAssertionSuccess{Credential: login}
	}

	h.complete(w, r, func(m credential.CompletionManager) { m.CompletePasswordAssertion(result) })
}

// completeUnlock resumes a get request that was answered with the unlock
// action: it unlocks the handle's vault and answers with both halves of
// the get request.
func (h *Handler) completeUnlock(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body unlockCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.completeUnlock").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	claims, err := h.handles.ResolveAction(body.Token, credential.ActionUnlockAccount)
	if err != nil {
		log.Err(err).Str("func", "*Handler.completeUnlock").Msg("rejected activation handle")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	request, err := body.Request.toModel()
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	userID := claims.Extras.UserID
	if userID == "" {
		http.Error(w, ErrEmptyUserID.Error(), statusFromError(ErrEmptyUserID))
		return
	}

	if !h.services.LockManager.IsVaultUnlocked(userID) {
		result, err := h.services.Unlock.UnlockWithMasterPassword(r.Context(), userID, body.MasterPassword)
		if err != nil {
			log.Err(err).Str("func", "*Handler.completeUnlock").Str("user_id", userID).Msg("unlock failed")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		if result != models.VaultUnlockResultSuccess {
			utils.WriteJSON(w, unlockResponse{Result: result.String()}, statusFromUnlockResult(result))
			return
		}
	}

	fido2, password := h.credentials.ResumeGetCredentialRequest(r.Context(), userID, request)
	if r.Context().Err() != nil {
		return
	}

	h.complete(w, r, func(m credential.CompletionManager) { m.CompleteGetCredentialRequest(fido2, password) })
}
