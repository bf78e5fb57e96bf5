package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-provider/internal/credential"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/utils"
	"github.com/MKhiriev/go-pass-provider/models"
)

func (h *Handler) beginCreateCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body beginCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.beginCreateCredential").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	request, err := body.toModel()
	if err != nil {
		log.Err(err).Str("func", "*Handler.beginCreateCredential").Msg("unsupported create request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	ctx := r.Context()
	response, credErr := awaitOutcome(ctx, func(signal *credential.CancellationSignal, receiver credential.OutcomeReceiver[*models.BeginCreateCredentialResponse]) {
		h.credentials.Router.ProcessCreateCredentialRequest(ctx, request, signal, receiver)
	})
	if credErr != nil {
		log.Info().Err(credErr).Str("func", "*Handler.beginCreateCredential").Msg("create request ended with an error")
		writeCredentialError(w, credErr)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) beginGetCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body beginGetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.beginGetCredential").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	request, err := body.toModel()
	if err != nil {
		log.Err(err).Str("func", "*Handler.beginGetCredential").Msg("unsupported get request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	ctx := r.Context()
	response, credErr := awaitOutcome(ctx, func(signal *credential.CancellationSignal, receiver credential.OutcomeReceiver[*models.BeginGetCredentialResponse]) {
		h.credentials.Router.ProcessGetCredentialRequest(ctx, request, signal, receiver)
	})
	if credErr != nil {
		log.Info().Err(credErr).Str("func", "*Handler.beginGetCredential").Msg("get request ended with an error")
		writeCredentialError(w, credErr)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) clearCredentialState(w http.ResponseWriter, r *http.Request) {
	var body clearRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.clearCredentialState").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	request := models.ClearCredentialStateRequest{CallingAppInfo: body.CallingApp}
	_, credErr := awaitOutcome(ctx, func(signal *credential.CancellationSignal, receiver credential.OutcomeReceiver[struct{}]) {
		h.credentials.Router.ProcessClearCredentialStateRequest(ctx, request, signal, receiver)
	})
	if credErr != nil {
		writeCredentialError(w, credErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// awaitOutcome starts a provider request and blocks until its receiver
// fires. When ctx ends first the signal is cancelled, which still yields
// exactly one outcome.
func awaitOutcome[R any](
	ctx context.Context,
	start func(signal *credential.CancellationSignal, receiver credential.OutcomeReceiver[R]),
) (R, *models.CredentialError) {
	results := make(chan R, 1)
	errs := make(chan *models.CredentialError, 1)
	signal := credential.NewCancellationSignal()

	start(signal, credential.OutcomeFuncs[R]{
		Result: func(result R) { results <- result },
		Error:  func(err *models.CredentialError) { errs <- err },
	})

	var zero R
	select {
	case result := <-results:
		return result, nil
	case err := <-errs:
		return zero, err
	case <-ctx.Done():
		signal.Cancel()
	}

	select {
	case result := <-results:
		return result, nil
	case err := <-errs:
		return zero, err
	}
}

func writeCredentialError(w http.ResponseWriter, err *models.CredentialError) {
	utils.WriteJSON(w, credentialErrorResponse{Error: err}, statusFromError(err))
}
