// Package credential answers the platform's credential-provider requests:
// it routes begin-create and begin-get requests to the passkey and password
// processors, gates them on the vault lock state, and turns the outcome of a
// resumed flow into the platform result.
package credential

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/models"
)

const activeUserRequiredMessage = "Active user is required."

// CredentialProcessor handles begin-create, begin-get and clear-state
// requests from the platform. Each call reports exactly one outcome to
// callback, possibly after it returns.
type CredentialProcessor interface {
	ProcessCreateCredentialRequest(
		ctx context.Context,
		request models.BeginCreateCredentialRequest,
		signal *CancellationSignal,
		callback OutcomeReceiver[*models.BeginCreateCredentialResponse],
	)
	ProcessGetCredentialRequest(
		ctx context.Context,
		request models.BeginGetCredentialRequest,
		signal *CancellationSignal,
		callback OutcomeReceiver[*models.BeginGetCredentialResponse],
	)
	ProcessClearCredentialStateRequest(
		ctx context.Context,
		request models.ClearCredentialStateRequest,
		signal *CancellationSignal,
		callback OutcomeReceiver[struct{}],
	)
}

type credentialProcessor struct {
	auth     AuthRepository
	intents  IntentManager
	fido2    Fido2Processor
	password PasswordProcessor
	logger   *logger.Logger

	// requestCode numbers every activation handle this processor hands out.
	requestCode atomic.Int32
}

// NewCredentialProcessor returns the request router.
func NewCredentialProcessor(
	auth AuthRepository,
	intents IntentManager,
	fido2 Fido2Processor,
	password PasswordProcessor,
	log *logger.Logger,
) CredentialProcessor {
	return &credentialProcessor{
		auth:     auth,
		intents:  intents,
		fido2:    fido2,
		password: password,
		logger:   log,
	}
}

func (p *credentialProcessor) ProcessCreateCredentialRequest(
	ctx context.Context,
	request models.BeginCreateCredentialRequest,
	signal *CancellationSignal,
	callback OutcomeReceiver[*models.BeginCreateCredentialResponse],
) {
	receiver := newOnceReceiver(callback)
	const op = models.CredentialOpCreate

	userState := p.auth.UserState()
	if userState == nil {
		receiver.OnError(UnknownError(op, activeUserRequiredMessage))
		return
	}

	taskCtx, cancel := context.WithCancel(ctx)
	if signal != nil {
		signal.SetOnCancelListener(func() {
			receiver.OnError(CancellationError(op))
			cancel()
		})
	}

	go func() {
		defer cancel()

		response, err := p.create(taskCtx, userState, request)
		switch {
		case taskCtx.Err() != nil:
			receiver.OnError(CancellationError(op))
		case err != nil:
			p.logger.Err(err).
				Str("func", "credentialProcessor.ProcessCreateCredentialRequest").
				Msg("create credential request failed")
			receiver.OnError(toCredentialError(op, err))
		case response == nil:
			receiver.OnError(UnknownError(op, ""))
		default:
			receiver.OnResult(response)
		}
	}()
}

func (p *credentialProcessor) create(
	ctx context.Context,
	userState *models.UserState,
	request models.BeginCreateCredentialRequest,
) (*models.BeginCreateCredentialResponse, error) {
	switch r := request.(type) {
	case models.BeginCreatePublicKeyCredentialRequest:
		return p.fido2.ProcessCreateCredentialRequest(ctx, &p.requestCode, userState, r)
	case *models.BeginCreatePublicKeyCredentialRequest:
		return p.fido2.ProcessCreateCredentialRequest(ctx, &p.requestCode, userState, *r)
	case models.BeginCreatePasswordCredentialRequest:
		return p.password.ProcessCreateCredentialRequest(ctx, &p.requestCode, userState, r)
	case *models.BeginCreatePasswordCredentialRequest:
		return p.password.ProcessCreateCredentialRequest(ctx, &p.requestCode, userState, *r)
	default:
		return nil, nil
	}
}

func (p *credentialProcessor) ProcessGetCredentialRequest(
	ctx context.Context,
	request models.BeginGetCredentialRequest,
	signal *CancellationSignal,
	callback OutcomeReceiver[*models.BeginGetCredentialResponse],
) {
	receiver := newOnceReceiver(callback)
	const op = models.CredentialOpGet

	userState := p.auth.UserState()
	if userState == nil {
		receiver.OnError(UnknownError(op, activeUserRequiredMessage))
		return
	}

	taskCtx, cancel := context.WithCancel(ctx)
	if signal != nil {
		signal.SetOnCancelListener(func() {
			receiver.OnError(CancellationError(op))
			cancel()
		})
	}

	go func() {
		defer cancel()

		response, err := p.get(taskCtx, userState, request)
		switch {
		case taskCtx.Err() != nil:
			receiver.OnError(CancellationError(op))
		case err != nil:
			p.logger.Err(err).
				Str("func", "credentialProcessor.ProcessGetCredentialRequest").
				Msg("get credential request failed")
			receiver.OnError(toCredentialError(op, err))
		default:
			receiver.OnResult(response)
		}
	}()
}

func (p *credentialProcessor) get(
	ctx context.Context,
	userState *models.UserState,
	request models.BeginGetCredentialRequest,
) (*models.BeginGetCredentialResponse, error) {
	account, ok := userState.ActiveAccount()
	if !ok || !account.IsVaultUnlocked {
		intent, err := p.intents.CreatePendingIntent(
			ActionUnlockAccount,
			nextRequestCode(&p.requestCode),
			models.PendingIntentExtras{UserID: userState.ActiveUserID},
		)
		if err != nil {
			return nil, err
		}

		p.logger.Debug().
			Str("user_id", userState.ActiveUserID).
			Msg("vault locked, offering unlock action")

		return &models.BeginGetCredentialResponse{
			AuthenticationActions: []models.AuthenticationAction{
				{Title: unlockActionTitle, PendingIntent: intent},
			},
		}, nil
	}

	var passkeys, passwords []models.CredentialEntry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := p.fido2.ProcessGetCredentialRequest(gctx, &p.requestCode, userState.ActiveUserID, request.PublicKeyOptions())
		passkeys = entries
		return err
	})
	g.Go(func() error {
		entries, err := p.password.ProcessGetCredentialRequest(
			gctx, &p.requestCode, userState.ActiveUserID, request.CallingAppInfo, request.PasswordOptions(),
		)
		passwords = entries
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]models.CredentialEntry, 0, len(passkeys)+len(passwords))
	entries = append(entries, passkeys...)
	entries = append(entries, passwords...)

	return &models.BeginGetCredentialResponse{CredentialEntries: entries}, nil
}

func (p *credentialProcessor) ProcessClearCredentialStateRequest(
	_ context.Context,
	_ models.ClearCredentialStateRequest,
	_ *CancellationSignal,
	callback OutcomeReceiver[struct{}],
) {
	callback.OnError(UnsupportedError(models.CredentialOpClear))
}
