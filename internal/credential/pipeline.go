package credential

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/models"
)

// Pipeline is the request router together with the processors behind it.
// Resumed flows share the router's request code counter.
type Pipeline struct {
	Router CredentialProcessor

	router *credentialProcessor
}

// NewPipeline builds the passkey and password processors and the router
// that fans out to them.
func NewPipeline(
	auth AuthRepository,
	vault VaultRepository,
	autofill AutofillCipherProvider,
	intents IntentManager,
	log *logger.Logger,
	opts ...ProcessorOption,
) *Pipeline {
	router := &credentialProcessor{
		auth:     auth,
		intents:  intents,
		fido2:    NewFido2Processor(vault, intents, log, opts...),
		password: NewPasswordProcessor(autofill, intents, log, opts...),
		logger:   log,
	}
	return &Pipeline{Router: router, router: router}
}

// ResumeGetCredentialRequest reruns both queries of a get request for
// userID after its vault was unlocked. Each half fails independently.
func (p *Pipeline) ResumeGetCredentialRequest(
	ctx context.Context,
	userID string,
	request models.BeginGetCredentialRequest,
) (models.Fido2GetCredentialsResult, models.PasswordGetCredentialsResult) {
	var (
		fido2    models.Fido2GetCredentialsResult
		password models.PasswordGetCredentialsResult
	)

	var wg sync.WaitGroup
	wg.Go(func() {
		entries, err := p.router.fido2.ProcessGetCredentialRequest(ctx, &p.router.requestCode, userID, request.PublicKeyOptions())
		if err != nil {
			fido2 = models.Fido2GetCredentialsError{Message: toCredentialError(models.CredentialOpGet, err).Message}
			return
		}
		fido2 = models.Fido2GetCredentialsSuccess{UserID: userID, Entries: entries}
	})
	wg.Go(func() {
		entries, err := p.router.password.ProcessGetCredentialRequest(
			ctx, &p.router.requestCode, userID, request.CallingAppInfo, request.PasswordOptions(),
		)
		if err != nil {
			password = models.PasswordGetCredentialsError{Message: toCredentialError(models.CredentialOpGet, err).Message}
			return
		}
		password = models.PasswordGetCredentialsSuccess{UserID: userID, Entries: entries}
	})
	wg.Wait()

	return fido2, password
}
