package service

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/MKhiriev/go-pass-provider/internal/config"
	"github.com/MKhiriev/go-pass-provider/internal/crypto"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/store"
	"github.com/MKhiriev/go-pass-provider/internal/utils"
	"github.com/MKhiriev/go-pass-provider/models"
)

type accountService struct {
	disk store.AuthDiskSource
	sdk  crypto.VaultSDK
	kdf  models.Kdf
	ids  *utils.UUIDGenerator

	logger *logger.Logger
}

// NewAccountService returns an AccountService. New accounts use the
// configured Argon2id parameters, falling back to crypto.DefaultKdf.
func NewAccountService(disk store.AuthDiskSource, sdk crypto.VaultSDK, cfg config.Vault, logger *logger.Logger) AccountService {
	return &accountService{
		disk:   disk,
		sdk:    sdk,
		kdf:    kdfFromConfig(cfg),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// CreateAccount provisions key material for a new account, stores it and
// returns the account as it appears in the user state. The new account
// becomes active only when no other account is.
func (s *accountService) CreateAccount(ctx context.Context, request models.NewAccountRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if request.MasterPassword == "" {
		return models.Account{}, ErrInvalidDataProvided
	}
	if _, err := mail.ParseAddress(request.Email); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	keys, err := s.sdk.MakeAccountKeys(request.MasterPassword, request.Email, s.kdf)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("making account keys failed")
		return models.Account{}, fmt.Errorf("making account keys: %w", err)
	}
	keys.UserKey.Zero()

	account := models.Account{
		UserID:     s.ids.Generate(),
		Email:      request.Email,
		Name:       request.Name,
		IsLoggedIn: true,
		Kdf:        s.kdf,
	}

	err = s.disk.SaveAccount(ctx, store.StoredAccount{
		Account:             account,
		EncryptedUserKey:    keys.EncryptedUserKey,
		EncryptedPrivateKey: keys.EncryptedPrivateKey,
	})
	if err != nil {
		log.Err(err).Str("user_id", account.UserID).Msg("saving account failed")
		return models.Account{}, fmt.Errorf("saving account: %w", err)
	}

	if state := s.disk.UserState(); state != nil {
		if saved, ok := state.Account(account.UserID); ok {
			account = saved
		}
	}

	log.Info().Str("user_id", account.UserID).Msg("account created")
	return account, nil
}

func kdfFromConfig(cfg config.Vault) models.Kdf {
	kdf := crypto.DefaultKdf
	if cfg.KDFIterations > 0 {
		kdf.Iterations = cfg.KDFIterations
	}
	if cfg.KDFMemoryKiB > 0 {
		kdf.MemoryKiB = cfg.KDFMemoryKiB
	}
	if cfg.KDFParallelism > 0 {
		kdf.Parallelism = cfg.KDFParallelism
	}
	return kdf
}
