package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/models"
)

type cipherRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCipherRepository returns a CipherRepository backed by db.
func NewCipherRepository(db *DB, log *logger.Logger) CipherRepository {
	return &cipherRepository{db: db, logger: log}
}

// SaveCipher inserts the cipher or replaces the stored one with the same id.
// A cipher owned by another user is never overwritten.
func (r *cipherRepository) SaveCipher(ctx context.Context, cipher models.Cipher) error {
	log := logger.FromContext(ctx)

	query, args, err := upsertCipherQuery(cipher)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "cipherRepository.SaveCipher").
			Str("user_id", cipher.UserID).
			Str("cipher_id", cipher.ID).
			Msg("error saving cipher")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		log.Error().
			Str("func", "cipherRepository.SaveCipher").
			Str("user_id", cipher.UserID).
			Str("cipher_id", cipher.ID).
			Msg("cipher id belongs to another user")
		return ErrCipherNotSaved
	}
	return nil
}

func (r *cipherRepository) GetCipher(ctx context.Context, userID, cipherID string) (models.Cipher, error) {
	query, args, err := selectCipherQuery(userID, cipherID)
	if err != nil {
		return models.Cipher{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	cipher, err := scanCipher(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Cipher{}, ErrCipherNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cipherRepository.GetCipher").
			Str("user_id", userID).
			Str("cipher_id", cipherID).
			Msg("error selecting cipher")
		return models.Cipher{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return cipher, nil
}

func (r *cipherRepository) ListCiphers(ctx context.Context, userID string, filter CipherFilter) ([]models.Cipher, error) {
	log := logger.FromContext(ctx)

	query, args, err := listCiphersQuery(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "cipherRepository.ListCiphers").Str("user_id", userID).Msg("error selecting ciphers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ciphers []models.Cipher
	for rows.Next() {
		cipher, err := scanCipher(rows)
		if err != nil {
			log.Err(err).Str("func", "cipherRepository.ListCiphers").Str("user_id", userID).Msg("error scanning cipher")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ciphers = append(ciphers, cipher)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return ciphers, nil
}

func (r *cipherRepository) DeleteCipher(ctx context.Context, userID, cipherID string) error {
	query, args, err := deleteCipherQuery(userID, cipherID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cipherRepository.DeleteCipher").
			Str("user_id", userID).
			Str("cipher_id", cipherID).
			Msg("error deleting cipher")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrCipherNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCipher(row rowScanner) (models.Cipher, error) {
	var (
		c          models.Cipher
		cipherType int
	)
	err := row.Scan(&c.ID, &c.UserID, &cipherType, &c.Name, &c.Data, &c.HasFido2, &c.Deleted, &c.RevisionDate)
	c.Type = models.CipherType(cipherType)
	return c, err
}
