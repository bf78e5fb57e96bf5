package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-provider/internal/config"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
)

// Storages groups the repositories that share one vault database.
type Storages struct {
	DB                 *DB
	AuthDiskSource     AuthDiskSource
	SettingsDiskSource SettingsDiskSource
	CipherRepository   CipherRepository
}

// NewStorages connects to the database, applies migrations and loads the
// stored user state.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	storages := &Storages{
		DB:                 db,
		AuthDiskSource:     NewAuthDiskSource(db, log),
		SettingsDiskSource: NewSettingsDiskSource(db, log),
		CipherRepository:   NewCipherRepository(db, log),
	}

	if err = storages.AuthDiskSource.Load(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return storages, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	return s.DB.Close()
}
