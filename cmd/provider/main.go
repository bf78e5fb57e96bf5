package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pass-provider/internal/config"
	"github.com/MKhiriev/go-pass-provider/internal/credential"
	"github.com/MKhiriev/go-pass-provider/internal/crypto"
	handler "github.com/MKhiriev/go-pass-provider/internal/handler/http"
	"github.com/MKhiriev/go-pass-provider/internal/intent"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/server"
	"github.com/MKhiriev/go-pass-provider/internal/service"
	"github.com/MKhiriev/go-pass-provider/internal/store"
	"github.com/MKhiriev/go-pass-provider/internal/workers"
	"github.com/MKhiriev/go-pass-provider/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	log := logger.NewLogger("go-pass-provider")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.Log.Level)

	if err = run(context.Background(), cfg, info, log); err != nil {
		log.Error().Err(err).Msg("provider stopped with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, info models.AppBuildInfo, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	sdk := crypto.NewVaultSDK(crypto.NewKeyChain(), log)
	services := service.NewServices(storages, sdk, cfg, log)

	handles, err := intent.NewManager(cfg.App)
	if err != nil {
		return fmt.Errorf("error creating activation handle manager: %w", err)
	}

	credentials := credential.NewPipeline(services.Auth, services.Vault, services.Autofill, handles, log)

	h := handler.NewHandler(services, credentials, handles, info.VersionOr(cfg.App.Version), log)

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	bg := workers.NewWorkers(log, services.LockManager)

	// the server owns signal handling; its return stops the workers
	g, gctx := errgroup.WithContext(ctx)
	workersCtx, stopWorkers := context.WithCancel(gctx)
	g.Go(func() error {
		defer stopWorkers()
		return srv.RunServer(gctx)
	})
	g.Go(func() error {
		if err := bg.Run(workersCtx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("background workers: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
