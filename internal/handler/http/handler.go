package http

import (
	"github.com/MKhiriev/go-pass-provider/internal/credential"
	"github.com/MKhiriev/go-pass-provider/internal/intent"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/service"
)

// HandleManager issues activation handles and resolves the ones the hosting
// app sends back.
type HandleManager interface {
	credential.IntentManager
	ResolveAction(token, action string) (*intent.Claims, error)
}

type Handler struct {
	services    *service.Services
	credentials *credential.Pipeline
	handles     HandleManager
	version     string

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	credentials *credential.Pipeline,
	handles HandleManager,
	version string,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		credentials: credentials,
		handles:     handles,
		version:     version,
		logger:      logger,
	}
}
