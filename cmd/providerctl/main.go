// providerctl is the operator CLI for a running go-pass-provider daemon.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-provider/internal/adapter"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
)

func main() {
	log := logger.NewCLILogger("providerctl")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCommand(adapter.NewHTTPProviderAdapter, log)
	if err := root.ExecuteContext(ctx); err != nil {
		// cobra has already printed the error
		stop()
		os.Exit(1)
	}
}
