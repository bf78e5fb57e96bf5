package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-provider/internal/adapter"
	"github.com/MKhiriev/go-pass-provider/internal/config"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
)

var errEmptyMasterPassword = errors.New("master password must not be empty")

// adapterFactory builds the API client once flags and config are resolved.
type adapterFactory func(cfg config.Adapter, log *logger.Logger) (adapter.ProviderAdapter, error)

// cli carries state shared by every subcommand.
type cli struct {
	newAdapter adapterFactory
	provider   adapter.ProviderAdapter
	log        *logger.Logger

	address    string
	timeout    time.Duration
	configPath string
}

func newRootCommand(newAdapter adapterFactory, log *logger.Logger) *cobra.Command {
	c := &cli{newAdapter: newAdapter, log: log}

	root := &cobra.Command{
		Use:           "providerctl",
		Short:         "Inspect and drive a running go-pass-provider daemon",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.connect()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.address, "address", "a", "", "provider API address (host:port or URL)")
	flags.DurationVar(&c.timeout, "timeout", 0, "request timeout (e.g. 10s)")
	flags.StringVarP(&c.configPath, "config", "c", "", "JSON config file path")

	root.AddCommand(
		c.versionCommand(),
		c.accountsCommand(),
		c.settingsCommand(),
		c.vaultCommand(),
		c.lifecycleCommand(),
		c.credentialsCommand(),
	)

	return root
}

func (c *cli) connect() error {
	cfg, err := config.GetClientConfig(&config.StructuredConfig{
		Adapter: config.Adapter{
			HTTPAddress:    c.address,
			RequestTimeout: c.timeout,
		},
		JSONFilePath: c.configPath,
	})
	if err != nil {
		return err
	}

	c.provider, err = c.newAdapter(cfg.Adapter, c.log)
	if err != nil {
		return fmt.Errorf("error creating provider client: %w", err)
	}
	return nil
}

// readSecret reads one line from in. Secrets never come from flags so they
// stay out of shell history.
func readSecret(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading master password: %w", err)
	}

	secret := strings.TrimRight(line, "\r\n")
	if secret == "" {
		return "", errEmptyMasterPassword
	}
	return secret, nil
}
