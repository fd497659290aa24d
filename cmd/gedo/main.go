// Command gedo is the terminal client for the GEDO records-management
// backend. It drives the same REST API the web screens use: session
// lifecycle, dashboard, search, records, batch import and the admin
// resources.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/config"
	"github.com/joao-primo/gedo-cimcop-sub000/internal/gedo"
	"github.com/joao-primo/gedo-cimcop-sub000/internal/logging"
	"github.com/joao-primo/gedo-cimcop-sub000/internal/session"
	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

var (
	// Global flags
	serverURL string
	verbose   bool
	timeout   time.Duration

	// Logger
	logger *zap.Logger

	// API bundle, built once per invocation
	api *gedo.API
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gedo",
	Short: "GEDO - client for the records-management backend",
	Long: `gedo talks to the GEDO document/records-management backend.

Authenticate with "gedo login"; the session token is stored under
~/.gedo and attached to every subsequent call until logout or expiry.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		api, err = buildAPI()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// buildAPI wires config -> session store -> transport -> façades.
func buildAPI() (*gedo.API, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if timeout > 0 {
		cfg.Timeout = timeout
	}

	tokenPath := cfg.TokenFile
	if tokenPath == "" {
		tokenPath, err = session.DefaultTokenPath()
		if err != nil {
			return nil, err
		}
	}
	store, err := session.NewFileStore(tokenPath)
	if err != nil {
		return nil, err
	}

	client := transport.New(transport.Config{
		BaseURL:           cfg.ServerURL,
		Timeout:           cfg.Timeout,
		Store:             store,
		OnSessionExpired:  printSessionExpired,
		Logger:            logger,
		RequestsPerSecond: cfg.RequestsPerSecond,
	})
	return gedo.New(client), nil
}

// exitError converts a transport error into the message a screen would
// show: the backend message when present, else a generic fallback.
func exitError(err error) error {
	var httpErr *transport.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Message != "" {
			return errors.New(httpErr.Message)
		}
		return fmt.Errorf("o servidor rejeitou a operação (HTTP %d)", httpErr.Status)
	}
	var netErr *transport.NetworkError
	if errors.As(err, &netErr) {
		return errors.New("sem conexão com o servidor")
	}
	var toErr *transport.TimeoutError
	if errors.As(err, &toErr) {
		return errors.New("tempo limite excedido")
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "backend base URL (overrides config and GEDO_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging, including per-request transport logs")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "default request deadline (0 = configured value)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
