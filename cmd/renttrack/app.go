package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/client"
	"github.com/iliyamo/renttrack/internal/config"
	"github.com/iliyamo/renttrack/internal/kv"
	"github.com/iliyamo/renttrack/internal/logger"
	"github.com/iliyamo/renttrack/internal/mockapi"
)

// app carries the state shared by every subcommand.
type app struct {
	mock    bool
	remote  bool
	baseURL string
	verbose bool

	cfg     config.Config
	client  *client.Client
	closeKV func() error
}

func (a *app) bindFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.BoolVar(&a.mock, "mock", false, "use the built-in simulation (overrides USE_MOCK)")
	f.BoolVar(&a.remote, "remote", false, "talk to the server at --base-url (overrides USE_MOCK)")
	f.StringVar(&a.baseURL, "base-url", "", "server API address (default API_BASE_URL)")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "log background activity to stdout")
}

// open loads the environment and builds the client once per invocation.
// The session lives in KV_FILE unless another shared backend is
// configured, so a login survives between invocations.
func (a *app) open(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.mock && a.remote {
		return errors.New("--mock and --remote are mutually exclusive")
	}
	if a.mock {
		cfg.UseMock = true
	}
	if a.remote {
		cfg.UseMock = false
	}
	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}
	if cfg.KVBackend == config.KVMemory {
		cfg.KVBackend = config.KVFile
	}
	a.cfg = cfg

	log := zap.NewNop()
	if a.verbose {
		if log, err = logger.Init(cfg.LogLevel); err != nil {
			return err
		}
	}

	store, closeKV, err := kv.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	a.closeKV = closeKV

	opts := client.Options{
		UseMock:      cfg.UseMock,
		BaseURL:      cfg.BaseURL,
		HTTPClient:   &http.Client{Timeout: cfg.HTTPTimeout},
		KV:           store,
		PollInterval: cfg.PollInterval,
		PollAttempts: cfg.PollAttempts,
	}
	if cfg.UseMock {
		if opts.Mock, err = mockapi.OptionsFromConfig(cfg, log); err != nil {
			return err
		}
	}
	a.client, err = client.New(opts)
	return err
}

func (a *app) close() error {
	var errs []error
	if a.client != nil {
		errs = append(errs, a.client.Close())
	}
	if a.closeKV != nil {
		errs = append(errs, a.closeKV())
	}
	return errors.Join(errs...)
}

func (a *app) ctx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitCode maps the error kinds onto distinct process exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, api.ErrNotAuthenticated), errors.Is(err, api.ErrInvalidCredentials):
		return 3
	case errors.Is(err, api.ErrNotFound):
		return 4
	case errors.Is(err, api.ErrValidation):
		return 5
	case errors.Is(err, api.ErrBackendUnavailable), errors.Is(err, api.ErrTimeout):
		return 6
	}
	return 1
}

func notice(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}
