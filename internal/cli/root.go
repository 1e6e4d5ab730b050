// Package cli implements agendactl, the operator command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/agenda-backend/internal/app"
	"github.com/heartmarshall/agenda-backend/internal/config"
	"github.com/heartmarshall/agenda-backend/internal/domain"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
}

type accountStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
}

type accountGuard interface {
	Lock(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	Unlock(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type contactAuditor interface {
	AsymmetricContacts(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
}

// Backend is what the account and contact commands operate on.
type Backend struct {
	Users    accountStore
	Guard    accountGuard
	Contacts contactAuditor
	Close    func()
}

// Opener connects a Backend from the loaded configuration.
type Opener func(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error)

// OpenApp wires a Backend through the full application graph so account
// changes notify users exactly as the HTTP API does.
func OpenApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error) {
	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Backend{Users: a.Users, Guard: a.Guard, Contacts: a.Contacts, Close: a.Close}, nil
}

// NewRootCommand creates the agendactl root command.
func NewRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "agendactl",
		Short:         "Operate an agenda backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to config.yaml (default: $CONFIG_PATH or ./config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newUserCommand(opts, open))
	cmd.AddCommand(newContactsCommand(opts, open))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
			return err
		},
	}
}

// loadConfig reads configuration and builds a logger on the command's
// error stream.
func loadConfig(opts *RootOptions, stderr io.Writer) (*config.Config, *slog.Logger, error) {
	path := opts.ConfigPath
	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFrom(path)
	}
	if err != nil {
		return nil, nil, err
	}

	logCfg := cfg.Log
	logCfg.Format = "text"
	if opts.Verbose {
		logCfg.Level = "debug"
	} else {
		logCfg.Level = "warn"
	}
	return cfg, app.NewLoggerTo(stderr, logCfg), nil
}
