package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/agenda-backend/internal/domain"
)

func newUserCommand(opts *RootOptions, open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}

	cmd.AddCommand(accountCommand(opts, open, "lock <username>", "Deactivate an account and notify its owner",
		func(ctx context.Context, b *Backend, u *domain.User) (*domain.User, error) {
			return b.Guard.Lock(ctx, u.ID)
		}))

	cmd.AddCommand(accountCommand(opts, open, "unlock <username>", "Reactivate a locked account",
		func(ctx context.Context, b *Backend, u *domain.User) (*domain.User, error) {
			return b.Guard.Unlock(ctx, u.ID)
		}))

	cmd.AddCommand(accountCommand(opts, open, "promote <username>", "Grant the admin role",
		func(ctx context.Context, b *Backend, u *domain.User) (*domain.User, error) {
			if u.Role.IsAdmin() {
				return nil, fmt.Errorf("%s is already an admin: %w", u.Username, domain.ErrConflict)
			}
			return b.Users.SetRole(ctx, u.ID, domain.UserRoleAdmin)
		}))

	cmd.AddCommand(accountCommand(opts, open, "demote <username>", "Revoke the admin role",
		func(ctx context.Context, b *Backend, u *domain.User) (*domain.User, error) {
			if !u.Role.IsAdmin() {
				return nil, fmt.Errorf("%s is not an admin: %w", u.Username, domain.ErrConflict)
			}
			return b.Users.SetRole(ctx, u.ID, domain.UserRoleUser)
		}))

	return cmd
}

type accountAction func(ctx context.Context, b *Backend, u *domain.User) (*domain.User, error)

func accountCommand(opts *RootOptions, open Opener, use, short string, action accountAction) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := strings.TrimSpace(args[0])
			if username == "" {
				return fmt.Errorf("username: %w", domain.ErrValidation)
			}

			cfg, log, err := loadConfig(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			b, err := open(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer b.Close()

			u, err := b.Users.GetByUsername(cmd.Context(), username)
			if err != nil {
				return fmt.Errorf("find %s: %w", username, err)
			}

			updated, err := action(cmd.Context(), b, u)
			if err != nil {
				return err
			}

			state := "active"
			if !updated.IsActive {
				state = "locked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  role=%s  %s\n", updated.Username, updated.Role, state)
			return nil
		},
	}
}
