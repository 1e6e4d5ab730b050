package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/agenda-backend/internal/domain"
)

func newContactsCommand(opts *RootOptions, open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Inspect the contact graph",
	}
	cmd.AddCommand(newContactsCheckCommand(opts, open))
	return cmd
}

// newContactsCheckCommand reports contacts of a user that do not list the
// user back. It exits non-zero when any are found.
func newContactsCheckCommand(opts *RootOptions, open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "check <username>",
		Short: "Verify that a user's contact list is symmetric",
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

			broken, err := b.Contacts.AsymmetricContacts(cmd.Context(), u.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(broken) == 0 {
				fmt.Fprintf(out, "%s  symmetric\n", u.Username)
				return nil
			}
			for _, id := range broken {
				fmt.Fprintf(out, "%s  lists %s  not listed back\n", u.Username, id)
			}
			return fmt.Errorf("%s has %d asymmetric contacts: %w", u.Username, len(broken), domain.ErrInternal)
		},
	}
}
