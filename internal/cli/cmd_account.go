package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-prompt-keeper/internal/service"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
)

var errEmptyPassword = errors.New("password is required")

func (rt *runtime) syncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Pull remote changes and push pending local ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, owned := utils.OwnerFromContext(rt.ctx); !owned {
				return fmt.Errorf("sync: %w", service.ErrNoActiveOwner)
			}
			if err := rt.services().Sync.StartSession(rt.ctx); err != nil {
				return fmt.Errorf("sync: %w", err)
			}
			printOK(cmd.OutOrStdout(), "Synchronized")
			return nil
		},
	}
}

type signInFunc func(ctx context.Context, login, password string) (string, error)

// accountCommand builds login and register, which differ only in the
// session call.
func (rt *runtime) accountCommand(use, short, done string, call func() signInFunc) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   use + " <login>",
		Short: short,
		Long: short + `. Without --password the password is read as one line
from standard input. The session is kept on this device until logout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				var err error
				if password, err = readLine(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			if password == "" {
				return errEmptyPassword
			}

			ownerID, err := call()(rt.ctx, args[0], password)
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			ctx := utils.WithOwner(rt.ctx, ownerID)
			if err = rt.services().Sync.StartSession(ctx); err != nil {
				rt.log.Warn().Err(err).Str("func", "runtime.accountCommand").Msg("first sync failed, changes stay pending")
			}
			printOK(cmd.OutOrStdout(), "%s as %s", done, args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func (rt *runtime) loginCommand() *cobra.Command {
	return rt.accountCommand("login", "Sign in to the sync server", "Signed in",
		func() signInFunc { return rt.services().Session.Login })
}

func (rt *runtime) registerCommand() *cobra.Command {
	return rt.accountCommand("register", "Create a sync account and sign in", "Registered",
		func() signInFunc { return rt.services().Session.Register })
}

func (rt *runtime) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session; local data stays on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rt.services().Session.Logout(rt.ctx); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			printOK(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func (rt *runtime) adoptCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "adopt",
		Short:       "Move prompts created without an account into the signed in account",
		Args:        cobra.NoArgs,
		Annotations: pushes(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := rt.services().Sync.AdoptLocalData(rt.ctx)
			if err != nil {
				return fmt.Errorf("adopt: %w", err)
			}
			printOK(cmd.OutOrStdout(), "Moved %d item(s) into the account", n)
			return nil
		},
	}
}

func (rt *runtime) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Start the interactive browser",
		Args:  cobra.NoArgs,
		RunE:  rt.runBrowse,
	}
}

func (rt *runtime) runBrowse(cmd *cobra.Command, _ []string) error {
	return rt.app.Run(cmd.Context())
}

func (rt *runtime) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: noApp(),
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), rt.build.String())
		},
	}
}
