package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNoActiveCredential = errors.New("no active credential")

func (rt *runtime) credentialCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "credential",
		Aliases: []string{"credentials", "key"},
		Short:   "Manage provider API keys, stored encrypted on this device",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List credentials without their secrets",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				creds, err := rt.services().Credentials.ListCredentials(rt.ctx)
				if err != nil {
					return fmt.Errorf("list credentials: %w", err)
				}
				if rt.flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), creds)
				}
				rows := make([][]string, 0, len(creds))
				for _, c := range creds {
					active := ""
					if c.IsActive {
						active = "*"
					}
					rows = append(rows, []string{active, shortID(c.ID), c.Name, formatTime(c.CreatedAt)})
				}
				printTable(cmd.OutOrStdout(), "credential", []string{"", "ID", "NAME", "ADDED"}, rows)
				return nil
			},
		},
		rt.credentialAddCommand(),
		&cobra.Command{
			Use:   "activate <credential>",
			Short: "Make a credential the active one",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := rt.findCredential(rt.ctx, args[0])
				if err != nil {
					return err
				}
				if err = rt.services().Credentials.ActivateCredential(rt.ctx, c.ID); err != nil {
					return fmt.Errorf("activate credential: %w", err)
				}
				printOK(cmd.OutOrStdout(), "Credential %q is active", c.Name)
				return nil
			},
		},
		&cobra.Command{
			Use:     "delete <credential>",
			Aliases: []string{"rm"},
			Short:   "Delete a credential",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := rt.findCredential(rt.ctx, args[0])
				if err != nil {
					return err
				}
				if err = rt.services().Credentials.DeleteCredential(rt.ctx, c.ID); err != nil {
					return fmt.Errorf("delete credential: %w", err)
				}
				printOK(cmd.OutOrStdout(), "Deleted credential %q", c.Name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "copy",
			Short: "Copy the active secret to the clipboard",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				secret, ok, err := rt.services().Credentials.ActiveSecret(rt.ctx)
				if err != nil {
					return fmt.Errorf("read active secret: %w", err)
				}
				if !ok {
					return errNoActiveCredential
				}
				if err = writeClipboard(secret); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				printOK(cmd.OutOrStdout(), "Copied the active secret to the clipboard")
				return nil
			},
		},
	)
	return cmd
}

func (rt *runtime) credentialAddCommand() *cobra.Command {
	var secret string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Store an API key; the first one becomes active",
		Long: `Store an API key under a name. Without --secret the key is read as one
line from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Secret: ")
				var err error
				if secret, err = readLine(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			c, err := rt.services().Credentials.AddCredential(rt.ctx, args[0], secret)
			if err != nil {
				return fmt.Errorf("add credential: %w", err)
			}
			if rt.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), c)
			}
			printOK(cmd.OutOrStdout(), "Stored credential %q (%s)", c.Name, c.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "the API key")
	return cmd
}
