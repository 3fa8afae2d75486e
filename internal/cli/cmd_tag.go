package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (rt *runtime) tagCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tag",
		Aliases: []string{"tags"},
		Short:   "Manage tags",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List tags",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				tags, err := rt.services().Tags.ListTags(rt.ctx)
				if err != nil {
					return fmt.Errorf("list tags: %w", err)
				}
				if rt.flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), tags)
				}
				rows := make([][]string, 0, len(tags))
				for _, t := range tags {
					rows = append(rows, []string{shortID(t.ID), t.Name, syncState(t.OwnerID, t.UpdatedAt, t.LastSyncedAt)})
				}
				printTable(cmd.OutOrStdout(), "tag", []string{"ID", "NAME", "SYNC"}, rows)
				return nil
			},
		},
		&cobra.Command{
			Use:         "add <name>",
			Short:       "Create a tag, or show the existing one with that name",
			Args:        cobra.ExactArgs(1),
			Annotations: pushes(),
			RunE: func(cmd *cobra.Command, args []string) error {
				tag, err := rt.services().Tags.CreateTag(rt.ctx, args[0])
				if err != nil {
					return fmt.Errorf("create tag: %w", err)
				}
				if rt.flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), tag)
				}
				printOK(cmd.OutOrStdout(), "Tag %q (%s)", tag.Name, tag.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:         "rename <tag> <name>",
			Short:       "Rename a tag",
			Args:        cobra.ExactArgs(2),
			Annotations: pushes(),
			RunE: func(cmd *cobra.Command, args []string) error {
				tag, err := rt.findTag(rt.ctx, args[0])
				if err != nil {
					return err
				}
				renamed, err := rt.services().Tags.RenameTag(rt.ctx, tag.ID, args[1])
				if err != nil {
					return fmt.Errorf("rename tag: %w", err)
				}
				printOK(cmd.OutOrStdout(), "Renamed tag %q to %q", tag.Name, renamed.Name)
				return nil
			},
		},
		&cobra.Command{
			Use:         "delete <tag>",
			Aliases:     []string{"rm"},
			Short:       "Delete a tag and remove it from every prompt",
			Args:        cobra.ExactArgs(1),
			Annotations: pushes(),
			RunE: func(cmd *cobra.Command, args []string) error {
				tag, err := rt.findTag(rt.ctx, args[0])
				if err != nil {
					return err
				}
				if err = rt.services().Tags.DeleteTag(rt.ctx, tag.ID); err != nil {
					return fmt.Errorf("delete tag: %w", err)
				}
				printOK(cmd.OutOrStdout(), "Deleted tag %q", tag.Name)
				return nil
			},
		},
	)
	return cmd
}
