package cli

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

var writeClipboard = clipboard.WriteAll

func (rt *runtime) promptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prompt",
		Aliases: []string{"prompts", "p"},
		Short:   "Manage prompts and their version history",
		Long: `Prompts are referenced by id, by a unique id prefix of at least four
characters or by their exact title.`,
	}
	cmd.AddCommand(
		rt.promptListCommand(),
		rt.promptAddCommand(),
		rt.promptShowCommand(),
		rt.promptEditCommand(),
		rt.promptDeleteCommand(),
		rt.promptHistoryCommand(),
		rt.promptRestoreCommand(),
		rt.promptNameCommand(),
		rt.promptCopyCommand(),
	)
	return cmd
}

func (rt *runtime) promptListCommand() *cobra.Command {
	var (
		tagRef    string
		folderRef string
		rootOnly  bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prompts",
		Example: `  prompt-keeper prompt list
  prompt-keeper prompt list --tag review
  prompt-keeper prompt list --folder Work
  prompt-keeper prompt list --root --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := rt.ctx
			filter := models.PromptFilter{AllFolders: true}

			if tagRef != "" {
				tag, err := rt.findTag(ctx, tagRef)
				if err != nil {
					return err
				}
				filter.TagID = tag.ID
			}
			switch {
			case rootOnly:
				filter.AllFolders = false
			case folderRef != "":
				folder, err := rt.findFolder(ctx, folderRef)
				if err != nil {
					return err
				}
				filter.AllFolders = false
				filter.FolderID = &folder.ID
			}

			prompts, err := rt.services().Prompts.ListPrompts(ctx, filter)
			if err != nil {
				return fmt.Errorf("list prompts: %w", err)
			}
			if rt.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), prompts)
			}

			names, err := rt.tagNames(ctx)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(prompts))
			for _, p := range prompts {
				rows = append(rows, []string{
					shortID(p.ID),
					truncate(p.Title, maxCellWidth),
					joinTagNames(p.TagIDs, names),
					formatTime(p.UpdatedAt),
					syncState(p.OwnerID, p.UpdatedAt, p.LastSyncedAt),
				})
			}
			printTable(cmd.OutOrStdout(), "prompt", []string{"ID", "TITLE", "TAGS", "UPDATED", "SYNC"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&tagRef, "tag", "", "only prompts with this tag (name or id)")
	cmd.Flags().StringVar(&folderRef, "folder", "", "only prompts directly in this folder (name or id)")
	cmd.Flags().BoolVar(&rootOnly, "root", false, "only prompts outside any folder")
	return cmd
}

func (rt *runtime) promptAddCommand() *cobra.Command {
	var (
		title, content, file, notes, folderRef string
		tags                                   []string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a prompt",
		Long: `Create a prompt. The content is taken from --content, from --file or,
when neither is given, from standard input. Missing tags are created.`,
		Example: `  prompt-keeper prompt add --title "Code review" --file review.md --tag review
  echo "Summarize:" | prompt-keeper prompt add --title Summary`,
		Args:        cobra.NoArgs,
		Annotations: pushes(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := rt.ctx
			text, err := readContent(cmd.InOrStdin(), content, file)
			if err != nil {
				return err
			}
			tagIDs, err := rt.tagIDs(ctx, tags)
			if err != nil {
				return err
			}
			folderID, err := rt.folderID(ctx, folderRef)
			if err != nil {
				return err
			}

			p, err := rt.services().Prompts.CreatePrompt(ctx, models.PromptInput{
				Title:    title,
				Content:  text,
				Notes:    notes,
				TagIDs:   tagIDs,
				FolderID: folderID,
			})
			if err != nil {
				return fmt.Errorf("create prompt: %w", err)
			}
			if rt.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), p)
			}
			printOK(cmd.OutOrStdout(), "Created prompt %q (%s)", p.Title, p.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&title, "title", "t", "", "prompt title")
	f.StringVar(&content, "content", "", "prompt text")
	f.StringVarP(&file, "file", "f", "", "read the prompt text from a file")
	f.StringVar(&notes, "notes", "", "free-form notes")
	f.StringSliceVar(&tags, "tag", nil, "tag name, repeatable")
	f.StringVar(&folderRef, "folder", "", "folder (name or id)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func (rt *runtime) promptShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <prompt>",
		Short: "Show a prompt with its content and notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := rt.ctx
			p, err := rt.findPrompt(ctx, args[0])
			if err != nil {
				return err
			}
			if rt.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), p)
			}

			names, err := rt.tagNames(ctx)
			if err != nil {
				return err
			}
			versions, err := rt.services().Prompts.ListVersions(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("list versions: %w", err)
			}
			folder := "-"
			if p.FolderID != nil {
				if f, err := rt.findFolder(ctx, *p.FolderID); err == nil {
					folder = f.Name
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(p.Title))
			fmt.Fprintf(out, "id:       %s\n", p.ID)
			fmt.Fprintf(out, "folder:   %s\n", folder)
			fmt.Fprintf(out, "tags:     %s\n", joinTagNames(p.TagIDs, names))
			fmt.Fprintf(out, "updated:  %s\n", formatTime(p.UpdatedAt))
			fmt.Fprintf(out, "sync:     %s\n", syncState(p.OwnerID, p.UpdatedAt, p.LastSyncedAt))
			fmt.Fprintf(out, "versions: %d\n\n", len(versions))
			fmt.Fprintln(out, p.Content)
			if p.Notes != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, mutedStyle.Render(p.Notes))
			}
			return nil
		},
	}
}

func (rt *runtime) promptEditCommand() *cobra.Command {
	var (
		title, content, file, notes, folderRef string
		tags                                   []string
		noFolder                               bool
	)
	cmd := &cobra.Command{
		Use:   "edit <prompt>",
		Short: "Change a prompt",
		Long: `Change the given fields of a prompt; the rest is kept. Use --file -
to read new content from standard input. A new version is recorded when the
content or the notes change.`,
		Args:        cobra.ExactArgs(1),
		Annotations: pushes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := rt.ctx
			p, err := rt.findPrompt(ctx, args[0])
			if err != nil {
				return err
			}

			in := models.PromptInput{
				Title:    p.Title,
				Content:  p.Content,
				Notes:    p.Notes,
				TagIDs:   p.TagIDs,
				FolderID: p.FolderID,
			}
			f := cmd.Flags()
			if f.Changed("title") {
				in.Title = title
			}
			if f.Changed("content") || f.Changed("file") {
				if in.Content, err = readContent(cmd.InOrStdin(), content, file); err != nil {
					return err
				}
			}
			if f.Changed("notes") {
				in.Notes = notes
			}
			if f.Changed("tag") {
				if in.TagIDs, err = rt.tagIDs(ctx, tags); err != nil {
					return err
				}
			}
			switch {
			case noFolder:
				in.FolderID = nil
			case folderRef != "":
				if in.FolderID, err = rt.folderID(ctx, folderRef); err != nil {
					return err
				}
			}

			updated, err := rt.services().Prompts.UpdatePrompt(ctx, p.ID, in)
			if err != nil {
				return fmt.Errorf("update prompt: %w", err)
			}
			if rt.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), updated)
			}
			printOK(cmd.OutOrStdout(), "Updated prompt %q", updated.Title)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&title, "title", "t", "", "new title")
	f.StringVar(&content, "content", "", "new prompt text")
	f.StringVarP(&file, "file", "f", "", "read the new prompt text from a file")
	f.StringVar(&notes, "notes", "", "new notes")
	f.StringSliceVar(&tags, "tag", nil, "replace the tags, repeatable")
	f.StringVar(&folderRef, "folder", "", "move into a folder (name or id)")
	f.BoolVar(&noFolder, "no-folder", false, "move out of any folder")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
	cmd.MarkFlagsMutuallyExclusive("folder", "no-folder")
	return cmd
}

func (rt *runtime) promptDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <prompt>",
		Aliases: []string{"rm"},
		Short:   "Delete a prompt and its history",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rt.findPrompt(rt.ctx, args[0])
			if err != nil {
				return err
			}
			if err = rt.services().Prompts.DeletePrompt(rt.ctx, p.ID); err != nil {
				return fmt.Errorf("delete prompt: %w", err)
			}
			printOK(cmd.OutOrStdout(), "Deleted prompt %q", p.Title)
			return nil
		},
	}
}

func (rt *runtime) promptHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "history <prompt>",
		Aliases: []string{"log"},
		Short:   "List the versions of a prompt, newest first",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := rt.ctx
			p, err := rt.findPrompt(ctx, args[0])
			if err != nil {
				return err
			}
			versions, err := rt.services().Prompts.ListVersions(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("list versions: %w", err)
			}
			if rt.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), versions)
			}

			rows := make([][]string, 0, len(versions))
			for _, v := range versions {
				rows = append(rows, []string{
					v.ID,
					formatTime(v.CreatedAt),
					truncate(v.CommitMessage, maxCellWidth/2),
					truncate(v.Content, maxCellWidth),
				})
			}
			printTable(cmd.OutOrStdout(), "version", []string{"VERSION", "CREATED", "MESSAGE", "CONTENT"}, rows)
			return nil
		},
	}
}

func (rt *runtime) promptRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "restore <version-id>",
		Short:       "Write a version's content and notes back to its prompt",
		Args:        cobra.ExactArgs(1),
		Annotations: pushes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rt.services().Prompts.RestoreVersion(rt.ctx, args[0])
			if err != nil {
				return fmt.Errorf("restore version: %w", err)
			}
			if rt.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), p)
			}
			printOK(cmd.OutOrStdout(), "Restored prompt %q", p.Title)
			return nil
		},
	}
}

func (rt *runtime) promptNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "name <version-id> <message>",
		Short:       "Attach a commit message to a version",
		Args:        cobra.MinimumNArgs(2),
		Annotations: pushes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := rt.services().Prompts.NameVersion(rt.ctx, args[0], strings.Join(args[1:], " "))
			if err != nil {
				return fmt.Errorf("name version: %w", err)
			}
			if rt.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), v)
			}
			printOK(cmd.OutOrStdout(), "Version %s: %s", shortID(v.ID), v.CommitMessage)
			return nil
		},
	}
}

func (rt *runtime) promptCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <prompt>",
		Short: "Copy a prompt's content to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rt.findPrompt(rt.ctx, args[0])
			if err != nil {
				return err
			}
			if err = writeClipboard(p.Content); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			printOK(cmd.OutOrStdout(), "Copied %q to the clipboard", p.Title)
			return nil
		},
	}
}

func joinTagNames(ids []string, names map[string]string) string {
	if len(ids) == 0 {
		return "-"
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			out = append(out, name)
		}
	}
	return strings.Join(out, ", ")
}
