package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

func (rt *runtime) folderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "folder",
		Aliases: []string{"folders"},
		Short:   "Manage the folder tree",
	}
	cmd.AddCommand(
		rt.folderListCommand(),
		rt.folderAddCommand(),
		rt.folderRenameCommand(),
		rt.folderMoveCommand(),
		rt.folderDeleteCommand(),
	)
	return cmd
}

func (rt *runtime) folderListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the folder tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			folders, err := rt.services().Folders.ListFolders(rt.ctx)
			if err != nil {
				return fmt.Errorf("list folders: %w", err)
			}
			if rt.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), folders)
			}

			rows := make([][]string, 0, len(folders))
			for _, n := range folderTree(folders) {
				f := n.folder
				rows = append(rows, []string{
					strings.Repeat("  ", n.depth) + f.Name,
					shortID(f.ID),
					syncState(f.OwnerID, f.UpdatedAt, f.LastSyncedAt),
				})
			}
			printTable(cmd.OutOrStdout(), "folder", []string{"NAME", "ID", "SYNC"}, rows)
			return nil
		},
	}
}

func (rt *runtime) folderAddCommand() *cobra.Command {
	var parentRef string
	cmd := &cobra.Command{
		Use:         "add <name>",
		Short:       "Create a folder",
		Args:        cobra.ExactArgs(1),
		Annotations: pushes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			parentID, err := rt.folderID(rt.ctx, parentRef)
			if err != nil {
				return err
			}
			f, err := rt.services().Folders.CreateFolder(rt.ctx, models.FolderInput{Name: args[0], ParentID: parentID})
			if err != nil {
				return fmt.Errorf("create folder: %w", err)
			}
			if rt.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), f)
			}
			printOK(cmd.OutOrStdout(), "Created folder %q (%s)", f.Name, f.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&parentRef, "parent", "", "parent folder (name or id)")
	return cmd
}

func (rt *runtime) folderRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "rename <folder> <name>",
		Short:       "Rename a folder",
		Args:        cobra.ExactArgs(2),
		Annotations: pushes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := rt.findFolder(rt.ctx, args[0])
			if err != nil {
				return err
			}
			updated, err := rt.services().Folders.UpdateFolder(rt.ctx, f.ID, models.FolderInput{Name: args[1], ParentID: f.ParentID})
			if err != nil {
				return fmt.Errorf("rename folder: %w", err)
			}
			printOK(cmd.OutOrStdout(), "Renamed folder %q to %q", f.Name, updated.Name)
			return nil
		},
	}
}

func (rt *runtime) folderMoveCommand() *cobra.Command {
	var parentRef string
	cmd := &cobra.Command{
		Use:   "move <folder>",
		Short: "Move a folder under another one, or to the top level without --parent",
		Args:        cobra.ExactArgs(1),
		Annotations: pushes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := rt.findFolder(rt.ctx, args[0])
			if err != nil {
				return err
			}
			parentID, err := rt.folderID(rt.ctx, parentRef)
			if err != nil {
				return err
			}
			if _, err = rt.services().Folders.UpdateFolder(rt.ctx, f.ID, models.FolderInput{Name: f.Name, ParentID: parentID}); err != nil {
				return fmt.Errorf("move folder: %w", err)
			}
			printOK(cmd.OutOrStdout(), "Moved folder %q", f.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&parentRef, "parent", "", "new parent folder (name or id)")
	return cmd
}

func (rt *runtime) folderDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "delete <folder>",
		Aliases:     []string{"rm"},
		Short:       "Delete a folder with its subfolders; their prompts move to the top level",
		Args:        cobra.ExactArgs(1),
		Annotations: pushes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := rt.findFolder(rt.ctx, args[0])
			if err != nil {
				return err
			}
			if err = rt.services().Folders.DeleteFolder(rt.ctx, f.ID); err != nil {
				return fmt.Errorf("delete folder: %w", err)
			}
			printOK(cmd.OutOrStdout(), "Deleted folder %q", f.Name)
			return nil
		},
	}
}

type folderNode struct {
	folder models.Folder
	depth  int
}

// folderTree flattens folders depth first, siblings by name. Folders whose
// parent is not in the list are shown at the top level.
func folderTree(folders []models.Folder) []folderNode {
	known := make(map[string]bool, len(folders))
	for _, f := range folders {
		known[f.ID] = true
	}

	children := make(map[string][]models.Folder)
	for _, f := range folders {
		parent := ""
		if f.ParentID != nil && known[*f.ParentID] {
			parent = *f.ParentID
		}
		children[parent] = append(children[parent], f)
	}
	for _, list := range children {
		sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	}

	out := make([]folderNode, 0, len(folders))
	visited := make(map[string]bool, len(folders))
	var walk func(parent string, depth int)
	walk = func(parent string, depth int) {
		for _, f := range children[parent] {
			if visited[f.ID] {
				continue
			}
			visited[f.ID] = true
			out = append(out, folderNode{folder: f, depth: depth})
			walk(f.ID, depth+1)
		}
	}
	walk("", 0)
	return out
}
