package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

func (rt *runtime) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write everything except credentials to a JSON snapshot",
		Long: `Write prompts, versions, tags, folders and presets of the active scope to
a JSON snapshot. Without a file the snapshot goes to standard output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := rt.services().Transfer.Export(rt.ctx)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			if len(args) == 0 || args[0] == "-" {
				return printJSON(cmd.OutOrStdout(), snapshot)
			}

			data, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return fmt.Errorf("encode snapshot: %w", err)
			}
			if err = os.WriteFile(args[0], data, 0o600); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			printOK(cmd.OutOrStdout(), "Exported %d prompt(s), %d version(s), %d tag(s), %d folder(s), %d preset(s) to %s",
				len(snapshot.Prompts), len(snapshot.Versions), len(snapshot.Tags), len(snapshot.Folders), len(snapshot.Presets), args[0])
			return nil
		},
	}
}

func (rt *runtime) importCommand() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load a JSON snapshot",
		Long: `Load a JSON snapshot ("-" reads standard input).

  merge      keeps local data and upserts the snapshot by id; tags whose
             name already exists are folded into the existing tag
  overwrite  deletes local prompts, versions, tags, folders and presets
             first; credentials are kept`,
		Args:        cobra.ExactArgs(1),
		Annotations: pushes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			importMode, err := models.ParseImportMode(mode)
			if err != nil {
				return err
			}

			var data []byte
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}

			var snapshot models.Snapshot
			if err = json.Unmarshal(data, &snapshot); err != nil {
				return fmt.Errorf("decode snapshot: %w", err)
			}

			report, err := rt.services().Transfer.Import(rt.ctx, snapshot, importMode)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			if rt.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), report)
			}
			printOK(cmd.OutOrStdout(), "Imported %d prompt(s), %d version(s), %d tag(s), %d folder(s), %d preset(s); %d tag(s) merged, %d row(s) skipped",
				report.Prompts, report.Versions, report.Tags, report.Folders, report.Presets, report.MergedTags, report.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(models.ImportMerge), "merge or overwrite")
	return cmd
}
