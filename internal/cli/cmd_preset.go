package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

func (rt *runtime) presetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preset",
		Aliases: []string{"presets"},
		Short:   "Manage execution presets (model parameters kept on this device)",
	}
	cmd.AddCommand(
		rt.presetListCommand(),
		rt.presetAddCommand(),
		rt.presetEditCommand(),
		rt.presetShowCommand(),
		rt.presetDeleteCommand(),
	)
	return cmd
}

func presetFlags(f *pflag.FlagSet, in *models.PresetInput) {
	f.StringVar(&in.Model, "model", "", "model name")
	f.Float64Var(&in.Temperature, "temperature", 1, "sampling temperature, 0..2")
	f.IntVar(&in.MaxTokens, "max-tokens", 0, "completion token limit, 0 for the model default")
	f.Float64Var(&in.TopP, "top-p", 1, "nucleus sampling, 0..1")
	f.StringVar(&in.SystemPrompt, "system", "", "system prompt")
}

func (rt *runtime) presetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			presets, err := rt.services().Presets.ListPresets(rt.ctx)
			if err != nil {
				return fmt.Errorf("list presets: %w", err)
			}
			if rt.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), presets)
			}
			rows := make([][]string, 0, len(presets))
			for _, p := range presets {
				rows = append(rows, []string{
					shortID(p.ID),
					p.Name,
					p.Model,
					strconv.FormatFloat(p.Temperature, 'g', -1, 64),
					strconv.Itoa(p.MaxTokens),
					strconv.FormatFloat(p.TopP, 'g', -1, 64),
				})
			}
			printTable(cmd.OutOrStdout(), "preset", []string{"ID", "NAME", "MODEL", "TEMPERATURE", "MAX TOKENS", "TOP P"}, rows)
			return nil
		},
	}
}

func (rt *runtime) presetAddCommand() *cobra.Command {
	var in models.PresetInput
	cmd := &cobra.Command{
		Use:     "add <name>",
		Short:   "Create a preset",
		Example: `  prompt-keeper preset add precise --model gpt-4o --temperature 0.2 --max-tokens 1024`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = args[0]
			p, err := rt.services().Presets.CreatePreset(rt.ctx, in)
			if err != nil {
				return fmt.Errorf("create preset: %w", err)
			}
			if rt.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), p)
			}
			printOK(cmd.OutOrStdout(), "Created preset %q (%s)", p.Name, p.ID)
			return nil
		},
	}
	presetFlags(cmd.Flags(), &in)
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

func (rt *runtime) presetEditCommand() *cobra.Command {
	var (
		name   string
		update models.PresetInput
	)
	cmd := &cobra.Command{
		Use:   "edit <preset>",
		Short: "Change the given fields of a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rt.findPreset(rt.ctx, args[0])
			if err != nil {
				return err
			}

			in := models.PresetInput{
				Name:         p.Name,
				Model:        p.Model,
				Temperature:  p.Temperature,
				MaxTokens:    p.MaxTokens,
				TopP:         p.TopP,
				SystemPrompt: p.SystemPrompt,
			}
			f := cmd.Flags()
			if f.Changed("name") {
				in.Name = name
			}
			if f.Changed("model") {
				in.Model = update.Model
			}
			if f.Changed("temperature") {
				in.Temperature = update.Temperature
			}
			if f.Changed("max-tokens") {
				in.MaxTokens = update.MaxTokens
			}
			if f.Changed("top-p") {
				in.TopP = update.TopP
			}
			if f.Changed("system") {
				in.SystemPrompt = update.SystemPrompt
			}

			updated, err := rt.services().Presets.UpdatePreset(rt.ctx, p.ID, in)
			if err != nil {
				return fmt.Errorf("update preset: %w", err)
			}
			if rt.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), updated)
			}
			printOK(cmd.OutOrStdout(), "Updated preset %q", updated.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	presetFlags(cmd.Flags(), &update)
	return cmd
}

func (rt *runtime) presetShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <preset>",
		Short: "Show a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rt.findPreset(rt.ctx, args[0])
			if err != nil {
				return err
			}
			if rt.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), p)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(p.Name))
			fmt.Fprintf(out, "id:          %s\n", p.ID)
			fmt.Fprintf(out, "model:       %s\n", p.Model)
			fmt.Fprintf(out, "temperature: %g\n", p.Temperature)
			fmt.Fprintf(out, "max tokens:  %d\n", p.MaxTokens)
			fmt.Fprintf(out, "top p:       %g\n", p.TopP)
			if p.SystemPrompt != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, p.SystemPrompt)
			}
			return nil
		},
	}
}

func (rt *runtime) presetDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <preset>",
		Aliases: []string{"rm"},
		Short:   "Delete a preset",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rt.findPreset(rt.ctx, args[0])
			if err != nil {
				return err
			}
			if err = rt.services().Presets.DeletePreset(rt.ctx, p.ID); err != nil {
				return fmt.Errorf("delete preset: %w", err)
			}
			printOK(cmd.OutOrStdout(), "Deleted preset %q", p.Name)
			return nil
		},
	}
}
