// Package cli is the prompt-keeper command line: scriptable commands over
// the client services plus the interactive browser.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-prompt-keeper/internal/client"
	"github.com/MKhiriev/go-prompt-keeper/internal/config"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/service"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

// Command annotations read by the root hooks.
const (
	// annotationNoApp marks commands that run without opening the store.
	annotationNoApp = "prompt-keeper/no-app"
	// annotationPush marks commands whose changes are flushed to the remote
	// before the process exits.
	annotationPush = "prompt-keeper/push"
)

type rootFlags struct {
	configPath string
	db         string
	server     string
	remoteDSN  string
	owner      string
	jsonMode   bool
}

// runtime is the state shared by the commands of one invocation.
type runtime struct {
	log   *logger.Logger
	build models.AppBuildInfo
	flags rootFlags

	app *client.App
	ctx context.Context
}

// Execute runs args against a freshly opened client and closes it afterwards.
func Execute(ctx context.Context, args []string, log *logger.Logger, build models.AppBuildInfo) error {
	rt := &runtime{log: log, build: build}
	defer rt.close()

	root := rt.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (rt *runtime) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "prompt-keeper",
		Short: "Local-first knowledge base for AI prompts",
		Long: `prompt-keeper stores prompts, their version history, tags, folders,
execution presets and provider credentials on this device, and keeps prompts
in sync with a sync server when signed in.

Without a subcommand the interactive browser is started.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rt.open,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationPush] != "" {
				rt.flush()
			}
			return rt.close()
		},
		RunE: rt.runBrowse,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVarP(&rt.flags.configPath, "config", "c", "", "JSON configuration file (default: $CONFIG)")
	pf.StringVar(&rt.flags.db, "db", "", "local SQLite database file")
	pf.StringVar(&rt.flags.server, "server", "", "sync server address")
	pf.StringVar(&rt.flags.remoteDSN, "remote-dsn", "", "PostgreSQL DSN of a direct remote (instead of the sync server)")
	pf.StringVar(&rt.flags.owner, "owner", "", "owner id used with --remote-dsn")
	pf.BoolVar(&rt.flags.jsonMode, "json", false, "print results as JSON")

	root.AddCommand(
		rt.promptCommand(),
		rt.tagCommand(),
		rt.folderCommand(),
		rt.presetCommand(),
		rt.credentialCommand(),
		rt.exportCommand(),
		rt.importCommand(),
		rt.syncCommand(),
		rt.loginCommand(),
		rt.registerCommand(),
		rt.logoutCommand(),
		rt.adoptCommand(),
		rt.browseCommand(),
		rt.versionCommand(),
	)

	return root
}

// open builds the client for every command that needs the store.
func (rt *runtime) open(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[annotationNoApp] != "" || cmd.Name() == "help" {
		return nil
	}

	cfg, err := rt.config()
	if err != nil {
		return err
	}

	app, err := client.NewApp(cmd.Context(), *cfg, rt.log)
	if err != nil {
		return fmt.Errorf("open client: %w", err)
	}
	rt.app = app

	rt.ctx, err = app.Context(cmd.Context())
	if err != nil {
		return err
	}
	return nil
}

// config loads the client configuration and applies the command-line
// overrides on top of it.
func (rt *runtime) config() (*config.ClientConfig, error) {
	cfg, err := config.GetClientConfig(rt.flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	f := rt.flags
	if f.db != "" {
		cfg.Storage.DSN = f.db
	}
	if f.server != "" {
		cfg.Adapter.HTTPAddress = f.server
		cfg.Remote = config.ClientRemote{}
	}
	if f.remoteDSN != "" {
		cfg.Remote.DSN = f.remoteDSN
		cfg.Adapter.HTTPAddress = ""
	}
	if f.owner != "" {
		cfg.Remote.OwnerID = f.owner
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// flush pushes what the command changed instead of leaving it to the next
// session. Failures keep the rows pending.
func (rt *runtime) flush() {
	if rt.app == nil {
		return
	}
	if _, owned := utils.OwnerFromContext(rt.ctx); !owned {
		return
	}
	if err := rt.services().Sync.PushPending(rt.ctx); err != nil {
		rt.log.Warn().Err(err).Str("func", "runtime.flush").Msg("changes stay pending")
	}
}

func (rt *runtime) close() error {
	if rt.app == nil {
		return nil
	}
	app := rt.app
	rt.app = nil
	return app.Close()
}

func (rt *runtime) services() *service.ClientServices {
	return rt.app.Services()
}

func noApp() map[string]string {
	return map[string]string{annotationNoApp: "true"}
}

func pushes() map[string]string {
	return map[string]string{annotationPush: "true"}
}
