package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-prompt-keeper/internal/adapter"
	"github.com/MKhiriev/go-prompt-keeper/internal/config"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/service"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/internal/tui"
	"github.com/MKhiriev/go-prompt-keeper/internal/utils"
	"github.com/MKhiriev/go-prompt-keeper/internal/workers"
)

// App owns the client's storages, services and background workers for one
// process.
type App struct {
	cfg      config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
	wg       sync.WaitGroup

	// httpRemote is set when syncing through the server; the device then
	// needs a session.
	httpRemote bool

	logger *logger.Logger
}

// NewApp opens the local store and picks the remote: the HTTP server when
// an adapter address is configured, otherwise a direct database connection,
// otherwise none.
func NewApp(ctx context.Context, cfg config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	var (
		remote     service.RemoteStore
		auth       service.Authenticator
		httpRemote bool
	)
	switch {
	case cfg.Adapter.HTTPAddress != "":
		serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
		if err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("create server adapter: %w", err)
		}
		remote, auth, httpRemote = serverAdapter, serverAdapter, true
	case storages.Remote != nil:
		remote = storages.Remote
	}

	services := service.NewClientServices(storages.Local, remote, auth, cfg, logger)

	return &App{
		cfg:        cfg,
		storages:   storages,
		services:   services,
		workers:    workers.NewWorkers(services.SyncJob),
		httpRemote: httpRemote,
		logger:     logger,
	}, nil
}

func (a *App) Services() *service.ClientServices {
	return a.services
}

// Context returns ctx carrying the logger and the active owner: the
// configured owner of a direct remote or the owner of the saved session.
// Without either the context stays unowned and data is device-local.
func (a *App) Context(ctx context.Context) (context.Context, error) {
	ctx = a.logger.WithContext(ctx)

	if !a.httpRemote {
		if a.cfg.Remote.DSN != "" && a.cfg.Remote.OwnerID != "" {
			return utils.WithOwner(ctx, a.cfg.Remote.OwnerID), nil
		}
		return ctx, nil
	}

	ownerID, ok, err := a.services.Session.Restore(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if ok {
		ctx = utils.WithOwner(ctx, ownerID)
	}
	return ctx, nil
}

// NeedsLogin reports whether the client syncs through the server but ctx
// carries no owner yet.
func (a *App) NeedsLogin(ctx context.Context) bool {
	_, owned := utils.OwnerFromContext(ctx)
	return a.httpRemote && !owned
}

// Run is the interactive session: sign in when needed, sync, start the
// background retry and browse until the user quits. Signing out from the
// browser starts over with the login form.
func (a *App) Run(ctx context.Context) error {
	ui, err := tui.New(a.services, a.logger)
	if err != nil {
		return err
	}

	for {
		ctx, err := a.Context(ctx)
		if err != nil {
			return err
		}

		if a.NeedsLogin(ctx) {
			ownerID, err := ui.LoginFlow(ctx)
			switch {
			case errors.Is(err, tui.ErrUserQuit):
				a.logger.Info().Msg("working without a sync account")
			case err != nil:
				return err
			default:
				ctx = utils.WithOwner(ctx, ownerID)
			}
		}

		logout, err := a.browse(ctx, ui)
		if err != nil || !logout {
			return err
		}
		if err = a.services.Session.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
	}
}

func (a *App) browse(ctx context.Context, ui *tui.TUI) (bool, error) {
	if _, owned := utils.OwnerFromContext(ctx); owned {
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			if err := a.services.Sync.StartSession(ctx); err != nil {
				a.logger.Warn().Err(err).Msg("initial sync failed, changes stay pending")
			}
		}()
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	return ui.Browse(ctx)
}

// Close waits for in-flight pushes and closes the databases.
func (a *App) Close() error {
	a.workers.Stop()
	a.wg.Wait()
	a.services.Sync.Close()
	return a.storages.Close()
}
