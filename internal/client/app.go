package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/lushkiwi/UT-Marketplace/internal/config"
	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/internal/service"
	"github.com/lushkiwi/UT-Marketplace/internal/tui"
	"github.com/lushkiwi/UT-Marketplace/internal/workers"
	"github.com/lushkiwi/UT-Marketplace/models"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	cfg      config.ClientWorkers
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, ui *tui.TUI, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are not initialized")
	}
	if ui == nil {
		return nil, errors.New("terminal UI is not initialized")
	}
	return &App{services: services, tui: ui, cfg: cfg, logger: log}, nil
}

// Run alternates between the auth program and the main loop until the user
// closes the application. A stored session starts at the unlock page, a
// fresh device at the menu. Logout clears the local session and goes back
// to the auth program; quitting from either program ends Run.
func (a *App) Run() error {
	ctx := a.logger.Logger.WithContext(context.Background())
	defer a.services.Keys.Clear()

	log := logger.FromContext(ctx)

	for {
		stored, err := a.services.AuthService.CurrentSession(ctx)
		if err != nil {
			return fmt.Errorf("read stored session: %w", err)
		}

		var session models.ClientSession
		if stored == nil {
			session, err = a.tui.AuthFlow(ctx)
		} else {
			session, err = a.tui.UnlockFlow(ctx, *stored)
		}
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		// Pull messages that arrived while the client was offline. The main
		// loop still works from the local cache when this fails.
		if _, err := a.services.ConversationService.Refresh(ctx, session.UserID); err != nil {
			log.Warn().Err(err).Msg("initial inbox refresh failed; cached messages shown")
		}

		workers.NewWorkers(workers.WorkerFunc(func() {
			a.services.RefreshJob.Start(ctx, session.UserID, a.cfg.RefreshInterval)
		})).Run()

		logout, err := a.tui.MainLoop(ctx, session)
		a.services.RefreshJob.Stop()
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err := a.services.AuthService.Logout(ctx); err != nil {
			log.Warn().Err(err).Msg("sign out cleanup failed")
		}
	}
}
