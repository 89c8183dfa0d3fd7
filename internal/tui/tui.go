// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

// Package tui is the terminal front end of the marketplace messaging client.
// It runs two separate bubbletea programs: the auth flow (menu, login,
// registration, session unlock) and the main loop (conversation list, chat
// transcripts, the composer). The client app alternates between them.
package tui

import (
	"context"
	"errors"

	"github.com/lushkiwi/UT-Marketplace/internal/logger"
	"github.com/lushkiwi/UT-Marketplace/internal/service"
	"github.com/lushkiwi/UT-Marketplace/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit reports that the user closed the application from an auth
// screen instead of signing in.
var ErrUserQuit = errors.New("user closed the application")

type TUI struct {
	services *service.ClientServices
	build    models.AppBuildInfo
}

func New(services *service.ClientServices, build models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are not initialized")
	}
	return &TUI{services: services, build: build}, nil
}

// AuthFlow runs the sign-in program from the start menu. It returns the
// established session, or [ErrUserQuit] when the user leaves without
// signing in.
func (t *TUI) AuthFlow(ctx context.Context) (models.ClientSession, error) {
	return t.runAuthProgram(ctx, "menu", models.ClientSession{})
}

// UnlockFlow runs the sign-in program starting at the unlock page for the
// stored session. Switching accounts from there falls back to the menu.
func (t *TUI) UnlockFlow(ctx context.Context, stored models.ClientSession) (models.ClientSession, error) {
	return t.runAuthProgram(ctx, "unlock", stored)
}

func (t *TUI) runAuthProgram(ctx context.Context, startPage string, stored models.ClientSession) (models.ClientSession, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
		"unlock":   NewUnlockModel(ctx, t.services.AuthService, stored),
	}

	root := NewRootModel(pages, startPage, t.build)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.ClientSession{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.ClientSession{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.authed {
		return models.ClientSession{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the conversations program for a signed-in session. It
// returns logout=true when the user chose to sign out rather than close
// the application.
func (t *TUI) MainLoop(ctx context.Context, session models.ClientSession) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, session)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
