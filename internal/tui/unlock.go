// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UT Marketplace Authors

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lushkiwi/UT-Marketplace/internal/service"
	"github.com/lushkiwi/UT-Marketplace/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// UnlockModel is the Bubble Tea model for resuming a stored session. The
// device already holds a bearer token, but the account's private key never
// touches disk, so the user re-enters the password to open the protected
// blob. Ctrl+L signs the stored account out instead and returns to the menu.
type UnlockModel struct {
	ctx    context.Context
	auth   service.ClientAuthService
	stored models.ClientSession

	input      textinput.Model
	submitting bool
	errMsg     string
}

// NewUnlockModel creates an [UnlockModel] for the given stored session with a
// focused, masked password input.
func NewUnlockModel(ctx context.Context, auth service.ClientAuthService, stored models.ClientSession) *UnlockModel {
	input := textinput.New()
	input.Placeholder = "password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &UnlockModel{
		ctx:    ctx,
		auth:   auth,
		stored: stored,
		input:  input,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [AuthResult]: clears submitting state; on error, populates errMsg. A
//     vanished stored session navigates back to the menu instead.
//   - enter: dispatches the async unlock command.
//   - ctrl+l: signs the stored account out and navigates to the menu.
//
// All other key events are forwarded to the password input.
func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			if errors.Is(result.Err, service.ErrNoStoredSession) {
				return m, func() tea.Msg {
					return NavigateTo{Page: "menu", Payload: MenuNotice{Text: "The saved session is gone, please log in again"}}
				}
			}
			m.errMsg = humanizeAuthError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "enter":
			if m.submitting {
				return m, nil
			}

			pass := m.input.Value()
			if pass == "" {
				m.errMsg = "Password is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(pass)
		case "ctrl+l":
			if m.submitting {
				return m, nil
			}
			return m, m.cmdSignOut()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the stored account identity, the
// password input, a submission indicator, and an optional error message.
func (m *UnlockModel) View() string {
	var b strings.Builder

	who := m.stored.Login
	if m.stored.Name != "" {
		who = fmt.Sprintf("%s (%s)", m.stored.Login, m.stored.Name)
	}
	b.WriteString("Signed in as ")
	b.WriteString(who)
	b.WriteString("\n\n")

	b.WriteString("Password │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Unlocking...]\n")
	} else {
		b.WriteString("\n[Unlock]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("UNLOCK SESSION", strings.TrimRight(b.String(), "\n"), "enter: unlock │ ctrl+l: use another account")
}

func (m *UnlockModel) cmdUnlock(pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Unlock(ctx, pass)
		return AuthResult{Session: session, Err: err}
	}
}

func (m *UnlockModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		notice := "Signed out."
		if err := auth.Logout(ctx); err != nil {
			notice = fmt.Sprintf("Signed out, but local cleanup failed: %v", err)
		}
		return NavigateTo{Page: "menu", Payload: MenuNotice{Text: notice}}
	}
}
