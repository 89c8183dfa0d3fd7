package tui

import (
	"github.com/lushkiwi/UT-Marketplace/internal/service"
	"github.com/lushkiwi/UT-Marketplace/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches [RootModel] to another registered page. When Payload is
// non-nil it is re-delivered to the target page right after the switch, so a
// page can hand a notice or prefilled state to its successor.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult finishes one attempt of any authentication flow: login,
// registration or session unlock. A nil Err means the session is installed
// and the key cache already reflects the account's encryption state;
// [RootModel] then ends the auth program. A non-nil Err is routed back to the
// page that started the attempt.
type AuthResult struct {
	Session models.ClientSession
	Err     error
}

// MenuNotice is rendered as a status line on the menu page. Pages navigate
// back with it when they have something to tell the user, e.g. after signing
// out of a stored session.
type MenuNotice struct {
	Text string
}

type conversationsLoadedMsg struct {
	items []models.Conversation
	err   error
}

type threadLoadedMsg struct {
	counterpartyID int64
	messages       []models.Message
	err            error
}

type sendDoneMsg struct {
	message models.Message
	outcome service.SendOutcome
	err     error
}

type markReadDoneMsg struct {
	counterpartyID int64
	err            error
}

type refreshDoneMsg struct {
	added int
	err   error
}

type clearStatusMsg struct{}
