package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lushkiwi/UT-Marketplace/internal/crypto"
	"github.com/lushkiwi/UT-Marketplace/internal/service"
	"github.com/lushkiwi/UT-Marketplace/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mainScreen int

const (
	screenConversations mainScreen = iota
	screenThread
	screenNewChat
)

// threadWindow caps how many messages the transcript renders at once; the
// selection scrolls the window across longer threads.
const threadWindow = 10

const statusLifetime = 4 * time.Second

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  models.ClientSession

	screen mainScreen

	conversations []models.Conversation
	convIdx       int
	loading       bool

	thread           []models.Message
	threadIdx        int
	counterpartyID   int64
	counterpartyName string
	listingID        *int64
	loadingThread    bool

	input     textinput.Model
	composing bool
	sending   bool

	newChatInputs []textinput.Model
	newChatFocus  int
	newChatErr    string

	refreshing bool
	status     string
	errMsg     string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, session models.ClientSession) mainLoopModel {
	input := textinput.New()
	input.Placeholder = "type a message"
	input.CharLimit = 1000
	input.Width = 54

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		session:  session,
		loading:  true,
		input:    input,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadConversations()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case conversationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.conversations = msg.items
		if m.convIdx >= len(m.conversations) {
			m.convIdx = len(m.conversations) - 1
		}
		if m.convIdx < 0 {
			m.convIdx = 0
		}
		// A thread opened from the new-chat form only knows the numeric id;
		// backfill the display name once the list has it.
		if m.screen == screenThread {
			if name, ok := m.contactName(m.counterpartyID); ok {
				m.counterpartyName = name
			}
		}
		return m, nil

	case threadLoadedMsg:
		if msg.counterpartyID != m.counterpartyID {
			return m, nil
		}
		m.loadingThread = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.thread = msg.messages
		m.threadIdx = len(m.thread) - 1
		if m.threadIdx < 0 {
			m.threadIdx = 0
		}
		return m, nil

	case sendDoneMsg:
		m.sending = false
		if msg.err != nil {
			m.errMsg = humanizeSendError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.thread = append(m.thread, msg.message)
		m.threadIdx = len(m.thread) - 1
		m.input.Reset()
		switch msg.outcome {
		case service.SendEncrypted:
			m.status = "Sent encrypted."
		case service.SendPlaintext:
			m.status = "Sent as plain text: the recipient has no encryption keys."
		}
		return m, tea.Batch(m.cmdLoadConversations(), clearStatusAfter())

	case markReadDoneMsg:
		// Read receipts are best effort; a failed one is retried the next
		// time the thread opens.
		if msg.err != nil {
			return m, nil
		}
		return m, m.cmdLoadConversations()

	case refreshDoneMsg:
		m.refreshing = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		if msg.added > 0 {
			m.status = fmt.Sprintf("%d new message(s)", msg.added)
		} else {
			m.status = "Inbox is up to date"
		}
		cmds := []tea.Cmd{m.cmdLoadConversations(), clearStatusAfter()}
		if m.screen == screenThread {
			cmds = append(cmds, m.cmdLoadThread())
		}
		return m, tea.Batch(cmds...)

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateActiveInput(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenThread:
		return m.updateThread(keyMsg)
	case screenNewChat:
		return m.updateNewChat(keyMsg)
	default:
		return m.updateConversations(keyMsg)
	}
}

func (m mainLoopModel) updateConversations(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.convIdx > 0 {
			m.convIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.convIdx < len(m.conversations)-1 {
			m.convIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		conv, ok := m.currentConversation()
		if !ok {
			m.status = "No conversations yet"
			return m, nil
		}
		return m, m.openThread(conv.CounterpartyID, conv.CounterpartyName, nil)
	case key.Matches(keyMsg, keys.newChat):
		m.startNewChat()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		m.status = "Refreshing..."
		m.errMsg = ""
		return m, m.cmdRefresh()
	case key.Matches(keyMsg, keys.copyKey):
		pub, ok := m.services.Keys.PublicKey()
		if !ok {
			m.status = "No encryption keys in this session"
			return m, clearStatusAfter()
		}
		if err := clipboard.WriteAll(pub); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Public key copied."
		return m, clearStatusAfter()
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateThread(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.composing {
		switch keyMsg.String() {
		case "esc":
			m.composing = false
			m.input.Blur()
			return m, nil
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.sending {
				return m, nil
			}
			m.sending = true
			m.errMsg = ""
			return m, m.cmdSend(text)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(keyMsg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenConversations
		m.thread = nil
		m.counterpartyID = 0
		m.counterpartyName = ""
		m.listingID = nil
		return m, m.cmdLoadConversations()
	case key.Matches(keyMsg, keys.up):
		if m.threadIdx > 0 {
			m.threadIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.threadIdx < len(m.thread)-1 {
			m.threadIdx++
		}
	case key.Matches(keyMsg, keys.compose):
		m.composing = true
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.copyMsg):
		sel, ok := m.currentMessage()
		if !ok {
			m.status = "Nothing to copy"
			return m, clearStatusAfter()
		}
		text := displayBody(sel.Content)
		if text == crypto.EncryptedContentPlaceholder || text == crypto.UndecryptableMarker {
			m.status = "Nothing readable to copy"
			return m, clearStatusAfter()
		}
		if err := clipboard.WriteAll(text); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Message copied."
		return m, clearStatusAfter()
	case key.Matches(keyMsg, keys.refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		m.status = "Refreshing..."
		m.errMsg = ""
		return m, m.cmdRefresh()
	}

	return m, nil
}

func (m mainLoopModel) updateNewChat(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.screen = screenConversations
		m.newChatInputs = nil
		m.newChatErr = ""
		return m, nil
	case "tab", "down":
		m.moveNewChatFocus(1)
		return m, textinput.Blink
	case "shift+tab", "up":
		m.moveNewChatFocus(-1)
		return m, textinput.Blink
	case "enter":
		return m.submitNewChat()
	}

	var cmd tea.Cmd
	m.newChatInputs[m.newChatFocus], cmd = m.newChatInputs[m.newChatFocus].Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) submitNewChat() (tea.Model, tea.Cmd) {
	rawID := strings.TrimSpace(m.newChatInputs[0].Value())
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		m.newChatErr = "Enter the numeric user id of the recipient"
		return m, nil
	}
	if id == m.session.UserID {
		m.newChatErr = "That is your own user id"
		return m, nil
	}

	var listingID *int64
	if raw := strings.TrimSpace(m.newChatInputs[1].Value()); raw != "" {
		lid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || lid <= 0 {
			m.newChatErr = "Listing id must be a positive number"
			return m, nil
		}
		listingID = &lid
	}

	name, ok := m.contactName(id)
	if !ok {
		name = fmt.Sprintf("user %d", id)
	}
	m.newChatInputs = nil
	m.newChatErr = ""
	return m, m.openThread(id, name, listingID)
}

// updateActiveInput forwards non-key messages (cursor blinks mostly) to
// whichever text input currently has focus.
func (m mainLoopModel) updateActiveInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch {
	case m.screen == screenThread && m.composing:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case m.screen == screenNewChat && len(m.newChatInputs) > 0:
		var cmd tea.Cmd
		m.newChatInputs[m.newChatFocus], cmd = m.newChatInputs[m.newChatFocus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// openThread switches to the transcript with the given counterparty. A nil
// listingID shows the whole history across listings; the new-chat form may
// narrow it to a single listing.
func (m *mainLoopModel) openThread(counterpartyID int64, name string, listingID *int64) tea.Cmd {
	m.screen = screenThread
	m.counterpartyID = counterpartyID
	m.counterpartyName = name
	m.listingID = listingID
	m.thread = nil
	m.threadIdx = 0
	m.loadingThread = true
	m.composing = false
	m.sending = false
	m.input.Reset()
	m.input.Blur()
	m.status = ""
	m.errMsg = ""

	cmds := []tea.Cmd{m.cmdLoadThread()}
	if conv, ok := m.conversationWith(counterpartyID); ok && conv.UnreadCount > 0 {
		cmds = append(cmds, m.cmdMarkRead(counterpartyID))
	}
	return tea.Batch(cmds...)
}

func (m *mainLoopModel) startNewChat() {
	to := textinput.New()
	to.Placeholder = "user id"
	to.CharLimit = 19
	to.Width = 24
	to.Focus()

	listing := textinput.New()
	listing.Placeholder = "listing id (optional)"
	listing.CharLimit = 19
	listing.Width = 24

	m.newChatInputs = []textinput.Model{to, listing}
	m.newChatFocus = 0
	m.newChatErr = ""
	m.screen = screenNewChat
	m.status = ""
	m.errMsg = ""
}

func (m *mainLoopModel) moveNewChatFocus(delta int) {
	m.newChatInputs[m.newChatFocus].Blur()
	m.newChatFocus = (m.newChatFocus + delta + len(m.newChatInputs)) % len(m.newChatInputs)
	m.newChatInputs[m.newChatFocus].Focus()
}

func (m mainLoopModel) currentConversation() (models.Conversation, bool) {
	if m.convIdx < 0 || m.convIdx >= len(m.conversations) {
		return models.Conversation{}, false
	}
	return m.conversations[m.convIdx], true
}

func (m mainLoopModel) currentMessage() (models.Message, bool) {
	if m.threadIdx < 0 || m.threadIdx >= len(m.thread) {
		return models.Message{}, false
	}
	return m.thread[m.threadIdx], true
}

func (m mainLoopModel) conversationWith(counterpartyID int64) (models.Conversation, bool) {
	for _, conv := range m.conversations {
		if conv.CounterpartyID == counterpartyID {
			return conv, true
		}
	}
	return models.Conversation{}, false
}

func (m mainLoopModel) contactName(counterpartyID int64) (string, bool) {
	conv, ok := m.conversationWith(counterpartyID)
	if !ok || strings.TrimSpace(conv.CounterpartyName) == "" {
		return "", false
	}
	return conv.CounterpartyName, true
}

func (m mainLoopModel) cmdLoadConversations() tea.Cmd {
	ctx, svc, userID := m.ctx, m.services.ConversationService, m.session.UserID
	return func() tea.Msg {
		items, err := svc.Conversations(ctx, userID)
		return conversationsLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdLoadThread() tea.Cmd {
	ctx, svc := m.ctx, m.services.ConversationService
	userID, counterpartyID, listingID := m.session.UserID, m.counterpartyID, m.listingID
	return func() tea.Msg {
		messages, err := svc.Thread(ctx, userID, counterpartyID, listingID)
		return threadLoadedMsg{counterpartyID: counterpartyID, messages: messages, err: err}
	}
}

func (m mainLoopModel) cmdSend(text string) tea.Cmd {
	ctx, svc := m.ctx, m.services.ConversationService
	receiverID, listingID := m.counterpartyID, m.listingID
	return func() tea.Msg {
		message, outcome, err := svc.Send(ctx, receiverID, listingID, text)
		return sendDoneMsg{message: message, outcome: outcome, err: err}
	}
}

func (m mainLoopModel) cmdMarkRead(counterpartyID int64) tea.Cmd {
	ctx, svc, userID := m.ctx, m.services.ConversationService, m.session.UserID
	return func() tea.Msg {
		err := svc.MarkRead(ctx, userID, counterpartyID)
		return markReadDoneMsg{counterpartyID: counterpartyID, err: err}
	}
}

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	ctx, svc, userID := m.ctx, m.services.ConversationService, m.session.UserID
	return func() tea.Msg {
		added, err := svc.Refresh(ctx, userID)
		return refreshDoneMsg{added: added, err: err}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenThread:
		return m.viewThread()
	case screenNewChat:
		return m.viewNewChat()
	default:
		return m.viewConversations()
	}
}

func (m mainLoopModel) viewConversations() string {
	hotKeys := "enter: open │ n: new chat │ r: refresh │ p: copy my key │ l: log out │ q: quit"
	if m.loading {
		return renderPage(titleStyle.Render("CONVERSATIONS"), "Loading conversations...", hotKeys)
	}

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.encryptionStateLine()))
	b.WriteString("\n\n")

	if len(m.conversations) == 0 {
		b.WriteString("No conversations yet. Press n to start one.")
		return renderPage(titleStyle.Render("CONVERSATIONS"), b.String(), hotKeys)
	}

	b.WriteString("  From               │ Last message                       │ New │ When\n")
	b.WriteString("  ───────────────────┼────────────────────────────────────┼─────┼───────\n")
	for i, conv := range m.conversations {
		cursor := "  "
		if i == m.convIdx {
			cursor = "> "
		}
		unread := "   "
		if conv.UnreadCount > 0 {
			unread = unreadStyle.Render(fmt.Sprintf("%3d", conv.UnreadCount))
		}
		b.WriteString(fmt.Sprintf("%s%-18s │ %-34s │ %s │ %s\n",
			cursor,
			fitText(conv.CounterpartyName, 18),
			fitText(m.previewLine(conv), 34),
			unread,
			formatWhen(conv.LastMessageAt),
		))
	}

	return renderPage(titleStyle.Render("CONVERSATIONS"), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewThread() string {
	title := "CHAT WITH " + strings.ToUpper(m.counterpartyName) + listingTag(m.listingID)

	hotKeys := "i: write │ c: copy message │ r: refresh │ ↑/↓: select │ esc: back"
	if m.composing {
		hotKeys = "enter: send │ esc: stop writing"
	}

	if m.loadingThread {
		return renderPage(titleStyle.Render(title), "Loading messages...", hotKeys)
	}

	var b strings.Builder
	if len(m.thread) == 0 {
		b.WriteString("No messages yet. Press i to write the first one.\n")
	} else {
		start := 0
		if len(m.thread) > threadWindow {
			start = m.threadIdx - threadWindow + 1
			if start < 0 {
				start = 0
			}
			if start > len(m.thread)-threadWindow {
				start = len(m.thread) - threadWindow
			}
		}
		if start > 0 {
			b.WriteString(helpStyle.Render(fmt.Sprintf("(%d earlier messages)", start)))
			b.WriteString("\n")
		}
		end := start + threadWindow
		if end > len(m.thread) {
			end = len(m.thread)
		}
		for i := start; i < end; i++ {
			item := m.thread[i]
			cursor := "  "
			if !m.composing && i == m.threadIdx {
				cursor = "> "
			}
			who := m.counterpartyName
			if item.SenderID == m.session.UserID {
				who = "You"
			}
			b.WriteString(fmt.Sprintf("%s%s │ %s%s\n", cursor, who, formatWhen(item.CreatedAt), listingTag(item.ListingID)))
			body := displayBody(item.Content)
			if body == crypto.EncryptedContentPlaceholder || body == crypto.UndecryptableMarker {
				body = mutedStyle.Render(body)
			}
			for _, line := range strings.Split(body, "\n") {
				b.WriteString("    ")
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
	}

	if m.composing {
		b.WriteString("\n> ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.sending {
			b.WriteString("[Sending...]\n")
		}
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage(titleStyle.Render(title), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewNewChat() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("To user id │ %s\n", m.newChatInputs[0].View()))
	b.WriteString(fmt.Sprintf("Listing id │ %s\n", m.newChatInputs[1].View()))
	if m.newChatErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.newChatErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("The listing id is optional and narrows the chat to one listing."))

	return renderPage(titleStyle.Render("NEW CHAT"), b.String(), "tab: next field │ enter: open │ esc: back")
}

func (m mainLoopModel) encryptionStateLine() string {
	if m.services.Keys.IsReady() {
		return "encryption: on"
	}
	return "encryption: off (no keys in this session; encrypted messages stay locked)"
}

func (m mainLoopModel) previewLine(conv models.Conversation) string {
	text := conv.Preview
	if text == "" {
		text = crypto.ClassifyForPreview(conv.LastMessage)
	}
	if conv.LastSenderID == m.session.UserID {
		text = "You: " + text
	}
	return text
}

// displayBody renders a message body for the screen. Received messages come
// out of the service already decrypted when the session keys are loaded, so
// anything still looking like ciphertext collapses to the placeholder
// instead of dumping base64 at the user.
func displayBody(content string) string {
	return crypto.ClassifyForPreview(content)
}
