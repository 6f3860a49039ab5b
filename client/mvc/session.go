package mvc

import (
	"errors"
	"log/slog"
	"time"

	"github.com/thatmoosee/Study-Buddy/client/api"
	"github.com/thatmoosee/Study-Buddy/client/message"
	"github.com/thatmoosee/Study-Buddy/util/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// How long an "Info:" line stays on screen.
var infoTimeout = 5 * time.Second

type Styles struct {
	Cursor lipgloss.Style
	Title  lipgloss.Style
	Error  lipgloss.Style
	Read   lipgloss.Style
	Sender lipgloss.Style
	Faint  lipgloss.Style
	Popup  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("#000")).Background(lipgloss.Color("#FFF")),
		Title:  lipgloss.NewStyle().Bold(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f55")),
		Read:   lipgloss.NewStyle().Strikethrough(true).Faint(true),
		Sender: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff8")),
		Faint:  lipgloss.NewStyle().Faint(true),
		Popup:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Session is shared by every page for the life of the program.
type Session struct {
	API    *api.Client
	User   model.User
	Styles Styles

	// Err is set when the auth guard could not reach the backend. The
	// program quits and main reports it.
	Err error
}

func NewSession(client *api.Client) *Session {
	return &Session{API: client, Styles: DefaultStyles()}
}

func (s *Session) checkAuth() tea.Cmd {
	return message.CheckAuth(s.API.Status)
}

// guard handles the auth check every page runs first. It returns ok when the
// page may load. Otherwise next is the page to show instead, or nil when the
// program is quitting.
func (s *Session) guard(msg message.AuthMsg) (ok bool, next tea.Model, cmd tea.Cmd) {
	if msg.Err != nil {
		slog.Error("auth status check failed", "error", msg.Err)
		s.Err = msg.Err
		return false, nil, tea.Quit
	}
	if !msg.Status.LoggedIn {
		s.User = model.User{}
		return false, InitialLoginModel(s), nil
	}

	s.User = *msg.Status.User
	return true, nil, nil
}

// actionError is the text shown inline for a failed mutating action. Only
// rejections carrying an error message and missing fields are shown.
func actionError(err error) string {
	var rejected *api.ActionError
	if errors.As(err, &rejected) {
		return rejected.Message
	}
	var missing *api.FieldError
	if errors.As(err, &missing) {
		return missing.Error()
	}
	return ""
}

// submitError is actionError for forms that always answer, falling back to a
// fixed line when the failure has no text of its own.
func submitError(err error, fallback string) string {
	if msg := actionError(err); msg != "" {
		return msg
	}
	return fallback
}

// open switches to page p and starts it.
func open(p tea.Model) (tea.Model, tea.Cmd) {
	return p, p.Init()
}

func resetInfo() tea.Cmd {
	return message.SendTimedMessage(message.ResetMsg{}, infoTimeout)
}

func infoLine(msg string) string {
	if msg == "" {
		return ""
	}
	return "Info: " + msg + "\n\n"
}

func errorLine(styles Styles, msg string) string {
	if msg == "" {
		return ""
	}
	return styles.Error.Render(msg) + "\n"
}
