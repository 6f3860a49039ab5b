package mvc

import (
	"context"
	"strings"

	"github.com/thatmoosee/Study-Buddy/client/message"
	"github.com/thatmoosee/Study-Buddy/client/terminal"
	"github.com/thatmoosee/Study-Buddy/util/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const requestFriendAction message.Action = "request friend"

const noStudentText = "Student not found."

type searchedMsg struct {
	query   string
	student model.User
	found   bool
	err     error
}

// SearchPage looks students up by email and sends them friend requests.
type SearchPage struct {
	searchBar   textinput.Model
	onSearchBar bool
	results     ResourceList[model.User]
	searched    string

	msg   string
	err   string
	ready bool

	session *Session
}

func InitialSearchModel(s *Session) SearchPage {
	m := SearchPage{session: s, onSearchBar: true}

	m.searchBar = textinput.New()
	m.searchBar.Placeholder = "Search student by email..."
	m.searchBar.Focus()

	m.results = NewResourceList(noStudentText, func(u model.User) string {
		if u.ID.IsZero() {
			return u.Email
		}
		return u.Email + " (ID " + u.ID.String() + ")"
	})
	m.results.Size = terminal.ListSize(12)
	return m
}

func (m SearchPage) Init() tea.Cmd {
	return tea.Batch(m.session.checkAuth(), textinput.Blink)
}

func (m SearchPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case message.AuthMsg:
		if m.ready {
			return m, nil
		}
		ok, next, cmd := m.session.guard(msg)
		if !ok {
			if next != nil {
				return next, cmd
			}
			return m, cmd
		}
		m.ready = true
		return m, nil

	case searchedMsg:
		if msg.err != nil {
			m.err = actionError(msg.err)
			return m, nil
		}
		m.err = ""
		m.searched = msg.query
		if msg.found {
			m.results.Replace([]model.User{msg.student})
		} else {
			m.results.Replace(nil)
			m.focusSearchBar()
		}
		return m, nil

	case message.ActionDoneMsg:
		if msg.Err != nil {
			m.err = actionError(msg.Err)
			return m, nil
		}
		m.err = ""
		m.msg = "Friend request sent to " + msg.Target.String() + "."
		return m, resetInfo()

	case message.ResetMsg:
		m.msg = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return open(InitialHomeModel(m.session))
		case "ctrl+r":
			return open(InitialSearchModel(m.session))
		case "down":
			if m.onSearchBar {
				if len(m.results.Items) > 0 {
					m.onSearchBar = false
					m.searchBar.Blur()
					m.results.Cursor = 0
				}
			} else {
				m.results.Move(1)
			}
			return m, nil
		case "up":
			if !m.onSearchBar {
				if m.results.Cursor == 0 {
					m.focusSearchBar()
				} else {
					m.results.Move(-1)
				}
			}
			return m, nil
		case "enter":
			if m.onSearchBar {
				return m, m.search(strings.TrimSpace(m.searchBar.Value()))
			}
		case "r":
			if !m.onSearchBar {
				if u, ok := m.results.Selected(); ok {
					return m, m.request(u.Email)
				}
				return m, nil
			}
		}
	}

	if !m.onSearchBar {
		return m, nil
	}
	var cmd tea.Cmd
	m.searchBar, cmd = m.searchBar.Update(msg)
	return m, cmd
}

func (m *SearchPage) focusSearchBar() {
	m.onSearchBar = true
	m.searchBar.Focus()
}

func (m SearchPage) search(email string) tea.Cmd {
	api := m.session.API
	return func() tea.Msg {
		u, found, err := api.SearchStudent(context.Background(), email)
		return searchedMsg{query: email, student: u, found: found, err: err}
	}
}

func (m SearchPage) request(email string) tea.Cmd {
	api := m.session.API
	return message.ActionCmd(requestFriendAction, model.TextID(email), func(ctx context.Context) error {
		return api.SendFriendRequest(ctx, email)
	})
}

func (m SearchPage) View() string {
	styles := m.session.Styles
	s := header(m.session, "Search")
	if !m.ready {
		return s
	}

	s += m.searchBar.View()
	s += "\n"
	if m.searched != "" {
		s += styles.Faint.Render("Results for "+m.searched) + "\n"
	}
	s += "_________________________\n"
	s += m.results.View(!m.onSearchBar, styles.Cursor)
	s += "‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾\n\n"

	s += errorLine(styles, m.err)
	s += infoLine(m.msg)
	s += "enter to search, down to pick a result, 'r' to send a friend request\n"
	s += "ctrl+r to clear, esc back\n"
	return s
}
