package mvc

import (
	"github.com/thatmoosee/Study-Buddy/client/message"

	tea "github.com/charmbracelet/bubbletea"
)

var homeOptions = []string{
	"Groups",
	"Chats",
	"Search",
	"Profile",
	"Notifications",
}

type HomePage struct {
	cursor int
	ready  bool

	session *Session
}

func InitialHomeModel(s *Session) HomePage {
	return HomePage{session: s}
}

func (m HomePage) Init() tea.Cmd {
	return m.session.checkAuth()
}

func (m HomePage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	case tea.KeyMsg:
		switch msg.String() {
		case "down":
			m.cursor++
			if m.cursor >= len(homeOptions) {
				m.cursor = 0
			}
		case "up":
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(homeOptions) - 1
			}
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter", "right":
			if !m.ready {
				break
			}
			switch m.cursor {
			case 0:
				return open(InitialGroupsModel(m.session))
			case 1:
				return open(InitialChatsModel(m.session))
			case 2:
				return open(InitialSearchModel(m.session))
			case 3:
				return open(InitialProfileModel(m.session))
			case 4:
				return open(InitialNotificationsModel(m.session))
			}
		}
	}
	return m, nil
}

func header(s *Session, title string) string {
	out := s.Styles.Title.Render("Study Buddy: "+title) + "\n"
	if s.User.Email != "" {
		out += s.Styles.Faint.Render("Logged in as: "+s.User.Email) + "\n"
	}
	return out + "\n"
}

func (m HomePage) View() string {
	s := header(m.session, "Home")
	if !m.ready {
		return s
	}

	for i, option := range homeOptions {
		if i == m.cursor {
			s += "\t" + m.session.Styles.Cursor.Render(option) + "\n"
		} else {
			s += "\t" + option + "\n"
		}
	}

	s += "\nPress 'q' or 'ctrl+c' to quit\n\n"
	return s
}
