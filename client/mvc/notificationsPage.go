package mvc

import (
	"context"
	"log/slog"

	"github.com/thatmoosee/Study-Buddy/client/message"
	"github.com/thatmoosee/Study-Buddy/client/terminal"
	"github.com/thatmoosee/Study-Buddy/util/model"

	tea "github.com/charmbracelet/bubbletea"
)

const noNotificationsText = "No notifications."

// readMsg and deletedMsg answer a single item's request. The list is never
// re-fetched for them.
type readMsg struct {
	id  model.ID
	err error
}

type deletedMsg struct {
	id  model.ID
	err error
}

type NotificationsPage struct {
	notifications ResourceList[model.Notification]
	ready         bool

	session *Session
}

func InitialNotificationsModel(s *Session) NotificationsPage {
	m := NotificationsPage{session: s}
	m.notifications = NewResourceList(noNotificationsText, func(n model.Notification) string {
		if n.Read {
			return "[x] " + s.Styles.Read.Render(n.Message)
		}
		return "[ ] " + n.Message
	})
	m.notifications.Size = terminal.ListSize(8)
	return m
}

func (m NotificationsPage) Init() tea.Cmd {
	return m.session.checkAuth()
}

func (m NotificationsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		return m, message.ListCmd(message.Notifications, m.session.API.ListNotifications)

	case message.ListedMsg[model.Notification]:
		m.notifications.Replace(msg.Items)

	case readMsg:
		if msg.err != nil {
			slog.Error("marking notification read", "id", msg.id.String(), "error", msg.err)
			break
		}
		if i := m.index(msg.id); i >= 0 {
			m.notifications.Items[i].Read = !m.notifications.Items[i].Read
		}

	case deletedMsg:
		if msg.err != nil {
			slog.Error("deleting notification", "id", msg.id.String(), "error", msg.err)
			break
		}
		m.notifications.Remove(m.index(msg.id))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "left":
			return open(InitialHomeModel(m.session))
		case "up":
			m.notifications.Move(-1)
		case "down":
			m.notifications.Move(1)
		case " ":
			if n, ok := m.notifications.Selected(); ok {
				return m, m.toggle(n)
			}
		case "d":
			if n, ok := m.notifications.Selected(); ok {
				return m, m.delete(n)
			}
		}
	}
	return m, nil
}

func (m NotificationsPage) index(id model.ID) int {
	for i, n := range m.notifications.Items {
		if n.ID.String() == id.String() {
			return i
		}
	}
	return -1
}

// toggle flips the item's checkbox. The backend only knows "read", so the
// request is the same either way. Each successful answer flips the item as it
// is when the answer arrives.
func (m NotificationsPage) toggle(n model.Notification) tea.Cmd {
	api := m.session.API
	return func() tea.Msg {
		return readMsg{id: n.ID, err: api.MarkRead(context.Background(), n.ID)}
	}
}

func (m NotificationsPage) delete(n model.Notification) tea.Cmd {
	api := m.session.API
	return func() tea.Msg {
		return deletedMsg{id: n.ID, err: api.DeleteNotification(context.Background(), n.ID)}
	}
}

func (m NotificationsPage) View() string {
	styles := m.session.Styles
	s := header(m.session, "Notifications")
	if !m.ready {
		return s
	}

	s += m.notifications.View(true, styles.Cursor) + "\n"
	s += "space toggle read, d delete, esc back\n"
	return s
}
