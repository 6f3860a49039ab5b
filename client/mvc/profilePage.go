package mvc

import (
	"context"
	"log/slog"

	"github.com/thatmoosee/Study-Buddy/client/message"
	"github.com/thatmoosee/Study-Buddy/client/terminal"
	"github.com/thatmoosee/Study-Buddy/util/model"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	addFriendAction     message.Action = "add friend"
	removeFriendAction  message.Action = "remove friend"
	acceptRequestAction message.Action = "accept friend request"
	rejectRequestAction message.Action = "reject friend request"
)

const (
	noFriendsText  = "You have no friends yet."
	noRequestsText = "No pending friend requests."
)

type loggedOutMsg struct{}

type profilePane int

const (
	friendsPane profilePane = iota
	requestsPane
	formPane
)

// ProfilePage lists friends and pending friend requests and holds the
// account actions.
type ProfilePage struct {
	friends     ResourceList[model.ID]
	requests    ResourceList[model.FriendRequest]
	requestsErr string
	form        form
	pane        profilePane

	msg   string
	ready bool

	session *Session
}

func InitialProfileModel(s *Session) ProfilePage {
	m := ProfilePage{
		session: s,
		friends: NewResourceList(noFriendsText, model.ID.String),
		requests: NewResourceList(noRequestsText, func(r model.FriendRequest) string {
			return "from " + r.FromEmail
		}),
		form: newChoiceForm(newChoice("Add", "Remove"), "Friend ID"),
	}
	m.friends.Size = terminal.ListSize(18) / 2
	m.requests.Size = terminal.ListSize(18) / 2
	return m
}

func (m ProfilePage) Init() tea.Cmd {
	return m.session.checkAuth()
}

func (m ProfilePage) refreshFriends() tea.Cmd {
	return message.ListCmd(message.Friends, m.session.API.ListFriends)
}

func (m ProfilePage) refresh() tea.Cmd {
	return tea.Batch(
		m.refreshFriends(),
		message.ListCmd(message.FriendRequests, m.session.API.ListFriendRequests),
	)
}

func (m ProfilePage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		return m, m.refresh()

	case message.ListedMsg[model.ID]:
		m.friends.Replace(msg.Items)
		return m, nil

	case message.ListedMsg[model.FriendRequest]:
		m.requests.Replace(msg.Items)
		return m, nil

	case message.ActionDoneMsg:
		return m.actionDone(msg)

	case loggedOutMsg:
		m.session.User = model.User{}
		return open(InitialLoginModel(m.session))

	case message.ResetMsg:
		m.msg = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.pane = (m.pane + 1) % 3
			return m, nil
		case "esc":
			return open(InitialHomeModel(m.session))
		}
		if m.pane == formPane {
			if msg.String() == "enter" {
				return m, m.submit()
			}
			break
		}
		switch msg.String() {
		case "left":
			return open(InitialHomeModel(m.session))
		case "up":
			if m.pane == requestsPane {
				m.requests.Move(-1)
			} else {
				m.friends.Move(-1)
			}
		case "down":
			if m.pane == requestsPane {
				m.requests.Move(1)
			} else {
				m.friends.Move(1)
			}
		case "a", "x":
			if m.pane == requestsPane {
				return m, m.answer(msg.String() == "a")
			}
		case "e":
			return open(InitialEditProfileModel(m.session))
		case "o":
			return m, m.logout()
		}
		return m, nil
	}

	if m.pane != formPane {
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m ProfilePage) actionDone(msg message.ActionDoneMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case acceptRequestAction, rejectRequestAction:
		if msg.Err != nil {
			m.requestsErr = actionError(msg.Err)
			return m, nil
		}
		m.requestsErr = ""
		m.msg = "Friend request accepted."
		if msg.Action == rejectRequestAction {
			m.msg = "Friend request rejected."
		}
		return m, tea.Batch(m.refresh(), resetInfo())
	}

	if msg.Err != nil {
		m.form.err = actionError(msg.Err)
		return m, nil
	}
	m.form.reset()
	m.msg = "Added friend " + msg.Target.String() + "."
	if msg.Action == removeFriendAction {
		m.msg = "Removed friend " + msg.Target.String() + "."
	}
	return m, tea.Batch(m.refreshFriends(), resetInfo())
}

// answer accepts or rejects the selected request. Both lists are re-fetched
// once it goes through.
func (m ProfilePage) answer(accept bool) tea.Cmd {
	r, ok := m.requests.Selected()
	if !ok {
		return nil
	}
	api := m.session.API
	if accept {
		return message.ActionCmd(acceptRequestAction, r.RequestID, func(ctx context.Context) error {
			return api.AcceptFriendRequest(ctx, r.RequestID)
		})
	}
	return message.ActionCmd(rejectRequestAction, r.RequestID, func(ctx context.Context) error {
		return api.RejectFriendRequest(ctx, r.RequestID)
	})
}

func (m ProfilePage) submit() tea.Cmd {
	api := m.session.API
	id := model.TextID(m.form.values()[0])

	if m.form.selected() == 1 {
		return message.ActionCmd(removeFriendAction, id, func(ctx context.Context) error {
			return api.RemoveFriend(ctx, id)
		})
	}
	return message.ActionCmd(addFriendAction, id, func(ctx context.Context) error {
		return api.AddFriend(ctx, id)
	})
}

// logout returns to the login page whatever the backend answers.
func (m ProfilePage) logout() tea.Cmd {
	api := m.session.API
	return func() tea.Msg {
		if err := api.Logout(context.Background()); err != nil {
			slog.Warn("logout failed", "error", err)
		}
		return loggedOutMsg{}
	}
}

func (m ProfilePage) View() string {
	styles := m.session.Styles
	s := header(m.session, "Profile")
	if !m.ready {
		return s
	}

	s += styles.Title.Render("Friends") + "\n"
	s += m.friends.View(m.pane == friendsPane, styles.Cursor) + "\n"

	s += styles.Title.Render("Friend requests") + "\n"
	s += m.requests.View(m.pane == requestsPane, styles.Cursor)
	s += errorLine(styles, m.requestsErr) + "\n"

	if m.pane == formPane {
		s += m.form.view(styles)
	} else {
		s += styles.Faint.Render(m.form.view(styles))
	}
	s += "\n" + infoLine(m.msg)
	s += "tab switch friends/requests/form, enter submit, 'a' accept, 'x' reject\n"
	s += "e edit profile, o log out, esc back\n"
	return s
}
