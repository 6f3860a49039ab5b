package mvc

import (
	"context"
	"slices"
	"strings"

	"github.com/thatmoosee/Study-Buddy/client/message"
	"github.com/thatmoosee/Study-Buddy/client/terminal"
	"github.com/thatmoosee/Study-Buddy/util"
	"github.com/thatmoosee/Study-Buddy/util/model"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	joinGroupAction     message.Action = "join group"
	leaveGroupAction    message.Action = "leave group"
	createGroupAction   message.Action = "create group"
	scheduleAction      message.Action = "schedule session"
	deleteSessionAction message.Action = "delete session"
)

const (
	noGroupsText       = "You are not in any groups."
	noAllGroupsText    = "There are no groups."
	noMatchingText     = "No matching groups."
	noSessionsText     = "There are no sessions."
	filterRequiredText = "Filter value required."
)

type overlay int

const (
	noOverlay overlay = iota
	groupInfoOverlay
	createGroupOverlay
	filterOverlay
	scheduleOverlay
	chatOverlay
)

type groupPane int

const (
	minePane groupPane = iota
	allPane
	sessionsPane
)

// GroupActionSet is which buttons the group info popup shows.
type GroupActionSet struct {
	Join     bool
	Leave    bool
	Schedule bool
}

// GroupActions decides the popup's buttons from membership alone.
func GroupActions(g model.Group, email string) GroupActionSet {
	member := slices.Contains(g.Members, email)
	return GroupActionSet{Join: !member, Leave: member, Schedule: member}
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

// groupInfo renders the fields shown in the group info popup.
func groupInfo(g model.Group) string {
	s := g.Name + "\n"
	s += "ID: " + g.ID.String() + "\n"
	s += "Members: " + strings.Join(g.Members, ", ") + "\n"
	s += "Class: " + orNone(g.SpecifiedClass) + "\n"
	s += "Study times: " + orNone(strings.Join(g.StudyTimes, ",")) + "\n"
	return s
}

type GroupsPage struct {
	mine     ResourceList[model.Group]
	all      ResourceList[model.Group]
	sessions ResourceList[model.StudySession]
	pane     groupPane

	overlay  overlay
	detail   model.Group
	actions  GroupActionSet
	form     form
	popupErr string

	msg   string
	ready bool

	session *Session
}

func InitialGroupsModel(s *Session) GroupsPage {
	name := func(g model.Group) string { return g.Name }

	m := GroupsPage{
		session: s,
		mine:    NewResourceList(noGroupsText, name),
		all:     NewResourceList(noAllGroupsText, name),
		sessions: NewResourceList(noSessionsText, func(st model.StudySession) string {
			return st.Title + " " + st.StartTime + " - " + st.EndTime
		}),
	}

	rows := terminal.ListSize(14) / 3
	m.mine.Size, m.all.Size, m.sessions.Size = rows, rows, rows
	return m
}

func (m GroupsPage) Init() tea.Cmd {
	return m.session.checkAuth()
}

func (m GroupsPage) refreshGroups() tea.Cmd {
	api := m.session.API
	return tea.Batch(
		message.ListCmd(message.MyGroups, api.ListGroups),
		message.ListCmd(message.AllGroups, api.ListAllGroups),
	)
}

func (m GroupsPage) refreshSessions() tea.Cmd {
	return message.ListCmd(message.Sessions, m.session.API.ListSessions)
}

func (m GroupsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case message.AuthMsg:
		// a late answer to the previous page's check
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
		return m, tea.Batch(m.refreshGroups(), m.refreshSessions())

	case message.ListedMsg[model.Group]:
		switch msg.List {
		case message.MyGroups:
			m.mine.Replace(msg.Items)
		case message.AllGroups:
			m.all.Placeholder = noAllGroupsText
			m.all.Replace(msg.Items)
		case message.FilteredGroups:
			m.all.Placeholder = noMatchingText
			m.all.Replace(msg.Items)
		}
		return m, nil

	case message.ListedMsg[model.StudySession]:
		m.sessions.Replace(msg.Items)
		return m, nil

	case message.ActionDoneMsg:
		return m.actionDone(msg)

	case message.ResetMsg:
		m.msg = ""
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.overlay {
		case noOverlay:
			return m.listKeys(msg)
		case groupInfoOverlay:
			return m.groupInfoKeys(msg)
		default:
			switch msg.String() {
			case "esc":
				m.overlay = noOverlay
				return m, nil
			case "enter":
				return m.submit()
			}
		}
	}

	if m.overlay == createGroupOverlay || m.overlay == filterOverlay || m.overlay == scheduleOverlay {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m GroupsPage) listKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "left":
		return open(InitialHomeModel(m.session))
	case "tab":
		m.pane = (m.pane + 1) % 3
	case "up":
		m.move(-1)
	case "down":
		m.move(1)
	case "enter":
		var g model.Group
		var ok bool
		switch m.pane {
		case minePane:
			g, ok = m.mine.Selected()
		case allPane:
			g, ok = m.all.Selected()
		}
		if ok {
			m = m.openGroupInfo(g)
		}
	case "c":
		m.overlay = createGroupOverlay
		m.form = newForm("Group name", "Class", "Study times (comma separated)")
	case "f":
		m.overlay = filterOverlay
		m.form = newChoiceForm(newChoice("Class", "Free time"), "Filter value")
	case "r":
		return m, message.ListCmd(message.AllGroups, m.session.API.ListAllGroups)
	case "d":
		if st, ok := m.sessions.Selected(); ok && m.pane == sessionsPane {
			api := m.session.API
			return m, message.ActionCmd(deleteSessionAction, st.ID, func(ctx context.Context) error {
				return api.DeleteSession(ctx, st.ID)
			})
		}
	}
	return m, nil
}

func (m *GroupsPage) move(delta int) {
	switch m.pane {
	case minePane:
		m.mine.Move(delta)
	case allPane:
		m.all.Move(delta)
	case sessionsPane:
		m.sessions.Move(delta)
	}
}

// openGroupInfo takes the overlay slot, closing whatever held it.
func (m GroupsPage) openGroupInfo(g model.Group) GroupsPage {
	m.overlay = groupInfoOverlay
	m.detail = g
	m.actions = GroupActions(g, m.session.User.Email)
	m.popupErr = ""
	return m
}

func (m GroupsPage) groupInfoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	api := m.session.API
	id := m.detail.ID

	switch msg.String() {
	case "esc":
		m.overlay = noOverlay
	case "j":
		if m.actions.Join {
			m.popupErr = ""
			return m, message.ActionCmd(joinGroupAction, id, func(ctx context.Context) error {
				return api.JoinGroup(ctx, id)
			})
		}
	case "l":
		if m.actions.Leave {
			m.popupErr = ""
			return m, message.ActionCmd(leaveGroupAction, id, func(ctx context.Context) error {
				return api.LeaveGroup(ctx, id)
			})
		}
	case "s":
		if m.actions.Schedule {
			m.overlay = scheduleOverlay
			m.form = newForm("Session name", "Start time", "End time")
		}
	}
	return m, nil
}

func (m GroupsPage) submit() (tea.Model, tea.Cmd) {
	api := m.session.API
	v := m.form.values()
	m.form.err = ""

	switch m.overlay {
	case createGroupOverlay:
		req := model.CreateGroupRequest{
			Name:           v[0],
			SpecifiedClass: v[1],
			StudyTimes:     util.SplitTrim(v[2], ","),
		}
		return m, message.ActionCmd(createGroupAction, model.ID{}, func(ctx context.Context) error {
			return api.CreateGroup(ctx, req)
		})

	case filterOverlay:
		value := v[0]
		if value == "" {
			m.form.err = filterRequiredText
			return m, nil
		}
		kind := model.FilterClass
		if m.form.selected() == 1 {
			kind = model.FilterTime
		}
		m.overlay = noOverlay
		m.pane = allPane
		return m, message.ListCmd(message.FilteredGroups, func(ctx context.Context) ([]model.Group, error) {
			return api.FilterGroups(ctx, kind, value)
		})

	case scheduleOverlay:
		req := model.CreateSessionRequest{
			SessionName: v[0],
			StartDate:   v[1],
			EndDate:     v[2],
			GroupID:     m.detail.ID,
		}
		return m, message.ActionCmd(scheduleAction, m.detail.ID, func(ctx context.Context) error {
			return api.CreateSession(ctx, req)
		})
	}
	return m, nil
}

func (m GroupsPage) actionDone(msg message.ActionDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		text := actionError(msg.Err)
		switch msg.Action {
		case joinGroupAction, leaveGroupAction:
			m.popupErr = text
		case createGroupAction, scheduleAction:
			m.form.err = text
		case deleteSessionAction:
			if text != "" {
				m.msg = text
				return m, resetInfo()
			}
		}
		return m, nil
	}

	switch msg.Action {
	case joinGroupAction, leaveGroupAction:
		m.overlay = noOverlay
		m.msg = "Joined group."
		if msg.Action == leaveGroupAction {
			m.msg = "Left group."
		}
		return m, tea.Batch(m.refreshGroups(), resetInfo())
	case createGroupAction:
		m.overlay = noOverlay
		m.form.reset()
		m.msg = "Group created."
		return m, tea.Batch(m.refreshGroups(), resetInfo())
	case scheduleAction:
		m.overlay = noOverlay
		m.msg = "Study session scheduled."
		return m, tea.Batch(m.refreshSessions(), resetInfo())
	case deleteSessionAction:
		return m, m.refreshSessions()
	}
	return m, nil
}

func (m GroupsPage) paneTitle(p groupPane, title string) string {
	if m.pane == p && m.overlay == noOverlay {
		return m.session.Styles.Cursor.Render(title) + "\n"
	}
	return m.session.Styles.Title.Render(title) + "\n"
}

func (m GroupsPage) View() string {
	styles := m.session.Styles
	s := header(m.session, "Groups")
	if !m.ready {
		return s
	}

	focused := m.overlay == noOverlay
	s += m.paneTitle(minePane, "My groups")
	s += m.mine.View(focused && m.pane == minePane, styles.Cursor) + "\n"
	s += m.paneTitle(allPane, "All groups")
	s += m.all.View(focused && m.pane == allPane, styles.Cursor) + "\n"
	s += m.paneTitle(sessionsPane, "Study sessions")
	s += m.sessions.View(focused && m.pane == sessionsPane, styles.Cursor) + "\n"

	s += infoLine(m.msg)

	switch m.overlay {
	case noOverlay:
		s += "tab switch list, enter open, c create, f filter, r clear filter, d delete session, esc back\n"
	case groupInfoOverlay:
		popup := groupInfo(m.detail) + "\n"
		if m.actions.Join {
			popup += "[j] Join\n"
		}
		if m.actions.Leave {
			popup += "[l] Leave\n"
		}
		if m.actions.Schedule {
			popup += "[s] Schedule session\n"
		}
		popup += errorLine(styles, m.popupErr)
		popup += "esc to close"
		s += styles.Popup.Render(popup) + "\n"
	case createGroupOverlay:
		s += styles.Popup.Render("Create group\n\n"+m.form.view(styles)+"enter to create, esc to cancel") + "\n"
	case filterOverlay:
		s += styles.Popup.Render("Filter groups\n\n"+m.form.view(styles)+"enter to filter, esc to cancel") + "\n"
	case scheduleOverlay:
		s += styles.Popup.Render("Schedule a session for "+m.detail.Name+"\n\n"+m.form.view(styles)+"enter to schedule, esc to cancel") + "\n"
	}

	return s
}
