package mvc

import (
	"context"
	"strings"

	"github.com/thatmoosee/Study-Buddy/client/message"
	"github.com/thatmoosee/Study-Buddy/client/terminal"
	"github.com/thatmoosee/Study-Buddy/util/model"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	createChatAction message.Action = "create chat"
	joinChatAction   message.Action = "join chat"
	leaveChatAction  message.Action = "leave chat"
)

const noChatsText = "You are not in any chats."

type chatSentMsg struct {
	chat model.Chat
	err  error
}

type ChatsPage struct {
	chats  ResourceList[model.Chat]
	form   form
	onForm bool

	overlay overlay
	popup   chatPopup

	msg   string
	ready bool

	session *Session
}

func InitialChatsModel(s *Session) ChatsPage {
	m := ChatsPage{
		session: s,
		chats:   NewResourceList(noChatsText, func(c model.Chat) string { return c.Name }),
		form:    newChoiceForm(newChoice("Create", "Join", "Leave"), "Chat name or ID"),
	}
	m.chats.Size = terminal.ListSize(14)
	return m
}

func (m ChatsPage) Init() tea.Cmd {
	return m.session.checkAuth()
}

func (m ChatsPage) refresh() tea.Cmd {
	return message.ListCmd(message.Chats, m.session.API.ListChats)
}

func (m ChatsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	case message.ListedMsg[model.Chat]:
		m.chats.Replace(msg.Items)
		return m, nil

	case message.ActionDoneMsg:
		if msg.Err != nil {
			m.form.err = actionError(msg.Err)
			return m, nil
		}
		m.form.reset()
		switch msg.Action {
		case createChatAction:
			m.msg = "Chat created."
		case joinChatAction:
			m.msg = "Joined chat " + msg.Target.String() + "."
		case leaveChatAction:
			m.msg = "Left chat " + msg.Target.String() + "."
		}
		return m, tea.Batch(m.refresh(), resetInfo())

	case chatSentMsg:
		if msg.err != nil {
			m.popup.err = actionError(msg.err)
			return m, nil
		}
		m.popup.err = ""
		m.popup.textbox.Reset()
		m.popup.setChat(msg.chat, m.session.Styles)
		for i, c := range m.chats.Items {
			if c.ChatID.String() == msg.chat.ChatID.String() {
				m.chats.Items[i] = msg.chat
			}
		}
		return m, nil

	case message.ResetMsg:
		m.msg = ""
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.overlay == chatOverlay {
			switch msg.String() {
			case "esc":
				m.overlay = noOverlay
				return m, nil
			case "ctrl+s":
				return m, m.send()
			}
			break
		}

		switch msg.String() {
		case "tab":
			m.onForm = !m.onForm
			return m, nil
		case "esc":
			return open(InitialHomeModel(m.session))
		}
		if m.onForm {
			if msg.String() == "enter" {
				return m, m.submit()
			}
			break
		}
		switch msg.String() {
		case "left":
			return open(InitialHomeModel(m.session))
		case "up":
			m.chats.Move(-1)
		case "down":
			m.chats.Move(1)
		case "enter":
			if c, ok := m.chats.Selected(); ok {
				m.overlay = chatOverlay
				m.popup = newChatPopup(c, m.session.Styles)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.overlay == chatOverlay {
		m.popup, cmd = m.popup.update(msg)
	} else if m.onForm {
		m.form, cmd = m.form.update(msg)
	}
	return m, cmd
}

func (m ChatsPage) submit() tea.Cmd {
	api := m.session.API
	value := m.form.values()[0]

	switch m.form.selected() {
	case 1:
		id := model.TextID(value)
		return message.ActionCmd(joinChatAction, id, func(ctx context.Context) error {
			return api.JoinChat(ctx, id)
		})
	case 2:
		id := model.TextID(value)
		return message.ActionCmd(leaveChatAction, id, func(ctx context.Context) error {
			return api.LeaveChat(ctx, id)
		})
	}
	return message.ActionCmd(createChatAction, model.ID{}, func(ctx context.Context) error {
		return api.CreateChat(ctx, value)
	})
}

func (m ChatsPage) send() tea.Cmd {
	text := strings.TrimSpace(m.popup.textbox.Value())
	if text == "" {
		return nil
	}

	api := m.session.API
	id := m.popup.chat.ChatID
	return func() tea.Msg {
		c, err := api.SendMessage(context.Background(), id, text)
		return chatSentMsg{chat: c, err: err}
	}
}

func (m ChatsPage) View() string {
	styles := m.session.Styles
	s := header(m.session, "Chats")
	if !m.ready {
		return s
	}

	if m.overlay == chatOverlay {
		return s + m.popup.view(styles) + "\n"
	}

	s += styles.Title.Render("Your chats") + "\n"
	s += m.chats.View(!m.onForm, styles.Cursor) + "\n"

	if m.onForm {
		s += m.form.view(styles)
	} else {
		s += styles.Faint.Render(m.form.view(styles))
	}
	s += "\n" + infoLine(m.msg)
	s += "tab switch list/form, enter open chat or submit, esc back\n"
	return s
}
