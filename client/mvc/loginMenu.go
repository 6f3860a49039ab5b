package mvc

import (
	"context"

	"github.com/thatmoosee/Study-Buddy/client/message"
	"github.com/thatmoosee/Study-Buddy/util/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginMsg struct {
	user model.User
	err  error
}

type LoginPage struct {
	form form
	msg  string

	session *Session
}

func InitialLoginModel(s *Session) LoginPage {
	m := LoginPage{session: s}

	m.form = newForm("Email", "Password")
	m.form.inputs[1].EchoMode = textinput.EchoPassword

	return m
}

func (m LoginPage) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+r":
			return open(InitialRegisterModel(m.session))
		case "ctrl+f":
			return open(InitialForgotPasswordModel(m.session))
		case "enter":
			v := m.form.values()
			return m, m.login(v[0], v[1])
		}
	case loginMsg:
		if msg.err != nil {
			m.form.err = submitError(msg.err, "Login failed.")
			return m, nil
		}
		m.session.User = msg.user
		return open(InitialHomeModel(m.session))
	case message.ResetMsg:
		m.msg = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m LoginPage) View() string {
	s := m.session.Styles.Title.Render("Study Buddy: Login") + "\n\n"
	s += m.form.view(m.session.Styles) + "\n"
	s += infoLine(m.msg)
	s += "enter to log in, ctrl+r to register, ctrl+f if you forgot your password\n"
	s += "ctrl+c to quit\n"
	return s
}

func (m LoginPage) login(email, password string) tea.Cmd {
	api := m.session.API
	return func() tea.Msg {
		u, err := api.Login(context.Background(), email, password)
		return loginMsg{user: u, err: err}
	}
}
