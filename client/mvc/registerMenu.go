package mvc

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type registeredMsg struct {
	err error
}

type RegisterPage struct {
	form form

	session *Session
}

func InitialRegisterModel(s *Session) RegisterPage {
	m := RegisterPage{session: s}

	m.form = newForm("Email", "Password")
	m.form.inputs[1].EchoMode = textinput.EchoPassword

	return m
}

func (m RegisterPage) Init() tea.Cmd {
	return textinput.Blink
}

func (m RegisterPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return open(InitialLoginModel(m.session))
		case "enter":
			v := m.form.values()
			return m, m.register(v[0], v[1])
		}
	case registeredMsg:
		if msg.err != nil {
			m.form.err = submitError(msg.err, "Registration failed.")
			return m, nil
		}
		login := InitialLoginModel(m.session)
		login.msg = "Account created. Log in to continue."
		return login, tea.Batch(login.Init(), resetInfo())
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m RegisterPage) View() string {
	s := m.session.Styles.Title.Render("Study Buddy: Register") + "\n\n"
	s += m.form.view(m.session.Styles) + "\n"
	s += "enter to create the account, esc to go back\n"
	return s
}

func (m RegisterPage) register(email, password string) tea.Cmd {
	api := m.session.API
	return func() tea.Msg {
		return registeredMsg{err: api.Register(context.Background(), email, password)}
	}
}

