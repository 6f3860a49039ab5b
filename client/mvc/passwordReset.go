package mvc

import (
	"context"

	"github.com/thatmoosee/Study-Buddy/client/message"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const noAccountText = "If an account exists with this email, a reset link has been generated."

type resetRequestedMsg struct {
	token string
	err   error
}

type passwordResetMsg struct {
	err error
}

// ForgotPasswordPage asks the backend for a reset token. The token is shown
// in the client, so a hit moves straight on to ResetPasswordPage.
type ForgotPasswordPage struct {
	form form
	msg  string

	session *Session
}

func InitialForgotPasswordModel(s *Session) ForgotPasswordPage {
	return ForgotPasswordPage{session: s, form: newForm("Email")}
}

func (m ForgotPasswordPage) Init() tea.Cmd {
	return textinput.Blink
}

func (m ForgotPasswordPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return open(InitialLoginModel(m.session))
		case "enter":
			return m, m.request(m.form.values()[0])
		}
	case resetRequestedMsg:
		if msg.err != nil {
			m.form.err = submitError(msg.err, "Could not request a password reset.")
			return m, nil
		}
		m.form.err = ""
		if msg.token == "" {
			m.msg = noAccountText
			return m, resetInfo()
		}
		reset := InitialResetPasswordModel(m.session, msg.token)
		reset.msg = "Reset token generated."
		return reset, tea.Batch(reset.Init(), resetInfo())
	case message.ResetMsg:
		m.msg = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m ForgotPasswordPage) request(email string) tea.Cmd {
	api := m.session.API
	return func() tea.Msg {
		token, err := api.ForgotPassword(context.Background(), email)
		return resetRequestedMsg{token: token, err: err}
	}
}

func (m ForgotPasswordPage) View() string {
	s := m.session.Styles.Title.Render("Study Buddy: Forgot password") + "\n\n"
	s += m.form.view(m.session.Styles) + "\n"
	s += infoLine(m.msg)
	s += "enter to request a reset token, esc to go back\n"
	return s
}

type ResetPasswordPage struct {
	form form
	msg  string

	session *Session
}

func InitialResetPasswordModel(s *Session, token string) ResetPasswordPage {
	m := ResetPasswordPage{session: s}

	m.form = newForm("Reset token", "New password")
	m.form.inputs[1].EchoMode = textinput.EchoPassword
	if token != "" {
		m.form.inputs[0].SetValue(token)
		m.form.setFocus(1)
	}
	return m
}

func (m ResetPasswordPage) Init() tea.Cmd {
	return textinput.Blink
}

func (m ResetPasswordPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return open(InitialLoginModel(m.session))
		case "enter":
			v := m.form.values()
			return m, m.reset(v[0], v[1])
		}
	case passwordResetMsg:
		if msg.err != nil {
			m.form.err = submitError(msg.err, "Password reset failed.")
			return m, nil
		}
		login := InitialLoginModel(m.session)
		login.msg = "Password reset. Log in with your new password."
		return login, tea.Batch(login.Init(), resetInfo())
	case message.ResetMsg:
		m.msg = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m ResetPasswordPage) reset(token, password string) tea.Cmd {
	api := m.session.API
	return func() tea.Msg {
		return passwordResetMsg{err: api.ResetPassword(context.Background(), token, password)}
	}
}

func (m ResetPasswordPage) View() string {
	s := m.session.Styles.Title.Render("Study Buddy: Reset password") + "\n\n"
	s += m.form.view(m.session.Styles) + "\n"
	s += infoLine(m.msg)
	s += "enter to set the new password, esc to go back\n"
	return s
}
