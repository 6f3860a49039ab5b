package mvc

import (
	"context"

	"github.com/thatmoosee/Study-Buddy/client/message"
	"github.com/thatmoosee/Study-Buddy/util/model"

	tea "github.com/charmbracelet/bubbletea"
)

const saveProfileAction message.Action = "save profile"

type EditProfilePage struct {
	form  form
	ready bool

	session *Session
}

func InitialEditProfileModel(s *Session) EditProfilePage {
	return EditProfilePage{
		session: s,
		form:    newForm("Name", "Major", "Availability"),
	}
}

func (m EditProfilePage) Init() tea.Cmd {
	return m.session.checkAuth()
}

func (m EditProfilePage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	case message.ActionDoneMsg:
		if msg.Err != nil {
			m.form.err = submitError(msg.Err, "Could not save the profile.")
			return m, nil
		}
		profile := InitialProfileModel(m.session)
		profile.msg = "Profile updated successfully!"
		return profile, tea.Batch(profile.Init(), resetInfo())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return open(InitialProfileModel(m.session))
		case "enter":
			if !m.ready {
				return m, nil
			}
			v := m.form.values()
			p := model.Profile{Name: v[0], Major: v[1], Availability: v[2]}
			api := m.session.API
			return m, message.ActionCmd(saveProfileAction, model.ID{}, func(ctx context.Context) error {
				return api.UploadProfile(ctx, p)
			})
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m EditProfilePage) View() string {
	s := header(m.session, "Edit profile")
	if !m.ready {
		return s
	}
	s += m.form.view(m.session.Styles) + "\n"
	s += "enter to save, esc to cancel\n"
	return s
}
