package mvc

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a column of text inputs, optionally headed by a choice row.
// Enter is left to the page, which reads values() and submits.
type form struct {
	choice *choice
	inputs []textinput.Model
	focus  int
	err    string
}

func newForm(placeholders ...string) form {
	f := form{inputs: make([]textinput.Model, len(placeholders))}
	for i, p := range placeholders {
		f.inputs[i] = textinput.New()
		f.inputs[i].Placeholder = p
		f.inputs[i].Width = 40
	}
	f.setFocus(0)
	return f
}

func newChoiceForm(c choice, placeholders ...string) form {
	f := newForm(placeholders...)
	f.choice = &c
	f.setFocus(1)
	return f
}

func (f form) rows() int {
	if f.choice != nil {
		return len(f.inputs) + 1
	}
	return len(f.inputs)
}

// input maps a row to an input index, -1 for the choice row.
func (f form) input(row int) int {
	if f.choice != nil {
		return row - 1
	}
	return row
}

func (f *form) setFocus(row int) {
	f.focus = row
	for i := range f.inputs {
		if i == f.input(row) {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f form) selected() int {
	if f.choice == nil {
		return 0
	}
	return f.choice.selected
}

func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "down", "tab":
			f.setFocus((f.focus + 1) % f.rows())
			return f, nil
		case "up", "shift+tab":
			f.setFocus((f.focus - 1 + f.rows()) % f.rows())
			return f, nil
		}

		if f.input(f.focus) < 0 {
			c := *f.choice
			switch msg.String() {
			case "right", " ":
				c = c.next()
			case "left":
				c = c.prev()
			}
			f.choice = &c
			return f, nil
		}
	}

	i := f.input(f.focus)
	if i < 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[i], cmd = f.inputs[i].Update(msg)
	return f, cmd
}

// values are trimmed of surrounding whitespace.
func (f form) values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.err = ""
	f.setFocus(0)
}

func (f form) view(styles Styles) string {
	var s string
	if f.choice != nil {
		s += f.choice.view(f.focus == 0, styles.Cursor)
	}
	for _, in := range f.inputs {
		s += in.View() + "\n"
	}
	return s + errorLine(styles, f.err)
}
