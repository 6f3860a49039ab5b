package mvc

import "github.com/charmbracelet/lipgloss"

// choice is a row of mutually exclusive options.
type choice struct {
	options  []string
	selected int
}

func newChoice(options ...string) choice {
	return choice{options: options}
}

func (c choice) next() choice {
	c.selected = (c.selected + 1) % len(c.options)
	return c
}

func (c choice) prev() choice {
	c.selected = (c.selected - 1 + len(c.options)) % len(c.options)
	return c
}

func (c choice) view(focused bool, style lipgloss.Style) string {
	s := "  "
	if focused {
		s = style.Render(">") + " "
	}

	for i, option := range c.options {
		if i > 0 {
			s += "/"
		}
		if i == c.selected {
			s += style.Render(option)
		} else {
			s += option
		}
	}
	return s + "\n"
}
