package mvc

import (
	"strings"

	"github.com/thatmoosee/Study-Buddy/client/terminal"
	"github.com/thatmoosee/Study-Buddy/util/model"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	noMessagesText = "No messages yet."
	chatWidth      = 70
)

// messageToString renders a "<sender>: <text>" chat line.
func messageToString(msg string, senderStyle lipgloss.Style) string {
	sender, text, found := strings.Cut(msg, ": ")
	if !found {
		return wrap(msg, chatWidth) + "\n"
	}
	return senderStyle.Render("@"+sender) + "\n" + wrap(text, chatWidth) + "\n"
}

func chatMessages(c model.Chat, senderStyle lipgloss.Style) string {
	if len(c.Messages) == 0 {
		return noMessagesText + "\n"
	}

	var b strings.Builder
	for _, msg := range c.Messages {
		b.WriteString(messageToString(msg, senderStyle) + "\n")
	}
	return b.String()
}

type chatPopup struct {
	chat     model.Chat
	viewport viewport.Model
	textbox  textarea.Model
	err      string
}

func newChatPopup(c model.Chat, styles Styles) chatPopup {
	p := chatPopup{}
	_, h := terminal.Size()
	p.viewport = viewport.New(chatWidth+4, max(h-16, 6))

	p.textbox = textarea.New()
	p.textbox.Focus()
	p.textbox.Placeholder = "Send a message..."
	p.textbox.Prompt = "┃ "
	p.textbox.CharLimit = 280
	p.textbox.ShowLineNumbers = false
	p.textbox.SetHeight(3)
	p.textbox.SetWidth(chatWidth + 4)
	p.textbox.FocusedStyle.CursorLine = lipgloss.NewStyle()

	p.setChat(c, styles)
	return p
}

// setChat replaces everything shown with c.
func (p *chatPopup) setChat(c model.Chat, styles Styles) {
	p.chat = c
	p.viewport.SetContent(chatMessages(c, styles.Sender))
	p.viewport.GotoBottom()
}

func (p chatPopup) update(msg tea.Msg) (chatPopup, tea.Cmd) {
	cmds := make([]tea.Cmd, 2)
	p.viewport, cmds[0] = p.viewport.Update(msg)
	p.textbox, cmds[1] = p.textbox.Update(msg)
	return p, tea.Batch(cmds...)
}

func (p chatPopup) view(styles Styles) string {
	members := make([]string, len(p.chat.Members))
	for i, id := range p.chat.Members {
		members[i] = id.String()
	}

	s := styles.Title.Render(p.chat.Name) + "\n"
	s += "ID: " + p.chat.ChatID.String() + "\n"
	s += "Members: " + strings.Join(members, ", ") + "\n"
	s += "_________________________\n"
	s += p.viewport.View() + "\n"
	s += "‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾‾\n"
	s += p.textbox.View() + "\n"
	s += errorLine(styles, p.err)
	s += "ctrl+s to send, esc to close"
	return styles.Popup.Render(s)
}
