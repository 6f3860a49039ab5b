package message

import (
	"context"
	"log/slog"
	"time"

	"github.com/thatmoosee/Study-Buddy/util/model"

	tea "github.com/charmbracelet/bubbletea"
)

// ResetMsg clears a page's "Info:" line.
type ResetMsg struct{}

func SendTimedMessage(msg interface{}, t time.Duration) func() tea.Msg {
	return func() tea.Msg {
		timer := time.NewTimer(t)
		<-timer.C

		return msg
	}
}

// AuthMsg carries the result of the auth guard's status check.
type AuthMsg struct {
	Status model.AuthStatusResponse
	Err    error
}

func CheckAuth(status func(context.Context) (model.AuthStatusResponse, error)) func() tea.Msg {
	return func() tea.Msg {
		s, err := status(context.Background())
		return AuthMsg{Status: s, Err: err}
	}
}

// List names the container a list result is rendered into.
type List int

const (
	MyGroups List = iota
	AllGroups
	FilteredGroups
	Sessions
	Chats
	Friends
	FriendRequests
	Notifications
)

func (l List) String() string {
	switch l {
	case MyGroups:
		return "my groups"
	case AllGroups:
		return "all groups"
	case FilteredGroups:
		return "filtered groups"
	case Sessions:
		return "sessions"
	case Chats:
		return "chats"
	case Friends:
		return "friends"
	case FriendRequests:
		return "friend requests"
	case Notifications:
		return "notifications"
	}
	return "unknown"
}

type ListedMsg[T any] struct {
	List  List
	Items []T
}

// ListFailedMsg is delivered instead of ListedMsg when a fetch fails. Pages
// keep what they were showing.
type ListFailedMsg struct {
	List List
	Err  error
}

func ListCmd[T any](list List, fetch func(context.Context) ([]T, error)) func() tea.Msg {
	return func() tea.Msg {
		items, err := fetch(context.Background())
		if err != nil {
			slog.Debug("list fetch failed", "list", list.String(), "error", err)
			return ListFailedMsg{List: list, Err: err}
		}
		return ListedMsg[T]{List: list, Items: items}
	}
}

// Action identifies a mutating request so its page can route the result.
type Action string

type ActionDoneMsg struct {
	Action Action
	Target model.ID
	Err    error
}

func ActionCmd(action Action, target model.ID, do func(context.Context) error) func() tea.Msg {
	return func() tea.Msg {
		err := do(context.Background())
		if err != nil {
			slog.Debug("action failed", "action", string(action), "target", target.String(), "error", err)
		}
		return ActionDoneMsg{Action: action, Target: target, Err: err}
	}
}
