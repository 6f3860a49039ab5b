package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an opaque backend identifier. It decodes from a JSON string or number
// and encodes back in the form it arrived in.
type ID struct {
	raw     string
	numeric bool
}

// TextID wraps an id typed by the user. It is always sent as a string.
func TextID(s string) ID {
	return ID{raw: s}
}

func NumericID(n int64) ID {
	return ID{raw: strconv.FormatInt(n, 10), numeric: true}
}

func (id ID) String() string {
	return id.raw
}

func (id ID) IsZero() bool {
	return id.raw == ""
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.raw), nil
	}
	return json.Marshal(id.raw)
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ID{}
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID{raw: s}
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = ID{raw: n.String(), numeric: true}
	}
	return nil
}

type User struct {
	ID    ID     `json:"id"`
	Email string `json:"email"`
}

// UnmarshalJSON also accepts the "user_id" spelling used by /api/auth/status.
func (u *User) UnmarshalJSON(b []byte) error {
	var wire struct {
		ID     ID     `json:"id"`
		UserID ID     `json:"user_id"`
		Email  string `json:"email"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	u.ID = wire.ID
	if u.ID.IsZero() {
		u.ID = wire.UserID
	}
	u.Email = wire.Email
	return nil
}

type Group struct {
	ID             ID       `json:"id"`
	Name           string   `json:"name"`
	Members        []string `json:"members"`
	SpecifiedClass string   `json:"specified_class"`
	StudyTimes     []string `json:"study_times"`
}

type Chat struct {
	ChatID   ID       `json:"chat_id"`
	Name     string   `json:"name"`
	Members  []ID     `json:"members"`
	Messages []string `json:"messages"`
}

// ChatIndex is the chat_id → chat object returned by /api/chat/listallchats,
// kept in the order the server wrote the keys. A plain array of chats is
// accepted too.
type ChatIndex []Chat

func (c *ChatIndex) UnmarshalJSON(b []byte) error {
	if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] == '[' {
		var list []Chat
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("chats: %w", err)
		}
		*c = ChatIndex(list)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*c = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("chats: expected object, got %v", tok)
	}

	out := ChatIndex{}
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return err
		}
		var chat Chat
		if err := dec.Decode(&chat); err != nil {
			return fmt.Errorf("chats[%v]: %w", key, err)
		}
		if chat.ChatID.IsZero() {
			chat.ChatID = TextID(fmt.Sprint(key))
		}
		out = append(out, chat)
	}
	*c = out
	return nil
}

func (c ChatIndex) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, chat := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(chat.ChatID.String())
		body, err := json.Marshal(chat)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type StudySession struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	GroupID   ID     `json:"group_id"`
}

type Notification struct {
	ID        ID     `json:"id"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at,omitempty"`
}

type Profile struct {
	Name         string `json:"name"`
	Major        string `json:"major"`
	Availability string `json:"availability"`
}

// FriendRequest is a pending request addressed to the current user.
type FriendRequest struct {
	RequestID ID     `json:"request_id"`
	FromEmail string `json:"from_email"`
	CreatedAt string `json:"created_at,omitempty"`
}
