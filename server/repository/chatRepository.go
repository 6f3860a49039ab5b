package repository

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/thatmoosee/Study-Buddy/util/model"
)

var ErrChatNotFound = errors.New("Chat not found.")

func chatView(c *Chat) model.Chat {
	members := make([]model.ID, len(c.Members))
	for i, m := range c.Members {
		members[i] = model.NumericID(m)
	}
	return model.Chat{
		ChatID:   model.TextID(c.ID),
		Name:     c.Name,
		Members:  members,
		Messages: slices.Clone(c.Messages),
	}
}

func CreateChat(db *Database, owner int64, name string) (model.Chat, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if name == "" {
		return model.Chat{}, errors.New("Chat name is required.")
	}

	return chatView(db.newChat(name, owner)), nil
}

// newChat expects db.mu to be held.
func (db *Database) newChat(name string, members ...int64) *Chat {
	c := &Chat{
		ID:       strconv.Itoa(len(db.ChatIds) + 1),
		Name:     name,
		Members:  members,
		Messages: []string{},
	}
	db.Chats[c.ID] = c
	db.ChatIds = append(db.ChatIds, c.ID)
	return c
}

// directChat returns the DM between a and b, creating it on first use.
// It expects db.mu to be held.
func (db *Database) directChat(a, b int64) *Chat {
	ab := fmt.Sprintf("DM_%d_%d", a, b)
	ba := fmt.Sprintf("DM_%d_%d", b, a)
	for _, id := range db.ChatIds {
		if c := db.Chats[id]; c.Name == ab || c.Name == ba {
			return c
		}
	}
	return db.newChat(ab, a, b)
}

func JoinChat(db *Database, id string, user int64) (model.Chat, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	c, ok := db.Chats[id]
	if !ok {
		return model.Chat{}, ErrChatNotFound
	}
	if !slices.Contains(c.Members, user) {
		c.Members = append(c.Members, user)
	}
	return chatView(c), nil
}

func LeaveChat(db *Database, id string, user int64) (model.Chat, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	c, ok := db.Chats[id]
	if !ok {
		return model.Chat{}, ErrChatNotFound
	}
	i := slices.Index(c.Members, user)
	if i < 0 {
		return model.Chat{}, errors.New("User not in chat.")
	}
	c.Members = slices.Delete(c.Members, i, i+1)
	return chatView(c), nil
}

// SendMessage appends "<sender email>: <message>" to the chat.
func SendMessage(db *Database, id string, user int64, message string) (model.Chat, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	c, ok := db.Chats[id]
	if !ok {
		return model.Chat{}, ErrChatNotFound
	}
	if !slices.Contains(c.Members, user) {
		return model.Chat{}, errors.New("User not in chat.")
	}

	sender := strconv.FormatInt(user, 10)
	if u, ok := db.Users[user]; ok {
		sender = u.Email
	}
	c.Messages = append(c.Messages, sender+": "+message)
	return chatView(c), nil
}

func UserChats(db *Database, user int64) model.ChatIndex {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := model.ChatIndex{}
	for _, id := range db.ChatIds {
		if c := db.Chats[id]; slices.Contains(c.Members, user) {
			out = append(out, chatView(c))
		}
	}
	return out
}
