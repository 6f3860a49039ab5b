package api

import (
	"context"

	"github.com/thatmoosee/Study-Buddy/util/model"
)

// ListChats returns the user's chats in the order the server listed them.
func (c *Client) ListChats(ctx context.Context) ([]model.Chat, error) {
	var r model.ChatsResponse
	err := c.get(ctx, "/api/chat/listallchats", &r)
	return r.Chats, err
}

func (c *Client) CreateChat(ctx context.Context, name string) error {
	if err := required(name, "Chat name"); err != nil {
		return err
	}
	var r model.Resp
	return c.act(ctx, "/api/chat/create", model.CreateChatRequest{Name: name}, &r)
}

func (c *Client) JoinChat(ctx context.Context, id model.ID) error {
	if err := required(id.String(), "Chat ID"); err != nil {
		return err
	}
	var r model.Resp
	return c.act(ctx, "/api/chat/join", model.ChatRef{ChatID: id}, &r)
}

func (c *Client) LeaveChat(ctx context.Context, id model.ID) error {
	if err := required(id.String(), "Chat ID"); err != nil {
		return err
	}
	var r model.Resp
	return c.act(ctx, "/api/chat/leave", model.ChatRef{ChatID: id}, &r)
}

// SendMessage posts to a chat and returns the chat as updated by the server.
func (c *Client) SendMessage(ctx context.Context, id model.ID, message string) (model.Chat, error) {
	if err := required(id.String(), "Chat ID"); err != nil {
		return model.Chat{}, err
	}
	if err := required(message, "Message"); err != nil {
		return model.Chat{}, err
	}

	var r model.ChatResponse
	if err := c.act(ctx, "/api/chat/send", model.SendMessageRequest{ChatID: id, Message: message}, &r); err != nil {
		return model.Chat{}, err
	}
	return *r.Study, nil
}
