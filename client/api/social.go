package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/thatmoosee/Study-Buddy/util"
	"github.com/thatmoosee/Study-Buddy/util/model"
)

func (c *Client) ListFriends(ctx context.Context) ([]model.ID, error) {
	var r model.FriendsResponse
	err := c.get(ctx, "/api/friends/list", &r)
	return r.Friends, err
}

func (c *Client) AddFriend(ctx context.Context, id model.ID) error {
	if err := required(id.String(), "Friend ID"); err != nil {
		return err
	}
	var r model.Resp
	return c.act(ctx, "/api/friends/add", model.FriendRef{FriendID: id}, &r)
}

func (c *Client) RemoveFriend(ctx context.Context, id model.ID) error {
	if err := required(id.String(), "Friend ID"); err != nil {
		return err
	}
	var r model.Resp
	return c.act(ctx, "/api/friends/remove", model.FriendRef{FriendID: id}, &r)
}

// ListNotifications treats {success: false} like any other failed read.
func (c *Client) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	var r model.NotificationsResponse
	if err := c.get(ctx, "/api/notifications", &r); err != nil {
		return nil, err
	}
	if !r.Success {
		return nil, &ActionError{Path: "/api/notifications", Message: r.Error}
	}
	return r.Notifications, nil
}

func (c *Client) MarkRead(ctx context.Context, id model.ID) error {
	if err := required(id.String(), "Notification ID"); err != nil {
		return err
	}
	var r model.Resp
	return c.act(ctx, "/api/notifications/read", model.ItemRef{ID: id}, &r)
}

func (c *Client) DeleteNotification(ctx context.Context, id model.ID) error {
	if err := required(id.String(), "Notification ID"); err != nil {
		return err
	}
	var r model.Resp
	return c.act(ctx, "/api/notifications/delete", model.ItemRef{ID: id}, &r)
}

func (c *Client) UploadProfile(ctx context.Context, p model.Profile) error {
	if err := required(p.Name, "Name"); err != nil {
		return err
	}
	var r model.Resp
	return c.act(ctx, "/api/profile/upload", p, &r)
}

// SearchStudent looks a student up by email. A miss is not an error: found
// is false.
func (c *Client) SearchStudent(ctx context.Context, email string) (student model.User, found bool, err error) {
	if err := required(email, "Email"); err != nil {
		return model.User{}, false, err
	}

	path := "/students/search?email=" + url.QueryEscape(email)
	status, body, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return model.User{}, false, err
	}
	if status == http.StatusNotFound {
		return model.User{}, false, nil
	}

	var r model.SearchResponse
	decodeErr := util.DecodeJSON(bytes.NewReader(body), &r)
	if status < 200 || status > 299 {
		if decodeErr == nil && r.Error != "" {
			return model.User{}, false, &ActionError{Path: "/students/search", Message: r.Error}
		}
		return model.User{}, false, fmt.Errorf("%w %d from %s", ErrStatus, status, path)
	}
	if decodeErr != nil {
		return model.User{}, false, fmt.Errorf("%w from %s: %v", ErrSchema, path, decodeErr)
	}
	if err := r.Validate(); err != nil {
		return model.User{}, false, fmt.Errorf("%w from %s: %v", ErrSchema, path, err)
	}
	if !r.Found {
		return model.User{}, false, nil
	}
	return *r.Student, true, nil
}

func (c *Client) SendFriendRequest(ctx context.Context, email string) error {
	if err := required(email, "Email"); err != nil {
		return err
	}
	var r model.Resp
	return c.act(ctx, "/api/friend/request", model.EmailRequest{Email: email}, &r)
}

func (c *Client) ListFriendRequests(ctx context.Context) ([]model.FriendRequest, error) {
	var r model.FriendRequestsResponse
	err := c.get(ctx, "/api/friend/requests", &r)
	return r.Requests, err
}

func (c *Client) AcceptFriendRequest(ctx context.Context, id model.ID) error {
	if err := required(id.String(), "Request ID"); err != nil {
		return err
	}
	var r model.FriendAcceptedResponse
	return c.act(ctx, "/api/friend/accept", model.RequestRef{RequestID: id}, &r)
}

func (c *Client) RejectFriendRequest(ctx context.Context, id model.ID) error {
	if err := required(id.String(), "Request ID"); err != nil {
		return err
	}
	var r model.Resp
	return c.act(ctx, "/api/friend/reject", model.RequestRef{RequestID: id}, &r)
}
