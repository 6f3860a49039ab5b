package api

import (
	"context"
	"fmt"

	"github.com/thatmoosee/Study-Buddy/util/model"
)

// ListGroups returns the groups the current user belongs to.
func (c *Client) ListGroups(ctx context.Context) ([]model.Group, error) {
	var r model.GroupsResponse
	err := c.get(ctx, "/api/group/list", &r)
	return r.Groups, err
}

func (c *Client) ListAllGroups(ctx context.Context) ([]model.Group, error) {
	var r model.GroupsResponse
	err := c.get(ctx, "/api/group/listall", &r)
	return r.Groups, err
}

// FilterGroups is a read sent as POST. kind is model.FilterClass or
// model.FilterTime.
func (c *Client) FilterGroups(ctx context.Context, kind, value string) ([]model.Group, error) {
	if kind != model.FilterClass && kind != model.FilterTime {
		return nil, fmt.Errorf("unknown filter type %q", kind)
	}
	if err := required(value, "Filter value"); err != nil {
		return nil, err
	}

	var r model.GroupsResponse
	err := c.read(ctx, "POST", "/api/group/filter", model.FilterRequest{Type: kind, Value: value}, &r)
	return r.Groups, err
}

func (c *Client) CreateGroup(ctx context.Context, req model.CreateGroupRequest) error {
	if err := required(req.Name, "Group name"); err != nil {
		return err
	}
	if err := required(req.SpecifiedClass, "Class"); err != nil {
		return err
	}
	if req.StudyTimes == nil {
		req.StudyTimes = []string{}
	}

	var r model.Resp
	return c.act(ctx, "/api/group/create", req, &r)
}

func (c *Client) JoinGroup(ctx context.Context, id model.ID) error {
	if err := required(id.String(), "Group ID"); err != nil {
		return err
	}
	var r model.Resp
	return c.act(ctx, "/api/group/join", model.GroupRef{GroupID: id}, &r)
}

func (c *Client) LeaveGroup(ctx context.Context, id model.ID) error {
	if err := required(id.String(), "Group ID"); err != nil {
		return err
	}
	var r model.Resp
	return c.act(ctx, "/api/group/leave", model.GroupRef{GroupID: id}, &r)
}

func (c *Client) ListSessions(ctx context.Context) ([]model.StudySession, error) {
	var r model.SessionsResponse
	err := c.get(ctx, "/api/study_schedule/get", &r)
	return r.Study, err
}

func (c *Client) CreateSession(ctx context.Context, req model.CreateSessionRequest) error {
	for _, f := range []struct{ value, name string }{
		{req.SessionName, "Session name"},
		{req.StartDate, "Start time"},
		{req.EndDate, "End time"},
		{req.GroupID.String(), "Group ID"},
	} {
		if err := required(f.value, f.name); err != nil {
			return err
		}
	}

	var r model.Resp
	return c.act(ctx, "/api/study_schedule/create", req, &r)
}

func (c *Client) DeleteSession(ctx context.Context, id model.ID) error {
	if err := required(id.String(), "Session ID"); err != nil {
		return err
	}
	var r model.Resp
	return c.act(ctx, "/api/study_schedule/delete", model.ItemRef{ID: id}, &r)
}
