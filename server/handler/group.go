package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/thatmoosee/Study-Buddy/server/etc"
	"github.com/thatmoosee/Study-Buddy/server/repository"
	"github.com/thatmoosee/Study-Buddy/util/model"
)

func groups(w http.ResponseWriter, list []model.Group) {
	etc.Response(w, http.StatusOK, model.GroupsResponse{Resp: model.Resp{Success: true}, Groups: list})
}

func ListGroupsHandler(w http.ResponseWriter, req *http.Request) {
	groups(w, repository.UserGroups(etc.GetDb(req), etc.GetUser(req)))
}

func ListAllGroupsHandler(w http.ResponseWriter, req *http.Request) {
	groups(w, repository.AllGroups(etc.GetDb(req)))
}

func FilterGroupsHandler(w http.ResponseWriter, req *http.Request) {
	var f model.FilterRequest
	if !etc.Decode(w, req, &f) {
		return
	}
	if f.Type == "" || strings.TrimSpace(f.Value) == "" {
		etc.Fail(w, http.StatusOK, "Missing a field")
		return
	}

	list, err := repository.FilterGroups(etc.GetDb(req), f.Type, strings.TrimSpace(f.Value))
	if err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	groups(w, list)
}

func CreateGroupHandler(w http.ResponseWriter, req *http.Request) {
	var g model.CreateGroupRequest
	if !etc.Decode(w, req, &g) {
		return
	}

	user := etc.GetUser(req)
	group, err := repository.CreateGroup(etc.GetDb(req), user, strings.TrimSpace(g.Name), g.SpecifiedClass, g.StudyTimes)
	if err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("group created", "group_id", group.ID.String(), "user_id", user)
	etc.Response(w, http.StatusCreated, map[string]any{"success": true, "message": "Group created successfully", "group": group})
}

func JoinGroupHandler(w http.ResponseWriter, req *http.Request) {
	var ref model.GroupRef
	if !etc.Decode(w, req, &ref) {
		return
	}
	if ref.GroupID.IsZero() {
		etc.Fail(w, http.StatusBadRequest, "Group ID or name is required")
		return
	}

	db := etc.GetDb(req)
	if err := repository.JoinGroup(db, ref.GroupID.String(), etc.GetUser(req)); err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	etc.Ok(w, "Joined group successfully")
}

func LeaveGroupHandler(w http.ResponseWriter, req *http.Request) {
	var ref model.GroupRef
	if !etc.Decode(w, req, &ref) {
		return
	}
	if ref.GroupID.IsZero() {
		etc.Fail(w, http.StatusBadRequest, "Group ID or name is required")
		return
	}

	if err := repository.LeaveGroup(etc.GetDb(req), ref.GroupID.String(), etc.GetUser(req)); err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	etc.Ok(w, "Left group successfully")
}
