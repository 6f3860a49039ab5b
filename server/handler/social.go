package handler

import (
	"net/http"
	"strings"

	"github.com/thatmoosee/Study-Buddy/server/etc"
	"github.com/thatmoosee/Study-Buddy/server/repository"
	"github.com/thatmoosee/Study-Buddy/util/model"
)

func ListFriendsHandler(w http.ResponseWriter, req *http.Request) {
	etc.Response(w, http.StatusOK, model.FriendsResponse{
		Resp:    model.Resp{Success: true},
		Friends: repository.ListFriends(etc.GetDb(req), etc.GetUser(req)),
	})
}

func friendId(w http.ResponseWriter, req *http.Request) (int64, bool) {
	var ref model.FriendRef
	if !etc.Decode(w, req, &ref) {
		return 0, false
	}
	id, ok := etc.NumericId(ref.FriendID)
	if !ok {
		etc.Fail(w, http.StatusBadRequest, "Friend ID is required")
	}
	return id, ok
}

func AddFriendHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := friendId(w, req)
	if !ok {
		return
	}
	if err := repository.AddFriend(etc.GetDb(req), etc.GetUser(req), id); err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	etc.Ok(w, "Friend added successfully")
}

func RemoveFriendHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := friendId(w, req)
	if !ok {
		return
	}
	if err := repository.RemoveFriend(etc.GetDb(req), etc.GetUser(req), id); err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	etc.Ok(w, "Friend removed successfully")
}

func UploadProfileHandler(w http.ResponseWriter, req *http.Request) {
	var p model.Profile
	if !etc.Decode(w, req, &p) {
		return
	}
	if strings.TrimSpace(p.Name) == "" {
		etc.Fail(w, http.StatusBadRequest, "Name is required")
		return
	}

	saved := repository.UploadProfile(etc.GetDb(req), etc.GetUser(req), repository.Profile{
		Name:         p.Name,
		Major:        p.Major,
		Availability: p.Availability,
	})
	etc.Response(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Profile updated successfully",
		"profile": model.Profile{Name: saved.Name, Major: saved.Major, Availability: saved.Availability},
	})
}

func ListNotificationsHandler(w http.ResponseWriter, req *http.Request) {
	etc.Response(w, http.StatusOK, model.NotificationsResponse{
		Resp:          model.Resp{Success: true},
		Notifications: repository.ListNotifications(etc.GetDb(req), etc.GetUser(req)),
	})
}

func notificationId(w http.ResponseWriter, req *http.Request) (int64, bool) {
	var ref model.ItemRef
	if !etc.Decode(w, req, &ref) {
		return 0, false
	}
	id, ok := etc.NumericId(ref.ID)
	if !ok {
		etc.Fail(w, http.StatusBadRequest, "Notification ID is required")
	}
	return id, ok
}

func MarkReadHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := notificationId(w, req)
	if !ok {
		return
	}
	if err := repository.MarkRead(etc.GetDb(req), etc.GetUser(req), id); err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	etc.Ok(w, "")
}

func DeleteNotificationHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := notificationId(w, req)
	if !ok {
		return
	}
	if err := repository.DeleteNotification(etc.GetDb(req), etc.GetUser(req), id); err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	etc.Ok(w, "")
}

func ListSessionsHandler(w http.ResponseWriter, req *http.Request) {
	etc.Response(w, http.StatusOK, model.SessionsResponse{
		Resp:  model.Resp{Success: true, Message: "Study schedule retrieved successfully!"},
		Study: repository.ListSessions(etc.GetDb(req), etc.GetUser(req)),
	})
}

func CreateSessionHandler(w http.ResponseWriter, req *http.Request) {
	var body model.CreateSessionRequest
	if !etc.Decode(w, req, &body) {
		return
	}
	if body.SessionName == "" || body.StartDate == "" || body.EndDate == "" {
		etc.Fail(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	err := repository.CreateSessions(etc.GetDb(req), etc.GetUser(req), body.GroupID.String(), body.SessionName, body.StartDate, body.EndDate)
	if err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	etc.Ok(w, "Study schedule created successfully!")
}

func DeleteSessionHandler(w http.ResponseWriter, req *http.Request) {
	var ref model.ItemRef
	if !etc.Decode(w, req, &ref) {
		return
	}
	id, ok := etc.NumericId(ref.ID)
	if !ok {
		etc.Fail(w, http.StatusBadRequest, "session id is required")
		return
	}
	if err := repository.DeleteSession(etc.GetDb(req), etc.GetUser(req), id); err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	etc.Ok(w, "Study schedule deleted successfully!")
}

// SearchStudentHandler looks a student up by exact email. A miss is a 404.
func SearchStudentHandler(w http.ResponseWriter, req *http.Request) {
	email := strings.TrimSpace(req.URL.Query().Get("email"))
	if email == "" {
		etc.Response(w, http.StatusBadRequest, model.SearchResponse{Error: "Email parameter required"})
		return
	}

	u, ok := repository.FindStudent(etc.GetDb(req), email)
	if !ok {
		etc.Response(w, http.StatusNotFound, model.SearchResponse{Message: "Student not found"})
		return
	}
	etc.Response(w, http.StatusOK, model.SearchResponse{
		Found:   true,
		Student: &model.User{ID: model.NumericID(u.ID), Email: u.Email},
	})
}

func SendFriendRequestHandler(w http.ResponseWriter, req *http.Request) {
	var body model.EmailRequest
	if !etc.Decode(w, req, &body) {
		return
	}
	if strings.TrimSpace(body.Email) == "" {
		etc.Fail(w, http.StatusBadRequest, "Email is required")
		return
	}
	if err := repository.SendFriendRequest(etc.GetDb(req), etc.GetUser(req), body.Email); err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	etc.Ok(w, "Friend request sent")
}

func ListFriendRequestsHandler(w http.ResponseWriter, req *http.Request) {
	etc.Response(w, http.StatusOK, model.FriendRequestsResponse{
		Resp:     model.Resp{Success: true},
		Requests: repository.PendingRequests(etc.GetDb(req), etc.GetUser(req)),
	})
}

func requestId(w http.ResponseWriter, req *http.Request) (int64, bool) {
	var ref model.RequestRef
	if !etc.Decode(w, req, &ref) {
		return 0, false
	}
	id, ok := etc.NumericId(ref.RequestID)
	if !ok {
		etc.Fail(w, http.StatusBadRequest, "Request ID is required")
	}
	return id, ok
}

func AcceptFriendRequestHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := requestId(w, req)
	if !ok {
		return
	}
	chat, err := repository.AcceptFriendRequest(etc.GetDb(req), etc.GetUser(req), id)
	if err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	etc.Response(w, http.StatusOK, model.FriendAcceptedResponse{
		Resp: model.Resp{Success: true, Message: "Friend request accepted. A chat has been created!"},
		Chat: &chat,
	})
}

func RejectFriendRequestHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := requestId(w, req)
	if !ok {
		return
	}
	if err := repository.RejectFriendRequest(etc.GetDb(req), etc.GetUser(req), id); err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	etc.Ok(w, "Friend request rejected")
}
