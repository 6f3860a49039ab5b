package handler

import (
	"net/http"

	"github.com/thatmoosee/Study-Buddy/server/logging"
	"github.com/thatmoosee/Study-Buddy/server/middleware"
	"github.com/thatmoosee/Study-Buddy/server/repository"
)

// NewRouter serves the Study Buddy JSON API over db.
func NewRouter(db *repository.Database, secret string) http.Handler {
	sessions := middleware.NewSessions(secret)
	auth := &AuthHandler{Sessions: sessions}

	router := http.NewServeMux()
	public := func(pattern string, h http.HandlerFunc) {
		router.Handle(pattern, h)
	}
	private := func(pattern string, h http.HandlerFunc) {
		router.Handle(pattern, sessions.Authorization(h))
	}

	public("POST /api/auth/register", auth.Register)
	public("POST /api/auth/login", auth.Login)
	public("POST /api/auth/logout", auth.Logout)
	public("GET /api/auth/status", auth.Status)
	public("POST /api/auth/forgot-password", auth.ForgotPassword)
	public("POST /api/auth/reset-password", auth.ResetPassword)
	public("GET /students/search", SearchStudentHandler)

	private("GET /api/group/list", ListGroupsHandler)
	public("GET /api/group/listall", ListAllGroupsHandler)
	public("POST /api/group/filter", FilterGroupsHandler)
	private("POST /api/group/create", CreateGroupHandler)
	private("POST /api/group/join", JoinGroupHandler)
	private("POST /api/group/leave", LeaveGroupHandler)

	private("GET /api/chat/listallchats", ListChatsHandler)
	private("POST /api/chat/create", CreateChatHandler)
	private("POST /api/chat/join", JoinChatHandler)
	private("POST /api/chat/leave", LeaveChatHandler)
	private("POST /api/chat/send", SendMessageHandler)

	private("GET /api/friends/list", ListFriendsHandler)
	private("POST /api/friends/add", AddFriendHandler)
	private("POST /api/friends/remove", RemoveFriendHandler)
	private("POST /api/friend/request", SendFriendRequestHandler)
	private("GET /api/friend/requests", ListFriendRequestsHandler)
	private("POST /api/friend/accept", AcceptFriendRequestHandler)
	private("POST /api/friend/reject", RejectFriendRequestHandler)
	private("POST /api/profile/upload", UploadProfileHandler)

	private("GET /api/notifications", ListNotificationsHandler)
	private("POST /api/notifications/read", MarkReadHandler)
	private("POST /api/notifications/delete", DeleteNotificationHandler)

	private("GET /api/study_schedule/get", ListSessionsHandler)
	private("POST /api/study_schedule/create", CreateSessionHandler)
	private("POST /api/study_schedule/delete", DeleteSessionHandler)

	return logging.Requests(middleware.InjectData(db)(router))
}
