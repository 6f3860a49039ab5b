package model

import "fmt"

const (
	FilterClass = "class"
	FilterTime  = "time"
)

// Resp is the {success, error} envelope every write endpoint answers with.
type Resp struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func (r Resp) Validate() error {
	return nil
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type FilterRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type CreateGroupRequest struct {
	Name           string   `json:"name"`
	SpecifiedClass string   `json:"specified_class"`
	StudyTimes     []string `json:"study_times"`
}

type GroupRef struct {
	GroupID ID `json:"group_id"`
}

type CreateChatRequest struct {
	Name string `json:"name"`
}

type ChatRef struct {
	ChatID ID `json:"chat_id"`
}

type SendMessageRequest struct {
	ChatID  ID     `json:"chat_id"`
	Message string `json:"message"`
}

type FriendRef struct {
	FriendID ID `json:"friend_id"`
}

// EmailRequest is the body of friend requests and password reset requests.
type EmailRequest struct {
	Email string `json:"email"`
}

type RequestRef struct {
	RequestID ID `json:"request_id"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ItemRef addresses a single notification or study session.
type ItemRef struct {
	ID ID `json:"id"`
}

type CreateSessionRequest struct {
	SessionName string `json:"session_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GroupID     ID     `json:"group_id"`
}

func missing(field string) error {
	return fmt.Errorf("missing field %q", field)
}

type AuthStatusResponse struct {
	LoggedIn bool  `json:"logged_in"`
	User     *User `json:"user,omitempty"`
}

func (r AuthStatusResponse) Validate() error {
	if r.LoggedIn && (r.User == nil || r.User.Email == "") {
		return missing("user.email")
	}
	return nil
}

type AuthResponse struct {
	Resp
	Data *struct {
		User User `json:"user"`
	} `json:"data,omitempty"`
}

type GroupsResponse struct {
	Resp
	Groups []Group `json:"groups"`
}

func (r GroupsResponse) Validate() error {
	if r.Groups == nil {
		return missing("groups")
	}
	return nil
}

type ChatsResponse struct {
	Resp
	Chats ChatIndex `json:"chats"`
}

func (r ChatsResponse) Validate() error {
	if r.Chats == nil {
		return missing("chats")
	}
	return nil
}

// ChatResponse answers /api/chat/send. The updated chat travels in "study".
type ChatResponse struct {
	Resp
	Study *Chat `json:"study,omitempty"`
}

func (r ChatResponse) Validate() error {
	if r.Success && r.Study == nil {
		return missing("study")
	}
	return nil
}

type FriendsResponse struct {
	Resp
	Friends []ID `json:"friends"`
}

func (r FriendsResponse) Validate() error {
	if r.Friends == nil {
		return missing("friends")
	}
	return nil
}

type FriendRequestsResponse struct {
	Resp
	Requests []FriendRequest `json:"requests"`
}

func (r FriendRequestsResponse) Validate() error {
	if r.Requests == nil {
		return missing("requests")
	}
	return nil
}

// FriendAcceptedResponse carries the direct chat opened between the two
// friends, when the backend managed to create one.
type FriendAcceptedResponse struct {
	Resp
	Chat *Chat `json:"chat,omitempty"`
}

// ForgotPasswordResponse carries the reset token for display in the client.
// Unknown emails succeed without one.
type ForgotPasswordResponse struct {
	Resp
	Token string `json:"token,omitempty"`
}

// SearchResponse answers /students/search. A miss comes back as a 404 with
// found set to false.
type SearchResponse struct {
	Found   bool   `json:"found"`
	Student *User  `json:"student,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (r SearchResponse) Validate() error {
	if r.Found && (r.Student == nil || r.Student.Email == "") {
		return missing("student")
	}
	return nil
}

type NotificationsResponse struct {
	Resp
	Notifications []Notification `json:"notifications"`
}

func (r NotificationsResponse) Validate() error {
	if r.Success && r.Notifications == nil {
		return missing("notifications")
	}
	return nil
}

type SessionsResponse struct {
	Resp
	Study []StudySession `json:"study"`
}

func (r SessionsResponse) Validate() error {
	if r.Study == nil {
		return missing("study")
	}
	return nil
}

// Envelope exposes the embedded {success, error} part of a response.
func (r Resp) Envelope() Resp {
	return r
}
