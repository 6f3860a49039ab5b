package api

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/thatmoosee/Study-Buddy/client/config"
	"github.com/thatmoosee/Study-Buddy/server/handler"
	"github.com/thatmoosee/Study-Buddy/server/repository"
	"github.com/thatmoosee/Study-Buddy/util/model"
)

// setupDevServer starts the in-memory backend and returns a logged in client.
func setupDevServer(t *testing.T, email string) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler.NewRouter(repository.NewDatabase(), "test-secret"))
	t.Cleanup(server.Close)

	return loginTo(t, server, email), server
}

func loginTo(t *testing.T, server *httptest.Server, email string) *Client {
	t.Helper()
	ctx := context.Background()

	client, err := New(config.Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if err := client.Register(ctx, email, "secret123"); err != nil {
		t.Fatalf("Register(%s) failed: %v", email, err)
	}
	if _, err := client.Login(ctx, email, "secret123"); err != nil {
		t.Fatalf("Login(%s) failed: %v", email, err)
	}
	return client
}

func TestDevServerSession(t *testing.T) {
	ctx := context.Background()
	client, server := setupDevServer(t, "ana@uni.edu")

	status, err := client.Status(ctx)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if !status.LoggedIn || status.User.Email != "ana@uni.edu" || status.User.ID.IsZero() {
		t.Errorf("Status = %+v, want ana logged in with an id", status)
	}

	if err := client.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	status, err = client.Status(ctx)
	if err != nil || status.LoggedIn {
		t.Errorf("Status after logout = %+v, %v", status, err)
	}

	stranger, err := New(config.Config{BaseURL: server.URL})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := stranger.ListGroups(ctx); !errors.Is(err, ErrStatus) {
		t.Errorf("ListGroups without session error = %v, want ErrStatus", err)
	}
}

func TestDevServerRegisterTwice(t *testing.T) {
	_, server := setupDevServer(t, "ana@uni.edu")

	client, err := New(config.Config{BaseURL: server.URL})
	if err != nil {
		t.Fatal(err)
	}
	err = client.Register(context.Background(), "ana@uni.edu", "secret123")

	var rejected *ActionError
	if !errors.As(err, &rejected) || rejected.Message != "Email already registered" {
		t.Errorf("second Register error = %v, want the backend's message", err)
	}
}

func TestDevServerGroups(t *testing.T) {
	ctx := context.Background()
	ana, server := setupDevServer(t, "ana@uni.edu")
	bo := loginTo(t, server, "bo@uni.edu")

	err := ana.CreateGroup(ctx, model.CreateGroupRequest{Name: "Algorithms", SpecifiedClass: "CS 301", StudyTimes: []string{"Mon 5pm"}})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	all, err := bo.ListAllGroups(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("ListAllGroups = %v, %v", all, err)
	}
	id := all[0].ID

	if err := bo.JoinGroup(ctx, id); err != nil {
		t.Fatalf("JoinGroup failed: %v", err)
	}
	var rejected *ActionError
	if err := bo.JoinGroup(ctx, id); !errors.As(err, &rejected) {
		t.Errorf("second JoinGroup error = %v, want ActionError", err)
	}

	mine, err := bo.ListGroups(ctx)
	if err != nil || len(mine) != 1 || len(mine[0].Members) != 2 {
		t.Fatalf("ListGroups = %+v, %v", mine, err)
	}

	filtered, err := bo.FilterGroups(ctx, model.FilterClass, "cs 3")
	if err != nil || len(filtered) != 1 {
		t.Errorf("FilterGroups = %v, %v", filtered, err)
	}

	err = bo.CreateSession(ctx, model.CreateSessionRequest{SessionName: "Review", StartDate: "2026-05-01T10:00", EndDate: "2026-05-01T12:00", GroupID: id})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	sessions, err := ana.ListSessions(ctx)
	if err != nil || len(sessions) != 1 {
		t.Fatalf("ListSessions = %v, %v", sessions, err)
	}
	if err := ana.DeleteSession(ctx, sessions[0].ID); err != nil {
		t.Errorf("DeleteSession failed: %v", err)
	}

	notes, err := ana.ListNotifications(ctx)
	if err != nil || len(notes) != 1 {
		t.Fatalf("ListNotifications = %v, %v", notes, err)
	}
	if err := ana.MarkRead(ctx, notes[0].ID); err != nil {
		t.Errorf("MarkRead failed: %v", err)
	}
	if err := ana.DeleteNotification(ctx, notes[0].ID); err != nil {
		t.Errorf("DeleteNotification failed: %v", err)
	}

	if err := bo.LeaveGroup(ctx, id); err != nil {
		t.Errorf("LeaveGroup failed: %v", err)
	}
}

func TestDevServerChatsAndFriends(t *testing.T) {
	ctx := context.Background()
	ana, server := setupDevServer(t, "ana@uni.edu")
	bo := loginTo(t, server, "bo@uni.edu")

	if err := ana.CreateChat(ctx, "Exam prep"); err != nil {
		t.Fatalf("CreateChat failed: %v", err)
	}
	if err := bo.JoinChat(ctx, model.TextID("1")); err != nil {
		t.Fatalf("JoinChat failed: %v", err)
	}

	chat, err := bo.SendMessage(ctx, model.TextID("1"), "hi")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if len(chat.Messages) != 1 || chat.Messages[0] != "bo@uni.edu: hi" {
		t.Errorf("messages = %q", chat.Messages)
	}

	chats, err := ana.ListChats(ctx)
	if err != nil || len(chats) != 1 || len(chats[0].Messages) != 1 {
		t.Fatalf("ListChats = %+v, %v", chats, err)
	}

	status, err := bo.Status(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := ana.AddFriend(ctx, model.TextID(status.User.ID.String())); err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}
	friends, err := bo.ListFriends(ctx)
	if err != nil || len(friends) != 1 {
		t.Errorf("ListFriends = %v, %v", friends, err)
	}

	if err := ana.UploadProfile(ctx, model.Profile{Name: "Ana", Major: "CS"}); err != nil {
		t.Errorf("UploadProfile failed: %v", err)
	}
	if err := bo.LeaveChat(ctx, model.TextID("1")); err != nil {
		t.Errorf("LeaveChat failed: %v", err)
	}
}

func TestDevServerFriendRequests(t *testing.T) {
	ctx := context.Background()
	ana, server := setupDevServer(t, "ana@uni.edu")
	bo := loginTo(t, server, "bo@uni.edu")

	student, found, err := bo.SearchStudent(ctx, "ana@uni.edu")
	if err != nil || !found || student.Email != "ana@uni.edu" {
		t.Fatalf("SearchStudent = %+v, %v, %v", student, found, err)
	}
	if _, found, err := bo.SearchStudent(ctx, "cy@uni.edu"); err != nil || found {
		t.Errorf("SearchStudent miss = %v, %v", found, err)
	}

	if err := bo.SendFriendRequest(ctx, student.Email); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	err = bo.SendFriendRequest(ctx, student.Email)
	var rejected *ActionError
	if !errors.As(err, &rejected) || rejected.Message != "Friend request already sent" {
		t.Errorf("second request = %v", err)
	}

	requests, err := ana.ListFriendRequests(ctx)
	if err != nil || len(requests) != 1 || requests[0].FromEmail != "bo@uni.edu" {
		t.Fatalf("ListFriendRequests = %+v, %v", requests, err)
	}
	if err := ana.AcceptFriendRequest(ctx, requests[0].RequestID); err != nil {
		t.Fatalf("AcceptFriendRequest failed: %v", err)
	}

	friends, err := bo.ListFriends(ctx)
	if err != nil || len(friends) != 1 {
		t.Errorf("bo friends = %v, %v", friends, err)
	}
	chats, err := ana.ListChats(ctx)
	if err != nil || len(chats) != 1 || len(chats[0].Members) != 2 {
		t.Errorf("direct chat = %+v, %v", chats, err)
	}
}

func TestDevServerPasswordReset(t *testing.T) {
	ctx := context.Background()
	_, server := setupDevServer(t, "ana@uni.edu")

	client, err := New(config.Config{BaseURL: server.URL})
	if err != nil {
		t.Fatal(err)
	}
	if token, err := client.ForgotPassword(ctx, "nobody@uni.edu"); err != nil || token != "" {
		t.Errorf("unknown email = %q, %v", token, err)
	}
	token, err := client.ForgotPassword(ctx, "ana@uni.edu")
	if err != nil || token == "" {
		t.Fatalf("ForgotPassword = %q, %v", token, err)
	}

	if err := client.ResetPassword(ctx, token, ""); err == nil || err.Error() != "New password required." {
		t.Errorf("empty password = %v", err)
	}
	if err := client.ResetPassword(ctx, token, "newsecret"); err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}
	err = client.ResetPassword(ctx, token, "another1")
	var rejected *ActionError
	if !errors.As(err, &rejected) || rejected.Message != "Invalid or expired reset token" {
		t.Errorf("reused token = %v", err)
	}

	if _, err := client.Login(ctx, "ana@uni.edu", "newsecret"); err != nil {
		t.Errorf("login with the new password failed: %v", err)
	}
}
