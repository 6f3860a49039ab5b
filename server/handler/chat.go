package handler

import (
	"net/http"
	"strings"

	"github.com/thatmoosee/Study-Buddy/server/etc"
	"github.com/thatmoosee/Study-Buddy/server/repository"
	"github.com/thatmoosee/Study-Buddy/util/model"
)

func chat(w http.ResponseWriter, msg string, c model.Chat) {
	etc.Response(w, http.StatusOK, map[string]any{"success": true, "message": msg, "chats": c})
}

func ListChatsHandler(w http.ResponseWriter, req *http.Request) {
	etc.Response(w, http.StatusOK, model.ChatsResponse{
		Resp:  model.Resp{Success: true, Message: "Chat listed successfully!"},
		Chats: repository.UserChats(etc.GetDb(req), etc.GetUser(req)),
	})
}

func CreateChatHandler(w http.ResponseWriter, req *http.Request) {
	var body model.CreateChatRequest
	if !etc.Decode(w, req, &body) {
		return
	}

	c, err := repository.CreateChat(etc.GetDb(req), etc.GetUser(req), strings.TrimSpace(body.Name))
	if err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	chat(w, "Chat created successfully!", c)
}

func JoinChatHandler(w http.ResponseWriter, req *http.Request) {
	var ref model.ChatRef
	if !etc.Decode(w, req, &ref) {
		return
	}

	c, err := repository.JoinChat(etc.GetDb(req), ref.ChatID.String(), etc.GetUser(req))
	if err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	chat(w, "Chat joined successfully!", c)
}

func LeaveChatHandler(w http.ResponseWriter, req *http.Request) {
	var ref model.ChatRef
	if !etc.Decode(w, req, &ref) {
		return
	}

	c, err := repository.LeaveChat(etc.GetDb(req), ref.ChatID.String(), etc.GetUser(req))
	if err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	chat(w, "Chat left successfully!", c)
}

func SendMessageHandler(w http.ResponseWriter, req *http.Request) {
	var body model.SendMessageRequest
	if !etc.Decode(w, req, &body) {
		return
	}
	if body.ChatID.IsZero() || strings.TrimSpace(body.Message) == "" {
		etc.Fail(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	c, err := repository.SendMessage(etc.GetDb(req), body.ChatID.String(), etc.GetUser(req), strings.TrimSpace(body.Message))
	if err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	etc.Response(w, http.StatusOK, model.ChatResponse{
		Resp:  model.Resp{Success: true, Message: "Chat sent successfully!"},
		Study: &c,
	})
}
