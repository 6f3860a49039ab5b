package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/thatmoosee/Study-Buddy/server/etc"
	"github.com/thatmoosee/Study-Buddy/server/middleware"
	"github.com/thatmoosee/Study-Buddy/server/repository"
	"github.com/thatmoosee/Study-Buddy/util/model"
)

type AuthHandler struct {
	Sessions *middleware.Sessions
}

type authData struct {
	User model.User `json:"user"`
}

type authResponse struct {
	model.Resp
	Data authData `json:"data"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, req *http.Request) {
	var creds model.Credentials
	if !etc.Decode(w, req, &creds) {
		return
	}

	u, err := repository.CreateUser(etc.GetDb(req), creds.Email, creds.Password)
	if err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("user registered", "user_id", u.ID)
	etc.Response(w, http.StatusCreated, authResponse{
		Resp: model.Resp{Success: true, Message: "Account created successfully"},
		Data: authData{User: model.User{ID: model.NumericID(u.ID), Email: u.Email}},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, req *http.Request) {
	var creds model.Credentials
	if !etc.Decode(w, req, &creds) {
		return
	}

	u, err := repository.Authenticate(etc.GetDb(req), creds.Email, creds.Password)
	if err != nil {
		slog.Info("login failed", "email", creds.Email)
		etc.Fail(w, http.StatusUnauthorized, err.Error())
		return
	}

	if err := h.Sessions.Issue(w, u.ID, u.Email); err != nil {
		slog.Error("issuing session", "error", err)
		etc.Fail(w, http.StatusInternalServerError, "Could not start session")
		return
	}

	etc.Response(w, http.StatusOK, authResponse{
		Resp: model.Resp{Success: true, Message: "Login successful"},
		Data: authData{User: model.User{ID: model.NumericID(u.ID), Email: u.Email}},
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, req *http.Request) {
	h.Sessions.Clear(w)
	etc.Ok(w, "Logged out successfully")
}

// Status reports the session user under "user_id".
func (h *AuthHandler) Status(w http.ResponseWriter, req *http.Request) {
	id, email, err := h.Sessions.Read(req)
	if err != nil {
		etc.Response(w, http.StatusOK, map[string]any{"logged_in": false})
		return
	}

	etc.Response(w, http.StatusOK, map[string]any{
		"logged_in": true,
		"user": map[string]any{
			"user_id": id,
			"email":   email,
		},
	})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, req *http.Request) {
	var body model.EmailRequest
	if !etc.Decode(w, req, &body) {
		return
	}
	if strings.TrimSpace(body.Email) == "" {
		etc.Fail(w, http.StatusBadRequest, "Email is required")
		return
	}

	token, err := repository.RequestPasswordReset(etc.GetDb(req), body.Email)
	if err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if token == "" {
		etc.Ok(w, "If an account exists with this email, a reset link has been generated.")
		return
	}

	etc.Response(w, http.StatusOK, model.ForgotPasswordResponse{
		Resp:  model.Resp{Success: true, Message: "Password reset link generated successfully."},
		Token: token,
	})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, req *http.Request) {
	var body model.ResetPasswordRequest
	if !etc.Decode(w, req, &body) {
		return
	}
	if body.Token == "" || body.NewPassword == "" {
		etc.Fail(w, http.StatusBadRequest, "Token and new password are required")
		return
	}

	if err := repository.ResetPassword(etc.GetDb(req), body.Token, body.NewPassword); err != nil {
		etc.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	slog.Info("password reset")
	etc.Ok(w, "Password has been reset successfully. You can now login with your new password.")
}
