package handlers

import (
	"net/http"
	"time"

	"winestudy/internal/middleware"
	"winestudy/internal/model"
	"winestudy/internal/service"
	"winestudy/internal/webutil"
)

type AuthHandler struct {
	service  service.AuthService
	tokenTTL time.Duration
}

func NewAuthHandler(s service.AuthService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{service: s, tokenTTL: tokenTTL}
}

// Register は新規ユーザーと進捗レコードを作成し、トークンを発行します
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Register")

	var req model.RegisterRequest
	if !decodeAndValidate(w, r, logger, &req, "Email, password and name are required") {
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		logger.Warn("Registration failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.SetAuthCookie(w, resp.Token, h.tokenTTL)
	logger.Info("Registration successful", "user_id", resp.User.UserID)
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// Login はメールアドレスとパスワードで認証します
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Login")

	var req model.LoginRequest
	if !decodeAndValidate(w, r, logger, &req, "Email and password are required") {
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.SetAuthCookie(w, resp.Token, h.tokenTTL)
	logger.Info("Login successful", "user_id", resp.User.UserID)
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Session は OAuth の認可コードでログイン (初回はユーザー作成) します
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Session")

	var req model.SessionRequest
	if !decodeAndValidate(w, r, logger, &req, "Authorization code is required") {
		return
	}

	resp, err := h.service.OAuthSession(r.Context(), req.Code)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.SetAuthCookie(w, resp.Token, h.tokenTTL)
	logger.Info("OAuth session successful", "user_id", resp.User.UserID)
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Me")
	identity := identityOrReject(w, r, logger)
	if identity == nil {
		return
	}

	user, err := h.service.Me(r.Context(), identity.UserID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

// Logout はクッキーを削除するだけです。トークン自体は失効させません (有効期限まで検証は通ります)。
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Logout")
	webutil.ClearAuthCookie(w)
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Logged out successfully"}, logger)
}

func (h *AuthHandler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "UpdateLanguage")
	identity := identityOrReject(w, r, logger)
	if identity == nil {
		return
	}

	var req model.LanguageRequest
	if !decodeAndValidate(w, r, logger, &req, "") {
		return
	}

	resp, err := h.service.UpdateLanguage(r.Context(), identity.UserID, req.Language)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Language updated", "language", resp.Language)
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
