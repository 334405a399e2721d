package http

import (
	"errors"
	"net/http"

	"github.com/strivehq/goaltrack/internal/goaltrack/service"
	"github.com/strivehq/goaltrack/pkg/goalsdk"
	"github.com/strivehq/goaltrack/pkg/httpx"
	"github.com/strivehq/goaltrack/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register a new user
//	@Description	Creates a user account with the default Read privilege. Username and email must be unique.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		goalsdk.RegisterRequest	true	"username, password, email"
//	@Success		200		{object}	goalsdk.MessageResponse	"message"
//	@Failure		400		{object}	goalsdk.ErrorResponse	"missing required field"
//	@Failure		409		{object}	goalsdk.ErrorResponse	"username or email already exists"
//	@Failure		500		{object}	goalsdk.ErrorResponse	"internal server error"
//	@Router			/users/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req goalsdk.RegisterRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		goalsdk.ErrValidation.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	if _, err := h.UserService.Register(ctx, req.Username, req.Password, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			goalsdk.ErrValidation.WithDescription("username, password and email are required").WriteError(w)
		case errors.Is(err, service.ErrAccountExists):
			goalsdk.ErrConflict.WriteError(w)
		default:
			log.Error("failed to register user", "err", err)
			goalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, goalsdk.MessageResponse{
		Message: "User registered successfully",
	})
}

type LoginHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Exchanges a username/password pair for a signed bearer token.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		goalsdk.LoginRequest	true	"username, password"
//	@Success		200		{object}	goalsdk.LoginResponse	"token"
//	@Failure		401		{object}	goalsdk.ErrorResponse	"invalid username or password"
//	@Failure		500		{object}	goalsdk.ErrorResponse	"internal server error"
//	@Router			/users/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req goalsdk.LoginRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		goalsdk.ErrValidation.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	token, err := h.TokenService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			goalsdk.ErrUnauthorized.WriteError(w)
			return
		}
		log.Error("failed to log in", "err", err)
		goalsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, goalsdk.LoginResponse{Token: token})
}

type ChangePasswordHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Change password
//	@Description	Re-authenticates with the current password before storing a new one.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		goalsdk.ChangePasswordRequest	true	"username, currentPassword, newPassword"
//	@Success		200		{object}	goalsdk.MessageResponse			"message"
//	@Failure		401		{object}	goalsdk.ErrorResponse			"invalid username or password"
//	@Failure		500		{object}	goalsdk.ErrorResponse			"internal server error"
//	@Router			/users/change-password [post].
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req goalsdk.ChangePasswordRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		goalsdk.ErrValidation.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	err := h.UserService.ChangePassword(ctx, req.Username, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidCredentials):
			// Missing fields fold into the credential failure so the endpoint
			// leaks nothing about which part was wrong
			goalsdk.ErrUnauthorized.WriteError(w)
		default:
			log.Error("failed to change password", "err", err)
			goalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, goalsdk.MessageResponse{
		Message: "Password changed successfully",
	})
}
