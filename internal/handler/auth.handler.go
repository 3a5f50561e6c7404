package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wanderlustbites/content-service/internal/auth"
	"github.com/wanderlustbites/content-service/internal/constant"
	"github.com/wanderlustbites/content-service/internal/model/response"
)

type AuthHandler struct {
	svc    *auth.Service
	cookie auth.CookieOpts
	log    *zap.Logger
}

func NewAuthHandler(svc *auth.Service, cookie auth.CookieOpts, log *zap.Logger) *AuthHandler {
	if log == nil {
		log = zap.L()
	}
	return &AuthHandler{svc: svc, cookie: cookie, log: log}
}

type SignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest only requires the fields to be present. Email format is not
// re-checked here: a malformed login email can never match a stored account,
// so it falls into the same generic rejection as a wrong password.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup godoc
//
//	@Summary		Create account
//	@Description	Creates a user account and starts a session
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SignupRequest	true	"Signup payload"
//	@Success		201		{object}	response.ResponseData
//	@Failure		400		{object}	response.ResponseData
//	@Failure		409		{object}	response.ResponseData
//	@Router			/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	body := c.MustGet("validatedBody").(SignupRequest)

	user, token, err := h.svc.SignUp(c.Request.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			c.JSON(http.StatusConflict, constant.EMAIL_CONFLICT)
			return
		}
		h.log.Error("signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, constant.TRY_AGAIN_LATER)
		return
	}

	auth.SetSessionCookie(c, h.cookie, token)
	c.JSON(http.StatusCreated, response.ResponseData{
		Ec:   http.StatusCreated,
		Msg:  "Account created",
		Data: user,
	})
}

// Login godoc
//
//	@Summary		Login
//	@Description	Verifies credentials and starts a session
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		LoginRequest	true	"Login payload"
//	@Success		200		{object}	response.ResponseData
//	@Failure		401		{object}	response.ResponseData
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	body := c.MustGet("validatedBody").(LoginRequest)

	user, token, err := h.svc.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, constant.INVALID_CREDENTIALS)
			return
		}
		h.log.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, constant.TRY_AGAIN_LATER)
		return
	}

	auth.SetSessionCookie(c, h.cookie, token)
	c.JSON(http.StatusOK, response.ResponseData{
		Ec:   http.StatusOK,
		Msg:  "Logged in",
		Data: user,
	})
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	Clears the session cookie. Idempotent: succeeds with or without a session.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	response.ResponseData
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c, h.cookie)
	c.JSON(http.StatusOK, response.ResponseData{
		Ec:  http.StatusOK,
		Msg: "Logged out successfully",
	})
}

// Me godoc
//
//	@Summary		Current user
//	@Description	Returns the account behind the session cookie
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	response.ResponseData
//	@Failure		401	{object}	response.ResponseData
//	@Router			/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(constant.UserIDKey)

	user, err := h.svc.UserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, constant.NOT_AUTHENTICATED)
			return
		}
		h.log.Error("current user lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, constant.TRY_AGAIN_LATER)
		return
	}

	c.JSON(http.StatusOK, response.ResponseData{
		Ec:   http.StatusOK,
		Data: user,
	})
}
