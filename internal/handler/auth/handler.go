package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hospital-api/internal/handler"
	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/service/auth"
)

// VerdictInvalidator purges a cached token verdict after revocation.
type VerdictInvalidator interface {
	Invalidate(token string)
}

type Handler struct {
	svc      *auth.Service
	anonKey  string
	verdicts VerdictInvalidator
}

// NewHandler wires the identity endpoints. verdicts may be nil when no
// middleware verdict cache is in play (tests that bypass the admin gate).
func NewHandler(svc *auth.Service, anonKey string, verdicts VerdictInvalidator) *Handler {
	return &Handler{svc: svc, anonKey: anonKey, verdicts: verdicts}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/auth")
	{
		group.POST("/signup", h.Signup)
		group.POST("/login", h.Login)
		group.GET("/session", h.Session)
		group.POST("/logout", h.Logout)
	}
}

func (h *Handler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("Email, password, and name are required"))
		return
	}

	admin, err := h.svc.Signup(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewMessageResponse(model.SessionUser{
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.Name,
	}, "Admin account created successfully"))
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("Email and password are required"))
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("Login error: invalid credentials"))
			return
		}
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse(result, "Login successful"))
}

// Session re-validates a stored token on app start. The anon key never
// identifies a session.
func (h *Handler) Session(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" || token == h.anonKey {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("No active session"))
		return
	}

	user, err := h.svc.Session(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("Invalid session"))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(user))
}

func (h *Handler) Logout(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		c.JSON(http.StatusOK, handler.NewMessageResponse(nil, "Already logged out"))
		return
	}

	if err := h.svc.Logout(c.Request.Context(), token); err != nil {
		handler.RespondError(c, err)
		return
	}
	if h.verdicts != nil {
		h.verdicts.Invalidate(token)
	}
	c.JSON(http.StatusOK, handler.NewMessageResponse(nil, "Logged out successfully"))
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
