package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/common"
	"jobboard/internal/dtos"
	"jobboard/internal/middleware"
	"jobboard/internal/services"
)

type AuthHandler struct {
	AuthService *services.AuthService
	Tokens      *auth.TokenManager
}

func NewAuthHandler(s *services.AuthService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{AuthService: s, Tokens: tokens}
}

// Register is the POST /api/auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.AuthService.Register(&req)
	if err != nil {
		respondError(c, err, map[error]string{
			common.ErrConflict: "Email is already registered.",
		})
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, dtos.AuthResponse{Token: token, Role: user.Role, User: user})
}

// Login is the POST /api/auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.AuthService.Login(&req)
	if err != nil {
		respondError(c, err, map[error]string{
			common.ErrUnauthorized: "Invalid email or password.",
		})
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, dtos.AuthResponse{Token: token, Role: user.Role, User: user})
}

// Profile is the GET /api/auth/profile endpoint
func (h *AuthHandler) Profile(c *gin.Context) {
	caller, _ := middleware.CallerFrom(c)

	user, err := h.AuthService.GetProfile(caller.UserID)
	if err != nil {
		respondError(c, err, map[error]string{
			common.ErrNotFound: "User not found.",
		})
		return
	}
	c.JSON(http.StatusOK, user)
}
