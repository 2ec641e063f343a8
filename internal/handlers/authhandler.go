package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobly/internal/auth"
	"github.com/justsurfingit/jobly/internal/dtos"
	"github.com/justsurfingit/jobly/internal/repository"
)

type AuthHandler struct {
	Users  *repository.UserRepository
	Tokens *auth.TokenManager
}

// NewAuthHandler creates the handler with dependencies
func NewAuthHandler(users *repository.UserRepository, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens}
}

// Login is the POST /auth/token endpoint. Open to anyone; trades a valid
// username/password pair for a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	user, err := h.Users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.Tokens.CreateToken(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Register is the POST /auth/register endpoint. Open to anyone; always
// creates a non-admin user.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	user, err := h.Users.Register(c.Request.Context(), &req, false)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.Tokens.CreateToken(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token})
}
