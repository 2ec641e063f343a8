package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobly/internal/auth"
	"github.com/justsurfingit/jobly/internal/dtos"
	"github.com/justsurfingit/jobly/internal/repository"
)

type UserHandler struct {
	Users  *repository.UserRepository
	Tokens *auth.TokenManager
}

// NewUserHandler creates the handler with dependencies
func NewUserHandler(users *repository.UserRepository, tokens *auth.TokenManager) *UserHandler {
	return &UserHandler{Users: users, Tokens: tokens}
}

// CreateUser is the POST /users endpoint (admin only). Unlike
// /auth/register it may create admins, and it returns a token so an admin
// can hand new users their first credential.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dtos.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	user, err := h.Users.Register(c.Request.Context(), &req.RegisterRequest, req.IsAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.Tokens.CreateToken(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// ListUsers is the GET /users endpoint (admin only).
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser is the GET /users/:username endpoint (admin or same user).
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.Users.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateUser is the PATCH /users/:username endpoint (admin or same user).
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dtos.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	user, err := h.Users.Update(c.Request.Context(), c.Param("username"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser is the DELETE /users/:username endpoint (admin or same user).
func (h *UserHandler) DeleteUser(c *gin.Context) {
	username := c.Param("username")
	if err := h.Users.Remove(c.Request.Context(), username); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": username})
}

// ApplyToJob is the POST /users/:username/jobs/:id endpoint (admin or
// same user).
func (h *UserHandler) ApplyToJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id: " + c.Param("id")})
		return
	}

	if err := h.Users.ApplyToJob(c.Request.Context(), c.Param("username"), jobID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"applied": jobID})
}
