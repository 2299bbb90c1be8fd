package handlers

import (
	"net/http"

	"glamor-shop/internal/auth"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the admin credential pair and hands out a session token.
// Failures carry no detail about which field was wrong.
func (h *Handler) Login(c *gin.Context) {
	var input LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if !h.Shop.Login(input.Username, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(input.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": input.Username,
	})
}

// Logout clears the admin session flag.
func (h *Handler) Logout(c *gin.Context) {
	h.Shop.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
