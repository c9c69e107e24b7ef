package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	user, err := s.authSvc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
			return
		}
		s.log.WithError(err).Error("register failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.log.WithField("user_id", user.ID).Info("account created")
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "username": user.Username})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	token, user, err := s.authSvc.Login(c.Request.Context(), req.Username, req.Password, time.Now())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "username": user.Username})
}

type linkTelegramRequest struct {
	ChatID *int64 `json:"chat_id"`
}

// handleLinkTelegram links (or with a null chat_id, unlinks) the chat that
// receives reminder digests.
func (s *Server) handleLinkTelegram(c *gin.Context) {
	var req linkTelegramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user := currentUser(c)
	if err := s.authSvc.SetTelegramChat(c.Request.Context(), user.ID, req.ChatID); err != nil {
		s.log.WithError(err).Error("link telegram chat failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"linked": req.ChatID != nil})
}
