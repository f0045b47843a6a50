package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"news_alerts/internal/domain"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	ChatID   int64  `json:"chat_id"`
}

func (s *Server) firstLaunch(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, fmt.Errorf("%v: %w", err, domain.ErrValidation))
		return
	}

	created, err := s.subs.Register(c.Request.Context(), req.Username, req.ChatID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusAlreadyReported, gin.H{"detail": "User already registered."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "User successfully registered."})
}

func (s *Server) userTickers(c *gin.Context) {
	username := c.Param("username")

	tickers, err := s.subs.Subscriptions(c.Request.Context(), username)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if tickers == nil {
		tickers = []domain.Ticker{}
	}

	c.JSON(http.StatusOK, gin.H{"username": username, "tickers": tickers})
}

type preferenceRequest struct {
	Username string `json:"username" binding:"required"`
	TickerID int64  `json:"ticker_id" binding:"required"`
}

func (s *Server) addPreference(c *gin.Context) {
	var req preferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, fmt.Errorf("%v: %w", err, domain.ErrValidation))
		return
	}

	if err := s.subs.Subscribe(c.Request.Context(), req.Username, req.TickerID); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"detail": "Ticker added to preferences."})
}

func (s *Server) deletePreference(c *gin.Context) {
	username := c.Query("username")
	tickerID, err := strconv.ParseInt(c.Query("ticker_id"), 10, 64)
	if username == "" || err != nil {
		s.writeError(c, fmt.Errorf("username and ticker_id are required: %w", domain.ErrValidation))
		return
	}

	if err := s.subs.Unsubscribe(c.Request.Context(), username, tickerID); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Ticker removed from preferences."})
}
