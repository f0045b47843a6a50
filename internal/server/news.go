package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"news_alerts/internal/domain"
	"news_alerts/internal/metrics"
	"news_alerts/internal/service"
)

type submitNewsRequest struct {
	Text      string  `json:"text" binding:"required"`
	Tonality  string  `json:"tonality" binding:"required"`
	Impact    int     `json:"impact" binding:"required"`
	RegionIDs []int64 `json:"region_ids"`
}

// submitNews persists a pre-classified news item and answers with the
// notification fan-out. Delivery to the bot happens asynchronously and does
// not affect the response.
func (s *Server) submitNews(c *gin.Context) {
	var req submitNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, fmt.Errorf("%v: %w", err, domain.ErrValidation))
		return
	}

	notifications, _, err := s.news.Submit(c.Request.Context(), service.SubmitInput{
		Text:      req.Text,
		Tonality:  domain.Tonality(req.Tonality),
		Impact:    req.Impact,
		RegionIDs: req.RegionIDs,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	metrics.NewsSubmitted.Inc()
	metrics.NotificationsEmitted.Add(float64(len(notifications)))

	s.relayAsync(notifications)

	if notifications == nil {
		notifications = []domain.Notification{}
	}
	c.JSON(http.StatusOK, notifications)
}

func (s *Server) morningDigest(c *gin.Context) {
	items, err := s.news.MorningDigest(c.Request.Context(), time.Now())
	if err != nil {
		s.writeError(c, err)
		return
	}
	if items == nil {
		items = []domain.News{}
	}

	c.JSON(http.StatusOK, items)
}

func (s *Server) topNews(c *gin.Context) {
	n := intQuery(c, "n", 3)

	items, err := s.news.TopNews(c.Request.Context(), time.Now(), n)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if items == nil {
		items = []domain.News{}
	}

	c.JSON(http.StatusOK, items)
}

func (s *Server) newsByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		s.writeError(c, fmt.Errorf("news id must be an integer: %w", domain.ErrValidation))
		return
	}

	item, err := s.news.ByID(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (s *Server) newsFeed(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		s.writeError(c, fmt.Errorf("username is required: %w", domain.ErrValidation))
		return
	}
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 10)

	items, err := s.news.FeedForUser(c.Request.Context(), username, skip, limit)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if items == nil {
		items = []domain.News{}
	}

	c.JSON(http.StatusOK, items)
}
