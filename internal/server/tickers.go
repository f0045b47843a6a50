package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"news_alerts/internal/domain"
)

type createTickerRequest struct {
	Name      string  `json:"name" binding:"required"`
	Company   string  `json:"company" binding:"required"`
	RegionIDs []int64 `json:"region_ids"`
}

func (s *Server) createTicker(c *gin.Context) {
	var req createTickerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, fmt.Errorf("%v: %w", err, domain.ErrValidation))
		return
	}

	ticker, err := s.registry.CreateTicker(c.Request.Context(), req.Name, req.Company, req.RegionIDs)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ticker)
}

func (s *Server) listTickers(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 20)

	tickers, err := s.registry.ListTickers(c.Request.Context(), skip, limit)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if tickers == nil {
		tickers = []domain.Ticker{}
	}

	c.JSON(http.StatusOK, tickers)
}

func (s *Server) listRegions(c *gin.Context) {
	regions, err := s.registry.ListRegions(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, regions)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
