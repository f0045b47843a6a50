package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"news_alerts/internal/domain"
	"news_alerts/internal/metrics"
	"news_alerts/internal/service"
)

const relayTimeout = 30 * time.Second

type Server struct {
	news     *service.NewsService
	subs     *service.SubscriptionService
	registry *service.RegistryService
	relay    service.Relay
	logger   *slog.Logger
}

func New(
	news *service.NewsService,
	subs *service.SubscriptionService,
	registry *service.RegistryService,
	relay service.Relay,
	logger *slog.Logger,
) *Server {
	return &Server{
		news:     news,
		subs:     subs,
		registry: registry,
		relay:    relay,
		logger:   logger.With("component", "http"),
	}
}

func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.observe())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "news-alerts"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := router.Group("/users")
	{
		users.POST("/first_launch", s.firstLaunch)
		users.GET("/:username/tickers", s.userTickers)
		users.POST("/preferences", s.addPreference)
		users.DELETE("/preferences", s.deletePreference)
	}

	router.POST("/tickers", s.createTicker)
	router.GET("/tickers", s.listTickers)
	router.GET("/regions", s.listRegions)

	news := router.Group("/news")
	{
		news.POST("", s.submitNews)
		news.GET("/morning-digest", s.morningDigest)
		news.GET("/top", s.topNews)
		news.GET("/feed", s.newsFeed)
		news.GET("/:id", s.newsByID)
	}

	return router
}

func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}

// writeError maps the domain taxonomy onto HTTP statuses.
func (s *Server) writeError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrClassification):
		status = http.StatusBadGateway
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		status = http.StatusServiceUnavailable
	default:
		status = http.StatusInternalServerError
		s.logger.Error("internal error", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// relayAsync pushes a notification batch without blocking the request; the
// news row is already committed, so delivery failure is only logged.
func (s *Server) relayAsync(notifications []domain.Notification) {
	if len(notifications) == 0 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), relayTimeout)
		defer cancel()
		if err := s.relay.SendNotifications(ctx, notifications); err != nil {
			s.logger.Error("notification delivery failed", "recipients", len(notifications), "error", err)
		}
	}()
}
