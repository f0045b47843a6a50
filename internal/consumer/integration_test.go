//go:build integration

package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"news_alerts/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

// recordingIngestor collects processed items and returns a canned error.
type recordingIngestor struct {
	mu    sync.Mutex
	items []domain.RawItem
	err   error
}

func (r *recordingIngestor) Process(_ context.Context, item domain.RawItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return r.err
}

func (r *recordingIngestor) got() []domain.RawItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.RawItem(nil), r.items...)
}

func (s *RabbitMQIntegrationSuite) publish(cfg Config, body []byte) {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	err = ch.PublishWithContext(s.ctx, cfg.Exchange, cfg.QueueName, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	s.Require().NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestConsumer_Connection() {
	cfg := Config{
		URL:       s.amqpURL,
		Exchange:  "test-exchange",
		QueueName: "test-queue",
	}

	c, err := NewRabbitMQ(cfg, &recordingIngestor{}, s.logger)
	s.NoError(err)
	s.NotNil(c)

	s.NoError(c.Close())
}

func (s *RabbitMQIntegrationSuite) TestConsumer_ProcessesRawItem() {
	cfg := Config{
		URL:       s.amqpURL,
		Exchange:  "test-exchange-process",
		QueueName: "test-queue-process",
	}

	ingestor := &recordingIngestor{}
	c, err := NewRabbitMQ(cfg, ingestor, s.logger)
	s.Require().NoError(err)
	defer c.Close()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	go func() { _ = c.Start(ctx) }()

	item := domain.RawItem{
		Title:  "Chip shortage eases",
		Text:   "Fabs report improving yields.",
		Link:   "https://example.com/chips",
		Source: "rbc",
	}
	body, err := json.Marshal(item)
	s.Require().NoError(err)
	s.publish(cfg, body)

	s.Eventually(func() bool {
		return len(ingestor.got()) == 1
	}, 10*time.Second, 100*time.Millisecond)

	s.Equal(item, ingestor.got()[0])
}

func (s *RabbitMQIntegrationSuite) TestConsumer_MalformedMessageIsDropped() {
	cfg := Config{
		URL:       s.amqpURL,
		Exchange:  "test-exchange-malformed",
		QueueName: "test-queue-malformed",
	}

	ingestor := &recordingIngestor{}
	c, err := NewRabbitMQ(cfg, ingestor, s.logger)
	s.Require().NoError(err)
	defer c.Close()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	go func() { _ = c.Start(ctx) }()

	s.publish(cfg, []byte("not json at all"))

	valid := domain.RawItem{Title: "valid", Text: "t", Source: "rbc"}
	body, err := json.Marshal(valid)
	s.Require().NoError(err)
	s.publish(cfg, body)

	// The malformed message never reaches the pipeline; the valid one does.
	s.Eventually(func() bool {
		return len(ingestor.got()) == 1
	}, 10*time.Second, 100*time.Millisecond)

	s.Equal("valid", ingestor.got()[0].Title)
}
