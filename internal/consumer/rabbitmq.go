package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"news_alerts/internal/domain"
	"news_alerts/internal/metrics"
)

const processTimeout = 2 * time.Minute

// Ingestor runs one raw news item through classification, persistence and
// notification.
type Ingestor interface {
	Process(ctx context.Context, item domain.RawItem) error
}

type Config struct {
	URL       string
	Exchange  string
	QueueName string
}

// RabbitMQ consumes raw parsed news from the parsers' queue and feeds the
// ingest pipeline.
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	ingest  Ingestor
	logger  *slog.Logger
}

func NewRabbitMQ(cfg Config, ingest Ingestor, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		q.Name,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", q.Name,
	)

	return &RabbitMQ{
		conn:    conn,
		channel: ch,
		queue:   q.Name,
		ingest:  ingest,
		logger:  logger.With("component", "consumer"),
	}, nil
}

// Start blocks consuming deliveries until ctx is cancelled or the channel
// closes. Each message is acked only after the pipeline succeeds; failures
// are dropped without requeue; upstream errors are not retried in-process.
func (r *RabbitMQ) Start(ctx context.Context) error {
	deliveries, err := r.channel.ConsumeWithContext(
		ctx,
		r.queue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	r.logger.Info("consumer started", "queue", r.queue)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("consumer stopped")
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			r.handle(ctx, d)
		}
	}
}

func (r *RabbitMQ) handle(ctx context.Context, d amqp.Delivery) {
	var item domain.RawItem
	if err := json.Unmarshal(d.Body, &item); err != nil {
		r.logger.Error("malformed raw item dropped", "error", err)
		metrics.RawItemsConsumed.WithLabelValues("malformed").Inc()
		_ = d.Nack(false, false)
		return
	}

	procCtx, cancel := context.WithTimeout(ctx, processTimeout)
	defer cancel()

	if err := r.ingest.Process(procCtx, item); err != nil {
		r.logger.Error("ingest failed",
			"source", item.Source,
			"title", item.Title,
			"error", err,
		)
		metrics.RawItemsConsumed.WithLabelValues("error").Inc()
		_ = d.Nack(false, false)
		return
	}

	metrics.RawItemsConsumed.WithLabelValues("ok").Inc()
	_ = d.Ack(false)
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
