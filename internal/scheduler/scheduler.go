package scheduler

import (
	"context"
	"log/slog"
	"time"

	"news_alerts/internal/domain"
)

const runTimeout = 5 * time.Minute

// DigestSender builds and pushes the morning digest for the reporting
// window that closed at now.
type DigestSender interface {
	SendMorningDigest(ctx context.Context, now time.Time) error
}

// Scheduler fires the digest once a day at the 07:00 window anchor.
type Scheduler struct {
	sender DigestSender
	logger *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

func NewScheduler(sender DigestSender, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		sender: sender,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("digest scheduler started", "anchor_hour", domain.DigestAnchorHour)

	for {
		next := NextAnchor(s.now())
		timer := time.NewTimer(next.Sub(s.now()))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("digest scheduler stopped")
			return ctx.Err()
		case <-timer.C:
			s.run(ctx)
		}
	}
}

func (s *Scheduler) run(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	if err := s.sender.SendMorningDigest(runCtx, s.now()); err != nil {
		s.logger.Error("morning digest failed", "error", err)
	}
}

// NextAnchor returns the next 07:00 strictly after now.
func NextAnchor(now time.Time) time.Time {
	anchor := time.Date(now.Year(), now.Month(), now.Day(), domain.DigestAnchorHour, 0, 0, 0, now.Location())
	if !anchor.After(now) {
		anchor = anchor.AddDate(0, 0, 1)
	}
	return anchor
}
