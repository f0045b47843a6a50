package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"news_alerts/internal/domain"
)

// SubscriptionService manages users and their ticker subscriptions.
type SubscriptionService struct {
	users   UserStore
	tickers TickerStore
	logger  *slog.Logger
}

func NewSubscriptionService(users UserStore, tickers TickerStore, logger *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		users:   users,
		tickers: tickers,
		logger:  logger.With("service", "subscription"),
	}
}

// Register creates the user on first contact. Registration is idempotent by
// username; a repeat registration reports created=false and does NOT update
// the stored chat_id.
func (s *SubscriptionService) Register(ctx context.Context, username string, chatID int64) (bool, error) {
	if username == "" {
		return false, fmt.Errorf("empty username: %w", domain.ErrValidation)
	}

	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, fmt.Errorf("register user: %w", err)
	}

	if _, err := s.users.Create(ctx, username, chatID); err != nil {
		// Lost a race with a concurrent first contact; the user exists.
		if errors.Is(err, domain.ErrConflict) {
			return false, nil
		}
		return false, fmt.Errorf("register user: %w", err)
	}

	s.logger.Info("user registered", "username", username)
	return true, nil
}

// Subscribe adds a (user, ticker) pair. A duplicate pair is ErrConflict.
func (s *SubscriptionService) Subscribe(ctx context.Context, username string, tickerID int64) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if _, err := s.tickers.GetByID(ctx, tickerID); err != nil {
		return err
	}
	if err := s.users.AddSubscription(ctx, user.ID, tickerID); err != nil {
		return fmt.Errorf("subscribe %q to ticker %d: %w", username, tickerID, err)
	}

	s.logger.Info("subscription added", "username", username, "ticker_id", tickerID)
	return nil
}

// Unsubscribe removes a pair; removing an absent pair is a successful no-op.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, username string, tickerID int64) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := s.users.RemoveSubscription(ctx, user.ID, tickerID); err != nil {
		return fmt.Errorf("unsubscribe %q from ticker %d: %w", username, tickerID, err)
	}
	return nil
}

// Subscriptions returns the user's tickers with their regions.
func (s *SubscriptionService) Subscriptions(ctx context.Context, username string) ([]domain.Ticker, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.users.SubscribedTickers(ctx, user.ID)
}
