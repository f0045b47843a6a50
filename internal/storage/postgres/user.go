package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"news_alerts/internal/domain"
)

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, username string, chatID int64) (*domain.User, error) {
	user := domain.User{Username: username, ChatID: chatID}

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		"INSERT INTO users (username, chat_id) VALUES ($1, $2) RETURNING user_id",
		username, chatID,
	).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", mapError(err))
	}

	return &user, nil
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &user,
		"SELECT user_id, username, chat_id FROM users WHERE username = $1",
		username,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &user, nil
}

func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &users,
		"SELECT user_id, username, chat_id FROM users ORDER BY user_id",
	)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	return users, nil
}

func (s *UserStore) AddSubscription(ctx context.Context, userID, tickerID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"INSERT INTO user_tickers (user_id, ticker_id) VALUES ($1, $2)",
		userID, tickerID,
	)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", mapError(err))
	}
	return nil
}

// RemoveSubscription is a no-op when the pair does not exist.
func (s *UserStore) RemoveSubscription(ctx context.Context, userID, tickerID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM user_tickers WHERE user_id = $1 AND ticker_id = $2",
		userID, tickerID,
	)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}

func (s *UserStore) SubscribedTickers(ctx context.Context, userID int64) ([]domain.Ticker, error) {
	query := `
		SELECT t.ticker_id, t.name, t.company
		FROM tickers t
		INNER JOIN user_tickers ut ON ut.ticker_id = t.ticker_id
		WHERE ut.user_id = $1
		ORDER BY t.ticker_id`

	var tickers []domain.Ticker
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &tickers, query, userID)
	if err != nil {
		return nil, fmt.Errorf("select subscribed tickers: %w", err)
	}

	if err := attachTickerRegions(ctx, GetExecutor(ctx, s.db), tickers); err != nil {
		return nil, err
	}
	return tickers, nil
}
