package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"news_alerts/internal/domain"
)

type UserStore interface {
	Create(ctx context.Context, username string, chatID int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	AddSubscription(ctx context.Context, userID, tickerID int64) error
	RemoveSubscription(ctx context.Context, userID, tickerID int64) error
	SubscribedTickers(ctx context.Context, userID int64) ([]domain.Ticker, error)
}

type RegionStore interface {
	List(ctx context.Context) ([]domain.Region, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Region, error)
	SeedIfEmpty(ctx context.Context, names []string) error
}

type TickerStore interface {
	Create(ctx context.Context, name, company string) (int64, error)
	LinkRegions(ctx context.Context, tickerID int64, regionIDs []int64) error
	GetByID(ctx context.Context, id int64) (*domain.Ticker, error)
	List(ctx context.Context, skip, limit int) ([]domain.Ticker, error)
}

type NewsStore interface {
	Create(ctx context.Context, n *domain.News) error
	LinkRegions(ctx context.Context, newsID int64, regionIDs []int64) error
	GetByID(ctx context.Context, id int64) (*domain.News, error)
	ListWindow(ctx context.Context, from, to time.Time, limit int) ([]domain.News, error)
	ListForUser(ctx context.Context, userID int64, skip, limit int) ([]domain.News, error)
	FindSubscribers(ctx context.Context, regionIDs []int64) ([]domain.SubscriberMatch, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Classifier is the external language-model boundary. Classify returns
// ErrClassification for unusable output and ErrUpstreamUnavailable for
// transport failures; an empty RegionIDs result is valid and means "no
// relevant region".
type Classifier interface {
	Classify(ctx context.Context, text string, regions []domain.Region) (*domain.Classification, error)
	Summarize(ctx context.Context, items []domain.News) (string, error)
}

// Relay delivers notification batches to the messaging bot. Acknowledgement
// is per batch, not per record.
type Relay interface {
	SendNotifications(ctx context.Context, notifications []domain.Notification) error
	SendDigest(ctx context.Context, chatIDs []int64, text string) error
}
