package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news_alerts/internal/domain"
)

// NewsService owns news ingestion, subscription matching and the digest
// queries.
type NewsService struct {
	news      NewsStore
	regions   RegionStore
	users     UserStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewNewsService(
	news NewsStore,
	regions RegionStore,
	users UserStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *NewsService {
	return &NewsService{
		news:      news,
		regions:   regions,
		users:     users,
		txManager: txManager,
		logger:    logger.With("service", "news"),
	}
}

type SubmitInput struct {
	Text      string
	Tonality  domain.Tonality
	Impact    int
	RegionIDs []int64
}

// Submit persists one news item with its region associations and computes
// who to notify. The whole write is one transaction: every region id is
// validated before anything commits, so an unknown id leaves no partial
// rows behind. Fan-out is read-only and happens after the commit; the relay
// is never called here; delivery is the caller's concern.
//
// Each distinct subscriber gets exactly one record, carrying the matched
// regions the user's subscribed tickers belong to and those tickers,
// ordered by registration (user id).
func (s *NewsService) Submit(ctx context.Context, in SubmitInput) ([]domain.Notification, *domain.News, error) {
	if in.Text == "" {
		return nil, nil, fmt.Errorf("empty news text: %w", domain.ErrValidation)
	}
	if !in.Tonality.Valid() {
		return nil, nil, fmt.Errorf("tonality %q: %w", in.Tonality, domain.ErrValidation)
	}
	if !domain.ValidImpact(in.Impact) {
		return nil, nil, fmt.Errorf("impact %d: %w", in.Impact, domain.ErrValidation)
	}

	regionIDs := dedupeIDs(in.RegionIDs)

	news := &domain.News{
		Text:     in.Text,
		Tonality: in.Tonality,
		Impact:   in.Impact,
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		regions, err := s.regions.GetByIDs(txCtx, regionIDs)
		if err != nil {
			return err
		}
		if missing := missingID(regionIDs, regions); missing != 0 {
			return fmt.Errorf("region %d: %w", missing, domain.ErrNotFound)
		}
		news.Regions = regions

		if err := s.news.Create(txCtx, news); err != nil {
			return err
		}
		return s.news.LinkRegions(txCtx, news.ID, regionIDs)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("submit news: %w", err)
	}

	matches, err := s.news.FindSubscribers(ctx, regionIDs)
	if err != nil {
		// The news row is already committed; matching failed after the fact.
		return nil, news, fmt.Errorf("match subscribers: %w", err)
	}

	notifications := aggregateNotifications(in.Tonality, in.Impact, matches)

	s.logger.Info("news submitted",
		"news_id", news.ID,
		"regions", len(regionIDs),
		"recipients", len(notifications),
	)

	return notifications, news, nil
}

// MorningDigest returns the news of the most recently started 07:00-to-07:00
// reporting window, most significant first.
func (s *NewsService) MorningDigest(ctx context.Context, now time.Time) ([]domain.News, error) {
	from, to := domain.DigestWindow(now)
	items, err := s.news.ListWindow(ctx, from, to, 0)
	if err != nil {
		return nil, fmt.Errorf("morning digest: %w", err)
	}
	return items, nil
}

// TopNews returns the n most significant items of the same window.
func (s *NewsService) TopNews(ctx context.Context, now time.Time, n int) ([]domain.News, error) {
	from, to := domain.DigestWindow(now)
	items, err := s.news.ListWindow(ctx, from, to, n)
	if err != nil {
		return nil, fmt.Errorf("top news: %w", err)
	}
	return items, nil
}

func (s *NewsService) ByID(ctx context.Context, id int64) (*domain.News, error) {
	return s.news.GetByID(ctx, id)
}

// FeedForUser returns news intersecting the regions covered by the user's
// subscriptions, newest first. A user without subscriptions gets an empty
// feed, not an error.
func (s *NewsService) FeedForUser(ctx context.Context, username string, skip, limit int) ([]domain.News, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	items, err := s.news.ListForUser(ctx, user.ID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("news feed for %q: %w", username, err)
	}
	return items, nil
}

// aggregateNotifications folds the join rows into one record per distinct
// user. The rows arrive ordered by user id, so recipient order follows
// registration order.
func aggregateNotifications(tonality domain.Tonality, impact int, matches []domain.SubscriberMatch) []domain.Notification {
	var out []domain.Notification
	index := make(map[int64]int)
	seenTickers := make(map[int64]map[string]struct{})
	seenRegions := make(map[int64]map[string]struct{})

	for _, m := range matches {
		i, ok := index[m.UserID]
		if !ok {
			out = append(out, domain.Notification{
				Username: m.Username,
				ChatID:   m.ChatID,
				Impact:   impact,
				Tonality: tonality,
			})
			i = len(out) - 1
			index[m.UserID] = i
			seenTickers[m.UserID] = make(map[string]struct{})
			seenRegions[m.UserID] = make(map[string]struct{})
		}

		if _, dup := seenTickers[m.UserID][m.TickerName]; !dup {
			seenTickers[m.UserID][m.TickerName] = struct{}{}
			out[i].Tickers = append(out[i].Tickers, m.TickerName)
		}
		if _, dup := seenRegions[m.UserID][m.RegionName]; !dup {
			seenRegions[m.UserID][m.RegionName] = struct{}{}
			out[i].Regions = append(out[i].Regions, m.RegionName)
		}
	}

	return out
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// missingID returns the first requested id absent from found, or 0.
func missingID(requested []int64, found []domain.Region) int64 {
	present := make(map[int64]struct{}, len(found))
	for _, r := range found {
		present[r.ID] = struct{}{}
	}
	for _, id := range requested {
		if _, ok := present[id]; !ok {
			return id
		}
	}
	return 0
}
