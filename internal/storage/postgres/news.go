package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"news_alerts/internal/domain"
)

type NewsStore struct {
	db *sqlx.DB
}

func NewNewsStore(db *sqlx.DB) *NewsStore {
	return &NewsStore{db: db}
}

// Create inserts the news row and fills the server-assigned id and
// created_at on n.
func (s *NewsStore) Create(ctx context.Context, n *domain.News) error {
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		"INSERT INTO news (text, tonality, impact) VALUES ($1, $2, $3) RETURNING news_id, created_at",
		n.Text, n.Tonality, n.Impact,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert news: %w", mapError(err))
	}
	return nil
}

func (s *NewsStore) LinkRegions(ctx context.Context, newsID int64, regionIDs []int64) error {
	if len(regionIDs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO news_regions (news_id, region_id) VALUES ")
	args := make([]interface{}, 0, len(regionIDs)+1)
	args = append(args, newsID)
	for i, regionID := range regionIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($1, $%d)", i+2)
		args = append(args, regionID)
	}

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("link news regions: %w", mapError(err))
	}
	return nil
}

func (s *NewsStore) GetByID(ctx context.Context, id int64) (*domain.News, error) {
	var n domain.News
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &n,
		"SELECT news_id, text, tonality, impact, created_at FROM news WHERE news_id = $1",
		id,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("news %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("select news: %w", err)
	}

	items := []domain.News{n}
	if err := s.attachRegions(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

// ListWindow returns news created within [from, to], most significant
// first, ties broken by insertion order. limit <= 0 means no limit.
func (s *NewsStore) ListWindow(ctx context.Context, from, to time.Time, limit int) ([]domain.News, error) {
	query := `
		SELECT news_id, text, tonality, impact, created_at
		FROM news
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY impact DESC, news_id ASC`
	args := []interface{}{from, to}
	if limit > 0 {
		query += " LIMIT $3"
		args = append(args, limit)
	}

	var items []domain.News
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &items, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select news window: %w", err)
	}

	if err := s.attachRegions(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListForUser returns news whose regions intersect the regions covered by
// the user's subscribed tickers, newest first.
func (s *NewsStore) ListForUser(ctx context.Context, userID int64, skip, limit int) ([]domain.News, error) {
	query := `
		SELECT DISTINCT n.news_id, n.text, n.tonality, n.impact, n.created_at
		FROM news n
		INNER JOIN news_regions nr ON nr.news_id = n.news_id
		WHERE nr.region_id IN (
			SELECT tr.region_id
			FROM ticker_regions tr
			INNER JOIN user_tickers ut ON ut.ticker_id = tr.ticker_id
			WHERE ut.user_id = $1
		)
		ORDER BY n.created_at DESC
		OFFSET $2 LIMIT $3`

	var items []domain.News
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &items, query, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("select news for user: %w", err)
	}

	if err := s.attachRegions(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindSubscribers resolves the fan-out graph for a set of regions in one
// query: every (user, ticker, region) combination where the user subscribes
// to a ticker belonging to one of the regions. The single statement gives a
// consistent snapshot of the subscription graph.
func (s *NewsStore) FindSubscribers(ctx context.Context, regionIDs []int64) ([]domain.SubscriberMatch, error) {
	if len(regionIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT DISTINCT u.user_id, u.username, u.chat_id,
			t.name AS ticker_name, r.name AS region_name
		FROM regions r
		INNER JOIN ticker_regions tr ON tr.region_id = r.region_id
		INNER JOIN tickers t ON t.ticker_id = tr.ticker_id
		INNER JOIN user_tickers ut ON ut.ticker_id = t.ticker_id
		INNER JOIN users u ON u.user_id = ut.user_id
		WHERE r.region_id = ANY($1)
		ORDER BY u.user_id, ticker_name, region_name`

	var matches []domain.SubscriberMatch
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &matches, query, pq.Array(regionIDs))
	if err != nil {
		return nil, fmt.Errorf("select subscribers: %w", err)
	}
	return matches, nil
}

// attachRegions fills Regions for every news item in one query.
func (s *NewsStore) attachRegions(ctx context.Context, items []domain.News) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, len(items))
	for i, n := range items {
		ids[i] = n.ID
	}

	query := `
		SELECT nr.news_id, r.region_id, r.name
		FROM news_regions nr
		INNER JOIN regions r ON r.region_id = nr.region_id
		WHERE nr.news_id = ANY($1)
		ORDER BY r.region_id`

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("select news regions: %w", err)
	}
	defer rows.Close()

	byNews := make(map[int64][]domain.Region, len(items))
	for rows.Next() {
		var newsID int64
		var region domain.Region
		if err := rows.Scan(&newsID, &region.ID, &region.Name); err != nil {
			return fmt.Errorf("scan news region: %w", err)
		}
		byNews[newsID] = append(byNews[newsID], region)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range items {
		items[i].Regions = byNews[items[i].ID]
	}
	return nil
}
