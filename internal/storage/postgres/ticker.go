package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"news_alerts/internal/domain"
)

type TickerStore struct {
	db *sqlx.DB
}

func NewTickerStore(db *sqlx.DB) *TickerStore {
	return &TickerStore{db: db}
}

func (s *TickerStore) Create(ctx context.Context, name, company string) (int64, error) {
	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		"INSERT INTO tickers (name, company) VALUES ($1, $2) RETURNING ticker_id",
		name, company,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert ticker: %w", mapError(err))
	}
	return id, nil
}

func (s *TickerStore) LinkRegions(ctx context.Context, tickerID int64, regionIDs []int64) error {
	if len(regionIDs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ticker_regions (ticker_id, region_id) VALUES ")
	args := make([]interface{}, 0, len(regionIDs)+1)
	args = append(args, tickerID)
	for i, regionID := range regionIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($1, $%d)", i+2)
		args = append(args, regionID)
	}

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("link ticker regions: %w", mapError(err))
	}
	return nil
}

func (s *TickerStore) GetByID(ctx context.Context, id int64) (*domain.Ticker, error) {
	var ticker domain.Ticker
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &ticker,
		"SELECT ticker_id, name, company FROM tickers WHERE ticker_id = $1",
		id,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("ticker %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("select ticker: %w", err)
	}

	tickers := []domain.Ticker{ticker}
	if err := attachTickerRegions(ctx, GetExecutor(ctx, s.db), tickers); err != nil {
		return nil, err
	}
	return &tickers[0], nil
}

func (s *TickerStore) List(ctx context.Context, skip, limit int) ([]domain.Ticker, error) {
	var tickers []domain.Ticker
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &tickers,
		"SELECT ticker_id, name, company FROM tickers ORDER BY ticker_id OFFSET $1 LIMIT $2",
		skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select tickers: %w", err)
	}

	if err := attachTickerRegions(ctx, GetExecutor(ctx, s.db), tickers); err != nil {
		return nil, err
	}
	return tickers, nil
}

// attachTickerRegions fills Regions for every ticker in one query.
func attachTickerRegions(ctx context.Context, ex sqlx.ExtContext, tickers []domain.Ticker) error {
	if len(tickers) == 0 {
		return nil
	}

	ids := make([]int64, len(tickers))
	for i, t := range tickers {
		ids[i] = t.ID
	}

	query := `
		SELECT tr.ticker_id, r.region_id, r.name
		FROM ticker_regions tr
		INNER JOIN regions r ON r.region_id = tr.region_id
		WHERE tr.ticker_id = ANY($1)
		ORDER BY r.region_id`

	rows, err := ex.QueryxContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("select ticker regions: %w", err)
	}
	defer rows.Close()

	byTicker := make(map[int64][]domain.Region, len(tickers))
	for rows.Next() {
		var tickerID int64
		var region domain.Region
		if err := rows.Scan(&tickerID, &region.ID, &region.Name); err != nil {
			return fmt.Errorf("scan ticker region: %w", err)
		}
		byTicker[tickerID] = append(byTicker[tickerID], region)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range tickers {
		tickers[i].Regions = byTicker[tickers[i].ID]
	}
	return nil
}
