package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"news_alerts/internal/domain"
)

type RegionStore struct {
	db *sqlx.DB
}

func NewRegionStore(db *sqlx.DB) *RegionStore {
	return &RegionStore{db: db}
}

func (s *RegionStore) List(ctx context.Context) ([]domain.Region, error) {
	var regions []domain.Region
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &regions,
		"SELECT region_id, name FROM regions ORDER BY region_id",
	)
	if err != nil {
		return nil, fmt.Errorf("select regions: %w", err)
	}
	return regions, nil
}

// GetByIDs returns the regions that exist among ids; callers compare the
// result size against the request to detect unknown ids.
func (s *RegionStore) GetByIDs(ctx context.Context, ids []int64) ([]domain.Region, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var regions []domain.Region
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &regions,
		"SELECT region_id, name FROM regions WHERE region_id = ANY($1) ORDER BY region_id",
		pq.Array(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("select regions by ids: %w", err)
	}
	return regions, nil
}

// SeedIfEmpty inserts the static sector catalog on first start. The region
// set is immutable afterwards.
func (s *RegionStore) SeedIfEmpty(ctx context.Context, names []string) error {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count, "SELECT COUNT(*) FROM regions")
	if err != nil {
		return fmt.Errorf("count regions: %w", err)
	}
	if count > 0 || len(names) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO regions (name) VALUES ")
	args := make([]interface{}, 0, len(names))
	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d)", i+1)
		args = append(args, name)
	}

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("seed regions: %w", err)
	}
	return nil
}
