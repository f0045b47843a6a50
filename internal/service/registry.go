package service

import (
	"context"
	"fmt"
	"log/slog"

	"news_alerts/internal/domain"
)

// defaultRegions is the static sector catalog seeded on first start.
var defaultRegions = []string{
	"Oil & Gas",
	"Metals & Mining",
	"Financials & Banks",
	"Technology",
	"Healthcare",
	"Consumer Goods",
	"Energy",
	"Telecom",
	"Transport & Logistics",
	"Real Estate",
}

// RegistryService manages the sector/ticker reference data.
type RegistryService struct {
	tickers   TickerStore
	regions   RegionStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewRegistryService(tickers TickerStore, regions RegionStore, txManager TransactionManager, logger *slog.Logger) *RegistryService {
	return &RegistryService{
		tickers:   tickers,
		regions:   regions,
		txManager: txManager,
		logger:    logger.With("service", "registry"),
	}
}

// SeedRegions installs the sector catalog when the table is empty.
func (s *RegistryService) SeedRegions(ctx context.Context) error {
	if err := s.regions.SeedIfEmpty(ctx, defaultRegions); err != nil {
		return fmt.Errorf("seed regions: %w", err)
	}
	return nil
}

// CreateTicker creates a ticker and its region associations as one atomic
// unit: all region ids are validated inside the transaction before any row
// commits. A duplicate name is ErrConflict, an unknown region ErrNotFound.
func (s *RegistryService) CreateTicker(ctx context.Context, name, company string, regionIDs []int64) (*domain.Ticker, error) {
	if name == "" || company == "" {
		return nil, fmt.Errorf("ticker name and company are required: %w", domain.ErrValidation)
	}

	regionIDs = dedupeIDs(regionIDs)
	ticker := &domain.Ticker{Name: name, Company: company}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		regions, err := s.regions.GetByIDs(txCtx, regionIDs)
		if err != nil {
			return err
		}
		if missing := missingID(regionIDs, regions); missing != 0 {
			return fmt.Errorf("region %d: %w", missing, domain.ErrNotFound)
		}
		ticker.Regions = regions

		id, err := s.tickers.Create(txCtx, name, company)
		if err != nil {
			return err
		}
		ticker.ID = id

		return s.tickers.LinkRegions(txCtx, id, regionIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("create ticker %q: %w", name, err)
	}

	s.logger.Info("ticker created", "ticker_id", ticker.ID, "name", name, "regions", len(regionIDs))
	return ticker, nil
}

func (s *RegistryService) ListTickers(ctx context.Context, skip, limit int) ([]domain.Ticker, error) {
	return s.tickers.List(ctx, skip, limit)
}

// ListRegions returns the static sector catalog.
func (s *RegistryService) ListRegions(ctx context.Context) ([]domain.Region, error) {
	return s.regions.List(ctx)
}
