package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"news_alerts/internal/domain"
	"news_alerts/internal/service/mocks"
)

type RegistryServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	tickers   *mocks.MockTickerStore
	regions   *mocks.MockRegionStore
	txManager *mocks.MockTransactionManager

	service *RegistryService
}

func (s *RegistryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.tickers = mocks.NewMockTickerStore(s.ctrl)
	s.regions = mocks.NewMockRegionStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewRegistryService(s.tickers, s.regions, s.txManager, logger)
}

func (s *RegistryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRegistryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryServiceTestSuite))
}

func (s *RegistryServiceTestSuite) TestSeedRegions() {
	ctx := context.Background()

	s.regions.EXPECT().SeedIfEmpty(ctx, defaultRegions).Return(nil)

	s.NoError(s.service.SeedRegions(ctx))
}

func (s *RegistryServiceTestSuite) TestCreateTicker() {
	ctx := context.Background()
	regions := []domain.Region{{ID: 4, Name: "Technology"}}

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.regions.EXPECT().GetByIDs(ctx, []int64{4}).Return(regions, nil)
	s.tickers.EXPECT().Create(ctx, "YNDX", "Yandex").Return(int64(7), nil)
	s.tickers.EXPECT().LinkRegions(ctx, int64(7), []int64{4}).Return(nil)

	ticker, err := s.service.CreateTicker(ctx, "YNDX", "Yandex", []int64{4})

	s.NoError(err)
	s.Equal(int64(7), ticker.ID)
	s.Equal("YNDX", ticker.Name)
	s.Equal(regions, ticker.Regions)
}

func (s *RegistryServiceTestSuite) TestCreateTicker_UnknownRegionAborts() {
	ctx := context.Background()

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.regions.EXPECT().GetByIDs(ctx, []int64{99}).Return(nil, nil)
	// No Create: the ticker row must not survive a bad region id.

	_, err := s.service.CreateTicker(ctx, "YNDX", "Yandex", []int64{99})

	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *RegistryServiceTestSuite) TestCreateTicker_DuplicateName() {
	ctx := context.Background()

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.regions.EXPECT().GetByIDs(ctx, []int64{4}).Return([]domain.Region{{ID: 4, Name: "Technology"}}, nil)
	s.tickers.EXPECT().Create(ctx, "YNDX", "Yandex").Return(int64(0), domain.ErrConflict)

	_, err := s.service.CreateTicker(ctx, "YNDX", "Yandex", []int64{4})

	s.ErrorIs(err, domain.ErrConflict)
}

func (s *RegistryServiceTestSuite) TestCreateTicker_MissingFields() {
	_, err := s.service.CreateTicker(context.Background(), "", "Yandex", nil)
	s.ErrorIs(err, domain.ErrValidation)

	_, err = s.service.CreateTicker(context.Background(), "YNDX", "", nil)
	s.ErrorIs(err, domain.ErrValidation)
}
