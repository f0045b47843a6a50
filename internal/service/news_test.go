package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"news_alerts/internal/domain"
	"news_alerts/internal/service/mocks"
)

type NewsServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	news      *mocks.MockNewsStore
	regions   *mocks.MockRegionStore
	users     *mocks.MockUserStore
	txManager *mocks.MockTransactionManager

	service *NewsService
	logger  *slog.Logger
}

func (s *NewsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.news = mocks.NewMockNewsStore(s.ctrl)
	s.regions = mocks.NewMockRegionStore(s.ctrl)
	s.users = mocks.NewMockUserStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewNewsService(s.news, s.regions, s.users, s.txManager, s.logger)
}

func (s *NewsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNewsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NewsServiceTestSuite))
}

func (s *NewsServiceTestSuite) expectTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *NewsServiceTestSuite) TestSubmit_FansOutToSubscriber() {
	ctx := context.Background()
	tech := domain.Region{ID: 4, Name: "Technology"}

	s.expectTransaction(ctx)
	s.regions.EXPECT().GetByIDs(ctx, []int64{4}).Return([]domain.Region{tech}, nil)
	s.news.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n *domain.News) error {
			n.ID = 42
			n.CreatedAt = time.Now()
			return nil
		},
	)
	s.news.EXPECT().LinkRegions(ctx, int64(42), []int64{4}).Return(nil)
	s.news.EXPECT().FindSubscribers(ctx, []int64{4}).Return([]domain.SubscriberMatch{
		{UserID: 1, Username: "alice", ChatID: 100, TickerName: "YNDX", RegionName: "Technology"},
	}, nil)

	notifications, news, err := s.service.Submit(ctx, SubmitInput{
		Text:      "Yandex beats revenue estimates",
		Tonality:  domain.TonalityPositive,
		Impact:    3,
		RegionIDs: []int64{4},
	})

	s.NoError(err)
	s.Equal(int64(42), news.ID)
	s.Len(notifications, 1)
	s.Equal("alice", notifications[0].Username)
	s.Equal(int64(100), notifications[0].ChatID)
	s.Equal([]string{"YNDX"}, notifications[0].Tickers)
	s.Equal([]string{"Technology"}, notifications[0].Regions)
	s.Equal(3, notifications[0].Impact)
	s.Equal(domain.TonalityPositive, notifications[0].Tonality)
}

func (s *NewsServiceTestSuite) TestSubmit_OneNotificationPerUser() {
	// A user subscribed to several tickers across several matched regions
	// still gets exactly one record, with tickers and regions merged.
	ctx := context.Background()
	regions := []domain.Region{{ID: 1, Name: "Oil & Gas"}, {ID: 7, Name: "Energy"}}

	s.expectTransaction(ctx)
	s.regions.EXPECT().GetByIDs(ctx, []int64{1, 7}).Return(regions, nil)
	s.news.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n *domain.News) error {
			n.ID = 7
			return nil
		},
	)
	s.news.EXPECT().LinkRegions(ctx, int64(7), []int64{1, 7}).Return(nil)
	s.news.EXPECT().FindSubscribers(ctx, []int64{1, 7}).Return([]domain.SubscriberMatch{
		{UserID: 1, Username: "bob", ChatID: 5, TickerName: "GAZP", RegionName: "Oil & Gas"},
		{UserID: 1, Username: "bob", ChatID: 5, TickerName: "GAZP", RegionName: "Energy"},
		{UserID: 1, Username: "bob", ChatID: 5, TickerName: "LKOH", RegionName: "Oil & Gas"},
		{UserID: 2, Username: "carol", ChatID: 6, TickerName: "ROSN", RegionName: "Oil & Gas"},
	}, nil)

	notifications, _, err := s.service.Submit(ctx, SubmitInput{
		Text:      "OPEC extends production cuts",
		Tonality:  domain.TonalityNeutral,
		Impact:    2,
		RegionIDs: []int64{1, 7},
	})

	s.NoError(err)
	s.Len(notifications, 2)
	s.Equal("bob", notifications[0].Username)
	s.Equal([]string{"GAZP", "LKOH"}, notifications[0].Tickers)
	s.Equal([]string{"Oil & Gas", "Energy"}, notifications[0].Regions)
	s.Equal("carol", notifications[1].Username)
	s.Equal([]string{"ROSN"}, notifications[1].Tickers)
}

func (s *NewsServiceTestSuite) TestSubmit_UnknownRegionRollsBack() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.regions.EXPECT().GetByIDs(ctx, []int64{1, 99}).Return([]domain.Region{{ID: 1, Name: "Oil & Gas"}}, nil)
	// No Create, no LinkRegions: the transaction aborts before any write.

	notifications, news, err := s.service.Submit(ctx, SubmitInput{
		Text:      "text",
		Tonality:  domain.TonalityNegative,
		Impact:    1,
		RegionIDs: []int64{1, 99},
	})

	s.ErrorIs(err, domain.ErrNotFound)
	s.Nil(news)
	s.Nil(notifications)
}

func (s *NewsServiceTestSuite) TestSubmit_EmptyRegionsPersistsWithoutRecipients() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.regions.EXPECT().GetByIDs(ctx, []int64{}).Return(nil, nil)
	s.news.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n *domain.News) error {
			n.ID = 3
			return nil
		},
	)
	s.news.EXPECT().LinkRegions(ctx, int64(3), []int64{}).Return(nil)
	s.news.EXPECT().FindSubscribers(ctx, []int64{}).Return(nil, nil)

	notifications, news, err := s.service.Submit(ctx, SubmitInput{
		Text:     "general market chatter",
		Tonality: domain.TonalityNeutral,
		Impact:   1,
	})

	s.NoError(err)
	s.Equal(int64(3), news.ID)
	s.Empty(notifications)
}

func (s *NewsServiceTestSuite) TestSubmit_DeduplicatesRegionIDs() {
	ctx := context.Background()
	tech := domain.Region{ID: 4, Name: "Technology"}

	s.expectTransaction(ctx)
	s.regions.EXPECT().GetByIDs(ctx, []int64{4}).Return([]domain.Region{tech}, nil)
	s.news.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n *domain.News) error {
			n.ID = 9
			return nil
		},
	)
	s.news.EXPECT().LinkRegions(ctx, int64(9), []int64{4}).Return(nil)
	s.news.EXPECT().FindSubscribers(ctx, []int64{4}).Return(nil, nil)

	_, _, err := s.service.Submit(ctx, SubmitInput{
		Text:      "text",
		Tonality:  domain.TonalityPositive,
		Impact:    2,
		RegionIDs: []int64{4, 4, 4},
	})

	s.NoError(err)
}

func (s *NewsServiceTestSuite) TestSubmit_ValidationErrors() {
	ctx := context.Background()

	cases := []struct {
		name  string
		input SubmitInput
	}{
		{"empty text", SubmitInput{Tonality: domain.TonalityPositive, Impact: 2}},
		{"bad tonality", SubmitInput{Text: "t", Tonality: "GREAT", Impact: 2}},
		{"impact too low", SubmitInput{Text: "t", Tonality: domain.TonalityNeutral, Impact: 0}},
		{"impact too high", SubmitInput{Text: "t", Tonality: domain.TonalityNeutral, Impact: 4}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, _, err := s.service.Submit(ctx, tc.input)
			s.ErrorIs(err, domain.ErrValidation)
		})
	}
}

func (s *NewsServiceTestSuite) TestSubmit_MatchFailureStillReturnsNews() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.regions.EXPECT().GetByIDs(ctx, []int64{1}).Return([]domain.Region{{ID: 1, Name: "Oil & Gas"}}, nil)
	s.news.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n *domain.News) error {
			n.ID = 11
			return nil
		},
	)
	s.news.EXPECT().LinkRegions(ctx, int64(11), []int64{1}).Return(nil)
	s.news.EXPECT().FindSubscribers(ctx, []int64{1}).Return(nil, errors.New("connection reset"))

	notifications, news, err := s.service.Submit(ctx, SubmitInput{
		Text:      "text",
		Tonality:  domain.TonalityNegative,
		Impact:    3,
		RegionIDs: []int64{1},
	})

	s.Error(err)
	s.Nil(notifications)
	s.NotNil(news)
	s.Equal(int64(11), news.ID)
}

func (s *NewsServiceTestSuite) TestMorningDigest_UsesAnchoredWindow() {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	wantFrom := time.Date(2026, 3, 9, 7, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)

	items := []domain.News{{ID: 1, Impact: 3}, {ID: 2, Impact: 1}}
	s.news.EXPECT().ListWindow(ctx, wantFrom, wantTo, 0).Return(items, nil)

	got, err := s.service.MorningDigest(ctx, now)

	s.NoError(err)
	s.Equal(items, got)
}

func (s *NewsServiceTestSuite) TestTopNews_PassesLimit() {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)

	wantFrom := time.Date(2026, 3, 9, 7, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)

	s.news.EXPECT().ListWindow(ctx, wantFrom, wantTo, 3).Return([]domain.News{{ID: 5}}, nil)

	got, err := s.service.TopNews(ctx, now, 3)

	s.NoError(err)
	s.Len(got, 1)
}

func (s *NewsServiceTestSuite) TestFeedForUser_UnknownUser() {
	ctx := context.Background()

	s.users.EXPECT().GetByUsername(ctx, "ghost").Return(nil, domain.ErrNotFound)

	_, err := s.service.FeedForUser(ctx, "ghost", 0, 10)

	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *NewsServiceTestSuite) TestFeedForUser_ReturnsStoreRows() {
	ctx := context.Background()

	s.users.EXPECT().GetByUsername(ctx, "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil)
	s.news.EXPECT().ListForUser(ctx, int64(1), 0, 10).Return([]domain.News{{ID: 2}, {ID: 1}}, nil)

	got, err := s.service.FeedForUser(ctx, "alice", 0, 10)

	s.NoError(err)
	s.Len(got, 2)
}
