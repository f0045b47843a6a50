package service

import (
	"context"
	"fmt"
	"log/slog"

	"news_alerts/internal/domain"
)

// IngestService is the pipeline behind the raw-news queue: classify the
// item, persist it with its matched regions, push the notifications.
type IngestService struct {
	regions    RegionStore
	classifier Classifier
	news       *NewsService
	relay      Relay
	logger     *slog.Logger
}

func NewIngestService(
	regions RegionStore,
	classifier Classifier,
	news *NewsService,
	relay Relay,
	logger *slog.Logger,
) *IngestService {
	return &IngestService{
		regions:    regions,
		classifier: classifier,
		news:       news,
		relay:      relay,
		logger:     logger.With("service", "ingest"),
	}
}

// Process runs one raw item through the pipeline. Classifier failures abort
// the item without side effects. A "no relevant region" classification is a
// valid outcome: the item is dropped, nothing is persisted, nobody is
// notified. Relay delivery failure is logged and swallowed; the news row
// is already durably committed by then.
func (s *IngestService) Process(ctx context.Context, item domain.RawItem) error {
	regions, err := s.regions.List(ctx)
	if err != nil {
		return fmt.Errorf("load region catalog: %w", err)
	}

	cls, err := s.classifier.Classify(ctx, item.FullText(), regions)
	if err != nil {
		return fmt.Errorf("classify item from %q: %w", item.Source, err)
	}

	if len(cls.RegionIDs) == 0 {
		s.logger.Info("no relevant region, item dropped", "source", item.Source, "title", item.Title)
		return nil
	}

	notifications, news, err := s.news.Submit(ctx, SubmitInput{
		Text:      item.FullText(),
		Tonality:  cls.Tonality,
		Impact:    cls.Impact,
		RegionIDs: cls.RegionIDs,
	})
	if err != nil {
		return err
	}

	if len(notifications) == 0 {
		return nil
	}

	if err := s.relay.SendNotifications(ctx, notifications); err != nil {
		s.logger.Error("notification delivery failed",
			"news_id", news.ID,
			"recipients", len(notifications),
			"error", err,
		)
	}

	return nil
}
