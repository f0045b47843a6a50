package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"news_alerts/internal/domain"
)

// DigestService builds the 07:00 morning digest and pushes it to every
// registered chat.
type DigestService struct {
	news       *NewsService
	users      UserStore
	classifier Classifier
	relay      Relay
	topN       int
	logger     *slog.Logger
}

func NewDigestService(
	news *NewsService,
	users UserStore,
	classifier Classifier,
	relay Relay,
	topN int,
	logger *slog.Logger,
) *DigestService {
	return &DigestService{
		news:       news,
		users:      users,
		classifier: classifier,
		relay:      relay,
		topN:       topN,
		logger:     logger.With("service", "digest"),
	}
}

// SendMorningDigest summarizes the closed reporting window and broadcasts
// it. A summarization failure degrades to the plain impact-ordered listing;
// an empty window sends nothing.
func (s *DigestService) SendMorningDigest(ctx context.Context, now time.Time) error {
	items, err := s.news.MorningDigest(ctx, now)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		s.logger.Info("empty reporting window, digest skipped")
		return nil
	}

	top := items
	if s.topN > 0 && len(top) > s.topN {
		top = top[:s.topN]
	}

	text, err := s.classifier.Summarize(ctx, top)
	if err != nil {
		s.logger.Warn("digest summarization failed, falling back to plain listing", "error", err)
		text = plainDigest(top)
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return fmt.Errorf("list digest recipients: %w", err)
	}

	chatIDs := make([]int64, 0, len(users))
	for _, u := range users {
		if u.ChatID != 0 {
			chatIDs = append(chatIDs, u.ChatID)
		}
	}
	if len(chatIDs) == 0 {
		return nil
	}

	if err := s.relay.SendDigest(ctx, chatIDs, text); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}

	s.logger.Info("morning digest sent", "items", len(top), "recipients", len(chatIDs))
	return nil
}

func plainDigest(items []domain.News) string {
	var sb strings.Builder
	sb.WriteString("Morning digest\n")
	for i, n := range items {
		fmt.Fprintf(&sb, "%d. [impact %d, %s] %s\n", i+1, n.Impact, n.Tonality, n.Text)
	}
	return sb.String()
}
