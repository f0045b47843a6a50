package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"news_alerts/internal/config"
	"news_alerts/internal/domain"
	"news_alerts/internal/metrics"
)

const classifySystemPrompt = `You are a financial analyst supporting retail
traders on the stock market. Classify the news item you are given against
the provided sector catalog. Respond with a single raw JSON object and
nothing else:
{"tonality":"POSITIVE|NEGATIVE|NEUTRAL","impact":1|2|3,"region_ids":[...]}
impact: 1 low, 2 medium, 3 very high.
region_ids: ids from the catalog the news affects.
If no sector from the catalog is relevant, respond with exactly {}.`

const summarizeSystemPrompt = `You are a financial analyst. Write a short
"morning digest" newspaper-style summary of the news items you are given,
ordered by significance, mentioning sector and tonality for each. Plain
text, no markup.`

// Claude classifies news via the Anthropic API. Output is decoded strictly:
// anything that does not match the expected schema is ErrClassification,
// transport failures and timeouts are ErrUpstreamUnavailable.
type Claude struct {
	client      anthropic.Client
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
	logger      *slog.Logger
}

func New(cfg config.ClassifierConfig, logger *slog.Logger) *Claude {
	return &Claude{
		client:      anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		logger:      logger.With("component", "classifier"),
	}
}

func (c *Claude) Classify(ctx context.Context, text string, regions []domain.Region) (*domain.Classification, error) {
	var sb strings.Builder
	sb.WriteString("Sector catalog:\n")
	known := make(map[int64]struct{}, len(regions))
	for _, r := range regions {
		fmt.Fprintf(&sb, "%d: %s\n", r.ID, r.Name)
		known[r.ID] = struct{}{}
	}
	sb.WriteString("\nNews item:\n")
	sb.WriteString(text)

	raw, err := c.complete(ctx, classifySystemPrompt, sb.String())
	if err != nil {
		metrics.ClassifierRequests.WithLabelValues("classify", "error").Inc()
		return nil, err
	}

	cls, err := decodeClassification(raw, known)
	if err != nil {
		metrics.ClassifierRequests.WithLabelValues("classify", "malformed").Inc()
		c.logger.Warn("classifier output rejected", "error", err)
		return nil, err
	}

	metrics.ClassifierRequests.WithLabelValues("classify", "ok").Inc()
	return cls, nil
}

func (c *Claude) Summarize(ctx context.Context, items []domain.News) (string, error) {
	var sb strings.Builder
	for i, n := range items {
		sectors := make([]string, len(n.Regions))
		for j, r := range n.Regions {
			sectors[j] = r.Name
		}
		fmt.Fprintf(&sb, "%d. [impact %d, %s, sectors: %s] %s\n",
			i+1, n.Impact, n.Tonality, strings.Join(sectors, ", "), n.Text)
	}

	text, err := c.complete(ctx, summarizeSystemPrompt, sb.String())
	if err != nil {
		metrics.ClassifierRequests.WithLabelValues("summarize", "error").Inc()
		return "", err
	}

	metrics.ClassifierRequests.WithLabelValues("summarize", "ok").Inc()
	return strings.TrimSpace(text), nil
}

func (c *Claude) complete(ctx context.Context, system, prompt string) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(c.maxTokens),
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if c.temperature > 0 {
		params.Temperature = anthropic.Float(c.temperature)
	}

	resp, err := c.client.Messages.New(timeoutCtx, params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("classifier timed out after %s: %w", c.timeout, domain.ErrUpstreamUnavailable)
		}
		return "", fmt.Errorf("classifier request failed: %v: %w", err, domain.ErrUpstreamUnavailable)
	}

	var out strings.Builder
	for _, block := range resp.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			out.WriteString(b.Text)
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("empty model response: %w", domain.ErrClassification)
	}

	return out.String(), nil
}

type classificationPayload struct {
	Tonality  domain.Tonality `json:"tonality"`
	Impact    int             `json:"impact"`
	RegionIDs []int64         `json:"region_ids"`
}

// decodeClassification fails closed: the output must be exactly one JSON
// object of the expected shape, or the empty object meaning "no relevant
// region". No brace slicing, no fence stripping, no guessing.
func decodeClassification(raw string, knownRegions map[int64]struct{}) (*domain.Classification, error) {
	dec := json.NewDecoder(strings.NewReader(strings.TrimSpace(raw)))
	dec.DisallowUnknownFields()

	var payload classificationPayload
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode model output: %v: %w", err, domain.ErrClassification)
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing content after JSON object: %w", domain.ErrClassification)
	}

	// The empty object is the model's "no relevant region" signal.
	if payload.Tonality == "" && payload.Impact == 0 && len(payload.RegionIDs) == 0 {
		return &domain.Classification{}, nil
	}

	if !payload.Tonality.Valid() {
		return nil, fmt.Errorf("tonality %q: %w", payload.Tonality, domain.ErrClassification)
	}
	if !domain.ValidImpact(payload.Impact) {
		return nil, fmt.Errorf("impact %d out of range: %w", payload.Impact, domain.ErrClassification)
	}
	for _, id := range payload.RegionIDs {
		if _, ok := knownRegions[id]; !ok {
			return nil, fmt.Errorf("unknown region id %d in model output: %w", id, domain.ErrClassification)
		}
	}

	return &domain.Classification{
		Tonality:  payload.Tonality,
		Impact:    payload.Impact,
		RegionIDs: payload.RegionIDs,
	}, nil
}
