package domain

import (
	"fmt"
	"time"
)

// Tonality is the sentiment classification of a news item.
type Tonality string

const (
	TonalityPositive Tonality = "POSITIVE"
	TonalityNegative Tonality = "NEGATIVE"
	TonalityNeutral  Tonality = "NEUTRAL"
)

func (t Tonality) Valid() bool {
	switch t {
	case TonalityPositive, TonalityNegative, TonalityNeutral:
		return true
	}
	return false
}

// Impact bounds for the ordinal significance rating.
const (
	ImpactLow  = 1
	ImpactHigh = 3
)

func ValidImpact(impact int) bool {
	return impact >= ImpactLow && impact <= ImpactHigh
}

// Region is an investment sector used to group tickers and news.
type Region struct {
	ID   int64  `db:"region_id" json:"region_id"`
	Name string `db:"name" json:"name"`
}

type News struct {
	ID        int64     `db:"news_id" json:"news_id"`
	Text      string    `db:"text" json:"text"`
	Tonality  Tonality  `db:"tonality" json:"tonality"`
	Impact    int       `db:"impact" json:"impact"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Regions   []Region  `json:"regions"`
}

// Classification is the classifier's verdict on a raw news text.
// Empty RegionIDs means "no relevant region" and is a valid outcome.
type Classification struct {
	Tonality  Tonality
	Impact    int
	RegionIDs []int64
}

// RawItem is an unclassified news item as produced by the parsers.
type RawItem struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Link   string `json:"link"`
	Source string `json:"source"`
}

// FullText joins the parsed fields the way the classifier expects them.
func (r RawItem) FullText() string {
	if r.Link == "" {
		return fmt.Sprintf("%s\n%s", r.Title, r.Text)
	}
	return fmt.Sprintf("%s\n%s\nSource: %s", r.Title, r.Text, r.Link)
}

// Notification is one delivery record for the relay, at most one per
// recipient per news item.
type Notification struct {
	Username string   `json:"username"`
	ChatID   int64    `json:"chat_id"`
	Regions  []string `json:"regions"`
	Tickers  []string `json:"tickers"`
	Impact   int      `json:"impact"`
	Tonality Tonality `json:"tonality"`
}

// DigestAnchorHour is the local hour the reporting window closes at.
const DigestAnchorHour = 7

// DigestWindow returns the most recently started reporting window for now:
// 24 hours ending at today's 07:00. The boundary is the start-of-day anchor,
// not a rolling 24h from now.
func DigestWindow(now time.Time) (from, to time.Time) {
	to = time.Date(now.Year(), now.Month(), now.Day(), DigestAnchorHour, 0, 0, 0, now.Location())
	from = to.AddDate(0, 0, -1)
	return from, to
}
