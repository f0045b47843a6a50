package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTonalityValid(t *testing.T) {
	assert.True(t, TonalityPositive.Valid())
	assert.True(t, TonalityNegative.Valid())
	assert.True(t, TonalityNeutral.Valid())
	assert.False(t, Tonality("positive").Valid())
	assert.False(t, Tonality("").Valid())
}

func TestValidImpact(t *testing.T) {
	assert.False(t, ValidImpact(0))
	assert.True(t, ValidImpact(1))
	assert.True(t, ValidImpact(2))
	assert.True(t, ValidImpact(3))
	assert.False(t, ValidImpact(4))
}

func TestDigestWindow(t *testing.T) {
	cases := []struct {
		name     string
		now      time.Time
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "mid morning",
			now:      time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
			wantFrom: time.Date(2026, 3, 9, 7, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC),
		},
		{
			name:     "before the anchor still uses today's date",
			now:      time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC),
			wantFrom: time.Date(2026, 3, 9, 7, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC),
		},
		{
			name:     "exactly at the anchor",
			now:      time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC),
			wantFrom: time.Date(2026, 3, 9, 7, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC),
		},
		{
			name:     "month boundary",
			now:      time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
			wantFrom: time.Date(2026, 3, 31, 7, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2026, 4, 1, 7, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, to := DigestWindow(tc.now)
			assert.Equal(t, tc.wantFrom, from)
			assert.Equal(t, tc.wantTo, to)
		})
	}
}

func TestRawItemFullText(t *testing.T) {
	withLink := RawItem{Title: "Title", Text: "Body", Link: "https://example.com", Source: "rbc"}
	assert.Equal(t, "Title\nBody\nSource: https://example.com", withLink.FullText())

	withoutLink := RawItem{Title: "Title", Text: "Body"}
	assert.Equal(t, "Title\nBody", withoutLink.FullText())
}
