package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_alerts/internal/domain"
)

func TestDecodeClassification(t *testing.T) {
	known := map[int64]struct{}{1: {}, 4: {}, 7: {}}

	t.Run("valid verdict", func(t *testing.T) {
		cls, err := decodeClassification(`{"tonality":"POSITIVE","impact":3,"region_ids":[4,7]}`, known)

		require.NoError(t, err)
		assert.Equal(t, domain.TonalityPositive, cls.Tonality)
		assert.Equal(t, 3, cls.Impact)
		assert.Equal(t, []int64{4, 7}, cls.RegionIDs)
	})

	t.Run("empty object means no relevant region", func(t *testing.T) {
		cls, err := decodeClassification(`{}`, known)

		require.NoError(t, err)
		assert.Empty(t, cls.RegionIDs)
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		_, err := decodeClassification("\n  {\"tonality\":\"NEUTRAL\",\"impact\":1,\"region_ids\":[1]}  \n", known)

		assert.NoError(t, err)
	})

	rejected := []struct {
		name string
		raw  string
	}{
		{"not json", "the news is positive"},
		{"markdown fence", "```json\n{\"tonality\":\"POSITIVE\",\"impact\":1,\"region_ids\":[1]}\n```"},
		{"trailing prose", `{"tonality":"POSITIVE","impact":1,"region_ids":[1]} Hope this helps!`},
		{"unknown field", `{"tonality":"POSITIVE","impact":1,"region_ids":[1],"confidence":0.9}`},
		{"bad tonality", `{"tonality":"BULLISH","impact":1,"region_ids":[1]}`},
		{"impact zero", `{"tonality":"POSITIVE","impact":0,"region_ids":[1]}`},
		{"impact out of range", `{"tonality":"POSITIVE","impact":5,"region_ids":[1]}`},
		{"hallucinated region id", `{"tonality":"POSITIVE","impact":2,"region_ids":[99]}`},
		{"missing tonality with regions", `{"impact":2,"region_ids":[1]}`},
	}

	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeClassification(tc.raw, known)

			assert.ErrorIs(t, err, domain.ErrClassification)
		})
	}
}
