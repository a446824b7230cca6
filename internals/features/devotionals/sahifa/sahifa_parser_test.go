// file: internals/features/devotionals/sahifa/sahifa_parser_test.go
package sahifa

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersesPairsByNumber(t *testing.T) {
	html := `<html><head><script>var x=1;</script><style>.a{}</style></head><body>
<p>(1) بِسْمِ اللَّهِ (1) به نام خدا</p>
<p>(2) الْحَمْدُ لِلَّهِ (2) ستایش خدای را</p>
</body></html>`

	verses := parseVersesFromHTML(html)
	require.Len(t, verses, 2)
	assert.Equal(t, "بِسْمِ اللَّهِ", verses[0].Arabic)
	assert.Equal(t, "به نام خدا", verses[0].Translation)
	assert.Equal(t, "الْحَمْدُ لِلَّهِ", verses[1].Arabic)
	assert.Equal(t, "ستایش خدای را", verses[1].Translation)
}

func TestParseVersesDecodesEntities(t *testing.T) {
	// &#1575;&#1604;&#1604;&#1607; = الله
	html := `<div>(1) &#1575;&#1604;&#1604;&#1607; (1) خدا &amp; بس</div>`
	verses := parseVersesFromHTML(html)
	require.Len(t, verses, 1)
	assert.Equal(t, "الله", verses[0].Arabic)
	assert.Equal(t, "خدا & بس", verses[0].Translation)
}

func TestParseVersesStripsFooterNoise(t *testing.T) {
	html := `<div>(1) الْحَمْدُ (1) ستایش مشاهده شرح دعا کلیه حقوق محفوظ است 02122334455</div>`
	verses := parseVersesFromHTML(html)
	require.Len(t, verses, 1)
	assert.Equal(t, "ستایش", verses[0].Translation)
	assert.NotContains(t, verses[0].Translation, "مشاهده")
	assert.NotContains(t, verses[0].Translation, "0212")
}

func TestParseVersesSkipsUnpairedMarkers(t *testing.T) {
	// penanda yatim (tanpa pasangan bernomor sama) dilewati
	html := `<div>(1) الف (2) ب (2) ترجمه ب</div>`
	verses := parseVersesFromHTML(html)
	require.Len(t, verses, 1)
	assert.Equal(t, "ب", verses[0].Arabic)
	assert.Equal(t, "ترجمه ب", verses[0].Translation)
}

func TestParseVersesEmptyInput(t *testing.T) {
	assert.Nil(t, parseVersesFromHTML(""))
	assert.Nil(t, parseVersesFromHTML("<html><body>no markers here</body></html>"))
}

func TestVersesRejectsOutOfRangeID(t *testing.T) {
	c := NewClient()
	for _, id := range []int{0, -1, TotalDuas + 1} {
		_, err := c.Verses(context.Background(), id)
		require.ErrorIs(t, err, ErrSourceUnavailable, "id %d", id)
	}
}
