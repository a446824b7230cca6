// file: internals/features/quran/catalog/catalog_test.go
package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khatm_backend/internals/features/devotionals/dua"
	"khatm_backend/internals/features/devotionals/sahifa"
	"khatm_backend/internals/features/quran/catalog"
)

func TestSurahDataComplete(t *testing.T) {
	require.Len(t, catalog.Surahs, 114)
	for i, s := range catalog.Surahs {
		assert.Equal(t, i+1, s.Number)
		assert.GreaterOrEqual(t, s.Verses, 1)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.PersianName)
	}
}

func TestVerseCount(t *testing.T) {
	cases := map[int]int{
		1:   7,   // Al-Fatiha
		2:   286, // Al-Baqarah
		108: 3,   // Al-Kawthar, surah terpendek
		112: 4,   // Al-Ikhlas
		114: 6,   // An-Nas
	}
	for n, want := range cases {
		got, err := catalog.VerseCount(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "surah %d", n)
	}

	// lookup murni: hasil sama di setiap panggilan
	a, _ := catalog.VerseCount(36)
	b, _ := catalog.VerseCount(36)
	assert.Equal(t, a, b)
}

func TestVerseCountUnknownSurah(t *testing.T) {
	for _, n := range []int{0, -1, 115, 999} {
		_, err := catalog.VerseCount(n)
		require.ErrorIs(t, err, catalog.ErrUnknownSurah, "surah %d", n)
	}
}

func TestTotalItemsDua(t *testing.T) {
	cat := catalog.New(sahifa.NewClient())

	total, err := cat.TotalItems(context.Background(), dua.KeySalawat)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	total, err = cat.TotalItems(context.Background(), dua.KeySalawatFatema)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestTotalItemsUnknownKey(t *testing.T) {
	cat := catalog.New(sahifa.NewClient())
	for _, key := range []string{"", "tasbih", "sahifa-0", "sahifa-55", "sahifa-x"} {
		_, err := cat.TotalItems(context.Background(), key)
		require.ErrorIs(t, err, catalog.ErrUnknownDevotional, "key %q", key)
	}
}

const sampleSahifaHTML = `<html><body>
<div>(1) الْحَمْدُ لِلَّهِ الْأَوَّلِ (1) ستایش خدای را که نخستین است
(2) وَ الْآخِرِ بَعْدَ فَنَاءِ الْأَشْيَاءِ (2) و واپسین است پس از نابودی همه
(3) عَظُمَ عَنْ أَنْ تُدْرِكَهُ الْأَبْصَارُ (3) برتر از آنکه دیده‌ها او را دریابند مشاهده شرح دعا</div>
</body></html>`

func sahifaTestServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(sampleSahifaHTML))
	}))
	t.Cleanup(ts.Close)
	return ts, &hits
}

func TestTotalItemsSahifa(t *testing.T) {
	ts, hits := sahifaTestServer(t)
	client := sahifa.NewClient()
	client.BaseURL = ts.URL
	cat := catalog.New(client)

	total, err := cat.TotalItems(context.Background(), "sahifa-1")
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	// panggilan kedua dilayani dari cache
	total, err = cat.TotalItems(context.Background(), "sahifa-1")
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, *hits)
}

func TestTotalItemsSahifaSourceDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(ts.Close)

	client := sahifa.NewClient()
	client.BaseURL = ts.URL
	cat := catalog.New(client)

	// gagal fetch ⇒ error, BUKAN default total
	_, err := cat.TotalItems(context.Background(), "sahifa-3")
	require.ErrorIs(t, err, sahifa.ErrSourceUnavailable)
}

func TestDevotionalUnit(t *testing.T) {
	ts, _ := sahifaTestServer(t)
	client := sahifa.NewClient()
	client.BaseURL = ts.URL
	cat := catalog.New(client)

	u, total, err := cat.DevotionalUnit(context.Background(), dua.KeySalawat, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.NotEmpty(t, u.Arabic)
	assert.NotEmpty(t, u.Translation)

	u, total, err = cat.DevotionalUnit(context.Background(), "sahifa-1", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Contains(t, u.Arabic, "الْآخِرِ")
	assert.Contains(t, u.Title, "صحیفه")

	// index di luar rentang di-clamp ke awal
	u, _, err = cat.DevotionalUnit(context.Background(), "sahifa-1", 99)
	require.NoError(t, err)
	assert.Contains(t, u.Arabic, "الْحَمْدُ")
}

func TestKnownDevotionalKey(t *testing.T) {
	assert.True(t, catalog.KnownDevotionalKey(dua.KeySalawat))
	assert.True(t, catalog.KnownDevotionalKey("sahifa-1"))
	assert.True(t, catalog.KnownDevotionalKey("sahifa-54"))
	assert.False(t, catalog.KnownDevotionalKey("sahifa-55"))
	assert.False(t, catalog.KnownDevotionalKey("sahifa-"))
	assert.False(t, catalog.KnownDevotionalKey("unknown"))
	assert.False(t, catalog.KnownDevotionalKey(""))
}
