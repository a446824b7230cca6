// file: internals/features/quran/catalog/catalog.go
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"khatm_backend/internals/features/devotionals/dua"
	"khatm_backend/internals/features/devotionals/sahifa"
)

var (
	ErrUnknownSurah      = errors.New("unknown surah number")
	ErrUnknownDevotional = errors.New("unknown devotional key")
)

// SurahByNumber: lookup murni, data statis.
func SurahByNumber(n int) (Surah, error) {
	if n < 1 || n > len(Surahs) {
		return Surah{}, fmt.Errorf("%w: %d", ErrUnknownSurah, n)
	}
	return Surahs[n-1], nil
}

// VerseCount mengembalikan jumlah ayat surah ke-n (1..114).
func VerseCount(n int) (int, error) {
	s, err := SurahByNumber(n)
	if err != nil {
		return 0, err
	}
	return s.Verses, nil
}

/* =========================
   Devotional content space
   ========================= */

// Unit adalah satu item devotional siap tampil.
type Unit struct {
	Title       string  `json:"title"`
	Arabic      string  `json:"arabic"`
	Translation string  `json:"translation"`
	AudioURL    *string `json:"audio_url"`
}

// Catalog menggabungkan ruang konten Quran (statis) dan devotional.
// Kunci sahifa-N butuh fetch eksternal sekali, setelah itu di-cache oleh client.
type Catalog struct {
	Sahifa *sahifa.Client
}

func New(sahifaClient *sahifa.Client) *Catalog {
	return &Catalog{Sahifa: sahifaClient}
}

// TotalItems mengembalikan ukuran ruang konten devotional.
// Untuk kunci sahifa totalnya berasal dari hasil parse sumber — TIDAK pernah
// di-default ke 1, karena total yang salah merusak hitungan khatm seterusnya.
func (cat *Catalog) TotalItems(ctx context.Context, key string) (int, error) {
	if _, ok := dua.ByKey(key); ok {
		return 1, nil
	}
	if id, ok := sahifaID(key); ok {
		verses, err := cat.Sahifa.Verses(ctx, id)
		if err != nil {
			return 0, err
		}
		return len(verses), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDevotional, key)
}

// DevotionalUnit mengambil item ke-index (1-based) beserta total.
func (cat *Catalog) DevotionalUnit(ctx context.Context, key string, index int) (Unit, int, error) {
	if d, ok := dua.ByKey(key); ok {
		return Unit{Title: d.Title, Arabic: d.Arabic, Translation: d.Translation, AudioURL: d.AudioURL}, 1, nil
	}
	if id, ok := sahifaID(key); ok {
		verses, err := cat.Sahifa.Verses(ctx, id)
		if err != nil {
			return Unit{}, 0, err
		}
		if index < 1 || index > len(verses) {
			index = 1
		}
		v := verses[index-1]
		return Unit{
			Title:       sahifa.ItemTitle(id),
			Arabic:      v.Arabic,
			Translation: v.Translation,
		}, len(verses), nil
	}
	return Unit{}, 0, fmt.Errorf("%w: %q", ErrUnknownDevotional, key)
}

// KnownDevotionalKey: dipakai validasi saat create campaign.
func KnownDevotionalKey(key string) bool {
	if _, ok := dua.ByKey(key); ok {
		return true
	}
	_, ok := sahifaID(key)
	return ok
}

func sahifaID(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, "sahifa-")
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil || id < 1 || id > sahifa.TotalDuas {
		return 0, false
	}
	return id, true
}
