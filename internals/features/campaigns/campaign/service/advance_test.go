// file: internals/features/campaigns/campaign/service/advance_test.go
package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"khatm_backend/internals/features/campaigns/campaign/service"
	"khatm_backend/internals/features/quran/catalog"
)

func fullCycle() service.FullCycleSpace {
	return service.FullCycleSpace{
		TotalSurahs: len(catalog.Surahs),
		VerseCount:  catalog.VerseCount,
	}
}

func TestFullCycleAdvanceWithinSurah(t *testing.T) {
	space := fullCycle()
	for _, s := range catalog.Surahs {
		for v := 1; v < s.Verses; v++ {
			res, err := service.Advance(space, service.Position{Surah: s.Number, Verse: v})
			require.NoError(t, err)
			require.Equal(t, service.Position{Surah: s.Number, Verse: v}, res.Served)
			require.Equal(t, service.Position{Surah: s.Number, Verse: v + 1}, res.Next)
			require.Zero(t, res.CompletionBump)
		}
	}
}

func TestFullCycleSurahBoundary(t *testing.T) {
	space := fullCycle()
	for _, s := range catalog.Surahs[:len(catalog.Surahs)-1] {
		res, err := service.Advance(space, service.Position{Surah: s.Number, Verse: s.Verses})
		require.NoError(t, err)
		require.Equal(t, service.Position{Surah: s.Number, Verse: s.Verses}, res.Served)
		require.Equal(t, service.Position{Surah: s.Number + 1, Verse: 1}, res.Next)
		require.Zero(t, res.CompletionBump)
	}
}

func TestFullCycleKhatmWrap(t *testing.T) {
	last := catalog.Surahs[len(catalog.Surahs)-1]
	res, err := service.Advance(fullCycle(), service.Position{Surah: last.Number, Verse: last.Verses})
	require.NoError(t, err)
	require.Equal(t, service.Position{Surah: 114, Verse: last.Verses}, res.Served)
	require.Equal(t, service.Position{Surah: 1, Verse: 1}, res.Next)
	require.Equal(t, 1, res.CompletionBump)
}

func TestFullCycleClampsStalePosition(t *testing.T) {
	space := fullCycle()

	res, err := service.Advance(space, service.Position{Surah: 500, Verse: 3})
	require.NoError(t, err)
	require.Equal(t, service.Position{Surah: 1, Verse: 1}, res.Served)

	res, err = service.Advance(space, service.Position{Surah: 3, Verse: 9999})
	require.NoError(t, err)
	require.Equal(t, service.Position{Surah: 1, Verse: 1}, res.Served)

	res, err = service.Advance(space, service.Position{})
	require.NoError(t, err)
	require.Equal(t, service.Position{Surah: 1, Verse: 1}, res.Served)
}

func TestSingleSurahAdvance(t *testing.T) {
	// Al-Ikhlas: 4 ayat
	space := service.SingleSurahSpace{Number: 112, Verses: 4}

	res, err := service.Advance(space, service.Position{Surah: 112, Verse: 3})
	require.NoError(t, err)
	require.Equal(t, service.Position{Surah: 112, Verse: 4}, res.Next)
	require.Zero(t, res.CompletionBump)

	res, err = service.Advance(space, service.Position{Surah: 112, Verse: 4})
	require.NoError(t, err)
	require.Equal(t, service.Position{Surah: 112, Verse: 4}, res.Served)
	require.Equal(t, service.Position{Surah: 112, Verse: 1}, res.Next)
	require.Equal(t, 1, res.CompletionBump)
}

func TestSingleSurahReanchors(t *testing.T) {
	space := service.SingleSurahSpace{Number: 112, Verses: 4}
	// surah tersimpan melenceng dari selector → dijangkar ulang
	res, err := service.Advance(space, service.Position{Surah: 5, Verse: 2})
	require.NoError(t, err)
	require.Equal(t, service.Position{Surah: 112, Verse: 1}, res.Served)
	require.Equal(t, 112, res.Next.Surah)
}

func TestDevotionalAdvance(t *testing.T) {
	space := service.DevotionalSpace{Total: 5}
	for i := 1; i < 5; i++ {
		res, err := service.Advance(space, service.Position{Index: i})
		require.NoError(t, err)
		require.Equal(t, i, res.Served.Index)
		require.Equal(t, i+1, res.Next.Index)
		require.Zero(t, res.CompletionBump)
	}
	res, err := service.Advance(space, service.Position{Index: 5})
	require.NoError(t, err)
	require.Equal(t, 1, res.Next.Index)
	require.Equal(t, 1, res.CompletionBump)
}

func TestDevotionalSingleItemWrapsEveryRead(t *testing.T) {
	space := service.DevotionalSpace{Total: 1}
	res, err := service.Advance(space, service.Position{Index: 1})
	require.NoError(t, err)
	require.Equal(t, 1, res.Served.Index)
	require.Equal(t, 1, res.Next.Index)
	require.Equal(t, 1, res.CompletionBump)
}

func TestEmptyContentSpace(t *testing.T) {
	_, err := service.Advance(service.DevotionalSpace{Total: 0}, service.Position{Index: 1})
	require.ErrorIs(t, err, service.ErrEmptyContentSpace)

	_, err = service.Advance(service.SingleSurahSpace{Number: 7, Verses: 0}, service.Position{Surah: 7, Verse: 1})
	require.ErrorIs(t, err, service.ErrEmptyContentSpace)
}

func TestSequentialReadsAlFatiha(t *testing.T) {
	// tujuh pembacaan menyajikan (1,1)..(1,7); pembacaan kedelapan (2,1)
	space := fullCycle()
	pos := service.Position{Surah: 1, Verse: 1}

	for v := 1; v <= 7; v++ {
		res, err := service.Advance(space, pos)
		require.NoError(t, err)
		require.Equal(t, service.Position{Surah: 1, Verse: v}, res.Served)
		pos = res.Next
	}
	res, err := service.Advance(space, pos)
	require.NoError(t, err)
	require.Equal(t, service.Position{Surah: 2, Verse: 1}, res.Served)
}

func TestCompletionAccumulationSerialized(t *testing.T) {
	// N advance berurutan = N langkah tunggal; completion = jumlah wrap.
	// Juga: tidak ada dua pembacaan yang menyajikan posisi sama.
	space := service.SingleSurahSpace{Number: 112, Verses: 4}
	pos := service.Position{Surah: 112, Verse: 1}
	completions := 0
	var lastServed service.Position

	for i := 0; i < 12; i++ {
		res, err := service.Advance(space, pos)
		require.NoError(t, err)
		if i > 0 && res.CompletionBump == 0 {
			require.NotEqual(t, lastServed, res.Served)
		}
		completions += res.CompletionBump
		lastServed = res.Served
		pos = res.Next
	}
	require.Equal(t, 3, completions)
	require.Equal(t, service.Position{Surah: 112, Verse: 1}, pos)
}
