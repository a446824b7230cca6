// file: internals/features/campaigns/campaign/service/advance.go
package service

import (
	"errors"
	"fmt"
)

// Mesin maju-posisi: fungsi murni tanpa I/O. Caller (controller next-verse)
// yang bertanggung jawab atas snapshot, persist, dan jaminan atomicity di
// level storage (row lock per kampanye).

var ErrEmptyContentSpace = errors.New("empty content space")

// Position adalah koordinat dalam satu ruang konten.
// Surah/Verse dipakai mode Quran; Index dipakai mode devotional. 1-based.
type Position struct {
	Surah int
	Verse int
	Index int
}

// Result: servedPosition selalu posisi tersimpan SEBELUM advance —
// pembaca menerima konten di posisi saat request tiba, bukan posisi baru.
// CompletionBump = 1 hanya saat cursor wrap kembali ke awal ruang konten.
type Result struct {
	Served         Position
	Next           Position
	CompletionBump int
}

// ContentSpace: satu ruang konten terurut dan berhingga.
type ContentSpace interface {
	// Normalize menjepit posisi tersimpan yang di luar rentang valid ke
	// posisi 1 ruang konten (data basi tidak boleh bocor sebagai konten).
	Normalize(Position) (Position, error)
	// Next menghitung posisi setelah p dan apakah terjadi wrap.
	Next(p Position) (next Position, wrapped bool, err error)
}

// Advance menjalankan satu langkah: jepit posisi tersimpan, sajikan posisi
// itu, dan hitung posisi berikutnya untuk pembaca selanjutnya.
func Advance(space ContentSpace, stored Position) (Result, error) {
	served, err := space.Normalize(stored)
	if err != nil {
		return Result{}, err
	}
	next, wrapped, err := space.Next(served)
	if err != nil {
		return Result{}, err
	}
	bump := 0
	if wrapped {
		bump = 1
	}
	return Result{Served: served, Next: next, CompletionBump: bump}, nil
}

/* =========================
   FullCycle: 114 surah berurutan
   ========================= */

// VerseCounter: lookup jumlah ayat per surah (data statis, tetap murni).
type VerseCounter func(surah int) (int, error)

type FullCycleSpace struct {
	TotalSurahs int
	VerseCount  VerseCounter
}

func (s FullCycleSpace) Normalize(p Position) (Position, error) {
	if s.TotalSurahs < 1 {
		return Position{}, ErrEmptyContentSpace
	}
	if p.Surah < 1 || p.Surah > s.TotalSurahs {
		return Position{Surah: 1, Verse: 1}, nil
	}
	vc, err := s.VerseCount(p.Surah)
	if err != nil {
		return Position{}, err
	}
	if vc < 1 {
		return Position{}, fmt.Errorf("%w: surah %d", ErrEmptyContentSpace, p.Surah)
	}
	if p.Verse < 1 || p.Verse > vc {
		return Position{Surah: 1, Verse: 1}, nil
	}
	return Position{Surah: p.Surah, Verse: p.Verse}, nil
}

func (s FullCycleSpace) Next(p Position) (Position, bool, error) {
	vc, err := s.VerseCount(p.Surah)
	if err != nil {
		return Position{}, false, err
	}
	switch {
	case p.Verse < vc:
		return Position{Surah: p.Surah, Verse: p.Verse + 1}, false, nil
	case p.Surah < s.TotalSurahs:
		return Position{Surah: p.Surah + 1, Verse: 1}, false, nil
	default:
		// ayat terakhir surah terakhir → khatm
		return Position{Surah: 1, Verse: 1}, true, nil
	}
}

/* =========================
   SingleSurah: satu surah tetap
   ========================= */

type SingleSurahSpace struct {
	Number int
	Verses int
}

func (s SingleSurahSpace) Normalize(p Position) (Position, error) {
	if s.Verses < 1 {
		return Position{}, fmt.Errorf("%w: surah %d", ErrEmptyContentSpace, s.Number)
	}
	// Surah tersimpan yang melenceng dari selector dijangkar ulang ke s.Number:
	// selector kampanye yang otoritatif, bukan nilai tersimpan.
	if p.Surah != s.Number || p.Verse < 1 || p.Verse > s.Verses {
		return Position{Surah: s.Number, Verse: 1}, nil
	}
	return Position{Surah: s.Number, Verse: p.Verse}, nil
}

func (s SingleSurahSpace) Next(p Position) (Position, bool, error) {
	if p.Verse < s.Verses {
		return Position{Surah: s.Number, Verse: p.Verse + 1}, false, nil
	}
	return Position{Surah: s.Number, Verse: 1}, true, nil
}

/* =========================
   Devotional: daftar unit berhingga
   ========================= */

type DevotionalSpace struct {
	Total int
}

func (s DevotionalSpace) Normalize(p Position) (Position, error) {
	if s.Total < 1 {
		return Position{}, ErrEmptyContentSpace
	}
	if p.Index < 1 || p.Index > s.Total {
		return Position{Index: 1}, nil
	}
	return Position{Index: p.Index}, nil
}

func (s DevotionalSpace) Next(p Position) (Position, bool, error) {
	if p.Index < s.Total {
		return Position{Index: p.Index + 1}, false, nil
	}
	return Position{Index: 1}, true, nil
}
