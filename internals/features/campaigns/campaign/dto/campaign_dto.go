// file: internals/features/campaigns/campaign/dto/campaign_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Requests (admin)
   ========================= */

type CreateCampaignRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=160"`
	Slug        *string `json:"slug" validate:"omitempty,max=160"`
	Type        string  `json:"type" validate:"required,oneof=general surah dua"`
	SurahNumber *int    `json:"surah_number" validate:"omitempty,min=1,max=114"`
	DuaKey      *string `json:"dua_key" validate:"omitempty,max=32"`
	IsPublic    *bool   `json:"is_public"`
}

type UpdateCampaignRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=160"`
	IsActive *bool   `json:"is_active"`
	IsPublic *bool   `json:"is_public"`
}

/* =========================
   Responses
   ========================= */

type CampaignResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Type            string    `json:"type"`
	SurahNumber     *int      `json:"surah_number,omitempty"`
	SurahName       *string   `json:"surah_name,omitempty"`
	DuaKey          *string   `json:"dua_key,omitempty"`
	IsActive        bool      `json:"is_active"`
	IsPublic        bool      `json:"is_public"`
	CurrentSurah    int       `json:"current_surah_number"`
	CurrentVerse    int       `json:"current_verse_number"`
	CurrentDuaIndex int       `json:"current_dua_index"`
	CompletionCount int       `json:"completion_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// QuranVerseResponse: payload next-verse untuk mode general/surah.
// completion_count = jumlah khatm SEBELUM pembacaan ini (pre-increment).
type QuranVerseResponse struct {
	SurahNumber     int    `json:"surah_number"`
	VerseNumber     int    `json:"verse_number"`
	SurahName       string `json:"surah_name"`
	CompletionCount int    `json:"completion_count"`
}

// DevotionalVerseResponse: payload next-verse untuk mode dua.
type DevotionalVerseResponse struct {
	Title           string  `json:"title"`
	Arabic          string  `json:"arabic"`
	Translation     string  `json:"translation"`
	AudioURL        *string `json:"audio_url"`
	ItemIndex       int     `json:"item_index"`
	TotalItems      int     `json:"total_items"`
	CompletionCount int     `json:"completion_count"`
}
