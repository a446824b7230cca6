// file: internals/features/campaigns/campaign/model/campaign_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipe kampanye:
// - general : seluruh Quran, 114 surah berurutan
// - surah   : satu surah tetap
// - dua     : satu kunci devotional (salawat / sahifa-N)
const (
	CampaignTypeGeneral = "general"
	CampaignTypeSurah   = "surah"
	CampaignTypeDua     = "dua"
)

// Posisi + completion hanya dimutasi oleh endpoint next-verse (di bawah
// row lock). Kolom identitas/visibilitas hanya disentuh admin.
type CampaignModel struct {
	CampaignID   uuid.UUID `gorm:"column:campaign_id;type:uuid;default:gen_random_uuid();primaryKey" json:"campaign_id"`
	CampaignName string    `gorm:"column:campaign_name;type:varchar(160);not null" json:"campaign_name"`
	CampaignSlug string    `gorm:"column:campaign_slug;type:text;not null;uniqueIndex:uq_campaigns_slug" json:"campaign_slug"`
	CampaignType string    `gorm:"column:campaign_type;type:varchar(16);not null" json:"campaign_type"`

	// selector ruang konten (tergantung type)
	CampaignSurahNumber *int    `gorm:"column:campaign_surah_number" json:"campaign_surah_number,omitempty"`
	CampaignDuaKey      *string `gorm:"column:campaign_dua_key;type:varchar(32)" json:"campaign_dua_key,omitempty"`

	CampaignIsActive bool `gorm:"column:campaign_is_active;not null;default:true;index" json:"campaign_is_active"`
	CampaignIsPublic bool `gorm:"column:campaign_is_public;not null;default:true" json:"campaign_is_public"`

	// cursor bersama (1-based)
	CampaignCurrentSurah    int `gorm:"column:campaign_current_surah;not null;default:1" json:"campaign_current_surah"`
	CampaignCurrentVerse    int `gorm:"column:campaign_current_verse;not null;default:1" json:"campaign_current_verse"`
	CampaignCurrentDuaIndex int `gorm:"column:campaign_current_dua_index;not null;default:1" json:"campaign_current_dua_index"`
	CampaignCompletionCount int `gorm:"column:campaign_completion_count;not null;default:0" json:"campaign_completion_count"`

	CampaignCreatedAt time.Time `gorm:"column:campaign_created_at;type:timestamptz;autoCreateTime" json:"campaign_created_at"`
	CampaignUpdatedAt time.Time `gorm:"column:campaign_updated_at;type:timestamptz;autoUpdateTime" json:"campaign_updated_at"`
}

func (CampaignModel) TableName() string {
	return "campaigns"
}
