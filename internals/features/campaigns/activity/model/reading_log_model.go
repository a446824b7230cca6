// file: internals/features/campaigns/activity/model/reading_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReadingLogModel: append-only. Tidak pernah di-update/di-delete oleh core;
// hanya dibaca oleh dashboard statistik.
type ReadingLogModel struct {
	ReadingLogID         uuid.UUID  `gorm:"column:reading_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"reading_log_id"`
	ReadingLogCampaignID uuid.UUID  `gorm:"column:reading_log_campaign_id;type:uuid;not null;index:idx_reading_logs_campaign_created,priority:1" json:"reading_log_campaign_id"`
	ReadingLogSessionID  *string    `gorm:"column:reading_log_session_id;type:varchar(64);index" json:"reading_log_session_id,omitempty"`
	ReadingLogUserID     *uuid.UUID `gorm:"column:reading_log_user_id;type:uuid" json:"reading_log_user_id,omitempty"`
	ReadingLogIP         *string    `gorm:"column:reading_log_ip;type:inet" json:"reading_log_ip,omitempty"`

	// posisi yang disajikan ke pembaca saat event ini
	ReadingLogSurahNumber *int `gorm:"column:reading_log_surah_number" json:"reading_log_surah_number,omitempty"`
	ReadingLogVerseNumber *int `gorm:"column:reading_log_verse_number" json:"reading_log_verse_number,omitempty"`
	ReadingLogDuaIndex    *int `gorm:"column:reading_log_dua_index" json:"reading_log_dua_index,omitempty"`

	// klasifikasi kasar device/OS dari User-Agent
	ReadingLogDevice datatypes.JSON `gorm:"column:reading_log_device;type:jsonb" json:"reading_log_device,omitempty"`

	ReadingLogCreatedAt time.Time `gorm:"column:reading_log_created_at;type:timestamptz;autoCreateTime;index:idx_reading_logs_campaign_created,priority:2,sort:desc" json:"reading_log_created_at"`
}

func (ReadingLogModel) TableName() string {
	return "reading_logs"
}
