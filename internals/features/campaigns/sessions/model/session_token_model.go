// file: internals/features/campaigns/sessions/model/session_token_model.go
package model

import "time"

// Session token anonim: dipakai dashboard statistik untuk menghitung
// pembaca unik tanpa login. Token dibagikan ke client dan dikirim balik
// lewat header X-Session-Token di endpoint next-verse.
type SessionTokenModel struct {
	SessionTokenToken           string    `gorm:"column:session_token;type:varchar(64);primaryKey" json:"token"`
	SessionTokenFingerprintHash string    `gorm:"column:session_fingerprint_hash;type:varchar(128);not null;index" json:"fingerprint_hash"`
	SessionTokenLastSeen        time.Time `gorm:"column:session_last_seen;type:timestamptz;not null" json:"last_seen"`
	SessionTokenCreatedAt       time.Time `gorm:"column:session_created_at;type:timestamptz;autoCreateTime" json:"created_at"`
}

func (SessionTokenModel) TableName() string {
	return "session_tokens"
}
