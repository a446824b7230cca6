// file: internals/features/campaigns/activity/service/activity_service.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"khatm_backend/internals/features/campaigns/activity/model"
	helper "khatm_backend/internals/helpers"
)

// Event adalah satu pembacaan yang sudah disajikan.
type Event struct {
	CampaignID  uuid.UUID
	SessionID   *string
	UserID      *uuid.UUID
	IP          string
	UserAgent   string
	SurahNumber *int
	VerseNumber *int
	DuaIndex    *int
}

type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

// Append menulis satu reading log. Fire-and-forget: kegagalan hanya
// dicatat di log proses, tidak pernah menggagalkan (apalagi me-rollback)
// update cursor yang sudah commit.
func (s *ActivityService) Append(ev Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		device, _ := json.Marshal(map[string]string{
			"device": helper.ClassifyDevice(ev.UserAgent),
			"os":     helper.ClassifyOS(ev.UserAgent),
		})

		row := model.ReadingLogModel{
			ReadingLogCampaignID:  ev.CampaignID,
			ReadingLogSessionID:   ev.SessionID,
			ReadingLogUserID:      ev.UserID,
			ReadingLogSurahNumber: ev.SurahNumber,
			ReadingLogVerseNumber: ev.VerseNumber,
			ReadingLogDuaIndex:    ev.DuaIndex,
			ReadingLogDevice:      datatypes.JSON(device),
		}
		if ev.IP != "" {
			ip := ev.IP
			row.ReadingLogIP = &ip
		}

		if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
			log.Printf("[WARN] reading log append failed: %v", err)
		}
	}()
}
