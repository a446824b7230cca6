// file: internals/features/campaigns/activity/controller/stats_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	campaignModel "khatm_backend/internals/features/campaigns/campaign/model"
	helper "khatm_backend/internals/helpers"
)

// Agregasi read-side murni di atas reading_logs + campaigns.
// Tidak safety-critical: hasil yang meleset tidak merusak cursor kampanye.

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

type kvCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

/*
=========================================================

	SUMMARY
	GET /api/a/stats
	=========================================================
*/
func (ctl *StatsController) Summary(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())

	var totalCampaigns, activeCampaigns int64
	if err := db.Model(&campaignModel.CampaignModel{}).Count(&totalCampaigns).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "stats query failed")
	}
	db.Model(&campaignModel.CampaignModel{}).Where("campaign_is_active = TRUE").Count(&activeCampaigns)

	var totalCompletions int64
	db.Model(&campaignModel.CampaignModel{}).
		Select("COALESCE(SUM(campaign_completion_count), 0)").
		Scan(&totalCompletions)

	var totalReads int64
	db.Table("reading_logs").Count(&totalReads)

	now := time.Now().UTC()
	var onlineNow int64
	db.Table("reading_logs").
		Where("reading_log_created_at > ?", now.Add(-5*time.Minute)).
		Distinct("reading_log_session_id").
		Count(&onlineNow)

	var uniqueSessions7d int64
	db.Table("reading_logs").
		Where("reading_log_created_at > ?", now.AddDate(0, 0, -7)).
		Distinct("reading_log_session_id").
		Count(&uniqueSessions7d)

	var deviceTotals []kvCount
	db.Table("reading_logs").
		Select("COALESCE(reading_log_device->>'device', 'unknown') AS key, COUNT(*) AS count").
		Group("1").
		Scan(&deviceTotals)

	var osTotals []kvCount
	db.Table("reading_logs").
		Select("COALESCE(reading_log_device->>'os', 'other') AS key, COUNT(*) AS count").
		Group("1").
		Scan(&osTotals)

	// event per jam, 24 jam terakhir
	type hourCount struct {
		Hour  int   `json:"hour"`
		Count int64 `json:"count"`
	}
	var rows []hourCount
	db.Table("reading_logs").
		Select("EXTRACT(HOUR FROM reading_log_created_at)::int AS hour, COUNT(*) AS count").
		Where("reading_log_created_at > ?", now.Add(-24*time.Hour)).
		Group("1").
		Scan(&rows)
	activityByHour := make([]int64, 24)
	for _, r := range rows {
		if r.Hour >= 0 && r.Hour < 24 {
			activityByHour[r.Hour] = r.Count
		}
	}

	return helper.JsonOK(c, "", fiber.Map{
		"total_campaigns":    totalCampaigns,
		"active_campaigns":   activeCampaigns,
		"total_completions":  totalCompletions,
		"total_reads":        totalReads,
		"online_now":         onlineNow,
		"unique_sessions_7d": uniqueSessions7d,
		"device_totals":      deviceTotals,
		"os_totals":          osTotals,
		"activity_by_hour":   activityByHour,
	})
}

/*
=========================================================

	PER-CAMPAIGN ACTIVITY
	GET /api/a/stats/campaigns/:id
	=========================================================
*/
func (ctl *StatsController) CampaignActivity(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var totalReads int64
	if err := db.Table("reading_logs").
		Where("reading_log_campaign_id = ?", id).
		Count(&totalReads).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "stats query failed")
	}

	var uniqueSessions int64
	db.Table("reading_logs").
		Where("reading_log_campaign_id = ?", id).
		Distinct("reading_log_session_id").
		Count(&uniqueSessions)

	var lastReadAt *time.Time
	db.Table("reading_logs").
		Where("reading_log_campaign_id = ?", id).
		Select("MAX(reading_log_created_at)").
		Scan(&lastReadAt)

	return helper.JsonOK(c, "", fiber.Map{
		"campaign_id":     id,
		"total_reads":     totalReads,
		"unique_sessions": uniqueSessions,
		"last_read_at":    lastReadAt,
	})
}
