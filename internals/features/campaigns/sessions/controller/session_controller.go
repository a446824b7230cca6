// file: internals/features/campaigns/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"khatm_backend/internals/features/campaigns/sessions/model"
	helper "khatm_backend/internals/helpers"
)

type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

type ensureRequest struct {
	FingerprintHash string `json:"fingerprint_hash"`
	ExistingToken   string `json:"existing_token"`
}

/*
=========================================================

	ENSURE SESSION TOKEN
	POST /api/session/ensure

	Urutan reuse: token lama yang masih dikenal → token lain dengan
	fingerprint sama → buat baru. last_seen selalu di-touch.
	=========================================================
*/
func (ctl *SessionController) Ensure(c *fiber.Ctx) error {
	var req ensureRequest
	_ = c.BodyParser(&req) // body rusak diperlakukan seperti kosong

	req.FingerprintHash = strings.TrimSpace(req.FingerprintHash)
	req.ExistingToken = strings.TrimSpace(req.ExistingToken)
	if req.FingerprintHash == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "fingerprint_hash required")
	}

	db := ctl.DB.WithContext(c.UserContext())
	now := time.Now().UTC()

	// 1) reuse token yang dikirim client
	if req.ExistingToken != "" {
		var row model.SessionTokenModel
		err := db.First(&row, "session_token = ?", req.ExistingToken).Error
		if err == nil {
			db.Model(&row).Update("session_last_seen", now)
			return helper.JsonOK(c, "", fiber.Map{"token": row.SessionTokenToken})
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "session lookup failed")
		}
	}

	// 2) reuse berdasarkan fingerprint (yang paling baru dilihat)
	var byFp model.SessionTokenModel
	err := db.Where("session_fingerprint_hash = ?", req.FingerprintHash).
		Order("session_last_seen DESC").
		First(&byFp).Error
	if err == nil {
		db.Model(&byFp).Update("session_last_seen", now)
		return helper.JsonOK(c, "", fiber.Map{"token": byFp.SessionTokenToken})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "session lookup failed")
	}

	// 3) buat token baru
	row := model.SessionTokenModel{
		SessionTokenToken:           uuid.NewString(),
		SessionTokenFingerprintHash: req.FingerprintHash,
		SessionTokenLastSeen:        now,
	}
	if err := db.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create session token")
	}
	return helper.JsonOK(c, "", fiber.Map{"token": row.SessionTokenToken})
}
