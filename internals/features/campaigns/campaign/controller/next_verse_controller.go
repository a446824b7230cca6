// file: internals/features/campaigns/campaign/controller/next_verse_controller.go
package controller

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	activityService "khatm_backend/internals/features/campaigns/activity/service"
	"khatm_backend/internals/features/campaigns/campaign/dto"
	"khatm_backend/internals/features/campaigns/campaign/model"
	"khatm_backend/internals/features/campaigns/campaign/service"
	"khatm_backend/internals/features/devotionals/sahifa"
	"khatm_backend/internals/features/quran/catalog"
	helper "khatm_backend/internals/helpers"
	authMw "khatm_backend/internals/middlewares/auth"
)

type NextVerseController struct {
	DB       *gorm.DB
	Catalog  *catalog.Catalog
	Activity *activityService.ActivityService
}

func NewNextVerseController(db *gorm.DB, cat *catalog.Catalog, act *activityService.ActivityService) *NextVerseController {
	return &NextVerseController{DB: db, Catalog: cat, Activity: act}
}

/*
=========================================================

	NEXT VERSE (read confirmation)
	POST /api/campaigns/:slug/next-verse

	Satu panggilan = satu mutasi cursor + maksimal satu log append.
	Konten yang dibalas selalu posisi SEBELUM advance, dengan
	completion_count pre-increment.
	=========================================================
*/
func (ctl *NextVerseController) NextVerse(c *fiber.Ctx) error {
	// slug bisa berisi huruf Persia/Arab ter-escape
	slug, err := url.PathUnescape(strings.TrimSpace(c.Params("slug")))
	if err != nil || slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid slug")
	}

	ctx := c.UserContext()

	// 1) Load awal tanpa lock: cukup untuk tahu mode + selector.
	var cmp model.CampaignModel
	if err := ctl.DB.WithContext(ctx).
		Where("campaign_slug = ? AND campaign_is_active = TRUE", slug).
		First(&cmp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Campaign not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load campaign")
	}

	// 2) Resolve ruang konten SEBELUM transaksi: fetch sahifa bisa lambat
	//    dan tidak boleh berjalan sambil memegang row lock.
	space, err := service.ResolveSpace(ctx, ctl.Catalog, &cmp)
	if err != nil {
		return ctl.spaceError(c, err)
	}

	// 3) Transaksi: lock row → advance → persist posisi + completion.
	tx := ctl.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to start transaction")
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback().Error
		}
	}()

	var locked model.CampaignModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("campaign_id = ? AND campaign_is_active = TRUE", cmp.CampaignID).
		First(&locked).Error; err != nil {
		_ = tx.Rollback().Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// dinonaktifkan di antara dua read
			return helper.JsonError(c, fiber.StatusNotFound, "Campaign not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to lock campaign")
	}

	res, err := service.Advance(space, service.StoredPosition(&locked))
	if err != nil {
		_ = tx.Rollback().Error
		return ctl.spaceError(c, err)
	}

	// hanya kolom posisi + completion; identitas/visibilitas tidak disentuh
	updates := map[string]any{
		"campaign_completion_count": locked.CampaignCompletionCount + res.CompletionBump,
	}
	if locked.CampaignType == model.CampaignTypeDua {
		updates["campaign_current_dua_index"] = res.Next.Index
	} else {
		updates["campaign_current_surah"] = res.Next.Surah
		updates["campaign_current_verse"] = res.Next.Verse
	}
	if err := tx.Model(&model.CampaignModel{}).
		Where("campaign_id = ?", locked.CampaignID).
		Updates(updates).Error; err != nil {
		_ = tx.Rollback().Error
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to persist position")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to persist position")
	}

	// 4) Log activity best-effort — tidak pernah menggagalkan response.
	ctl.appendLog(c, &locked, res)

	// 5) Sajikan posisi pre-advance + completion pre-increment.
	return ctl.respond(c, &locked, res)
}

func (ctl *NextVerseController) appendLog(c *fiber.Ctx, cmp *model.CampaignModel, res service.Result) {
	ev := activityService.Event{
		CampaignID: cmp.CampaignID,
		UserID:     authMw.GetUserUUID(c),
		IP:         c.IP(),
		UserAgent:  c.Get(fiber.HeaderUserAgent),
	}
	if tok := strings.TrimSpace(c.Get("X-Session-Token")); tok != "" {
		ev.SessionID = &tok
	}
	if cmp.CampaignType == model.CampaignTypeDua {
		idx := res.Served.Index
		ev.DuaIndex = &idx
	} else {
		s, v := res.Served.Surah, res.Served.Verse
		ev.SurahNumber = &s
		ev.VerseNumber = &v
	}
	ctl.Activity.Append(ev)
}

func (ctl *NextVerseController) respond(c *fiber.Ctx, cmp *model.CampaignModel, res service.Result) error {
	// completion yang tampil = keadaan sebelum read ini; bump (kalau ada)
	// baru terlihat mulai request berikutnya.
	preCount := cmp.CampaignCompletionCount

	if cmp.CampaignType == model.CampaignTypeDua {
		unit, total, err := ctl.Catalog.DevotionalUnit(c.UserContext(), *cmp.CampaignDuaKey, res.Served.Index)
		if err != nil {
			// konten sudah di-cache oleh ResolveSpace; sampai sini gagal = upstream benar-benar tumbang
			return ctl.spaceError(c, err)
		}
		return helper.JsonOK(c, "ok", dto.DevotionalVerseResponse{
			Title:           unit.Title,
			Arabic:          unit.Arabic,
			Translation:     unit.Translation,
			AudioURL:        unit.AudioURL,
			ItemIndex:       res.Served.Index,
			TotalItems:      total,
			CompletionCount: preCount,
		})
	}

	surah, err := catalog.SurahByNumber(res.Served.Surah)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid surah number")
	}
	return helper.JsonOK(c, "ok", dto.QuranVerseResponse{
		SurahNumber:     res.Served.Surah,
		VerseNumber:     res.Served.Verse,
		SurahName:       surah.PersianName,
		CompletionCount: preCount,
	})
}

// spaceError memetakan error ruang konten ke status HTTP.
func (ctl *NextVerseController) spaceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, sahifa.ErrSourceUnavailable):
		// transient; cursor belum disentuh sehingga retry aman
		return helper.JsonError(c, fiber.StatusBadGateway, "Devotional source temporarily unavailable")
	case errors.Is(err, catalog.ErrUnknownDevotional),
		errors.Is(err, catalog.ErrUnknownSurah),
		errors.Is(err, service.ErrEmptyContentSpace):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
