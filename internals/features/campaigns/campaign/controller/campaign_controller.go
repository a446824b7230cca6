// file: internals/features/campaigns/campaign/controller/campaign_controller.go
package controller

import (
	"errors"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"khatm_backend/internals/features/campaigns/campaign/dto"
	"khatm_backend/internals/features/campaigns/campaign/model"
	"khatm_backend/internals/features/quran/catalog"
	helper "khatm_backend/internals/helpers"
)

type CampaignController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCampaignController(db *gorm.DB) *CampaignController {
	return &CampaignController{
		DB:        db,
		Validator: validator.New(),
	}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "23505")
}

func toResponse(m *model.CampaignModel) dto.CampaignResponse {
	out := dto.CampaignResponse{
		ID:              m.CampaignID,
		Name:            m.CampaignName,
		Slug:            m.CampaignSlug,
		Type:            m.CampaignType,
		SurahNumber:     m.CampaignSurahNumber,
		DuaKey:          m.CampaignDuaKey,
		IsActive:        m.CampaignIsActive,
		IsPublic:        m.CampaignIsPublic,
		CurrentSurah:    m.CampaignCurrentSurah,
		CurrentVerse:    m.CampaignCurrentVerse,
		CurrentDuaIndex: m.CampaignCurrentDuaIndex,
		CompletionCount: m.CampaignCompletionCount,
		CreatedAt:       m.CampaignCreatedAt,
		UpdatedAt:       m.CampaignUpdatedAt,
	}
	if m.CampaignSurahNumber != nil {
		if s, err := catalog.SurahByNumber(*m.CampaignSurahNumber); err == nil {
			name := s.PersianName
			out.SurahName = &name
		}
	}
	return out
}

/*
=========================================================

	CREATE
	POST /api/a/campaigns
	=========================================================
*/
func (ctl *CampaignController) Create(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	// selector ruang konten harus lengkap sesuai type
	switch req.Type {
	case model.CampaignTypeSurah:
		if req.SurahNumber == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "surah_number is required for surah campaigns")
		}
		if _, err := catalog.SurahByNumber(*req.SurahNumber); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid surah_number")
		}
	case model.CampaignTypeDua:
		if req.DuaKey == nil || !catalog.KnownDevotionalKey(*req.DuaKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown dua_key")
		}
	}

	base := ""
	if req.Slug != nil {
		base = helper.Slugify(*req.Slug)
	}
	if base == "" {
		base = helper.Slugify(req.Name)
	}
	if base == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "cannot derive slug from name")
	}
	slug, err := helper.EnsureUniqueSlug(ctl.DB.WithContext(c.UserContext()), "campaigns", "campaign_slug", base)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to generate slug")
	}

	cmp := model.CampaignModel{
		CampaignName:            req.Name,
		CampaignSlug:            slug,
		CampaignType:            req.Type,
		CampaignSurahNumber:     req.SurahNumber,
		CampaignDuaKey:          req.DuaKey,
		CampaignIsActive:        true,
		CampaignIsPublic:        true,
		CampaignCurrentSurah:    1,
		CampaignCurrentVerse:    1,
		CampaignCurrentDuaIndex: 1,
	}
	if req.IsPublic != nil {
		cmp.CampaignIsPublic = *req.IsPublic
	}
	// kampanye satu-surah mulai dari surah pilihannya
	if req.Type == model.CampaignTypeSurah {
		cmp.CampaignCurrentSurah = *req.SurahNumber
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&cmp).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "slug already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create campaign")
	}
	return helper.JsonCreated(c, "campaign created", toResponse(&cmp))
}

/*
=========================================================

	LIST (admin, semua) & LIST PUBLIC (hanya publik + aktif)
	=========================================================
*/
func (ctl *CampaignController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.CampaignModel{})
	if v := strings.ToLower(strings.TrimSpace(c.Query("is_active"))); v == "true" || v == "false" {
		q = q.Where("campaign_is_active = ?", v == "true")
	}

	var rows []model.CampaignModel
	if err := q.Order("campaign_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list campaigns")
	}
	out := make([]dto.CampaignResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse(&rows[i]))
	}
	return helper.JsonList(c, "", out)
}

func (ctl *CampaignController) ListPublic(c *fiber.Ctx) error {
	var rows []model.CampaignModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("campaign_is_public = TRUE AND campaign_is_active = TRUE").
		Order("campaign_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list campaigns")
	}
	out := make([]dto.CampaignResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse(&rows[i]))
	}
	return helper.JsonList(c, "", out)
}

/*
=========================================================

	GET BY SLUG (public — untuk render awal halaman kampanye)
	GET /api/public/campaigns/:slug
	=========================================================
*/
func (ctl *CampaignController) GetBySlug(c *fiber.Ctx) error {
	slug, err := url.PathUnescape(strings.TrimSpace(c.Params("slug")))
	if err != nil || slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid slug")
	}
	var cmp model.CampaignModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("campaign_slug = ? AND campaign_is_active = TRUE", slug).
		First(&cmp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Campaign not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load campaign")
	}
	return helper.JsonOK(c, "", toResponse(&cmp))
}

/*
=========================================================

	UPDATE (nama / visibilitas / aktif) — cursor TIDAK pernah
	disentuh dari sini.
	PATCH /api/a/campaigns/:id
	=========================================================
*/
func (ctl *CampaignController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["campaign_name"] = *req.Name
	}
	if req.IsActive != nil {
		updates["campaign_is_active"] = *req.IsActive
	}
	if req.IsPublic != nil {
		updates["campaign_is_public"] = *req.IsPublic
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "nothing to update")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.CampaignModel{}).
		Where("campaign_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update campaign")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Campaign not found")
	}

	var cmp model.CampaignModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&cmp, "campaign_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to reload campaign")
	}
	return helper.JsonUpdated(c, "campaign updated", toResponse(&cmp))
}

/*
=========================================================

	DELETE
	DELETE /api/a/campaigns/:id
	=========================================================
*/
func (ctl *CampaignController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.CampaignModel{}, "campaign_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete campaign")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Campaign not found")
	}
	return helper.JsonDeleted(c, "campaign deleted", fiber.Map{"id": id})
}

func validationMap(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
