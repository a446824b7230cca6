// file: internals/features/campaigns/campaign/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityService "khatm_backend/internals/features/campaigns/activity/service"
	"khatm_backend/internals/features/campaigns/campaign/controller"
	"khatm_backend/internals/features/quran/catalog"
	middlewares "khatm_backend/internals/middlewares"
	authMw "khatm_backend/internals/middlewares/auth"

	"khatm_backend/internals/configs"
)

// CampaignPublicRoutes: listing + detail untuk halaman publik.
func CampaignPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCampaignController(db)
	r.Get("/campaigns", ctl.ListPublic)
	r.Get("/campaigns/:slug", ctl.GetBySlug)
}

// CampaignReaderRoutes: endpoint konfirmasi baca (mutasi cursor).
func CampaignReaderRoutes(r fiber.Router, db *gorm.DB, cat *catalog.Catalog) {
	nv := controller.NewNextVerseController(db, cat, activityService.NewActivityService(db))
	r.Post("/campaigns/:slug/next-verse",
		middlewares.NextVerseRateLimiter(),
		authMw.OptionalAuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		nv.NextVerse,
	)
}
