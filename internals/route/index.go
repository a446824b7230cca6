// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"khatm_backend/internals/configs"
	activityRoute "khatm_backend/internals/features/campaigns/activity/route"
	campaignRoute "khatm_backend/internals/features/campaigns/campaign/route"
	sessionRoute "khatm_backend/internals/features/campaigns/sessions/route"
	"khatm_backend/internals/features/devotionals/sahifa"
	"khatm_backend/internals/features/quran/catalog"
	authRoute "khatm_backend/internals/features/users/auth/route"
	authMw "khatm_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// satu client sahifa untuk seluruh proses: cache hasil parse hidup
	// selama proses dan aman dipakai concurrent
	cat := catalog.New(sahifa.NewClient())

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	api := app.Group("/api")
	public := app.Group("/api/public")

	authRoute.AuthRoutes(api, db)
	sessionRoute.SessionRoutes(api, db)
	campaignRoute.CampaignPublicRoutes(public, db)
	campaignRoute.CampaignReaderRoutes(api, db, cat)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (AuthJWT)...")
	admin := app.Group("/api/a",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	campaignRoute.CampaignAdminRoutes(admin, db)
	activityRoute.StatsAdminRoutes(admin, db)
}
