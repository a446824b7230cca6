// file: internals/features/campaigns/activity/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"khatm_backend/internals/features/campaigns/activity/controller"
)

// StatsAdminRoutes: dashboard statistik (group sudah dijaga AuthJWT).
func StatsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStatsController(db)
	r.Get("/stats", ctl.Summary)
	r.Get("/stats/campaigns/:id", ctl.CampaignActivity)
}
