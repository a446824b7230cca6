// file: internals/features/campaigns/campaign/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"khatm_backend/internals/features/campaigns/campaign/controller"
)

// CampaignAdminRoutes: CRUD kampanye (group sudah dijaga AuthJWT).
func CampaignAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCampaignController(db)
	r.Post("/campaigns", ctl.Create)
	r.Get("/campaigns", ctl.List)
	r.Patch("/campaigns/:id", ctl.Update)
	r.Delete("/campaigns/:id", ctl.Delete)
}
