// file: internals/features/campaigns/sessions/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"khatm_backend/internals/features/campaigns/sessions/controller"
)

func SessionRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSessionController(db)
	r.Post("/session/ensure", ctl.Ensure)
}
