// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"khatm_backend/internals/features/users/auth/controller"
	middlewares "khatm_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)
	r.Post("/auth/register", middlewares.RegisterRateLimiter(), ctl.Register)
	r.Post("/auth/login", middlewares.LoginRateLimiter(), ctl.Login)
}
