package router

import (
	"amparo-api/core/middleware"
	"amparo-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

// Register mounts the sign-in endpoints. The link flow is public; logout
// requires a live session.
func (r *AuthRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	group := e.Group("/auth")
	group.POST("/magic-link", r.controller.RequestMagicLink)
	group.GET("/verify", r.controller.Verify)
	group.POST("/logout", r.controller.Logout, mw.AuthMiddleware())
}
