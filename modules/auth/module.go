package auth

import (
	"amparo-api/core/cache"
	"amparo-api/core/middleware"
	"amparo-api/core/worker"
	"amparo-api/modules/auth/controller"
	"amparo-api/modules/auth/router"
	"amparo-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, cache cache.Cache, workerClient *worker.Client, mw *middleware.Middleware) {
	svc := service.NewAuthService(cache, workerClient)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Register(e, mw)
}
