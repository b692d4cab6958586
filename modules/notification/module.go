package notification

import (
	"amparo-api/core/database"
	"amparo-api/core/middleware"
	"amparo-api/modules/notification/controller"
	"amparo-api/modules/notification/repository"
	"amparo-api/modules/notification/router"
	"amparo-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.IDatabase, mw *middleware.Middleware) service.NotificationServiceInterface {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(e, mw)

	return svc
}
