package schedule

import (
	"amparo-api/core/middleware"
	notifService "amparo-api/modules/notification/service"
	"amparo-api/modules/participant/repository"
	"amparo-api/modules/schedule/controller"
	"amparo-api/modules/schedule/router"
	"amparo-api/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// Init wires the schedule endpoints. It reuses the participant repository
// because attendance lives on the participant record.
func Init(e *echo.Group, repo repository.ParticipantRepositoryInterface, notif notifService.NotificationServiceInterface, mw *middleware.Middleware) {
	svc := service.NewScheduleService(repo, notif)
	ctrl := controller.NewScheduleController(svc)

	router.NewScheduleRouter(ctrl).Register(e, mw)
}
