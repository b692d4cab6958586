package report

import (
	"amparo-api/core/middleware"
	"amparo-api/core/storage"
	"amparo-api/modules/participant/repository"
	"amparo-api/modules/report/controller"
	"amparo-api/modules/report/router"
	"amparo-api/modules/report/service"

	"github.com/labstack/echo/v4"
)

// Init wires the report endpoints over the shared participant repository.
// uploader may be nil when object storage is not configured.
func Init(e *echo.Group, repo repository.ParticipantRepositoryInterface, uploader *storage.Uploader, mw *middleware.Middleware) {
	svc := service.NewReportService(repo, uploader)
	ctrl := controller.NewReportController(svc)

	router.NewReportRouter(ctrl).Register(e, mw)
}
