package router

import (
	"amparo-api/core/middleware"
	"amparo-api/modules/report/controller"

	"github.com/labstack/echo/v4"
)

type ReportRouter struct {
	controller *controller.ReportController
}

func NewReportRouter(controller *controller.ReportController) *ReportRouter {
	return &ReportRouter{controller: controller}
}

func (r *ReportRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	group := e.Group("/reports", mw.AuthMiddleware())
	group.POST("", r.controller.Generate)
	group.POST("/export", r.controller.Export)
}
