package router

import (
	"amparo-api/core/middleware"
	"amparo-api/modules/schedule/controller"

	"github.com/labstack/echo/v4"
)

type ScheduleRouter struct {
	controller *controller.ScheduleController
}

func NewScheduleRouter(controller *controller.ScheduleController) *ScheduleRouter {
	return &ScheduleRouter{controller: controller}
}

func (r *ScheduleRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	group := e.Group("/participants/:id", mw.AuthMiddleware())
	group.GET("/schedule", r.controller.GetSchedule)
	group.PUT("/attendance/:date", r.controller.SetAttendance)
}
