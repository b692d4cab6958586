package router

import (
	"amparo-api/core/middleware"
	"amparo-api/modules/participant/controller"

	"github.com/labstack/echo/v4"
)

type ParticipantRouter struct {
	controller *controller.ParticipantController
}

func NewParticipantRouter(controller *controller.ParticipantController) *ParticipantRouter {
	return &ParticipantRouter{controller: controller}
}

func (r *ParticipantRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	group := e.Group("/participants", mw.AuthMiddleware())
	group.GET("", r.controller.List)
	group.GET("/template", r.controller.Template)
	group.GET("/:id", r.controller.Get)
	group.POST("", r.controller.Create)
	group.PUT("/:id", r.controller.Update)
	group.POST("/import", r.controller.Import)
	group.POST("/:id/evaluations", r.controller.AddEvaluation)
}
