package participant

import (
	"amparo-api/core/database"
	"amparo-api/core/middleware"
	"amparo-api/modules/participant/controller"
	"amparo-api/modules/participant/repository"
	"amparo-api/modules/participant/router"
	"amparo-api/modules/participant/service"

	"github.com/labstack/echo/v4"
)

// Init wires the participant module and registers its routes. The repository
// is returned so sibling modules can share the same store access.
func Init(e *echo.Group, db database.IDatabase, mw *middleware.Middleware) *repository.ParticipantRepository {
	repo := repository.NewParticipantRepository(db)
	svc := service.NewParticipantService(repo)
	ctrl := controller.NewParticipantController(svc)

	router.NewParticipantRouter(ctrl).Register(e, mw)

	return repo
}
