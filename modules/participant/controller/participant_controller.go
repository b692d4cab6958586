package controller

import (
	"io"

	"amparo-api/core/controller"
	"amparo-api/core/errors"
	"amparo-api/modules/participant/dto"
	"amparo-api/modules/participant/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ParticipantController handles roster HTTP requests.
type ParticipantController struct {
	controller.BaseController
	ParticipantService service.ParticipantServiceInterface
}

func NewParticipantController(svc service.ParticipantServiceInterface) *ParticipantController {
	return &ParticipantController{
		BaseController:     controller.NewBaseController(),
		ParticipantService: svc,
	}
}

// List handles GET /participants
func (c *ParticipantController) List(ctx echo.Context) error {
	query := dto.RosterQuery{
		Search:      ctx.QueryParam("search"),
		Status:      ctx.QueryParam("status"),
		Group:       ctx.QueryParam("group"),
		WaitingOnly: ctx.QueryParam("waiting_list") == "true",
	}

	result, appErr := c.ParticipantService.List(ctx.Request().Context(), query)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Get handles GET /participants/:id
func (c *ParticipantController) Get(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID")
	}

	result, appErr := c.ParticipantService.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Create handles POST /participants
func (c *ParticipantController) Create(ctx echo.Context) error {
	var req dto.SaveParticipantRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.ParticipantService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Participant created successfully")
}

// Update handles PUT /participants/:id
func (c *ParticipantController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID")
	}

	var req dto.SaveParticipantRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.ParticipantService.Update(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Participant updated successfully")
}

// Import handles POST /participants/import. Accepts a multipart "file" part
// or a raw text body.
func (c *ParticipantController) Import(ctx echo.Context) error {
	text, err := readImportBody(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Could not read the uploaded file")
	}

	result, appErr := c.ParticipantService.Import(ctx.Request().Context(), text)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Import completed")
}

// AddEvaluation handles POST /participants/:id/evaluations
func (c *ParticipantController) AddEvaluation(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID")
	}

	var req dto.AddEvaluationRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.ParticipantService.AddEvaluation(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Evaluation added successfully")
}

// Template handles GET /participants/template
func (c *ParticipantController) Template(ctx echo.Context) error {
	return c.SuccessResponse(ctx, c.ParticipantService.Template(), "Success")
}

func readImportBody(ctx echo.Context) (string, error) {
	file, err := ctx.FormFile("file")
	if err == nil {
		src, openErr := file.Open()
		if openErr != nil {
			return "", openErr
		}
		defer src.Close()

		data, readErr := io.ReadAll(src)
		if readErr != nil {
			return "", readErr
		}
		return string(data), nil
	}

	data, readErr := io.ReadAll(ctx.Request().Body)
	if readErr != nil {
		return "", readErr
	}
	return string(data), nil
}
