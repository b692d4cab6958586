package controller

import (
	"amparo-api/core/controller"
	"amparo-api/core/errors"
	"amparo-api/modules/report/dto"
	"amparo-api/modules/report/service"

	"github.com/labstack/echo/v4"
)

// ReportController handles report generation and export requests.
type ReportController struct {
	controller.BaseController
	ReportService service.ReportServiceInterface
}

func NewReportController(svc service.ReportServiceInterface) *ReportController {
	return &ReportController{
		BaseController: controller.NewBaseController(),
		ReportService:  svc,
	}
}

// Generate handles POST /reports
func (c *ReportController) Generate(ctx echo.Context) error {
	var filter dto.ReportFilter
	if err := ctx.Bind(&filter); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.ReportService.Generate(ctx.Request().Context(), filter)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Export handles POST /reports/export?format=xlsx|pdf and streams the file
// back as an attachment.
func (c *ReportController) Export(ctx echo.Context) error {
	var filter dto.ReportFilter
	if err := ctx.Bind(&filter); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	format := ctx.QueryParam("format")
	if format == "" {
		format = service.FormatXLSX
	}

	file, appErr := c.ReportService.Export(ctx.Request().Context(), filter, format)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	if file.StoredURL != "" {
		ctx.Response().Header().Set("X-Stored-Url", file.StoredURL)
	}
	return c.FileResponse(ctx, file.Filename, file.ContentType, file.Data)
}
