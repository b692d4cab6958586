package service

import (
	"context"
	"fmt"
	"time"

	"amparo-api/core/database"
	"amparo-api/core/errors"
	"amparo-api/core/logger"
	"amparo-api/core/storage"
	participantDto "amparo-api/modules/participant/dto"
	"amparo-api/modules/participant/repository"
	"amparo-api/modules/report/dto"

	"github.com/gosimple/slug"
)

// Export formats accepted by the export endpoint.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ExportFile is a rendered report ready to stream to the operator.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
	StoredURL   string
}

type ReportService struct {
	repo     repository.ParticipantRepositoryInterface
	uploader *storage.Uploader
}

type ReportServiceInterface interface {
	Generate(ctx context.Context, filter dto.ReportFilter) (*dto.ReportResponse, *errors.AppError)
	Export(ctx context.Context, filter dto.ReportFilter, format string) (*ExportFile, *errors.AppError)
}

func NewReportService(repo repository.ParticipantRepositoryInterface, uploader *storage.Uploader) ReportServiceInterface {
	return &ReportService{
		repo:     repo,
		uploader: uploader,
	}
}

// Generate filters the full roster and returns the subset with its summary
// counts. The filter runs in memory over the fetched list on every call.
func (s *ReportService) Generate(ctx context.Context, filter dto.ReportFilter) (*dto.ReportResponse, *errors.AppError) {
	if appErr := validateFilter(filter); appErr != nil {
		return nil, appErr
	}

	participants, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, storeError("Failed to fetch participants", err)
	}

	matched, summary := FilterReport(participants, filter)

	return &dto.ReportResponse{
		Filter:       filter,
		Summary:      summary,
		Participants: participantDto.ToParticipantResponses(matched),
	}, nil
}

// Export renders the filtered report in the requested format. When object
// storage is configured the file is also uploaded and the returned ExportFile
// carries the stored URL.
func (s *ReportService) Export(ctx context.Context, filter dto.ReportFilter, format string) (*ExportFile, *errors.AppError) {
	if appErr := validateFilter(filter); appErr != nil {
		return nil, appErr
	}

	participants, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, storeError("Failed to fetch participants", err)
	}

	matched, summary := FilterReport(participants, filter)

	file := &ExportFile{Filename: exportFilename(filter, format)}
	switch format {
	case FormatXLSX:
		file.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		file.Data, err = BuildXLSX(matched)
	case FormatPDF:
		file.ContentType = "application/pdf"
		file.Data, err = BuildPDF(matched, filter, summary)
	default:
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Format must be xlsx or pdf", nil)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to render the report", err)
	}

	if s.uploader != nil {
		url, upErr := s.uploader.Upload(ctx, "reports/"+file.Filename, file.ContentType, file.Data)
		if upErr != nil {
			// The operator still gets the file; losing the archive copy is
			// not fatal.
			logger.Error("ReportService:Export:Upload:Error:", upErr)
		} else {
			file.StoredURL = url
		}
	}

	logger.Info("ReportService:Export:Done", "format", format, "rows", summary.Total)
	return file, nil
}

func validateFilter(filter dto.ReportFilter) *errors.AppError {
	for _, date := range []string{filter.StartDate, filter.EndDate} {
		if date == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return errors.NewAppError(errors.ErrInvalidInput, "Dates must be ISO calendar dates (YYYY-MM-DD)", err)
		}
	}
	return nil
}

func exportFilename(filter dto.ReportFilter, format string) string {
	name := "participant-report"
	if filter.StartDate != "" || filter.EndDate != "" {
		name = slug.Make(fmt.Sprintf("participant-report %s %s", filter.StartDate, filter.EndDate))
	}
	return fmt.Sprintf("%s.%s", name, format)
}

func storeError(message string, err error) *errors.AppError {
	if database.IsRelationNotFound(err) {
		return errors.NewAppError(errors.ErrRelationNotFound,
			"The participants table was not found; run the database migrations", err)
	}
	return errors.NewAppError(errors.ErrInternalServer, message, err)
}
