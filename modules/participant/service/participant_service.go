package service

import (
	"context"
	"strings"
	"time"

	"amparo-api/core/constants"
	"amparo-api/core/database"
	"amparo-api/core/errors"
	"amparo-api/core/utils"
	"amparo-api/modules/participant/dto"
	"amparo-api/modules/participant/entity"
	"amparo-api/modules/participant/repository"

	"github.com/google/uuid"
)

// ParticipantService handles roster business logic.
type ParticipantService struct {
	repo repository.ParticipantRepositoryInterface
}

// ParticipantServiceInterface defines the service contract.
type ParticipantServiceInterface interface {
	List(ctx context.Context, query dto.RosterQuery) ([]dto.ParticipantResponse, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ParticipantResponse, *errors.AppError)
	Create(ctx context.Context, req *dto.SaveParticipantRequest) (*dto.ParticipantResponse, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.SaveParticipantRequest) (*dto.ParticipantResponse, *errors.AppError)
	Import(ctx context.Context, csvText string) (*dto.ImportResponse, *errors.AppError)
	AddEvaluation(ctx context.Context, id uuid.UUID, req *dto.AddEvaluationRequest) (*dto.ParticipantResponse, *errors.AppError)
	Template() *dto.TemplateResponse
}

func NewParticipantService(repo repository.ParticipantRepositoryInterface) ParticipantServiceInterface {
	return &ParticipantService{repo: repo}
}

// List fetches the full roster and applies the roster filters in memory.
func (s *ParticipantService) List(ctx context.Context, query dto.RosterQuery) ([]dto.ParticipantResponse, *errors.AppError) {
	participants, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, storeError("Failed to fetch participants", err)
	}

	filtered := FilterRoster(participants, query)
	return dto.ToParticipantResponses(filtered), nil
}

func (s *ParticipantService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ParticipantResponse, *errors.AppError) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("Failed to fetch participant", err)
	}
	if p == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}
	return dto.ToParticipantResponse(p), nil
}

func (s *ParticipantService) Create(ctx context.Context, req *dto.SaveParticipantRequest) (*dto.ParticipantResponse, *errors.AppError) {
	p := req.ToEntity()
	if appErr := validateForSave(&p); appErr != nil {
		return nil, appErr
	}
	NormalizeForSave(&p)

	created, err := s.repo.Insert(ctx, &p)
	if err != nil {
		return nil, storeError("Failed to save participant", err)
	}
	return dto.ToParticipantResponse(created), nil
}

func (s *ParticipantService) Update(ctx context.Context, id uuid.UUID, req *dto.SaveParticipantRequest) (*dto.ParticipantResponse, *errors.AppError) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("Failed to fetch participant", err)
	}
	if existing == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	p := req.ToEntity()
	p.BaseEntity = existing.BaseEntity
	if appErr := validateForSave(&p); appErr != nil {
		return nil, appErr
	}
	NormalizeForSave(&p)

	updated, err := s.repo.Update(ctx, &p)
	if err != nil {
		return nil, storeError("Failed to save participant", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}
	return dto.ToParticipantResponse(updated), nil
}

// Import parses the CSV blob and inserts every valid row. Header problems
// fail the whole import before any insert; bad rows are skipped with a
// warning.
func (s *ParticipantService) Import(ctx context.Context, csvText string) (*dto.ImportResponse, *errors.AppError) {
	drafts, warnings, err := ParseParticipantCSV(csvText)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}

	imported := make([]dto.ParticipantResponse, 0, len(drafts))
	for i := range drafts {
		created, insertErr := s.repo.Insert(ctx, &drafts[i])
		if insertErr != nil {
			return nil, storeError("Failed to save imported participants", insertErr)
		}
		imported = append(imported, *dto.ToParticipantResponse(created))
	}

	return &dto.ImportResponse{Imported: imported, Warnings: warnings}, nil
}

func (s *ParticipantService) AddEvaluation(ctx context.Context, id uuid.UUID, req *dto.AddEvaluationRequest) (*dto.ParticipantResponse, *errors.AppError) {
	if strings.TrimSpace(req.Notes) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Evaluation notes are required", nil)
	}
	date := req.Date
	if date == "" {
		date = time.Now().Format(constants.DateLayout)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("Failed to fetch participant", err)
	}
	if existing == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	p := *existing
	p.Evaluations = append(append(entity.EvaluationList{}, existing.Evaluations...), entity.Evaluation{
		ID:    utils.GenerateID(),
		Date:  date,
		Notes: req.Notes,
	})

	updated, updateErr := s.repo.Update(ctx, &p)
	if updateErr != nil {
		return nil, storeError("Failed to save evaluation", updateErr)
	}
	return dto.ToParticipantResponse(updated), nil
}

// Template returns the defaults a new registration form starts from.
func (s *ParticipantService) Template() *dto.TemplateResponse {
	return &dto.TemplateResponse{
		StartDate: time.Now().Format(constants.DateLayout),
		Status:    entity.StatusActive,
		Groups:    entity.GroupList{entity.GroupEmergencyIntake},
	}
}

// validateForSave rejects records that must never reach the store.
func validateForSave(p *entity.Participant) *errors.AppError {
	if strings.TrimSpace(p.Name) == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "Name is required", nil)
	}
	if strings.TrimSpace(p.Phone) == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "Phone is required", nil)
	}
	if p.StartDate == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "Start date is required", nil)
	}
	if len(p.Groups) == 0 {
		return errors.NewAppError(errors.ErrInvalidInput, "At least one group is required", nil)
	}
	if p.Status != entity.StatusActive && p.Status != entity.StatusInactive {
		return errors.NewAppError(errors.ErrInvalidInput, "Status must be active or inactive", nil)
	}
	return nil
}

// NormalizeForSave applies the save-time invariants: therapist contact data
// only persists alongside a therapy group, a departure reason only alongside
// inactive status, and joining a therapy group clears its waiting-list flag.
func NormalizeForSave(p *entity.Participant) {
	if !p.Groups.HasTherapyGroup() {
		p.TherapistName = ""
		p.TherapistPhone = ""
		p.TherapistEmail = ""
	}
	if p.Status != entity.StatusInactive {
		p.DepartureReason = ""
	}
	if p.Groups.Contains(entity.GroupIndividualTherapy) {
		p.OnWaitingList = false
	}
	if p.Groups.Contains(entity.GroupValuesTherapy) {
		p.OnWaitingListValues = false
	}
}

// FilterRoster applies the roster search and filter controls to the in-memory
// list. The repository returns the list ordered by name, so no re-sort is
// needed here.
func FilterRoster(participants []entity.Participant, query dto.RosterQuery) []entity.Participant {
	search := strings.ToLower(strings.TrimSpace(query.Search))

	out := make([]entity.Participant, 0, len(participants))
	for _, p := range participants {
		if query.Status != "" && query.Status != "all" && string(p.Status) != query.Status {
			continue
		}
		if query.Group != "" && !p.Groups.Contains(entity.Group(query.Group)) {
			continue
		}
		if query.WaitingOnly && !p.OnWaitingList && !p.OnWaitingListValues {
			continue
		}
		if search != "" && !matchesSearch(&p, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p *entity.Participant, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.NationalID), search) ||
		strings.Contains(strings.ToLower(p.Email), search) ||
		strings.Contains(strings.ToLower(p.TherapistName), search)
}

func storeError(message string, err error) *errors.AppError {
	if database.IsRelationNotFound(err) {
		return errors.NewAppError(errors.ErrRelationNotFound,
			"The participants table was not found; run the database migrations", err)
	}
	return errors.NewAppError(errors.ErrInternalServer, message, err)
}
