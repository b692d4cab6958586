package repository

import (
	"context"
	"database/sql"
	"errors"

	"amparo-api/core/database"
	"amparo-api/core/logger"
	"amparo-api/modules/participant/entity"

	"github.com/google/uuid"
)

// ParticipantRepository handles participant database operations.
type ParticipantRepository struct {
	DB database.IDatabase
}

func NewParticipantRepository(db database.IDatabase) *ParticipantRepository {
	return &ParticipantRepository{DB: db}
}

// ParticipantRepositoryInterface defines the repository contract.
type ParticipantRepositoryInterface interface {
	FetchAll(ctx context.Context) ([]entity.Participant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error)
	Insert(ctx context.Context, p *entity.Participant) (*entity.Participant, error)
	Update(ctx context.Context, p *entity.Participant) (*entity.Participant, error)
}

const participantColumns = `
	id, name, email, national_id, phone, start_date, end_date, status,
	departure_reason, observations, groups, therapist_name, therapist_phone,
	therapist_email, on_waiting_list, on_waiting_list_values, attendance,
	evaluations, created_at, updated_at`

func (r *ParticipantRepository) FetchAll(ctx context.Context) ([]entity.Participant, error) {
	query := `SELECT` + participantColumns + `
		FROM participants
		ORDER BY name ASC`

	var participants []entity.Participant
	err := r.DB.SelectContext(ctx, &participants, query)
	if err != nil {
		logger.Error("ParticipantRepository:FetchAll", err)
		return nil, err
	}

	return participants, nil
}

func (r *ParticipantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error) {
	query := `SELECT` + participantColumns + `
		FROM participants WHERE id = $1`

	var p entity.Participant
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("ParticipantRepository:GetByID", err)
		return nil, err
	}

	return &p, nil
}

func (r *ParticipantRepository) Insert(ctx context.Context, p *entity.Participant) (*entity.Participant, error) {
	query := `
		INSERT INTO participants (
			name, email, national_id, phone, start_date, end_date, status,
			departure_reason, observations, groups, therapist_name, therapist_phone,
			therapist_email, on_waiting_list, on_waiting_list_values, attendance, evaluations
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING` + participantColumns

	var created entity.Participant
	err := r.DB.GetContext(ctx, &created, query,
		p.Name, p.Email, p.NationalID, p.Phone, p.StartDate, p.EndDate, p.Status,
		p.DepartureReason, p.Observations, p.Groups, p.TherapistName, p.TherapistPhone,
		p.TherapistEmail, p.OnWaitingList, p.OnWaitingListValues, p.Attendance, p.Evaluations)

	if err != nil {
		logger.Error("ParticipantRepository:Insert", err)
		return nil, err
	}

	return &created, nil
}

func (r *ParticipantRepository) Update(ctx context.Context, p *entity.Participant) (*entity.Participant, error) {
	query := `
		UPDATE participants
		SET name = $2, email = $3, national_id = $4, phone = $5, start_date = $6,
		    end_date = $7, status = $8, departure_reason = $9, observations = $10,
		    groups = $11, therapist_name = $12, therapist_phone = $13,
		    therapist_email = $14, on_waiting_list = $15, on_waiting_list_values = $16,
		    attendance = $17, evaluations = $18, updated_at = NOW()
		WHERE id = $1
		RETURNING` + participantColumns

	var updated entity.Participant
	err := r.DB.GetContext(ctx, &updated, query,
		p.ID, p.Name, p.Email, p.NationalID, p.Phone, p.StartDate,
		p.EndDate, p.Status, p.DepartureReason, p.Observations,
		p.Groups, p.TherapistName, p.TherapistPhone,
		p.TherapistEmail, p.OnWaitingList, p.OnWaitingListValues,
		p.Attendance, p.Evaluations)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("ParticipantRepository:Update", err)
		return nil, err
	}

	return &updated, nil
}
