package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"amparo-api/core/constants"
	"amparo-api/core/database"
	"amparo-api/core/errors"
	"amparo-api/core/logger"
	notifDto "amparo-api/modules/notification/dto"
	notifService "amparo-api/modules/notification/service"
	participantDto "amparo-api/modules/participant/dto"
	"amparo-api/modules/participant/entity"
	"amparo-api/modules/participant/repository"
	"amparo-api/modules/schedule/dto"

	"github.com/google/uuid"
)

// ScheduleService computes meeting schedules and records attendance.
type ScheduleService struct {
	repo         repository.ParticipantRepositoryInterface
	notifService notifService.NotificationServiceInterface
}

// ScheduleServiceInterface defines the service contract.
type ScheduleServiceInterface interface {
	GetSchedule(ctx context.Context, id uuid.UUID) (*dto.ScheduleResponse, *errors.AppError)
	SetAttendance(ctx context.Context, id uuid.UUID, date string, req *dto.SetAttendanceRequest) (*dto.SetAttendanceResponse, *errors.AppError)
}

func NewScheduleService(repo repository.ParticipantRepositoryInterface, notif notifService.NotificationServiceInterface) ScheduleServiceInterface {
	return &ScheduleService{
		repo:         repo,
		notifService: notif,
	}
}

// GetSchedule builds the meeting view for one participant: the month-bucketed
// weekly recurrence dates merged with ledger state, and the freely scheduled
// therapy sessions.
func (s *ScheduleService) GetSchedule(ctx context.Context, id uuid.UUID) (*dto.ScheduleResponse, *errors.AppError) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("Failed to fetch participant", err)
	}
	if p == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	regime := ClassifyRegime(p.Groups)
	resp := &dto.ScheduleResponse{
		ParticipantID: p.ID.String(),
		Weekly:        regime.Weekly,
		Therapy:       regime.Therapy,
		HasMeetings:   regime.Weekly || regime.Therapy,
	}

	if regime.Weekly {
		resp.WeeklyMeetings = buildWeeklyMonths(p)
	}
	if regime.Therapy {
		resp.TherapySessions = buildTherapySessions(p)
	}

	return resp, nil
}

// SetAttendance merges the partial entry into the ledger at date, applies
// the two-absence rule, and persists the resulting snapshot as one update.
func (s *ScheduleService) SetAttendance(ctx context.Context, id uuid.UUID, date string, req *dto.SetAttendanceRequest) (*dto.SetAttendanceResponse, *errors.AppError) {
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Date must be an ISO calendar date (YYYY-MM-DD)", err)
	}
	if req.Status != nil && *req.Status != entity.AttendancePresent && *req.Status != entity.AttendanceAbsent {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Status must be present or absent", nil)
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("Failed to fetch participant", err)
	}
	if p == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	partial := entity.AttendanceEntry{
		Status:    req.Status,
		Evolution: req.Evolution,
		Time:      req.Time,
	}
	updated, deactivated := ApplyAttendance(*p, date, partial)

	saved, err := s.repo.Update(ctx, &updated)
	if err != nil {
		return nil, storeError("Failed to save attendance", err)
	}

	if deactivated {
		s.notifyDeactivation(ctx, saved)
	}

	return &dto.SetAttendanceResponse{
		Participant: participantDto.ToParticipantResponse(saved),
		Deactivated: deactivated,
	}, nil
}

// notifyDeactivation records the operator notice. A failed notification must
// not fail the attendance write that triggered it.
func (s *ScheduleService) notifyDeactivation(ctx context.Context, p *entity.Participant) {
	err := s.notifService.Create(ctx, &notifDto.CreateNotificationRequest{
		ParticipantID: p.ID,
		Title:         "Participant deactivated",
		Message: fmt.Sprintf(
			"%s was marked inactive after two recorded absences. You can revert the status by editing the record.",
			p.Name),
		Type: notifDto.TypeAutoDeactivation,
	})
	if err != nil {
		logger.Error("ScheduleService:notifyDeactivation:Error:", err)
	}
}

func buildWeeklyMonths(p *entity.Participant) []dto.WeeklyMonth {
	buckets := GroupDatesByMonth(WeeklyMeetingDates(p))

	out := make([]dto.WeeklyMonth, 0, len(buckets))
	for _, bucket := range buckets {
		month := dto.WeeklyMonth{Month: bucket.Month, Label: bucket.Label}
		for _, date := range bucket.Dates {
			meeting := dto.WeeklyMeeting{Date: date}
			if t, err := time.Parse(constants.DateLayout, date); err == nil {
				meeting.Weekday = t.Weekday().String()
			}
			if entry, ok := p.Attendance[date]; ok {
				meeting.Status = entry.Status
				if entry.Evolution != nil {
					meeting.Evolution = *entry.Evolution
				}
			}
			month.Meetings = append(month.Meetings, meeting)
		}
		out = append(out, month)
	}
	return out
}

// buildTherapySessions lists ledger dates carrying a scheduled time, in date
// order.
func buildTherapySessions(p *entity.Participant) []dto.TherapySession {
	var sessions []dto.TherapySession
	for date, entry := range p.Attendance {
		if entry.Time == nil || *entry.Time == "" {
			continue
		}
		session := dto.TherapySession{
			Date:         date,
			Time:         *entry.Time,
			Status:       entry.Status,
			CalendarLink: GoogleCalendarLink(p, date, *entry.Time),
		}
		if entry.Evolution != nil {
			session.Evolution = *entry.Evolution
		}
		sessions = append(sessions, session)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Date < sessions[j].Date
	})
	return sessions
}

func storeError(message string, err error) *errors.AppError {
	if database.IsRelationNotFound(err) {
		return errors.NewAppError(errors.ErrRelationNotFound,
			"The participants table was not found; run the database migrations", err)
	}
	return errors.NewAppError(errors.ErrInternalServer, message, err)
}
