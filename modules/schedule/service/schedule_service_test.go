package service

import (
	"context"
	"testing"

	"amparo-api/core/errors"
	"amparo-api/core/params"
	notifDto "amparo-api/modules/notification/dto"
	notifEntity "amparo-api/modules/notification/entity"
	"amparo-api/modules/participant/entity"
	"amparo-api/modules/schedule/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeParticipantRepo struct {
	participants map[uuid.UUID]*entity.Participant
	updated      *entity.Participant
}

func newFakeParticipantRepo(ps ...*entity.Participant) *fakeParticipantRepo {
	repo := &fakeParticipantRepo{participants: map[uuid.UUID]*entity.Participant{}}
	for _, p := range ps {
		repo.participants[p.ID] = p
	}
	return repo
}

func (r *fakeParticipantRepo) FetchAll(ctx context.Context) ([]entity.Participant, error) {
	var out []entity.Participant
	for _, p := range r.participants {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error) {
	p, ok := r.participants[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeParticipantRepo) Insert(ctx context.Context, p *entity.Participant) (*entity.Participant, error) {
	p.ID = uuid.New()
	r.participants[p.ID] = p
	return p, nil
}

func (r *fakeParticipantRepo) Update(ctx context.Context, p *entity.Participant) (*entity.Participant, error) {
	r.participants[p.ID] = p
	r.updated = p
	return p, nil
}

type fakeNotificationService struct {
	created []*notifDto.CreateNotificationRequest
}

func (s *fakeNotificationService) Create(ctx context.Context, req *notifDto.CreateNotificationRequest) *errors.AppError {
	s.created = append(s.created, req)
	return nil
}

func (s *fakeNotificationService) List(ctx context.Context, q params.QueryParams) (*notifEntity.PaginatedNotificationEntity, *errors.AppError) {
	return nil, nil
}

func (s *fakeNotificationService) MarkAsRead(ctx context.Context, ids []string) *errors.AppError {
	return nil
}

func (s *fakeNotificationService) MarkAllAsRead(ctx context.Context) *errors.AppError {
	return nil
}

func (s *fakeNotificationService) CountUnread(ctx context.Context) (int, *errors.AppError) {
	return 0, nil
}

func seedParticipant(groups entity.GroupList, ledger entity.AttendanceLedger) *entity.Participant {
	if ledger == nil {
		ledger = entity.AttendanceLedger{}
	}
	p := &entity.Participant{
		Name:       "Maria",
		Phone:      "11999990000",
		StartDate:  "2025-10-01",
		Status:     entity.StatusActive,
		Groups:     groups,
		Attendance: ledger,
	}
	p.ID = uuid.New()
	return p
}

func TestGetScheduleWeekly(t *testing.T) {
	p := seedParticipant(entity.GroupList{entity.GroupWomensCircle}, entity.AttendanceLedger{
		"2025-10-08": {Status: statusPtr(entity.AttendancePresent), Evolution: strPtr("fine")},
	})
	svc := NewScheduleService(newFakeParticipantRepo(p), &fakeNotificationService{})

	resp, appErr := svc.GetSchedule(context.Background(), p.ID)
	require.Nil(t, appErr)
	require.True(t, resp.Weekly)
	require.False(t, resp.Therapy)
	require.True(t, resp.HasMeetings)
	require.NotEmpty(t, resp.WeeklyMeetings)

	first := resp.WeeklyMeetings[0]
	require.Equal(t, "2025-10", first.Month)

	var found bool
	for _, m := range first.Meetings {
		if m.Date == "2025-10-08" {
			found = true
			require.Equal(t, entity.AttendancePresent, *m.Status)
			require.Equal(t, "fine", m.Evolution)
		}
	}
	require.True(t, found, "ledger state joins onto the generated dates")
}

func TestGetScheduleTherapySessions(t *testing.T) {
	p := seedParticipant(entity.GroupList{entity.GroupIndividualTherapy}, entity.AttendanceLedger{
		"2025-11-03": {Time: strPtr("15:00")},
		"2025-10-20": {Time: strPtr("14:00"), Status: statusPtr(entity.AttendancePresent)},
		"2025-10-27": {Status: statusPtr(entity.AttendanceAbsent)}, // unscheduled, no time
	})
	svc := NewScheduleService(newFakeParticipantRepo(p), &fakeNotificationService{})

	resp, appErr := svc.GetSchedule(context.Background(), p.ID)
	require.Nil(t, appErr)
	require.True(t, resp.Therapy)
	require.Empty(t, resp.WeeklyMeetings)

	require.Len(t, resp.TherapySessions, 2)
	require.Equal(t, "2025-10-20", resp.TherapySessions[0].Date)
	require.Equal(t, "2025-11-03", resp.TherapySessions[1].Date)
	require.NotEmpty(t, resp.TherapySessions[0].CalendarLink)
}

func TestGetScheduleNoRegime(t *testing.T) {
	p := seedParticipant(entity.GroupList{entity.GroupOther}, nil)
	svc := NewScheduleService(newFakeParticipantRepo(p), &fakeNotificationService{})

	resp, appErr := svc.GetSchedule(context.Background(), p.ID)
	require.Nil(t, appErr)
	require.False(t, resp.HasMeetings)
	require.Empty(t, resp.WeeklyMeetings)
	require.Empty(t, resp.TherapySessions)
}

func TestGetScheduleNotFound(t *testing.T) {
	svc := NewScheduleService(newFakeParticipantRepo(), &fakeNotificationService{})

	_, appErr := svc.GetSchedule(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	require.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestSetAttendancePersistsMerge(t *testing.T) {
	p := seedParticipant(entity.GroupList{entity.GroupWomensCircle}, nil)
	repo := newFakeParticipantRepo(p)
	svc := NewScheduleService(repo, &fakeNotificationService{})

	resp, appErr := svc.SetAttendance(context.Background(), p.ID, "2025-10-08", &dto.SetAttendanceRequest{
		Status: statusPtr(entity.AttendancePresent),
	})
	require.Nil(t, appErr)
	require.False(t, resp.Deactivated)

	require.NotNil(t, repo.updated)
	entry := repo.updated.Attendance["2025-10-08"]
	require.Equal(t, entity.AttendancePresent, *entry.Status)
}

func TestSetAttendanceSecondAbsenceNotifies(t *testing.T) {
	p := seedParticipant(entity.GroupList{entity.GroupWomensCircle}, entity.AttendanceLedger{
		"2025-10-08": {Status: statusPtr(entity.AttendanceAbsent)},
	})
	repo := newFakeParticipantRepo(p)
	notif := &fakeNotificationService{}
	svc := NewScheduleService(repo, notif)

	resp, appErr := svc.SetAttendance(context.Background(), p.ID, "2025-10-15", &dto.SetAttendanceRequest{
		Status: statusPtr(entity.AttendanceAbsent),
	})
	require.Nil(t, appErr)
	require.True(t, resp.Deactivated)
	require.Equal(t, entity.StatusInactive, repo.updated.Status)

	require.Len(t, notif.created, 1)
	require.Equal(t, p.ID, notif.created[0].ParticipantID)
	require.Equal(t, notifDto.TypeAutoDeactivation, notif.created[0].Type)
}

func TestSetAttendanceRejectsBadInput(t *testing.T) {
	p := seedParticipant(entity.GroupList{entity.GroupWomensCircle}, nil)
	svc := NewScheduleService(newFakeParticipantRepo(p), &fakeNotificationService{})

	bad := entity.AttendanceStatus("late")
	tests := []struct {
		name string
		date string
		req  *dto.SetAttendanceRequest
	}{
		{"malformed date", "08/10/2025", &dto.SetAttendanceRequest{Status: statusPtr(entity.AttendancePresent)}},
		{"unknown status", "2025-10-08", &dto.SetAttendanceRequest{Status: &bad}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.SetAttendance(context.Background(), p.ID, tt.date, tt.req)
			require.NotNil(t, appErr)
			require.Equal(t, errors.ErrInvalidInput, appErr.Code)
		})
	}
}
