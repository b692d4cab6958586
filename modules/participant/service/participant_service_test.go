package service

import (
	"context"
	"testing"

	"amparo-api/core/errors"
	"amparo-api/modules/participant/dto"
	"amparo-api/modules/participant/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	participants map[uuid.UUID]*entity.Participant
	inserted     []*entity.Participant
	updated      *entity.Participant
}

func newFakeRepo(ps ...*entity.Participant) *fakeRepo {
	repo := &fakeRepo{participants: map[uuid.UUID]*entity.Participant{}}
	for _, p := range ps {
		repo.participants[p.ID] = p
	}
	return repo
}

func (r *fakeRepo) FetchAll(ctx context.Context) ([]entity.Participant, error) {
	var out []entity.Participant
	for _, p := range r.participants {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error) {
	p, ok := r.participants[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeRepo) Insert(ctx context.Context, p *entity.Participant) (*entity.Participant, error) {
	p.ID = uuid.New()
	r.participants[p.ID] = p
	r.inserted = append(r.inserted, p)
	return p, nil
}

func (r *fakeRepo) Update(ctx context.Context, p *entity.Participant) (*entity.Participant, error) {
	r.participants[p.ID] = p
	r.updated = p
	return p, nil
}

func saveRequest() *dto.SaveParticipantRequest {
	return &dto.SaveParticipantRequest{
		Name:      "Maria",
		Phone:     "11999990000",
		StartDate: "2025-10-01",
		Status:    entity.StatusActive,
		Groups:    entity.GroupList{entity.GroupWomensCircle},
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewParticipantService(newFakeRepo())

	tests := []struct {
		name   string
		mutate func(*dto.SaveParticipantRequest)
	}{
		{"missing name", func(r *dto.SaveParticipantRequest) { r.Name = " " }},
		{"missing phone", func(r *dto.SaveParticipantRequest) { r.Phone = "" }},
		{"missing start date", func(r *dto.SaveParticipantRequest) { r.StartDate = "" }},
		{"empty group set", func(r *dto.SaveParticipantRequest) { r.Groups = nil }},
		{"unknown status", func(r *dto.SaveParticipantRequest) { r.Status = "paused" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := saveRequest()
			tt.mutate(req)

			_, appErr := svc.Create(context.Background(), req)
			require.NotNil(t, appErr)
			require.Equal(t, errors.ErrInvalidInput, appErr.Code)
		})
	}
}

func TestCreateClearsTherapistFieldsWithoutTherapyGroup(t *testing.T) {
	svc := NewParticipantService(newFakeRepo())

	req := saveRequest()
	req.TherapistName = "Dr. Silva"
	req.TherapistPhone = "11777770000"
	req.TherapistEmail = "silva@example.org"

	result, appErr := svc.Create(context.Background(), req)
	require.Nil(t, appErr)
	require.Empty(t, result.TherapistName)
	require.Empty(t, result.TherapistPhone)
	require.Empty(t, result.TherapistEmail)
}

func TestCreateKeepsTherapistFieldsWithTherapyGroup(t *testing.T) {
	svc := NewParticipantService(newFakeRepo())

	req := saveRequest()
	req.Groups = entity.GroupList{entity.GroupIndividualTherapy}
	req.TherapistName = "Dr. Silva"

	result, appErr := svc.Create(context.Background(), req)
	require.Nil(t, appErr)
	require.Equal(t, "Dr. Silva", result.TherapistName)
}

func TestCreateClearsDepartureReasonWhenActive(t *testing.T) {
	svc := NewParticipantService(newFakeRepo())

	req := saveRequest()
	req.DepartureReason = "moved away"

	result, appErr := svc.Create(context.Background(), req)
	require.Nil(t, appErr)
	require.Empty(t, result.DepartureReason)
}

func TestCreateKeepsDepartureReasonWhenInactive(t *testing.T) {
	svc := NewParticipantService(newFakeRepo())

	req := saveRequest()
	req.Status = entity.StatusInactive
	req.DepartureReason = "moved away"

	result, appErr := svc.Create(context.Background(), req)
	require.Nil(t, appErr)
	require.Equal(t, "moved away", result.DepartureReason)
}

func TestTherapyGroupPromotionClearsWaitingFlags(t *testing.T) {
	svc := NewParticipantService(newFakeRepo())

	req := saveRequest()
	req.Groups = entity.GroupList{entity.GroupIndividualTherapy}
	req.OnWaitingList = true
	req.OnWaitingListValues = true

	result, appErr := svc.Create(context.Background(), req)
	require.Nil(t, appErr)
	require.False(t, result.OnWaitingList, "joining the therapy group leaves its queue")
	require.True(t, result.OnWaitingListValues, "the other queue flag is untouched")
}

func TestUpdatePreservesIdentity(t *testing.T) {
	existing := saveRequest().ToEntity()
	existing.ID = uuid.New()
	repo := newFakeRepo(&existing)
	svc := NewParticipantService(repo)

	req := saveRequest()
	req.Name = "Maria Souza"

	result, appErr := svc.Update(context.Background(), existing.ID, req)
	require.Nil(t, appErr)
	require.Equal(t, existing.ID.String(), result.ID)
	require.Equal(t, "Maria Souza", result.Name)
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewParticipantService(newFakeRepo())

	_, appErr := svc.Update(context.Background(), uuid.New(), saveRequest())
	require.NotNil(t, appErr)
	require.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestImportInsertsDraftsAndReportsWarnings(t *testing.T) {
	repo := newFakeRepo()
	svc := NewParticipantService(repo)

	text := "name,startDate,groups\n" +
		"Maria,2025-10-01,Women's Circle\n" +
		"Ana,bad-date,Other\n"

	result, appErr := svc.Import(context.Background(), text)
	require.Nil(t, appErr)
	require.Len(t, result.Imported, 1)
	require.Len(t, result.Warnings, 1)
	require.Len(t, repo.inserted, 1)
}

func TestImportBadHeaderInsertsNothing(t *testing.T) {
	repo := newFakeRepo()
	svc := NewParticipantService(repo)

	_, appErr := svc.Import(context.Background(), "name,phone\nMaria,11999990000\n")
	require.NotNil(t, appErr)
	require.Equal(t, errors.ErrInvalidInput, appErr.Code)
	require.Empty(t, repo.inserted)
}

func TestAddEvaluationAppends(t *testing.T) {
	existing := saveRequest().ToEntity()
	existing.ID = uuid.New()
	repo := newFakeRepo(&existing)
	svc := NewParticipantService(repo)

	result, appErr := svc.AddEvaluation(context.Background(), existing.ID, &dto.AddEvaluationRequest{
		Date:  "2025-10-08",
		Notes: "initial intake",
	})
	require.Nil(t, appErr)
	require.Len(t, result.Evaluations, 1)
	require.NotEmpty(t, result.Evaluations[0].ID)
	require.Equal(t, "2025-10-08", result.Evaluations[0].Date)
}

func TestAddEvaluationRequiresNotes(t *testing.T) {
	svc := NewParticipantService(newFakeRepo())

	_, appErr := svc.AddEvaluation(context.Background(), uuid.New(), &dto.AddEvaluationRequest{Notes: "  "})
	require.NotNil(t, appErr)
	require.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestFilterRoster(t *testing.T) {
	active := saveRequest().ToEntity()
	active.Name = "Maria Souza"

	inactive := saveRequest().ToEntity()
	inactive.Name = "Ana Lima"
	inactive.Status = entity.StatusInactive
	inactive.Groups = entity.GroupList{entity.GroupIndividualTherapy}

	waiting := saveRequest().ToEntity()
	waiting.Name = "Joana Prado"
	waiting.OnWaitingList = true

	roster := []entity.Participant{active, inactive, waiting}

	tests := []struct {
		name  string
		query dto.RosterQuery
		want  []string
	}{
		{"no filters", dto.RosterQuery{}, []string{"Maria Souza", "Ana Lima", "Joana Prado"}},
		{"status all", dto.RosterQuery{Status: "all"}, []string{"Maria Souza", "Ana Lima", "Joana Prado"}},
		{"status inactive", dto.RosterQuery{Status: "inactive"}, []string{"Ana Lima"}},
		{"group", dto.RosterQuery{Group: "Individual Therapy"}, []string{"Ana Lima"}},
		{"waiting only", dto.RosterQuery{WaitingOnly: true}, []string{"Joana Prado"}},
		{"search by name", dto.RosterQuery{Search: "souza"}, []string{"Maria Souza"}},
		{"search no match", dto.RosterQuery{Search: "nobody"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRoster(roster, tt.query)
			var names []string
			for _, p := range got {
				names = append(names, p.Name)
			}
			require.ElementsMatch(t, tt.want, names)
		})
	}
}

func TestTemplateDefaults(t *testing.T) {
	svc := NewParticipantService(newFakeRepo())

	tpl := svc.Template()
	require.Equal(t, entity.StatusActive, tpl.Status)
	require.Equal(t, entity.GroupList{entity.GroupEmergencyIntake}, tpl.Groups)
	require.NotEmpty(t, tpl.StartDate)
}
