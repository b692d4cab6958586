package dto

import (
	"amparo-api/modules/participant/entity"
)

// ===================== Request DTOs =====================

// SaveParticipantRequest carries the full editable record for create and
// update. The ledger and evaluations ride along so a form save and an
// attendance mutation go through the same persistence path.
type SaveParticipantRequest struct {
	Name                string                  `json:"name"`
	Email               string                  `json:"email"`
	NationalID          string                  `json:"national_id"`
	Phone               string                  `json:"phone"`
	StartDate           string                  `json:"start_date"`
	EndDate             string                  `json:"end_date"`
	Status              entity.Status           `json:"status"`
	DepartureReason     string                  `json:"departure_reason"`
	Observations        string                  `json:"observations"`
	Groups              entity.GroupList        `json:"groups"`
	TherapistName       string                  `json:"therapist_name"`
	TherapistPhone      string                  `json:"therapist_phone"`
	TherapistEmail      string                  `json:"therapist_email"`
	OnWaitingList       bool                    `json:"on_waiting_list"`
	OnWaitingListValues bool                    `json:"on_waiting_list_values"`
	Attendance          entity.AttendanceLedger `json:"attendance"`
	Evaluations         entity.EvaluationList   `json:"evaluations"`
}

// RosterQuery are the roster list filters.
type RosterQuery struct {
	Search      string
	Status      string
	Group       string
	WaitingOnly bool
}

// AddEvaluationRequest appends a dated note to a participant.
type AddEvaluationRequest struct {
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

// ===================== Response DTOs =====================

// ParticipantResponse is the wire form of a participant record.
type ParticipantResponse struct {
	ID                  string                  `json:"id"`
	Name                string                  `json:"name"`
	Email               string                  `json:"email,omitempty"`
	NationalID          string                  `json:"national_id"`
	Phone               string                  `json:"phone"`
	StartDate           string                  `json:"start_date"`
	EndDate             string                  `json:"end_date,omitempty"`
	Status              entity.Status           `json:"status"`
	DepartureReason     string                  `json:"departure_reason,omitempty"`
	Observations        string                  `json:"observations"`
	Groups              entity.GroupList        `json:"groups"`
	TherapistName       string                  `json:"therapist_name,omitempty"`
	TherapistPhone      string                  `json:"therapist_phone,omitempty"`
	TherapistEmail      string                  `json:"therapist_email,omitempty"`
	OnWaitingList       bool                    `json:"on_waiting_list"`
	OnWaitingListValues bool                    `json:"on_waiting_list_values"`
	Attendance          entity.AttendanceLedger `json:"attendance"`
	Evaluations         entity.EvaluationList   `json:"evaluations"`
}

// ImportResponse reports what a CSV import produced.
type ImportResponse struct {
	Imported []ParticipantResponse `json:"imported"`
	Warnings []string              `json:"warnings"`
}

// TemplateResponse is the draft record for a new registration form.
type TemplateResponse struct {
	StartDate string           `json:"start_date"`
	Status    entity.Status    `json:"status"`
	Groups    entity.GroupList `json:"groups"`
}

// ===================== Mapper Functions =====================

func ToParticipantResponse(p *entity.Participant) *ParticipantResponse {
	return &ParticipantResponse{
		ID:                  p.ID.String(),
		Name:                p.Name,
		Email:               p.Email,
		NationalID:          p.NationalID,
		Phone:               p.Phone,
		StartDate:           p.StartDate,
		EndDate:             p.EndDate,
		Status:              p.Status,
		DepartureReason:     p.DepartureReason,
		Observations:        p.Observations,
		Groups:              p.Groups,
		TherapistName:       p.TherapistName,
		TherapistPhone:      p.TherapistPhone,
		TherapistEmail:      p.TherapistEmail,
		OnWaitingList:       p.OnWaitingList,
		OnWaitingListValues: p.OnWaitingListValues,
		Attendance:          p.Attendance,
		Evaluations:         p.Evaluations,
	}
}

func ToParticipantResponses(items []entity.Participant) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(items))
	for i := range items {
		out = append(out, *ToParticipantResponse(&items[i]))
	}
	return out
}

// ToEntity builds the participant value a save request describes.
func (r *SaveParticipantRequest) ToEntity() entity.Participant {
	attendance := r.Attendance
	if attendance == nil {
		attendance = entity.AttendanceLedger{}
	}
	evaluations := r.Evaluations
	if evaluations == nil {
		evaluations = entity.EvaluationList{}
	}

	return entity.Participant{
		Name:                r.Name,
		Email:               r.Email,
		NationalID:          r.NationalID,
		Phone:               r.Phone,
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		Status:              r.Status,
		DepartureReason:     r.DepartureReason,
		Observations:        r.Observations,
		Groups:              r.Groups,
		TherapistName:       r.TherapistName,
		TherapistPhone:      r.TherapistPhone,
		TherapistEmail:      r.TherapistEmail,
		OnWaitingList:       r.OnWaitingList,
		OnWaitingListValues: r.OnWaitingListValues,
		Attendance:          attendance,
		Evaluations:         evaluations,
	}
}
