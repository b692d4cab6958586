package dto

import (
	participantDto "amparo-api/modules/participant/dto"
)

// ReportFilter selects a roster subset. Empty string means no constraint on
// that criterion; an empty group list means all groups.
type ReportFilter struct {
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	Status          string   `json:"status"`
	DepartureReason string   `json:"departure_reason"`
	Groups          []string `json:"groups"`
}

// ReportSummary carries the counts derived from the filtered set.
type ReportSummary struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type ReportResponse struct {
	Filter       ReportFilter                          `json:"filter"`
	Summary      ReportSummary                         `json:"summary"`
	Participants []participantDto.ParticipantResponse `json:"participants"`
}

// ExportResult is returned when the export was also uploaded to object
// storage; the file itself is streamed in the HTTP response body.
type ExportResult struct {
	Filename  string `json:"filename"`
	StoredURL string `json:"stored_url,omitempty"`
}
