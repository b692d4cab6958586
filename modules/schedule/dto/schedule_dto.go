package dto

import (
	participantDto "amparo-api/modules/participant/dto"
	"amparo-api/modules/participant/entity"
)

// ===================== Request DTOs =====================

// SetAttendanceRequest is a partial ledger entry; absent fields leave the
// stored entry untouched.
type SetAttendanceRequest struct {
	Status    *entity.AttendanceStatus `json:"status"`
	Evolution *string                  `json:"evolution"`
	Time      *string                  `json:"time"`
}

// ===================== Response DTOs =====================

// WeeklyMeeting is one expected group-meeting date with whatever the ledger
// holds for it.
type WeeklyMeeting struct {
	Date      string                   `json:"date"`
	Weekday   string                   `json:"weekday"`
	Status    *entity.AttendanceStatus `json:"status,omitempty"`
	Evolution string                   `json:"evolution,omitempty"`
}

// WeeklyMonth is a display bucket of weekly meetings.
type WeeklyMonth struct {
	Month    string          `json:"month"`
	Label    string          `json:"label"`
	Meetings []WeeklyMeeting `json:"meetings"`
}

// TherapySession is a freely scheduled session: a ledger date carrying a
// time-of-day.
type TherapySession struct {
	Date         string                   `json:"date"`
	Time         string                   `json:"time"`
	Status       *entity.AttendanceStatus `json:"status,omitempty"`
	Evolution    string                   `json:"evolution,omitempty"`
	CalendarLink string                   `json:"calendar_link,omitempty"`
}

// ScheduleResponse is the full meeting view for one participant. When
// neither regime applies both sections are empty and HasMeetings is false.
type ScheduleResponse struct {
	ParticipantID   string           `json:"participant_id"`
	Weekly          bool             `json:"weekly"`
	Therapy         bool             `json:"therapy"`
	HasMeetings     bool             `json:"has_meetings"`
	WeeklyMeetings  []WeeklyMonth    `json:"weekly_meetings,omitempty"`
	TherapySessions []TherapySession `json:"therapy_sessions,omitempty"`
}

// SetAttendanceResponse returns the updated record plus whether the
// two-absence rule deactivated the participant, so the caller can surface a
// non-blocking notice.
type SetAttendanceResponse struct {
	Participant *participantDto.ParticipantResponse `json:"participant"`
	Deactivated bool                                `json:"deactivated"`
}
