package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	coreEntity "amparo-api/core/entity"
)

// Status of a participant's enrollment.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Group is one of the fixed support-group tags a participant can hold.
type Group string

const (
	GroupEmergencyIntake   Group = "Emergency Intake"
	GroupWomensCircle      Group = "Women's Circle"
	GroupHealingCircle     Group = "Healing Circle"
	GroupIndividualTherapy Group = "Individual Therapy"
	GroupValuesTherapy     Group = "Values-Based Group Therapy"
	GroupOther             Group = "Other"
)

// GroupOptions is the closed vocabulary, in display order.
var GroupOptions = []Group{
	GroupEmergencyIntake,
	GroupWomensCircle,
	GroupHealingCircle,
	GroupIndividualTherapy,
	GroupValuesTherapy,
	GroupOther,
}

// IsTherapy reports whether the group follows the free-scheduling regime.
func (g Group) IsTherapy() bool {
	return g == GroupIndividualTherapy || g == GroupValuesTherapy
}

// WeeklyMeetingWeekdays maps each weekly-recurrence group to its meeting day.
var WeeklyMeetingWeekdays = map[Group]time.Weekday{
	GroupEmergencyIntake: time.Tuesday,
	GroupWomensCircle:    time.Wednesday,
	GroupHealingCircle:   time.Thursday,
}

// IsWeekly reports whether the group meets on a fixed weekday.
func (g Group) IsWeekly() bool {
	_, ok := WeeklyMeetingWeekdays[g]
	return ok
}

// GroupList is the participant's group set, stored as a JSONB array.
type GroupList []Group

func (l GroupList) Contains(g Group) bool {
	for _, held := range l {
		if held == g {
			return true
		}
	}
	return false
}

func (l GroupList) HasTherapyGroup() bool {
	for _, g := range l {
		if g.IsTherapy() {
			return true
		}
	}
	return false
}

func (l GroupList) HasWeeklyGroup() bool {
	for _, g := range l {
		if g.IsWeekly() {
			return true
		}
	}
	return false
}

func (l GroupList) Value() (driver.Value, error) {
	if l == nil {
		l = GroupList{}
	}
	return json.Marshal(l)
}

func (l *GroupList) Scan(value any) error {
	return scanJSONB(value, l)
}

// AttendanceStatus marks a session outcome.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// AttendanceEntry is one per-date ledger record. All fields are partial;
// pointers distinguish "not provided" from an explicit value when merging.
type AttendanceEntry struct {
	Status    *AttendanceStatus `json:"status,omitempty"`
	Evolution *string           `json:"evolution,omitempty"`
	Time      *string           `json:"time,omitempty"`
}

// Merge overlays the fields present in partial onto the entry, leaving the
// rest untouched.
func (e AttendanceEntry) Merge(partial AttendanceEntry) AttendanceEntry {
	if partial.Status != nil {
		e.Status = partial.Status
	}
	if partial.Evolution != nil {
		e.Evolution = partial.Evolution
	}
	if partial.Time != nil {
		e.Time = partial.Time
	}
	return e
}

// AttendanceLedger maps ISO calendar dates (YYYY-MM-DD) to entries, stored as
// a JSONB object.
type AttendanceLedger map[string]AttendanceEntry

// WithEntry returns a copy of the ledger with partial merged into the entry
// at date. The receiver is not modified.
func (a AttendanceLedger) WithEntry(date string, partial AttendanceEntry) AttendanceLedger {
	out := make(AttendanceLedger, len(a)+1)
	for d, entry := range a {
		out[d] = entry
	}
	out[date] = out[date].Merge(partial)
	return out
}

// AbsenceCount counts entries marked absent across all dates.
func (a AttendanceLedger) AbsenceCount() int {
	count := 0
	for _, entry := range a {
		if entry.Status != nil && *entry.Status == AttendanceAbsent {
			count++
		}
	}
	return count
}

func (a AttendanceLedger) Value() (driver.Value, error) {
	if a == nil {
		a = AttendanceLedger{}
	}
	return json.Marshal(a)
}

func (a *AttendanceLedger) Scan(value any) error {
	return scanJSONB(value, a)
}

// Evaluation is an append-only session note.
type Evaluation struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

type EvaluationList []Evaluation

func (l EvaluationList) Value() (driver.Value, error) {
	if l == nil {
		l = EvaluationList{}
	}
	return json.Marshal(l)
}

func (l *EvaluationList) Scan(value any) error {
	return scanJSONB(value, l)
}

// Participant is one person enrolled in the program. Optional text fields use
// the empty string for "absent"; the ledger and lists are JSONB columns on
// the single participants table.
type Participant struct {
	Name                string           `db:"name" json:"name"`
	Email               string           `db:"email" json:"email,omitempty"`
	NationalID          string           `db:"national_id" json:"national_id"`
	Phone               string           `db:"phone" json:"phone"`
	StartDate           string           `db:"start_date" json:"start_date"`
	EndDate             string           `db:"end_date" json:"end_date,omitempty"`
	Status              Status           `db:"status" json:"status"`
	DepartureReason     string           `db:"departure_reason" json:"departure_reason,omitempty"`
	Observations        string           `db:"observations" json:"observations"`
	Groups              GroupList        `db:"groups" json:"groups"`
	TherapistName       string           `db:"therapist_name" json:"therapist_name,omitempty"`
	TherapistPhone      string           `db:"therapist_phone" json:"therapist_phone,omitempty"`
	TherapistEmail      string           `db:"therapist_email" json:"therapist_email,omitempty"`
	OnWaitingList       bool             `db:"on_waiting_list" json:"on_waiting_list"`
	OnWaitingListValues bool             `db:"on_waiting_list_values" json:"on_waiting_list_values"`
	Attendance          AttendanceLedger `db:"attendance" json:"attendance"`
	Evaluations         EvaluationList   `db:"evaluations" json:"evaluations"`
	coreEntity.BaseEntity
}

// WithAttendance returns a participant snapshot with partial merged into the
// ledger entry at date. The receiver is unchanged; maps are copied, not
// shared.
func (p Participant) WithAttendance(date string, partial AttendanceEntry) Participant {
	p.Attendance = p.Attendance.WithEntry(date, partial)
	return p
}

func scanJSONB(value any, dest any) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, dest)
}
