package service

import (
	"amparo-api/modules/participant/entity"
)

// absenceLimit is the number of recorded absences, across all dates, that
// automatically ends an active enrollment.
const absenceLimit = 2

// ApplyAttendance merges partial into the ledger entry at date and applies
// the deactivation rule, returning the new participant snapshot and whether
// the rule fired. The input is not mutated.
//
// The rule fires only on a mutation that sets status=absent while the
// participant is active; it counts every absence in the ledger, consecutive
// or not, and reaching the limit flips the participant to inactive in the
// same snapshot. No departure reason is set; that stays with the operator.
func ApplyAttendance(p entity.Participant, date string, partial entity.AttendanceEntry) (entity.Participant, bool) {
	updated := p.WithAttendance(date, partial)

	marksAbsent := partial.Status != nil && *partial.Status == entity.AttendanceAbsent
	if !marksAbsent || p.Status != entity.StatusActive {
		return updated, false
	}

	if updated.Attendance.AbsenceCount() >= absenceLimit {
		updated.Status = entity.StatusInactive
		return updated, true
	}
	return updated, false
}
