package service

import (
	"testing"

	"amparo-api/modules/participant/entity"

	"github.com/stretchr/testify/require"
)

func statusPtr(s entity.AttendanceStatus) *entity.AttendanceStatus { return &s }
func strPtr(s string) *string                                      { return &s }

func activeParticipant(ledger entity.AttendanceLedger) entity.Participant {
	if ledger == nil {
		ledger = entity.AttendanceLedger{}
	}
	return entity.Participant{
		Name:       "Maria",
		StartDate:  "2025-10-01",
		Status:     entity.StatusActive,
		Groups:     entity.GroupList{entity.GroupWomensCircle},
		Attendance: ledger,
	}
}

func TestApplyAttendanceMergesPartialEntry(t *testing.T) {
	p := activeParticipant(entity.AttendanceLedger{
		"2025-10-08": {Status: statusPtr(entity.AttendancePresent)},
	})

	updated, deactivated := ApplyAttendance(p, "2025-10-08", entity.AttendanceEntry{
		Evolution: strPtr("good session"),
	})

	require.False(t, deactivated)
	entry := updated.Attendance["2025-10-08"]
	require.Equal(t, entity.AttendancePresent, *entry.Status, "merge keeps fields the partial does not set")
	require.Equal(t, "good session", *entry.Evolution)
}

func TestApplyAttendanceIsIdempotent(t *testing.T) {
	p := activeParticipant(nil)
	partial := entity.AttendanceEntry{Status: statusPtr(entity.AttendancePresent), Evolution: strPtr("note")}

	once, _ := ApplyAttendance(p, "2025-10-08", partial)
	twice, _ := ApplyAttendance(once, "2025-10-08", partial)

	require.Equal(t, once.Attendance, twice.Attendance)
	require.Equal(t, once.Status, twice.Status)
}

func TestApplyAttendanceDoesNotMutateInput(t *testing.T) {
	p := activeParticipant(nil)

	ApplyAttendance(p, "2025-10-08", entity.AttendanceEntry{Status: statusPtr(entity.AttendanceAbsent)})

	require.Empty(t, p.Attendance)
	require.Equal(t, entity.StatusActive, p.Status)
}

func TestSecondAbsenceDeactivates(t *testing.T) {
	p := activeParticipant(entity.AttendanceLedger{
		"2025-10-08": {Status: statusPtr(entity.AttendanceAbsent)},
	})

	updated, deactivated := ApplyAttendance(p, "2025-11-19", entity.AttendanceEntry{
		Status: statusPtr(entity.AttendanceAbsent),
	})

	require.True(t, deactivated)
	require.Equal(t, entity.StatusInactive, updated.Status)
	require.Empty(t, updated.DepartureReason, "the rule never writes a departure reason")
}

func TestFirstAbsenceDoesNotDeactivate(t *testing.T) {
	p := activeParticipant(nil)

	updated, deactivated := ApplyAttendance(p, "2025-10-08", entity.AttendanceEntry{
		Status: statusPtr(entity.AttendanceAbsent),
	})

	require.False(t, deactivated)
	require.Equal(t, entity.StatusActive, updated.Status)
}

func TestPresentNeverDeactivates(t *testing.T) {
	p := activeParticipant(entity.AttendanceLedger{
		"2025-10-08": {Status: statusPtr(entity.AttendanceAbsent)},
		"2025-10-15": {Status: statusPtr(entity.AttendanceAbsent)},
	})

	updated, deactivated := ApplyAttendance(p, "2025-10-22", entity.AttendanceEntry{
		Status: statusPtr(entity.AttendancePresent),
	})

	require.False(t, deactivated)
	require.Equal(t, entity.StatusActive, updated.Status, "only an absent mutation triggers the rule")
}

func TestInactiveParticipantNotRetriggered(t *testing.T) {
	p := activeParticipant(entity.AttendanceLedger{
		"2025-10-08": {Status: statusPtr(entity.AttendanceAbsent)},
		"2025-10-15": {Status: statusPtr(entity.AttendanceAbsent)},
	})
	p.Status = entity.StatusInactive

	updated, deactivated := ApplyAttendance(p, "2025-10-22", entity.AttendanceEntry{
		Status: statusPtr(entity.AttendanceAbsent),
	})

	require.False(t, deactivated)
	require.Equal(t, entity.StatusInactive, updated.Status)
}

func TestRetractingAbsenceKeepsStatus(t *testing.T) {
	// Flipping an absent entry to present lowers the count; status changes
	// stay with the operator.
	p := activeParticipant(entity.AttendanceLedger{
		"2025-10-08": {Status: statusPtr(entity.AttendanceAbsent)},
	})

	updated, deactivated := ApplyAttendance(p, "2025-10-08", entity.AttendanceEntry{
		Status: statusPtr(entity.AttendancePresent),
	})

	require.False(t, deactivated)
	require.Equal(t, 0, updated.Attendance.AbsenceCount())
	require.Equal(t, entity.StatusActive, updated.Status)
}
