package service

import (
	"strings"
	"testing"
	"time"

	"amparo-api/modules/participant/entity"

	"github.com/stretchr/testify/require"
)

func weeklyParticipant(start, end string, groups ...entity.Group) *entity.Participant {
	return &entity.Participant{
		Name:      "Maria",
		StartDate: start,
		EndDate:   end,
		Status:    entity.StatusActive,
		Groups:    entity.GroupList(groups),
	}
}

func TestWeeklyMeetingDatesFullProgramWednesdays(t *testing.T) {
	p := weeklyParticipant("2025-10-01", "2026-04-30", entity.GroupWomensCircle)

	dates := WeeklyMeetingDates(p)
	require.NotEmpty(t, dates)

	for _, date := range dates {
		d, err := time.Parse("2006-01-02", date)
		require.NoError(t, err)
		require.Equal(t, time.Wednesday, d.Weekday(), "date %s", date)
	}

	require.Equal(t, "2025-10-01", dates[0])
	require.Equal(t, "2026-04-29", dates[len(dates)-1])

	// Ascending, no duplicates.
	for i := 1; i < len(dates); i++ {
		require.Less(t, dates[i-1], dates[i])
	}

	// Every Wednesday between the bounds, inclusive.
	require.Len(t, dates, 31)
}

func TestWeeklyMeetingDatesUnionOfWeekdays(t *testing.T) {
	p := weeklyParticipant("2025-10-06", "2025-10-12",
		entity.GroupEmergencyIntake, entity.GroupHealingCircle)

	dates := WeeklyMeetingDates(p)
	require.Equal(t, []string{"2025-10-07", "2025-10-09"}, dates)
}

func TestWeeklyMeetingDatesClipsToProgramWindow(t *testing.T) {
	p := weeklyParticipant("2025-01-01", "", entity.GroupWomensCircle)

	dates := WeeklyMeetingDates(p)
	require.NotEmpty(t, dates)
	require.Equal(t, "2025-10-01", dates[0], "enrollment before the program starts at the program start")
}

func TestWeeklyMeetingDatesEmptyIntersection(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"ended before program start", "2025-01-01", "2025-06-30"},
		{"starts after program end", "2026-06-01", ""},
		{"end before start", "2025-11-01", "2025-10-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := weeklyParticipant(tt.start, tt.end, entity.GroupWomensCircle)
			require.Empty(t, WeeklyMeetingDates(p))
		})
	}
}

func TestWeeklyMeetingDatesNoWeeklyGroups(t *testing.T) {
	p := weeklyParticipant("2025-10-01", "", entity.GroupIndividualTherapy)
	require.Empty(t, WeeklyMeetingDates(p))
}

func TestGroupDatesByMonth(t *testing.T) {
	dates := []string{"2025-10-01", "2025-10-08", "2025-11-05", "2025-11-12"}

	buckets := GroupDatesByMonth(dates)
	require.Len(t, buckets, 2)
	require.Equal(t, "2025-10", buckets[0].Month)
	require.Equal(t, "October 2025", buckets[0].Label)
	require.Equal(t, []string{"2025-10-01", "2025-10-08"}, buckets[0].Dates)
	require.Equal(t, "2025-11", buckets[1].Month)
	require.Equal(t, []string{"2025-11-05", "2025-11-12"}, buckets[1].Dates)
}

func TestGroupDatesByMonthEmpty(t *testing.T) {
	require.Empty(t, GroupDatesByMonth(nil))
}

func TestClassifyRegime(t *testing.T) {
	tests := []struct {
		name   string
		groups entity.GroupList
		want   Regime
	}{
		{"weekly only", entity.GroupList{entity.GroupWomensCircle}, Regime{Weekly: true}},
		{"therapy only", entity.GroupList{entity.GroupValuesTherapy}, Regime{Therapy: true}},
		{"both", entity.GroupList{entity.GroupHealingCircle, entity.GroupIndividualTherapy}, Regime{Weekly: true, Therapy: true}},
		{"neither", entity.GroupList{entity.GroupOther}, Regime{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClassifyRegime(tt.groups))
		})
	}
}

func TestGoogleCalendarLink(t *testing.T) {
	p := &entity.Participant{
		Name:           "Maria",
		Email:          "maria@example.org",
		TherapistName:  "Dr. Silva",
		TherapistEmail: "silva@example.org",
	}

	link := GoogleCalendarLink(p, "2025-10-07", "14:30")
	require.True(t, strings.HasPrefix(link, "https://calendar.google.com/calendar/render?"))

	require.Contains(t, link, "action=TEMPLATE")
	require.Contains(t, link, "20251007T143000%2F20251007T152000")
	require.Contains(t, link, "maria%40example.org%2Csilva%40example.org")
}

func TestGoogleCalendarLinkBadTime(t *testing.T) {
	p := &entity.Participant{Name: "Maria"}
	require.Empty(t, GoogleCalendarLink(p, "2025-10-07", "half past two"))
}
