package service

import (
	"testing"

	"amparo-api/modules/participant/entity"

	"github.com/stretchr/testify/require"
)

func TestParseParticipantCSV(t *testing.T) {
	text := "name,startDate,groups,phone,cpf\n" +
		"Maria Souza,2025-10-01,Women's Circle|Healing Circle,11999990000,12345678900\n" +
		"Ana Lima,2025-10-15,Individual Therapy,11888880000,\n"

	drafts, warnings, err := ParseParticipantCSV(text)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Len(t, drafts, 2)

	first := drafts[0]
	require.Equal(t, "Maria Souza", first.Name)
	require.Equal(t, "2025-10-01", first.StartDate)
	require.Equal(t, entity.GroupList{entity.GroupWomensCircle, entity.GroupHealingCircle}, first.Groups)
	require.Equal(t, "11999990000", first.Phone)
	require.Equal(t, "12345678900", first.NationalID)
	require.Equal(t, entity.StatusActive, first.Status)
	require.Empty(t, first.Attendance)
	require.Empty(t, first.Evaluations)
	require.False(t, first.OnWaitingList)
}

func TestParseParticipantCSVHeaderOrderIrrelevant(t *testing.T) {
	text := "groups,name,startDate\n" +
		"Other,Joana,2025-11-01\n"

	drafts, warnings, err := ParseParticipantCSV(text)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Len(t, drafts, 1)
	require.Equal(t, "Joana", drafts[0].Name)
}

func TestParseParticipantCSVMissingHeaderFails(t *testing.T) {
	text := "name,startDate\n" +
		"Maria,2025-10-01\n"

	_, _, err := ParseParticipantCSV(text)
	require.Error(t, err)
	require.Contains(t, err.Error(), "groups")
}

func TestParseParticipantCSVTooShortFails(t *testing.T) {
	_, _, err := ParseParticipantCSV("name,startDate,groups")
	require.Error(t, err)
}

func TestParseParticipantCSVSkipsBadRows(t *testing.T) {
	text := "name,startDate,groups\n" +
		"Maria,01/10/2025,Women's Circle\n" +
		",2025-10-01,Women's Circle\n" +
		"Ana,2025-10-01,Women's Circle\n"

	drafts, warnings, err := ParseParticipantCSV(text)
	require.NoError(t, err)
	require.Len(t, drafts, 1, "well-formed rows still import after bad ones")
	require.Equal(t, "Ana", drafts[0].Name)
	require.Len(t, warnings, 2)
	require.Contains(t, warnings[0], "line 2")
	require.Contains(t, warnings[1], "line 3")
}

func TestParseParticipantCSVWindowsLineEndings(t *testing.T) {
	text := "name,startDate,groups\r\nMaria,2025-10-01,Other\r\n"

	drafts, warnings, err := ParseParticipantCSV(text)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Len(t, drafts, 1)
}

func TestParseParticipantCSVGroupsNotValidated(t *testing.T) {
	// Group values map verbatim; unknown tags pass through.
	text := "name,startDate,groups\n" +
		"Maria,2025-10-01,Some Future Group\n"

	drafts, _, err := ParseParticipantCSV(text)
	require.NoError(t, err)
	require.Equal(t, entity.GroupList{entity.Group("Some Future Group")}, drafts[0].Groups)
}
