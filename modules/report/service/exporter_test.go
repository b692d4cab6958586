package service

import (
	"bytes"
	"testing"

	"amparo-api/modules/participant/entity"
	"amparo-api/modules/report/dto"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildXLSX(t *testing.T) {
	data, err := BuildXLSX(reportRoster())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Report")
	require.NoError(t, err)
	require.Len(t, rows, 5, "header plus one row per participant")
	require.Equal(t, "Name", rows[0][0])
	require.Equal(t, "Observations", rows[0][10])
	require.Equal(t, "Maria", rows[1][0])
	require.Equal(t, "Women's Circle", rows[1][4])
}

func TestBuildXLSXEmptyRoster(t *testing.T) {
	data, err := BuildXLSX(nil)
	require.NoError(t, err)
	require.NotEmpty(t, data, "an empty report still renders the header")
}

func TestBuildPDF(t *testing.T) {
	filter := dto.ReportFilter{StartDate: "2025-10-01", EndDate: "2026-04-30"}
	_, summary := FilterReport(reportRoster(), dto.ReportFilter{})

	data, err := BuildPDF(reportRoster(), filter, summary)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestBuildPDFManyRowsPaginates(t *testing.T) {
	var roster []entity.Participant
	for i := 0; i < 80; i++ {
		roster = append(roster, reportParticipant("Maria", "2025-10-01", "", entity.StatusActive, entity.GroupWomensCircle))
	}

	data, err := BuildPDF(roster, dto.ReportFilter{}, dto.ReportSummary{Total: 80, Active: 80})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportFilename(t *testing.T) {
	require.Equal(t, "participant-report.xlsx", exportFilename(dto.ReportFilter{}, "xlsx"))
	require.Equal(t,
		"participant-report-2025-10-01-2026-04-30.pdf",
		exportFilename(dto.ReportFilter{StartDate: "2025-10-01", EndDate: "2026-04-30"}, "pdf"))
}
