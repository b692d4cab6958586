package service

import (
	"fmt"
	"strings"

	"amparo-api/modules/participant/entity"

	"github.com/xuri/excelize/v2"
)

var xlsxColumns = []struct {
	Header string
	Width  float64
}{
	{"Name", 28},
	{"National ID", 16},
	{"Phone", 16},
	{"Email", 26},
	{"Groups", 32},
	{"Status", 10},
	{"Start", 12},
	{"End", 12},
	{"Departure Reason", 22},
	{"Therapist", 20},
	{"Observations", 40},
}

// BuildXLSX renders the filtered roster to a spreadsheet.
func BuildXLSX(participants []entity.Participant) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Report"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	for i, col := range xlsxColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
			return nil, err
		}
		cell := fmt.Sprintf("%s1", name)
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(xlsxColumns))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}

	for rowIdx, p := range participants {
		row := rowIdx + 2
		values := []any{
			p.Name,
			p.NationalID,
			p.Phone,
			p.Email,
			joinGroups(p.Groups),
			string(p.Status),
			p.StartDate,
			p.EndDate,
			p.DepartureReason,
			p.TherapistName,
			p.Observations,
		}
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func joinGroups(groups entity.GroupList) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		parts = append(parts, string(g))
	}
	return strings.Join(parts, ", ")
}
