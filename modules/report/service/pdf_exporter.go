package service

import (
	"bytes"
	"fmt"

	"amparo-api/modules/participant/entity"
	"amparo-api/modules/report/dto"

	"github.com/go-pdf/fpdf"
)

// BuildPDF renders the filtered roster to a paginated landscape document with
// the report period and summary counts on top.
func BuildPDF(participants []entity.Participant, filter dto.ReportFilter, summary dto.ReportSummary) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Participant Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, periodLine(filter), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6,
		fmt.Sprintf("Total: %d    Active: %d    Inactive: %d",
			summary.Total, summary.Active, summary.Inactive),
		"", 1, "L", false, 0, "")
	pdf.Ln(3)

	headers := []string{"Name", "National ID", "Phone", "Groups", "Status", "Start", "End", "Departure Reason"}
	widths := []float64{50, 26, 28, 58, 18, 22, 22, 43}

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}
	writeHeader()

	for _, p := range participants {
		// Repeat the table header after a page break.
		if pdf.GetY() > 180 {
			pdf.AddPage()
			writeHeader()
		}

		cells := []string{
			p.Name,
			p.NationalID,
			p.Phone,
			joinGroups(p.Groups),
			string(p.Status),
			p.StartDate,
			p.EndDate,
			p.DepartureReason,
		}
		for i, v := range cells {
			pdf.CellFormat(widths[i], 6, truncateForCell(pdf, v, widths[i]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func periodLine(filter dto.ReportFilter) string {
	switch {
	case filter.StartDate != "" && filter.EndDate != "":
		return fmt.Sprintf("Period: %s to %s", filter.StartDate, filter.EndDate)
	case filter.StartDate != "":
		return fmt.Sprintf("Period: from %s", filter.StartDate)
	case filter.EndDate != "":
		return fmt.Sprintf("Period: until %s", filter.EndDate)
	default:
		return "Period: full program"
	}
}

// truncateForCell trims the value until it fits the column, appending an
// ellipsis when anything was cut.
func truncateForCell(pdf *fpdf.Fpdf, value string, width float64) string {
	const padding = 2
	if pdf.GetStringWidth(value) <= width-padding {
		return value
	}
	runes := []rune(value)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width-padding {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
