package service

import (
	"fmt"
	"regexp"
	"strings"

	"amparo-api/modules/participant/entity"
)

// CSV import columns. Matching is positional against the header row; the
// parser deliberately does no quoted-field handling.
const (
	columnName      = "name"
	columnStartDate = "startDate"
	columnGroups    = "groups"
)

var requiredColumns = []string{columnName, columnStartDate, columnGroups}

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseParticipantCSV turns a comma-delimited blob into draft participant
// records. A missing required header or a file with fewer than two lines
// fails the whole import; individual bad rows are skipped and reported as
// warnings.
func ParseParticipantCSV(text string) ([]entity.Participant, []string, error) {
	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n")), "\n")
	if len(lines) < 2 {
		return nil, nil, fmt.Errorf("the CSV file is empty or contains only a header")
	}

	header := splitRow(lines[0])
	for _, req := range requiredColumns {
		if !containsColumn(header, req) {
			return nil, nil, fmt.Errorf("invalid CSV file: required column %q not found", req)
		}
	}

	var drafts []entity.Participant
	var warnings []string
	for i := 1; i < len(lines); i++ {
		values := splitRow(lines[i])

		row := map[string]string{}
		for idx, h := range header {
			if idx < len(values) {
				row[h] = values[idx]
			} else {
				row[h] = ""
			}
		}

		if row[columnName] == "" || row[columnStartDate] == "" || row[columnGroups] == "" {
			warnings = append(warnings, fmt.Sprintf(
				"skipped line %d: missing required values (name, startDate, groups)", i+1))
			continue
		}
		if !isoDatePattern.MatchString(row[columnStartDate]) {
			warnings = append(warnings, fmt.Sprintf(
				"skipped line %d: invalid startDate format (expected YYYY-MM-DD)", i+1))
			continue
		}

		groups := entity.GroupList{}
		for _, g := range strings.Split(row[columnGroups], "|") {
			groups = append(groups, entity.Group(strings.TrimSpace(g)))
		}

		drafts = append(drafts, entity.Participant{
			Name:         row[columnName],
			NationalID:   row["cpf"],
			Phone:        row["phone"],
			Email:        row["email"],
			StartDate:    row[columnStartDate],
			Observations: row["observations"],
			Groups:       groups,
			Status:       entity.StatusActive,
			Attendance:   entity.AttendanceLedger{},
			Evaluations:  entity.EvaluationList{},
		})
	}

	return drafts, warnings, nil
}

func splitRow(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func containsColumn(header []string, name string) bool {
	for _, h := range header {
		if h == name {
			return true
		}
	}
	return false
}
