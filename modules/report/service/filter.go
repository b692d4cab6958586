package service

import (
	"amparo-api/modules/participant/entity"
	"amparo-api/modules/report/dto"
)

// FilterReport selects the roster subset described by the filter and derives
// the summary counts from that same subset. The input slice is not modified.
//
// Criteria compose as AND; within the group list the semantics are union
// (holding any selected group passes). ISO date strings compare correctly
// with plain string ordering, so no parsing is needed here.
func FilterReport(participants []entity.Participant, filter dto.ReportFilter) ([]entity.Participant, dto.ReportSummary) {
	matched := make([]entity.Participant, 0, len(participants))
	summary := dto.ReportSummary{}

	for _, p := range participants {
		if !matchesFilter(p, filter) {
			continue
		}
		matched = append(matched, p)
		summary.Total++
		if p.Status == entity.StatusActive {
			summary.Active++
		} else {
			summary.Inactive++
		}
	}

	return matched, summary
}

func matchesFilter(p entity.Participant, filter dto.ReportFilter) bool {
	if filter.StartDate != "" {
		if p.StartDate < filter.StartDate {
			return false
		}
		// An enrollment that fully elapsed before the report window never
		// resurfaces, even when other criteria match.
		if p.EndDate != "" && p.EndDate < filter.StartDate {
			return false
		}
	}
	if filter.EndDate != "" && p.StartDate > filter.EndDate {
		return false
	}

	if filter.Status != "" && string(p.Status) != filter.Status {
		return false
	}

	// The departure reason only discriminates among inactive records.
	if filter.DepartureReason != "" && filter.Status != string(entity.StatusActive) {
		if p.DepartureReason != filter.DepartureReason {
			return false
		}
	}

	if len(filter.Groups) > 0 && !holdsAnyGroup(p.Groups, filter.Groups) {
		return false
	}

	return true
}

func holdsAnyGroup(held entity.GroupList, selected []string) bool {
	for _, g := range selected {
		if held.Contains(entity.Group(g)) {
			return true
		}
	}
	return false
}
