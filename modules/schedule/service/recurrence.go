package service

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"amparo-api/core/constants"
	"amparo-api/modules/participant/entity"
)

// Regime says which meeting regimes a participant's groups select. Holding
// groups from both regimes is valid; holding neither means no meetings.
type Regime struct {
	Weekly  bool `json:"weekly"`
	Therapy bool `json:"therapy"`
}

func ClassifyRegime(groups entity.GroupList) Regime {
	return Regime{
		Weekly:  groups.HasWeeklyGroup(),
		Therapy: groups.HasTherapyGroup(),
	}
}

// MonthBucket groups meeting dates by calendar month for display. Buckets
// are ordered by their first date.
type MonthBucket struct {
	Month string   `json:"month"` // YYYY-MM
	Label string   `json:"label"` // e.g. "October 2025"
	Dates []string `json:"dates"`
}

// WeeklyMeetingDates enumerates every date in the effective window whose
// weekday matches any of the participant's weekly groups. The effective
// window is the enrollment window clipped to the program window; when the
// intersection is empty there are no dates. Output is ascending and
// de-duplicated (two groups meeting the same weekday yield one date).
func WeeklyMeetingDates(p *entity.Participant) []string {
	weekdays := map[time.Weekday]bool{}
	for _, g := range p.Groups {
		if day, ok := entity.WeeklyMeetingWeekdays[g]; ok {
			weekdays[day] = true
		}
	}
	if len(weekdays) == 0 {
		return nil
	}

	programStart, _ := time.Parse(constants.DateLayout, constants.ProgramStartDate)
	programEnd, _ := time.Parse(constants.DateLayout, constants.ProgramEndDate)

	start := programStart
	if enrolled, err := time.Parse(constants.DateLayout, p.StartDate); err == nil && enrolled.After(start) {
		start = enrolled
	}

	end := programEnd
	if p.EndDate != "" {
		if ended, err := time.Parse(constants.DateLayout, p.EndDate); err == nil && ended.Before(end) {
			end = ended
		}
	}

	if start.After(end) {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if weekdays[d.Weekday()] {
			dates = append(dates, d.Format(constants.DateLayout))
		}
	}
	return dates
}

// GroupDatesByMonth buckets an ascending date list by calendar month,
// ordered by each bucket's first entry.
func GroupDatesByMonth(dates []string) []MonthBucket {
	byMonth := map[string]*MonthBucket{}
	var order []string

	for _, date := range dates {
		month := date[:7]
		bucket, ok := byMonth[month]
		if !ok {
			label := month
			if t, err := time.Parse(constants.DateLayout, date); err == nil {
				label = t.Format("January 2006")
			}
			bucket = &MonthBucket{Month: month, Label: label}
			byMonth[month] = bucket
			order = append(order, month)
		}
		bucket.Dates = append(bucket.Dates, date)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return byMonth[order[i]].Dates[0] < byMonth[order[j]].Dates[0]
	})

	out := make([]MonthBucket, 0, len(order))
	for _, month := range order {
		out = append(out, *byMonth[month])
	}
	return out
}

// GoogleCalendarLink builds an event-template URL for a scheduled therapy
// session. Sessions are 50 minutes; the participant and therapist emails are
// invited when present.
func GoogleCalendarLink(p *entity.Participant, date, timeOfDay string) string {
	start, err := time.Parse("2006-01-02T15:04", date+"T"+timeOfDay)
	if err != nil {
		return ""
	}
	end := start.Add(50 * time.Minute)

	const stamp = "20060102T150405"
	therapist := p.TherapistName
	if therapist == "" {
		therapist = "the therapist"
	}

	var guests []string
	if p.Email != "" {
		guests = append(guests, p.Email)
	}
	if p.TherapistEmail != "" {
		guests = append(guests, p.TherapistEmail)
	}

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", "Therapy Session - "+p.Name)
	q.Set("dates", start.Format(stamp)+"/"+end.Format(stamp))
	q.Set("details", "Therapy session with "+therapist+".")
	if len(guests) > 0 {
		q.Set("add", strings.Join(guests, ","))
	}

	return "https://calendar.google.com/calendar/render?" + q.Encode()
}
