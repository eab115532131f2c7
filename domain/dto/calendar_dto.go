package dto

// CalendarCheck is the outcome of a single diagnostic step
type CalendarCheck struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// CalendarDiagnosis aggregates the Google Calendar OAuth checks
type CalendarDiagnosis struct {
	Timestamp      string          `json:"timestamp"`
	HasAccessToken bool            `json:"hasAccessToken"`
	CanRefresh     bool            `json:"canRefresh"`
	CalendarCount  int             `json:"calendarCount"`
	UpcomingEvents int             `json:"upcomingEvents"`
	Checks         []CalendarCheck `json:"checks"`
}

// Healthy reports whether every check passed
func (d *CalendarDiagnosis) Healthy() bool {
	for _, c := range d.Checks {
		if !c.OK {
			return false
		}
	}
	return len(d.Checks) > 0
}
