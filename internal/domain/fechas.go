package domain

import (
	"time"

	"github.com/go-playground/locales/es_AR"
)

// Weekdays the clinic takes appointments on.
var bookableWeekdays = map[time.Weekday]bool{
	time.Monday:    true,
	time.Tuesday:   true,
	time.Wednesday: true,
	time.Thursday:  true,
}

// AvailableDate is one candidate booking date: the machine value sent to
// the webhooks plus the label shown to the patient.
type AvailableDate struct {
	Value string // YYYY-MM-DD
	Label string // es-AR long form, e.g. "lunes, 6 de enero de 2025"
}

var esAR = es_AR.New()

// AvailableDates generates the candidate dates for the booking window:
// the next BookingWindowDays calendar days counted from now, today
// excluded, keeping only the clinic's bookable weekdays. Deterministic
// given now.
func AvailableDates(now time.Time) []AvailableDate {
	dates := make([]AvailableDate, 0, BookingWindowDays)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for i := 1; i <= BookingWindowDays; i++ {
		d := day.AddDate(0, 0, i)
		if !bookableWeekdays[d.Weekday()] {
			continue
		}
		dates = append(dates, AvailableDate{
			Value: d.Format(DateFormat),
			Label: esAR.FmtDateFull(d),
		})
	}

	return dates
}

// FormatDateLabel renders an ISO date in the patient-facing es-AR form.
// Returns the input unchanged if it does not parse.
func FormatDateLabel(isoDate string) string {
	d, err := time.Parse(DateFormat, isoDate)
	if err != nil {
		return isoDate
	}
	return esAR.FmtDateFull(d)
}
