package service

import (
	"fmt"
	"iter"
	"time"

	"github.com/MKhiriev/days-together/models"
)

// DateKey formats a calendar day as "Y-M-D" without zero padding.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%d-%d-%d", year, int(month), day)
}

// DateKeyOf returns the key of the day t falls on in zone.
func DateKeyOf(t time.Time, zone *time.Location) string {
	if zone != nil {
		t = t.In(zone)
	}
	return DateKey(t.Year(), t.Month(), t.Day())
}

// MonthGrid yields one blank cell per weekday before the first of the month
// (weeks start on Sunday) and then one cell per day.
func MonthGrid(year int, month time.Month) iter.Seq[models.DayCell] {
	return func(yield func(models.DayCell) bool) {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		daysInMonth := first.AddDate(0, 1, -1).Day()

		for range int(first.Weekday()) {
			if !yield(models.DayCell{Blank: true}) {
				return
			}
		}

		for day := 1; day <= daysInMonth; day++ {
			cell := models.DayCell{Day: day, DateKey: DateKey(year, month, day)}
			if !yield(cell) {
				return
			}
		}
	}
}
