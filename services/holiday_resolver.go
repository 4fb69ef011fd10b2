package services

import (
	"sort"
	"time"

	"hrmproject/models"
)

// upcomingHolidayLimit caps the "upcoming holidays" view.
const upcomingHolidayLimit = 7

// ResolveHolidays normalizes a set of holiday records against a reference
// date. Pure and deterministic: no I/O, no mutation of the input.
//
// Non-repeating holidays keep their stored date. Repeating holidays resolve to
// the occurrence of their month+day in the reference year, or in the next year
// when that occurrence falls on a calendar day strictly before the reference
// date's. February 29 resolves to February 28 whenever the candidate year is
// not a leap year.
func ResolveHolidays(records []models.Holiday, reference time.Time) []models.ResolvedHoliday {
	resolved := make([]models.ResolvedHoliday, 0, len(records))

	for _, record := range records {
		resolved = append(resolved, models.ResolvedHoliday{
			ID:               record.ID,
			Title:            record.Title,
			Description:      record.Description,
			RepeatsEveryYear: record.RepeatsEveryYear,
			HolidayTypeID:    record.HolidayTypeID,
			OriginalDate:     record.Date,
			ResolvedDate:     resolveDate(record, reference),
		})
	}

	return resolved
}

func resolveDate(record models.Holiday, reference time.Time) time.Time {
	if !record.RepeatsEveryYear {
		return record.Date
	}

	candidate := occurrenceInYear(record.Date, reference.Year())
	if beforeDay(candidate, reference) {
		// This year's occurrence has passed; the next occurrence is what the
		// dashboard should show.
		candidate = occurrenceInYear(record.Date, reference.Year()+1)
	}

	return candidate
}

// occurrenceInYear places a holiday's month+day into the given year,
// substituting February 28 when the original date is February 29 and the year
// is not a leap year.
func occurrenceInYear(original time.Time, year int) time.Time {
	month, day := original.Month(), original.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, original.Location())
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// beforeDay reports whether a's calendar date falls strictly before b's.
// Comparing date components keeps stored UTC dates and reference times in
// other locations on the same footing; comparing instants would not.
func beforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TodaysHolidays returns the resolved holidays whose effective day matches the
// reference date: month+day of the original date for repeating holidays
// (independent of year), the exact stored date for non-repeating ones.
func TodaysHolidays(resolved []models.ResolvedHoliday, reference time.Time) []models.ResolvedHoliday {
	todays := []models.ResolvedHoliday{}
	for _, h := range resolved {
		if h.RepeatsEveryYear {
			if h.OriginalDate.Month() == reference.Month() && h.OriginalDate.Day() == reference.Day() {
				todays = append(todays, h)
			}
			continue
		}
		if sameDay(h.OriginalDate, reference) {
			todays = append(todays, h)
		}
	}

	return todays
}

// UpcomingHolidays returns the resolved holidays on or after the reference
// date (a holiday occurring today is included), sorted ascending by resolved
// date and capped to seven entries.
func UpcomingHolidays(resolved []models.ResolvedHoliday, reference time.Time) []models.ResolvedHoliday {
	upcoming := []models.ResolvedHoliday{}
	for _, h := range resolved {
		if !beforeDay(h.ResolvedDate, reference) {
			upcoming = append(upcoming, h)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].ResolvedDate.Before(upcoming[j].ResolvedDate)
	})
	if len(upcoming) > upcomingHolidayLimit {
		upcoming = upcoming[:upcomingHolidayLimit]
	}

	return upcoming
}
