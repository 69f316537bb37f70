package render

import (
	"fmt"
	"time"
)

const isoDate = "2006-01-02"

// FormatDate renders a stored ISO date as "Jan 2006". Partial dates
// ("2006-01") are accepted; anything unparseable is returned verbatim.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(isoDate, iso)
	if err != nil {
		t, err = time.Parse("2006-01", iso)
		if err != nil {
			return iso
		}
	}
	return t.Format("Jan 2006")
}

// DateRange renders "Jan 2023 - Present" style ranges. Current entries and
// entries without an end date both show "Present".
func DateRange(start, end string, isCurrent bool) string {
	from := FormatDate(start)
	if isCurrent || end == "" {
		return from + " - Present"
	}
	return from + " - " + FormatDate(end)
}

// Duration renders the elapsed time between two ISO dates as "6 months" or
// "2 years 3 months". An empty end date means ongoing (measured to today).
// The month count is (endYear-startYear)*12 + (endMonth-startMonth); days
// within the month are ignored.
func Duration(start, end string) string {
	startTime, err := time.Parse(isoDate, start)
	if err != nil {
		return ""
	}

	endTime := time.Now()
	if end != "" {
		endTime, err = time.Parse(isoDate, end)
		if err != nil {
			return ""
		}
	}

	months := (endTime.Year()-startTime.Year())*12 + int(endTime.Month()-startTime.Month())
	if months < 0 {
		months = 0
	}

	if months < 12 {
		return Pluralize(months, "month", "months")
	}

	years := months / 12
	remaining := months % 12
	if remaining == 0 {
		return Pluralize(years, "year", "years")
	}
	return Pluralize(years, "year", "years") + " " + Pluralize(remaining, "month", "months")
}

// Pluralize renders n with the matching noun form.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
