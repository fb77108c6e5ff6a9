package itinerary

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkordes/itinerary/backend/internal/domain"
)

// instantLayouts are tried in order by ParseInstant. Layouts without a zone
// are read as UTC wall-clock values.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	domain.DateKeyLayout,
}

// ParseInstant parses s as a date or date-time.
// Returns domain.ErrInvalidDate for blank or malformed input.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", domain.ErrInvalidDate)
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse %q", domain.ErrInvalidDate, s)
}

// ParseDateTime combines a YYYY-MM-DD date and an optional HH:MM[:SS] clock
// into one instant. An empty clock means midnight.
func ParseDateTime(date, clock string) (time.Time, error) {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	if _, err := domain.ParseDateKey(date); err != nil {
		return time.Time{}, err
	}
	if clock == "" {
		return ParseInstant(date)
	}
	return ParseInstant(date + "T" + clock)
}

// FormatDuration renders the span from start to end as days, hours, and
// minutes, e.g. "1 hour 30 minutes" or "2 days 3 hours". Zero units are
// left out; a span shorter than a minute renders as "0 minutes".
//
// Returns domain.ErrInvalidDate for zero instants and
// domain.ErrInvalidDuration when end precedes start.
func FormatDuration(start, end time.Time) (string, error) {
	if err := checkSpan(start, end); err != nil {
		return "", err
	}

	total := minutesBetween(start, end)
	days, hours, minutes := total/(24*60), total%(24*60)/60, total%60

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	if len(parts) == 0 {
		return plural(0, "minute"), nil
	}
	return strings.Join(parts, " "), nil
}

// FormatDurationBetween is FormatDuration over two date + clock pairs as a
// form would submit them.
func FormatDurationBetween(startDate, startClock, endDate, endClock string) (string, error) {
	start, err := ParseDateTime(startDate, startClock)
	if err != nil {
		return "", err
	}
	end, err := ParseDateTime(endDate, endClock)
	if err != nil {
		return "", err
	}
	return FormatDuration(start, end)
}

// Nights counts the calendar days between check-in and check-out, ignoring
// the time of day. Checking out on the check-in date is zero nights.
func Nights(checkIn, checkOut time.Time) (int, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0, fmt.Errorf("%w: check-in and check-out are required", domain.ErrInvalidDate)
	}
	in, out := domain.CalendarDate(checkIn), domain.CalendarDate(checkOut)
	if out.Before(in) {
		return 0, fmt.Errorf("%w: check-out %s is before check-in %s",
			domain.ErrInvalidDuration, domain.KeyOf(checkOut), domain.KeyOf(checkIn))
	}
	return domain.DaysBetween(checkIn, checkOut), nil
}

// FormatNights renders Nights as "0 nights", "1 night", "2 nights".
func FormatNights(checkIn, checkOut time.Time) (string, error) {
	n, err := Nights(checkIn, checkOut)
	if err != nil {
		return "", err
	}
	return plural(n, "night"), nil
}

// ItemDuration returns the display duration of an activity: a night count for
// stays and a days/hours/minutes span for everything else. Activities without
// a closing instant have no duration and yield "".
func ItemDuration(a domain.Activity) (string, error) {
	if a.Secondary == nil {
		return "", nil
	}
	if a.Kind == domain.KindStay {
		return FormatNights(a.Primary, *a.Secondary)
	}
	return FormatDuration(a.Primary, *a.Secondary)
}

func checkSpan(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end are required", domain.ErrInvalidDate)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end %s is before start %s",
			domain.ErrInvalidDuration, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return nil
}

// minutesBetween is the whole minutes from start to end. Sub saturates at
// about 292 years; beyond that the span is counted in Unix seconds.
func minutesBetween(start, end time.Time) int {
	if d := end.Sub(start); d < math.MaxInt64 {
		return int(d / time.Minute)
	}
	return int((end.Unix() - start.Unix()) / 60)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
