package itinerary_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary/backend/internal/domain"
	"github.com/pkordes/itinerary/backend/internal/itinerary"
)

func TestFormatDuration(t *testing.T) {
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		span time.Duration
		want string
	}{
		{"zero", 0, "0 minutes"},
		{"under a minute", 45 * time.Second, "0 minutes"},
		{"one minute", time.Minute, "1 minute"},
		{"minutes only", 45 * time.Minute, "45 minutes"},
		{"one hour", 60 * time.Minute, "1 hour"},
		{"hour and a half", 90 * time.Minute, "1 hour 30 minutes"},
		{"hours only", 2 * time.Hour, "2 hours"},
		{"seconds truncated", 2*time.Hour + time.Minute + 59*time.Second, "2 hours 1 minute"},
		{"one day", 24 * time.Hour, "1 day"},
		{"day and hour", 25 * time.Hour, "1 day 1 hour"},
		{"days hours minutes", 50*time.Hour + 5*time.Minute, "2 days 2 hours 5 minutes"},
		{"days and minutes", 48*time.Hour + 10*time.Minute, "2 days 10 minutes"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := itinerary.FormatDuration(start, start.Add(tc.span))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatDuration_AcrossZones(t *testing.T) {
	// FRA 10:00 (+02:00) → JFK 12:45 (-04:00) is 8h45m in the air.
	dep := time.Date(2025, 6, 1, 10, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	arr := time.Date(2025, 6, 1, 12, 45, 0, 0, time.FixedZone("EDT", -4*3600))

	got, err := itinerary.FormatDuration(dep, arr)

	require.NoError(t, err)
	assert.Equal(t, "8 hours 45 minutes", got)
}

func TestFormatDuration_EndBeforeStart(t *testing.T) {
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	_, err := itinerary.FormatDuration(start, start.Add(-time.Minute))

	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}

func TestFormatDuration_ZeroInstant(t *testing.T) {
	_, err := itinerary.FormatDuration(time.Time{}, time.Now())

	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestFormatDurationBetween(t *testing.T) {
	got, err := itinerary.FormatDurationBetween("2025-06-01", "09:15", "2025-06-01", "10:45")

	require.NoError(t, err)
	assert.Equal(t, "1 hour 30 minutes", got)
}

func TestFormatDurationBetween_MalformedInput(t *testing.T) {
	tests := []struct {
		name                                     string
		startDate, startClock, endDate, endClock string
	}{
		{"bad start date", "2025-13-01", "09:00", "2025-06-01", "10:00"},
		{"bad end clock", "2025-06-01", "09:00", "2025-06-01", "25:00"},
		{"empty date", "", "09:00", "2025-06-01", "10:00"},
		{"garbage", "tomorrow", "", "2025-06-01", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := itinerary.FormatDurationBetween(tc.startDate, tc.startClock, tc.endDate, tc.endClock)
			assert.ErrorIs(t, err, domain.ErrInvalidDate)
			assert.Empty(t, got)
		})
	}
}

func TestNights(t *testing.T) {
	day1 := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkOut time.Time
		want     int
		label    string
	}{
		{"same day", time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC), 0, "0 nights"},
		{"one night", time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC), 1, "1 night"},
		{"two nights", time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC), 2, "2 nights"},
		{"early checkout still counts the date", time.Date(2025, 6, 3, 1, 0, 0, 0, time.UTC), 2, "2 nights"},
		{"across a month", time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC), 30, "30 nights"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := itinerary.Nights(day1, tc.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)

			label, err := itinerary.FormatNights(day1, tc.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tc.label, label)
		})
	}
}

func TestNights_BeyondDurationRange(t *testing.T) {
	// 400 Gregorian years are exactly 146097 days, longer than time.Duration holds.
	in := time.Date(1600, 1, 1, 15, 0, 0, 0, time.UTC)
	out := time.Date(2000, 1, 1, 11, 0, 0, 0, time.UTC)

	n, err := itinerary.Nights(in, out)

	require.NoError(t, err)
	assert.Equal(t, 146097, n)
}

func TestFormatDuration_BeyondDurationRange(t *testing.T) {
	start := time.Date(1600, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, 2, 30, 0, 0, time.UTC)

	got, err := itinerary.FormatDuration(start, end)

	require.NoError(t, err)
	assert.Equal(t, "146097 days 2 hours 30 minutes", got)
}

func TestNights_CheckOutBeforeCheckIn(t *testing.T) {
	in := time.Date(2025, 6, 3, 15, 0, 0, 0, time.UTC)
	out := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)

	_, err := itinerary.Nights(in, out)

	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}

func TestItemDuration(t *testing.T) {
	flight := activity(t, "f", domain.KindFlight, "2025-06-01T08:00")
	arrival := at(t, "2025-06-01T09:30")
	flight.Secondary = &arrival

	got, err := itinerary.ItemDuration(flight)
	require.NoError(t, err)
	assert.Equal(t, "1 hour 30 minutes", got)

	note := activity(t, "n", domain.KindNote, "2025-06-01T08:00")
	got, err = itinerary.ItemDuration(note)
	require.NoError(t, err)
	assert.Empty(t, got, "no closing instant means no duration")
}

func TestParseInstant(t *testing.T) {
	for _, s := range []string{
		"2025-06-01",
		"2025-06-01T09:30",
		"2025-06-01T09:30:15",
		"2025-06-01 09:30",
		"2025-06-01T09:30:00+02:00",
	} {
		got, err := itinerary.ParseInstant(s)
		require.NoError(t, err, s)
		assert.Equal(t, domain.DateKey("2025-06-01"), domain.KeyOf(got), s)
	}

	_, err := itinerary.ParseInstant("Invalid Date")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}
