package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary/backend/internal/domain"
	"github.com/pkordes/itinerary/backend/internal/itinerary"
)

func TestBuild_CoversEveryWindowDate(t *testing.T) {
	w := window(t, "2025-02-26", "2025-03-02")

	days, err := itinerary.Build(itinerary.Grouped{}, w)

	require.NoError(t, err)
	require.Len(t, days, w.Len())
	want := []domain.DateKey{"2025-02-26", "2025-02-27", "2025-02-28", "2025-03-01", "2025-03-02"}
	for i, d := range days {
		assert.Equal(t, want[i], d.Date)
		assert.Equal(t, i+1, d.DayNumber)
		assert.Equal(t, itinerary.PeriodDuring, d.Period)
		assert.NotNil(t, d.Items)
	}
	assert.Equal(t, "Wednesday", days[0].Weekday)
	assert.Equal(t, "Sunday", days[4].Weekday)
}

func TestBuild_MergesAndSortsOutOfWindowDays(t *testing.T) {
	w := window(t, "2025-06-01", "2025-06-02")
	g, err := itinerary.Group(classified(t, w,
		activity(t, "after2", domain.KindNote, "2025-07-01"),
		activity(t, "during", domain.KindEvent, "2025-06-02T10:00"),
		activity(t, "before1", domain.KindFlight, "2025-05-01"),
		activity(t, "after1", domain.KindNote, "2025-06-03"),
	))
	require.NoError(t, err)

	days, err := itinerary.Build(g, w)

	require.NoError(t, err)
	var dates []domain.DateKey
	var periods []itinerary.Period
	for _, d := range days {
		dates = append(dates, d.Date)
		periods = append(periods, d.Period)
	}
	assert.Equal(t, []domain.DateKey{"2025-05-01", "2025-06-01", "2025-06-02", "2025-06-03", "2025-07-01"}, dates)
	assert.Equal(t, []itinerary.Period{
		itinerary.PeriodBefore, itinerary.PeriodDuring, itinerary.PeriodDuring,
		itinerary.PeriodAfter, itinerary.PeriodAfter,
	}, periods)
	assert.Zero(t, days[0].DayNumber)
	assert.Zero(t, days[4].DayNumber)
}

// TestBuild_EmptyOutOfWindowBucket verifies that an empty bucket outside the
// window is skipped rather than read from, and no phantom day is produced.
func TestBuild_EmptyOutOfWindowBucket(t *testing.T) {
	w := window(t, "2025-06-01", "2025-06-01")
	g := itinerary.Grouped{"2025-05-20": {}, "2025-06-09": nil}

	days, err := itinerary.Build(g, w)

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, domain.DateKey("2025-06-01"), days[0].Date)
}

// TestBuild_PeriodFromDateNotItems verifies that the day's period is derived
// from its date even if the items carry a stale period tag.
func TestBuild_PeriodFromDateNotItems(t *testing.T) {
	w := window(t, "2025-06-01", "2025-06-01")
	stale := itinerary.Classified{Activity: activity(t, "x", domain.KindNote, "2025-06-05"), Period: itinerary.PeriodDuring}

	days, err := itinerary.Build(itinerary.Grouped{"2025-06-05": {stale}}, w)

	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, itinerary.PeriodAfter, days[1].Period)
	assert.Equal(t, "Thursday", days[1].Weekday)
}

func TestBuild_OrdersItemsWithinDay(t *testing.T) {
	w := window(t, "2025-06-01", "2025-06-01")
	g, err := itinerary.Group(classified(t, w,
		activity(t, "dinner", domain.KindRestaurant, "2025-06-01T19:00"),
		activity(t, "breakfast", domain.KindRestaurant, "2025-06-01T08:00"),
		activity(t, "b-lunch", domain.KindRestaurant, "2025-06-01T12:00"),
		activity(t, "a-lunch", domain.KindRestaurant, "2025-06-01T12:00"),
	))
	require.NoError(t, err)

	days, err := itinerary.Build(g, w)

	require.NoError(t, err)
	assert.Equal(t, []string{"breakfast", "a-lunch", "b-lunch", "dinner"}, ids(days[0]))
	assert.Equal(t, []string{"dinner", "breakfast", "b-lunch", "a-lunch"}, bucketIDs(g)["2025-06-01"], "input bucket order untouched")
}

func TestBuild_NoPhantomOutOfWindowDays(t *testing.T) {
	w := window(t, "2025-06-01", "2025-06-03")
	g, err := itinerary.Group(classified(t, w, scenarioRecords(t)...))
	require.NoError(t, err)

	days, err := itinerary.Build(itinerary.Filter(g, itinerary.Selection{Extras: []domain.Kind{domain.KindNote}}), w)

	require.NoError(t, err)
	for _, d := range days {
		if d.Period != itinerary.PeriodDuring {
			assert.NotEmpty(t, d.Items, "out-of-window day %s has no items", d.Date)
		}
	}
	assert.Len(t, days, 4)
}

func TestBuild_InvertedWindow(t *testing.T) {
	w := domain.TripWindow{Start: at(t, "2025-06-02"), End: at(t, "2025-06-01")}

	days, err := itinerary.Build(itinerary.Grouped{}, w)

	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Nil(t, days)
}

func TestBuild_MalformedKey(t *testing.T) {
	w := window(t, "2025-06-01", "2025-06-01")
	g := itinerary.Grouped{"06/05/2025": {{Activity: activity(t, "x", domain.KindNote, "2025-06-05")}}}

	_, err := itinerary.Build(g, w)

	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}
