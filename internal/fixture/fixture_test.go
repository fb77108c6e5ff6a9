package fixture_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary/backend/internal/domain"
	"github.com/pkordes/itinerary/backend/internal/fixture"
)

const lisbon = `
name: Lisbon
window:
  start: 2025-06-01
  end: 2025-06-03
activities:
  - id: flight-1
    kind: flight
    start: 2025-05-30T08:15
    end: 2025-05-30T14:45
    created_by: alice
    travelers: [alice]
    payload:
      airline: LH
      flight_number: "400"
      from: FRA
      to: LIS
  - kind: stay
    start: 2025-06-01T15:00:00+01:00
    end: 2025-06-03T11:00:00+01:00
    travelers: [alice, bob]
    payload: {name: Casa Alfama, address: Rua do Salvador 1}
  - kind: note
    start: 2025-06-10
`

func TestParse(t *testing.T) {
	f, err := fixture.Parse(strings.NewReader(lisbon))
	require.NoError(t, err)

	assert.Equal(t, "Lisbon", f.Name)
	assert.Equal(t, domain.DateKey("2025-06-01"), domain.KeyOf(f.Window.Start))
	assert.Equal(t, domain.DateKey("2025-06-03"), domain.KeyOf(f.Window.End))
	require.Len(t, f.Activities, 3)

	flight := f.Activities[0]
	assert.Equal(t, "flight-1", flight.ID)
	assert.Equal(t, domain.KindFlight, flight.Kind)
	assert.Equal(t, time.Date(2025, 5, 30, 8, 15, 0, 0, time.UTC), flight.Primary)
	require.NotNil(t, flight.Secondary)
	assert.Equal(t, time.Date(2025, 5, 30, 14, 45, 0, 0, time.UTC), *flight.Secondary)
	assert.Equal(t, "alice", flight.CreatedBy)
	assert.Equal(t, []string{"alice"}, flight.TravelerIDs)
	assert.Equal(t, domain.Flight{Airline: "LH", FlightNumber: "400", From: "FRA", To: "LIS"}, flight.Payload)

	stay := f.Activities[1]
	assert.Equal(t, "stay-2", stay.ID, "missing ids are derived from kind and position")
	assert.Equal(t, domain.Stay{Name: "Casa Alfama", Address: "Rua do Salvador 1"}, stay.Payload)
	_, offset := stay.Primary.Zone()
	assert.Equal(t, 3600, offset, "recorded offset is kept")

	note := f.Activities[2]
	assert.Nil(t, note.Secondary)
	assert.Equal(t, domain.Note{}, note.Payload)
}

func TestParse_TripFromFile(t *testing.T) {
	f, err := fixture.Parse(strings.NewReader(lisbon))
	require.NoError(t, err)

	trip := f.Trip()
	assert.Equal(t, "Lisbon", trip.Name)
	w, err := trip.Window()
	require.NoError(t, err)
	assert.Equal(t, f.Window, w)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "missing window",
			doc:  "name: x\n",
			want: domain.ErrInvalidDate,
		},
		{
			name: "inverted window",
			doc:  "window: {start: 2025-06-03, end: 2025-06-01}\n",
			want: domain.ErrConfiguration,
		},
		{
			name: "unknown kind",
			doc:  "window: {start: 2025-06-01, end: 2025-06-03}\nactivities:\n  - {kind: zeppelin, start: 2025-06-01}\n",
			want: domain.ErrValidation,
		},
		{
			name: "missing start",
			doc:  "window: {start: 2025-06-01, end: 2025-06-03}\nactivities:\n  - {kind: event}\n",
			want: domain.ErrInvalidDate,
		},
		{
			name: "malformed end",
			doc:  "window: {start: 2025-06-01, end: 2025-06-03}\nactivities:\n  - {kind: event, start: 2025-06-01, end: soon}\n",
			want: domain.ErrInvalidDate,
		},
		{
			name: "scalar payload",
			doc:  "window: {start: 2025-06-01, end: 2025-06-03}\nactivities:\n  - {kind: stay, start: 2025-06-01, payload: hotel}\n",
			want: domain.ErrValidation,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fixture.Parse(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := fixture.Parse(strings.NewReader("window: {start: 2025-06-01, end: 2025-06-03}\ncolour: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestParse_NullPayload(t *testing.T) {
	doc := `
window: {start: 2025-06-01, end: 2025-06-01}
activities:
  - {kind: event, start: "2025-06-01T19:00", payload: null}
`
	f, err := fixture.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, domain.Event{}, f.Activities[0].Payload)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.yaml")
	require.NoError(t, os.WriteFile(path, []byte(lisbon), 0o600))

	f, err := fixture.Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Activities, 3)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := fixture.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPayloadDecoders_CoverEveryKind(t *testing.T) {
	for _, k := range domain.AllKinds() {
		assert.True(t, fixture.HasDecoder(k), "no decoder for %s", k)
	}
}
