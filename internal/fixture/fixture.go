// Package fixture reads itinerary files written in YAML: a trip window plus
// its activities. The itinerary CLI renders these without a database.
//
//	name: Lisbon
//	window: {start: 2025-06-01, end: 2025-06-03}
//	activities:
//	  - id: stay-1
//	    kind: stay
//	    start: 2025-06-01T15:00
//	    end: 2025-06-03T11:00
//	    travelers: [alice, bob]
//	    payload: {name: Casa Alfama}
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/itinerary/backend/internal/domain"
	"github.com/pkordes/itinerary/backend/internal/itinerary"
)

// File is a decoded itinerary file.
type File struct {
	Name       string
	Window     domain.TripWindow
	Activities []domain.Activity
}

// Trip returns the trip the file describes.
func (f File) Trip() domain.Trip {
	return domain.Trip{Name: f.Name, StartDate: f.Window.Start, EndDate: f.Window.End}
}

type document struct {
	Name   string `yaml:"name"`
	Window struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"window"`
	Activities []entry `yaml:"activities"`
}

type entry struct {
	ID        string    `yaml:"id"`
	Kind      string    `yaml:"kind"`
	Start     string    `yaml:"start"`
	End       string    `yaml:"end"`
	CreatedBy string    `yaml:"created_by"`
	Travelers []string  `yaml:"travelers"`
	Payload   yaml.Node `yaml:"payload"`
}

// Load reads and parses the file at path.
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("fixture.Load: %w", err)
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		return File{}, fmt.Errorf("fixture.Load: %s: %w", path, err)
	}
	return file, nil
}

// Parse decodes an itinerary document from r. Unknown keys are rejected.
// Kinds and payloads fail with domain.ErrValidation, instants with
// domain.ErrInvalidDate, and an inverted window with domain.ErrConfiguration.
func Parse(r io.Reader) (File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("fixture.Parse: %w", err)
	}

	start, err := itinerary.ParseInstant(doc.Window.Start)
	if err != nil {
		return File{}, fmt.Errorf("fixture.Parse: window start: %w", err)
	}
	end, err := itinerary.ParseInstant(doc.Window.End)
	if err != nil {
		return File{}, fmt.Errorf("fixture.Parse: window end: %w", err)
	}
	w, err := domain.NewTripWindow(start, end)
	if err != nil {
		return File{}, fmt.Errorf("fixture.Parse: %w", err)
	}

	activities := make([]domain.Activity, 0, len(doc.Activities))
	for i, e := range doc.Activities {
		a, err := e.activity(i)
		if err != nil {
			return File{}, fmt.Errorf("fixture.Parse: activity %d: %w", i+1, err)
		}
		activities = append(activities, a)
	}
	return File{Name: strings.TrimSpace(doc.Name), Window: w, Activities: activities}, nil
}

// activity converts the i-th entry. A missing id becomes "<kind>-<i+1>".
func (e entry) activity(i int) (domain.Activity, error) {
	kind, err := domain.ParseKind(e.Kind)
	if err != nil {
		return domain.Activity{}, err
	}
	a := domain.Activity{
		ID:          strings.TrimSpace(e.ID),
		Kind:        kind,
		CreatedBy:   strings.TrimSpace(e.CreatedBy),
		TravelerIDs: e.Travelers,
	}
	if a.ID == "" {
		a.ID = fmt.Sprintf("%s-%d", kind, i+1)
	}
	if a.Primary, err = itinerary.ParseInstant(e.Start); err != nil {
		return domain.Activity{}, fmt.Errorf("start: %w", err)
	}
	if strings.TrimSpace(e.End) != "" {
		end, err := itinerary.ParseInstant(e.End)
		if err != nil {
			return domain.Activity{}, fmt.Errorf("end: %w", err)
		}
		a.Secondary = &end
	}
	if a.Payload, err = decodePayload(kind, &e.Payload); err != nil {
		return domain.Activity{}, err
	}
	return a, nil
}

// payloadDecoders holds one decoder per kind; see TestPayloadDecoders_CoverEveryKind.
var payloadDecoders = map[domain.Kind]func(*yaml.Node) (domain.Payload, error){
	domain.KindTrain:       decodeNode[domain.Train],
	domain.KindFlight:      decodeNode[domain.Flight],
	domain.KindStay:        decodeNode[domain.Stay],
	domain.KindBus:         decodeNode[domain.Bus],
	domain.KindBoat:        decodeNode[domain.Boat],
	domain.KindRental:      decodeNode[domain.Rental],
	domain.KindEvent:       decodeNode[domain.Event],
	domain.KindRestaurant:  decodeNode[domain.Restaurant],
	domain.KindCelebration: decodeNode[domain.Celebration],
	domain.KindDriving:     decodeNode[domain.DrivingLeg],
	domain.KindWalking:     decodeNode[domain.WalkingLeg],
	domain.KindNote:        decodeNode[domain.Note],
	domain.KindLinkedTrip:  decodeNode[domain.LinkedTrip],
}

// HasDecoder reports whether payloads of kind can be read from a file.
func HasDecoder(kind domain.Kind) bool {
	_, ok := payloadDecoders[kind]
	return ok
}

func decodePayload(kind domain.Kind, node *yaml.Node) (domain.Payload, error) {
	decode, ok := payloadDecoders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: no payload decoder for kind %q", domain.ErrValidation, kind)
	}
	return decode(node)
}

// decodeNode decodes node into a T. An absent or null payload yields the
// zero T.
func decodeNode[T domain.Payload](node *yaml.Node) (domain.Payload, error) {
	var v T
	if node.IsZero() || node.ShortTag() == "!!null" {
		return v, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s payload must be a mapping (line %d)", domain.ErrValidation, v.Kind(), node.Line)
	}
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %s payload: %v", domain.ErrValidation, v.Kind(), err)
	}
	return v, nil
}
