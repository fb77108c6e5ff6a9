package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Payload is the kind-specific part of an Activity. The set of
// implementations is closed: the unexported marker method keeps other
// packages from adding variants, and DecodePayload switches over every Kind.
type Payload interface {
	Kind() Kind
	// Summary is a one-line human label, e.g. "Flight: LH 400 · FRA → JFK".
	Summary() string
	payload()
}

// Train is a rail journey.
type Train struct {
	Operator    string `json:"operator,omitempty" yaml:"operator,omitempty"`
	TrainNumber string `json:"train_number,omitempty" yaml:"train_number,omitempty"`
	From        string `json:"from,omitempty" yaml:"from,omitempty"`
	To          string `json:"to,omitempty" yaml:"to,omitempty"`
	Seat        string `json:"seat,omitempty" yaml:"seat,omitempty"`
}

// Flight is an air journey.
type Flight struct {
	Airline      string `json:"airline,omitempty" yaml:"airline,omitempty"`
	FlightNumber string `json:"flight_number,omitempty" yaml:"flight_number,omitempty"`
	From         string `json:"from,omitempty" yaml:"from,omitempty"`
	To           string `json:"to,omitempty" yaml:"to,omitempty"`
	Confirmation string `json:"confirmation,omitempty" yaml:"confirmation,omitempty"`
}

// Stay is lodging. Primary is check-in, Secondary is check-out.
type Stay struct {
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	Address      string `json:"address,omitempty" yaml:"address,omitempty"`
	Confirmation string `json:"confirmation,omitempty" yaml:"confirmation,omitempty"`
}

// Bus is a coach journey.
type Bus struct {
	Operator string `json:"operator,omitempty" yaml:"operator,omitempty"`
	From     string `json:"from,omitempty" yaml:"from,omitempty"`
	To       string `json:"to,omitempty" yaml:"to,omitempty"`
}

// Boat is a ferry or cruise leg.
type Boat struct {
	Operator string `json:"operator,omitempty" yaml:"operator,omitempty"`
	From     string `json:"from,omitempty" yaml:"from,omitempty"`
	To       string `json:"to,omitempty" yaml:"to,omitempty"`
}

// Rental is a vehicle hire. Primary is pick-up, Secondary is drop-off.
type Rental struct {
	Company         string `json:"company,omitempty" yaml:"company,omitempty"`
	Vehicle         string `json:"vehicle,omitempty" yaml:"vehicle,omitempty"`
	PickupLocation  string `json:"pickup_location,omitempty" yaml:"pickup_location,omitempty"`
	DropoffLocation string `json:"dropoff_location,omitempty" yaml:"dropoff_location,omitempty"`
}

// Event is a ticketed or scheduled happening.
type Event struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`
}

// Restaurant is a meal reservation.
type Restaurant struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Address     string `json:"address,omitempty" yaml:"address,omitempty"`
	Reservation string `json:"reservation,omitempty" yaml:"reservation,omitempty"`
}

// Celebration is a birthday, anniversary, or similar occasion.
type Celebration struct {
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Occasion string `json:"occasion,omitempty" yaml:"occasion,omitempty"`
}

// DrivingLeg is a self-driven road segment.
type DrivingLeg struct {
	From       string  `json:"from,omitempty" yaml:"from,omitempty"`
	To         string  `json:"to,omitempty" yaml:"to,omitempty"`
	DistanceKm float64 `json:"distance_km,omitempty" yaml:"distance_km,omitempty"`
}

// WalkingLeg is a walk between two places.
type WalkingLeg struct {
	From       string  `json:"from,omitempty" yaml:"from,omitempty"`
	To         string  `json:"to,omitempty" yaml:"to,omitempty"`
	DistanceKm float64 `json:"distance_km,omitempty" yaml:"distance_km,omitempty"`
}

// Note is free-form text pinned to a date.
type Note struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Body  string `json:"body,omitempty" yaml:"body,omitempty"`
}

// LinkedTrip points at another itinerary.
type LinkedTrip struct {
	TripID string `json:"trip_id,omitempty" yaml:"trip_id,omitempty"`
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
}

func (Train) Kind() Kind       { return KindTrain }
func (Flight) Kind() Kind      { return KindFlight }
func (Stay) Kind() Kind        { return KindStay }
func (Bus) Kind() Kind         { return KindBus }
func (Boat) Kind() Kind        { return KindBoat }
func (Rental) Kind() Kind      { return KindRental }
func (Event) Kind() Kind       { return KindEvent }
func (Restaurant) Kind() Kind  { return KindRestaurant }
func (Celebration) Kind() Kind { return KindCelebration }
func (DrivingLeg) Kind() Kind  { return KindDriving }
func (WalkingLeg) Kind() Kind  { return KindWalking }
func (Note) Kind() Kind        { return KindNote }
func (LinkedTrip) Kind() Kind  { return KindLinkedTrip }

func (Train) payload()       {}
func (Flight) payload()      {}
func (Stay) payload()        {}
func (Bus) payload()         {}
func (Boat) payload()        {}
func (Rental) payload()      {}
func (Event) payload()       {}
func (Restaurant) payload()  {}
func (Celebration) payload() {}
func (DrivingLeg) payload()  {}
func (WalkingLeg) payload()  {}
func (Note) payload()        {}
func (LinkedTrip) payload()  {}

func (p Train) Summary() string {
	return label("Train", join(p.Operator, p.TrainNumber), route(p.From, p.To))
}

func (p Flight) Summary() string {
	return label("Flight", join(p.Airline, p.FlightNumber), route(p.From, p.To))
}

func (p Stay) Summary() string { return label("Stay", p.Name) }

func (p Bus) Summary() string { return label("Bus", p.Operator, route(p.From, p.To)) }

func (p Boat) Summary() string { return label("Boat", p.Operator, route(p.From, p.To)) }

func (p Rental) Summary() string { return label("Rental", join(p.Company, p.Vehicle)) }

func (p Event) Summary() string { return label("Event", p.Title) }

func (p Restaurant) Summary() string { return label("Restaurant", p.Name) }

func (p Celebration) Summary() string { return label("Celebration", p.Title) }

func (p DrivingLeg) Summary() string { return label("Drive", route(p.From, p.To)) }

func (p WalkingLeg) Summary() string { return label("Walk", route(p.From, p.To)) }

func (p Note) Summary() string { return label("Note", p.Title) }

func (p LinkedTrip) Summary() string { return label("Linked trip", p.Title) }

// DecodePayload unmarshals raw JSON into the payload type for kind.
// An empty or null document yields the zero payload of that kind.
func DecodePayload(kind Kind, raw []byte) (Payload, error) {
	switch kind {
	case KindTrain:
		return decodeInto[Train](raw)
	case KindFlight:
		return decodeInto[Flight](raw)
	case KindStay:
		return decodeInto[Stay](raw)
	case KindBus:
		return decodeInto[Bus](raw)
	case KindBoat:
		return decodeInto[Boat](raw)
	case KindRental:
		return decodeInto[Rental](raw)
	case KindEvent:
		return decodeInto[Event](raw)
	case KindRestaurant:
		return decodeInto[Restaurant](raw)
	case KindCelebration:
		return decodeInto[Celebration](raw)
	case KindDriving:
		return decodeInto[DrivingLeg](raw)
	case KindWalking:
		return decodeInto[WalkingLeg](raw)
	case KindNote:
		return decodeInto[Note](raw)
	case KindLinkedTrip:
		return decodeInto[LinkedTrip](raw)
	}
	return nil, fmt.Errorf("%w: unknown activity kind %q", ErrValidation, string(kind))
}

// decodeInto is the generic body of DecodePayload.
func decodeInto[T Payload](raw []byte) (Payload, error) {
	var v T
	if len(raw) == 0 || string(raw) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %s payload: %v", ErrValidation, v.Kind(), err)
	}
	return v, nil
}

// label builds "Prefix: a · b", skipping empty parts. With no parts it
// returns the prefix alone.
func label(prefix string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return prefix
	}
	return prefix + ": " + strings.Join(kept, " · ")
}

func join(a, b string) string {
	return strings.TrimSpace(a + " " + b)
}

func route(from, to string) string {
	switch {
	case from != "" && to != "":
		return from + " → " + to
	case from != "":
		return "from " + from
	case to != "":
		return "to " + to
	}
	return ""
}
