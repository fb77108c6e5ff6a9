package domain

import "fmt"

// Kind is the discriminant of an Activity. Every Kind belongs to exactly one
// Category.
type Kind string

const (
	KindTrain       Kind = "train"
	KindFlight      Kind = "flight"
	KindStay        Kind = "stay"
	KindBus         Kind = "bus"
	KindBoat        Kind = "boat"
	KindRental      Kind = "rental"
	KindEvent       Kind = "event"
	KindRestaurant  Kind = "restaurant"
	KindCelebration Kind = "celebration"
	KindDriving     Kind = "driving"
	KindWalking     Kind = "walking"
	KindNote        Kind = "note"
	KindLinkedTrip  Kind = "linked_trip"
)

// Category groups kinds for type filtering.
type Category string

const (
	CategoryActivity Category = "activity"
	CategoryRoute    Category = "route"
	CategoryExtra    Category = "extra"
)

// AllKinds returns every Kind in declaration order.
func AllKinds() []Kind {
	return []Kind{
		KindTrain, KindFlight, KindStay, KindBus, KindBoat, KindRental,
		KindEvent, KindRestaurant, KindCelebration, KindDriving, KindWalking,
		KindNote, KindLinkedTrip,
	}
}

// ParseKind converts a raw discriminant into a Kind.
// Returns ErrValidation for anything outside the known set.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: unknown activity kind %q", ErrValidation, s)
	}
	return k, nil
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k.Category() != ""
}

// Category returns the filter category of k, or "" for an undeclared kind.
//
//exhaustive:enforce
func (k Kind) Category() Category {
	switch k {
	case KindStay, KindEvent, KindRestaurant, KindCelebration:
		return CategoryActivity
	case KindTrain, KindFlight, KindBus, KindBoat, KindRental, KindDriving, KindWalking:
		return CategoryRoute
	case KindNote, KindLinkedTrip:
		return CategoryExtra
	}
	return ""
}
