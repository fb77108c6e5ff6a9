package itinerary

import (
	"fmt"
	"strings"

	"github.com/pkordes/itinerary/backend/internal/domain"
)

// Selection is the set of filters currently chosen in the UI.
// Empty type lists mean "every kind"; an empty Travelers list means
// "every traveler".
type Selection struct {
	Activities []domain.Kind
	Routes     []domain.Kind
	Extras     []domain.Kind
	Travelers  []string
}

// IsEmpty reports whether the selection restricts nothing.
func (s Selection) IsEmpty() bool {
	return len(s.Activities) == 0 && len(s.Routes) == 0 && len(s.Extras) == 0 && len(s.Travelers) == 0
}

// matcher is a Selection compiled into lookup sets.
type matcher struct {
	kinds     map[domain.Kind]struct{}
	travelers map[string]struct{}
}

func (s Selection) compile() matcher {
	m := matcher{}
	for _, set := range [][]domain.Kind{s.Activities, s.Routes, s.Extras} {
		for _, k := range set {
			if m.kinds == nil {
				m.kinds = make(map[domain.Kind]struct{})
			}
			m.kinds[k] = struct{}{}
		}
	}
	for _, id := range s.Travelers {
		if m.travelers == nil {
			m.travelers = make(map[string]struct{})
		}
		m.travelers[id] = struct{}{}
	}
	return m
}

// Matches reports whether a passes both the type and the traveler filter.
func (s Selection) Matches(a domain.Activity) bool {
	return s.compile().matches(a)
}

func (m matcher) matches(a domain.Activity) bool {
	if m.kinds != nil {
		if _, ok := m.kinds[a.Kind]; !ok {
			return false
		}
	}
	if m.travelers != nil && !a.HasTraveler(m.travelers) {
		return false
	}
	return true
}

// Filter returns a new Grouped holding only the records that match sel.
// Buckets left empty are dropped. g is not modified.
func Filter(g Grouped, sel Selection) Grouped {
	m := sel.compile()
	out := make(Grouped, len(g))
	for key, items := range g {
		var kept []Classified
		for _, c := range items {
			if m.matches(c.Activity) {
				kept = append(kept, c)
			}
		}
		if len(kept) > 0 {
			out[key] = kept
		}
	}
	return out
}

// ParseSelection builds a Selection from raw kind names, one list per
// category. Blank entries are ignored. An unknown name, or a kind listed under
// the wrong category, yields domain.ErrValidation.
func ParseSelection(activities, routes, extras []string) (Selection, error) {
	var sel Selection
	var err error
	if sel.Activities, err = parseKinds(activities, domain.CategoryActivity); err != nil {
		return Selection{}, err
	}
	if sel.Routes, err = parseKinds(routes, domain.CategoryRoute); err != nil {
		return Selection{}, err
	}
	if sel.Extras, err = parseKinds(extras, domain.CategoryExtra); err != nil {
		return Selection{}, err
	}
	return sel, nil
}

func parseKinds(names []string, want domain.Category) ([]domain.Kind, error) {
	var out []domain.Kind
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		k, err := domain.ParseKind(n)
		if err != nil {
			return nil, err
		}
		if k.Category() != want {
			return nil, fmt.Errorf("%w: %s is a %s, not a %s", domain.ErrValidation, k, k.Category(), want)
		}
		out = append(out, k)
	}
	return out, nil
}
