package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/itinerary/backend/internal/itinerary"
	"github.com/pkordes/itinerary/backend/internal/service"
)

// ListTripsParams are the query parameters of GET /trips.
type ListTripsParams struct {
	Page  *int
	Limit *int
}

// SelectionParams are the filter query parameters shared by the itinerary,
// calendar, and export endpoints. Each is a comma-separated list.
type SelectionParams struct {
	Activities *[]string
	Routes     *[]string
	Extras     *[]string
	Travelers  *[]string
}

// ExportParams are the query parameters of GET /trips/{tripID}/export.
type ExportParams struct {
	SelectionParams
	Format *string
}

// DurationParams are the query parameters of GET /durations.
type DurationParams struct {
	Start string
	End   string
	Kind  *string
}

// bindUUIDPath binds the named chi path parameter as a UUID.
func bindUUIDPath(r *http.Request, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return id, nil
}

func bindListTripsParams(r *http.Request) (ListTripsParams, error) {
	var p ListTripsParams
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "page", q, &p.Page); err != nil {
		return p, fmt.Errorf("invalid format for parameter page: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &p.Limit); err != nil {
		return p, fmt.Errorf("invalid format for parameter limit: %w", err)
	}
	return p, nil
}

func bindSelectionParams(r *http.Request) (SelectionParams, error) {
	var p SelectionParams
	q := r.URL.Query()
	for _, f := range []struct {
		name string
		dest **[]string
	}{
		{"activities", &p.Activities},
		{"routes", &p.Routes},
		{"extras", &p.Extras},
		{"travelers", &p.Travelers},
	} {
		if err := runtime.BindQueryParameter("form", false, false, f.name, q, f.dest); err != nil {
			return p, fmt.Errorf("invalid format for parameter %s: %w", f.name, err)
		}
	}
	return p, nil
}

func bindExportParams(r *http.Request) (ExportParams, error) {
	sel, err := bindSelectionParams(r)
	if err != nil {
		return ExportParams{}, err
	}
	p := ExportParams{SelectionParams: sel}
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &p.Format); err != nil {
		return p, fmt.Errorf("invalid format for parameter format: %w", err)
	}
	return p, nil
}

func bindDurationParams(r *http.Request) (DurationParams, error) {
	var p DurationParams
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, true, "start", q, &p.Start); err != nil {
		return p, fmt.Errorf("invalid format for parameter start: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, true, "end", q, &p.End); err != nil {
		return p, fmt.Errorf("invalid format for parameter end: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "kind", q, &p.Kind); err != nil {
		return p, fmt.Errorf("invalid format for parameter kind: %w", err)
	}
	return p, nil
}

// Selection converts the raw filter lists into an itinerary.Selection.
// Kinds are validated against the list they were given in, so a route kind
// passed as an activity is rejected. Traveler names are slugified the same
// way the roster stores them.
func (p SelectionParams) Selection() (itinerary.Selection, error) {
	sel, err := itinerary.ParseSelection(deref(p.Activities), deref(p.Routes), deref(p.Extras))
	if err != nil {
		return itinerary.Selection{}, err
	}
	for _, t := range deref(p.Travelers) {
		if slug := service.Slugify(t); slug != "" {
			sel.Travelers = append(sel.Travelers, slug)
		}
	}
	return sel, nil
}

func deref(p *[]string) []string {
	if p == nil {
		return nil
	}
	return *p
}

// bindSelection binds the filter query parameters and writes a 422 on failure.
// ok is false when a response has already been written.
func bindSelection(w http.ResponseWriter, r *http.Request) (itinerary.Selection, bool) {
	params, err := bindSelectionParams(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return itinerary.Selection{}, false
	}
	sel, err := params.Selection()
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return itinerary.Selection{}, false
	}
	return sel, true
}

// bindTripID binds {tripID} and writes a 422 on failure.
func bindTripID(w http.ResponseWriter, r *http.Request) (openapi_types.UUID, bool) {
	id, err := bindUUIDPath(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return id, false
	}
	return id, true
}
