package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/itinerary/backend/internal/calendar"
	"github.com/pkordes/itinerary/backend/internal/domain"
	"github.com/pkordes/itinerary/backend/internal/fixture"
	"github.com/pkordes/itinerary/backend/internal/itinerary"
)

type renderOptions struct {
	activities []string
	routes     []string
	extras     []string
	travelers  []string
	format     string
	now        func() time.Time
}

func renderCmd() *cobra.Command {
	opts := renderOptions{now: time.Now}
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render the day-by-day itinerary of a YAML trip file",
		Long: `Render every date of the trip window in order, plus any date before or
after the trip that still has items once the filters are applied.

Kind filters are comma-separated and must name kinds of their own category:
  --activities  stay, event, restaurant, celebration
  --routes      train, flight, bus, boat, rental, driving, walking
  --extras      note, linked_trip`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&opts.activities, "activities", nil, "activity kinds to keep")
	f.StringSliceVar(&opts.routes, "routes", nil, "route kinds to keep")
	f.StringSliceVar(&opts.extras, "extras", nil, "extra kinds to keep")
	f.StringSliceVar(&opts.travelers, "travelers", nil, "keep items involving any of these travelers")
	f.StringVarP(&opts.format, "format", "f", "text", "output format (text, json, ics)")
	return cmd
}

func runRender(w io.Writer, path string, opts renderOptions) error {
	format := strings.ToLower(opts.format)
	if format != "text" && format != "json" && format != "ics" {
		return fmt.Errorf("unsupported format %q (want text, json, or ics)", opts.format)
	}

	file, err := fixture.Load(path)
	if err != nil {
		return err
	}
	sel, err := itinerary.ParseSelection(opts.activities, opts.routes, opts.extras)
	if err != nil {
		return err
	}
	for _, t := range opts.travelers {
		if t = strings.TrimSpace(t); t != "" {
			sel.Travelers = append(sel.Travelers, t)
		}
	}

	plan, err := itinerary.NewPlan(file.Activities, file.Window, sel)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	c := itinerary.Summarize(plan.Days)
	slog.Debug("itinerary rendered", "file", path, "days", c.Days, "items", c.Items)

	switch format {
	case "json":
		return writeJSON(w, file, plan)
	case "ics":
		_, err := io.WriteString(w, calendar.Encode(file.Trip(), plan, opts.now()))
		return err
	}
	return writeText(w, file, plan)
}

// writeText prints one heading per day followed by its items:
//
//	Sunday 2025-06-01 · Day 1
//	  15:00  Stay: Casa Alfama (2 nights) [alice, bob]
func writeText(w io.Writer, file fixture.File, plan itinerary.Plan) error {
	var b strings.Builder
	if file.Name != "" {
		fmt.Fprintf(&b, "%s\n", file.Name)
	}
	fmt.Fprintf(&b, "%s → %s\n", domain.KeyOf(file.Window.Start), domain.KeyOf(file.Window.End))

	for _, d := range plan.Days {
		fmt.Fprintf(&b, "\n%s %s · %s\n", d.Weekday, d.Date, dayLabel(d))
		if len(d.Items) == 0 {
			b.WriteString("  (nothing scheduled)\n")
			continue
		}
		for _, it := range d.Items {
			fmt.Fprintf(&b, "  %s  %s", it.Primary.Format("15:04"), it.Summary())
			if dur := plan.Durations[it.ID]; dur != "" {
				fmt.Fprintf(&b, " (%s)", dur)
			}
			if len(it.TravelerIDs) > 0 {
				fmt.Fprintf(&b, " [%s]", strings.Join(it.TravelerIDs, ", "))
			}
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func dayLabel(d itinerary.Day) string {
	switch d.Period {
	case itinerary.PeriodBefore:
		return "before the trip"
	case itinerary.PeriodAfter:
		return "after the trip"
	}
	return fmt.Sprintf("Day %d", d.DayNumber)
}

type jsonPlan struct {
	Name  string    `json:"name,omitempty"`
	Start string    `json:"start"`
	End   string    `json:"end"`
	Days  []jsonDay `json:"days"`
}

type jsonDay struct {
	Date      string     `json:"date"`
	Weekday   string     `json:"weekday"`
	Period    string     `json:"period"`
	DayNumber int        `json:"day_number,omitempty"`
	Items     []jsonItem `json:"items"`
}

type jsonItem struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	Summary   string     `json:"summary"`
	StartsAt  time.Time  `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	Duration  string     `json:"duration,omitempty"`
	Travelers []string   `json:"travelers,omitempty"`
}

func writeJSON(w io.Writer, file fixture.File, plan itinerary.Plan) error {
	out := jsonPlan{
		Name:  file.Name,
		Start: domain.KeyOf(file.Window.Start).String(),
		End:   domain.KeyOf(file.Window.End).String(),
		Days:  make([]jsonDay, 0, len(plan.Days)),
	}
	for _, d := range plan.Days {
		day := jsonDay{
			Date:      d.Date.String(),
			Weekday:   d.Weekday,
			Period:    string(d.Period),
			DayNumber: d.DayNumber,
			Items:     make([]jsonItem, 0, len(d.Items)),
		}
		for _, it := range d.Items {
			day.Items = append(day.Items, jsonItem{
				ID:        it.ID,
				Kind:      string(it.Kind),
				Summary:   it.Summary(),
				StartsAt:  it.Primary,
				EndsAt:    it.Secondary,
				Duration:  plan.Durations[it.ID],
				Travelers: it.TravelerIDs,
			})
		}
		out.Days = append(out.Days, day)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
