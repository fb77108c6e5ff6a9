package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkordes/itinerary/backend/internal/itinerary"
)

func durationCmd() *cobra.Command {
	var nights bool
	cmd := &cobra.Command{
		Use:   "duration <start> <end>",
		Short: "Format the span between two instants",
		Long: `Format the span between two dates or date-times, e.g.

  itinerary duration 2025-06-01T08:15 2025-06-01T14:45   # 6 hours 30 minutes
  itinerary duration --nights 2025-06-01 2025-06-03      # 2 nights`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := itinerary.ParseInstant(args[0])
			if err != nil {
				return err
			}
			end, err := itinerary.ParseInstant(args[1])
			if err != nil {
				return err
			}

			format := itinerary.FormatDuration
			if nights {
				format = itinerary.FormatNights
			}
			s, err := format(start, end)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
	cmd.Flags().BoolVar(&nights, "nights", false, "count nights between the calendar dates (stays)")
	return cmd
}
