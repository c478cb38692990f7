package commands

import (
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/benvon/zen-planner/internal/calendar"
	"github.com/benvon/zen-planner/internal/models"
)

// NewCalendarCmd creates the calendar command
func NewCalendarCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show dated tasks and goal targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}

			events := calendar.Events(st.Tasks(), st.Goals())
			if date != "" {
				if _, err := time.Parse(models.DateLayout, date); err != nil {
					return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
				}
				filtered := events[:0]
				for _, e := range events {
					if e.Date == date {
						filtered = append(filtered, e)
					}
				}
				events = filtered
			}
			if len(events) == 0 {
				fmt.Println("No events")
				return nil
			}

			sort.SliceStable(events, func(i, j int) bool {
				return events[i].Date < events[j].Date
			})

			bold := color.New(color.Bold)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold.Sprint("DATE"), bold.Sprint(" "), bold.Sprint("TITLE"), bold.Sprint("TYPE"))
			for _, e := range events {
				tbl.AddRow(dueLabel(e.Date, e.Time), taskMark(e.Completed), e.Title, eventTypeLabel(e.Type))
			}
			fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "only show events on this date (YYYY-MM-DD)")

	return cmd
}

func eventTypeLabel(t calendar.EventType) string {
	if t == calendar.EventTypeGoal {
		return color.CyanString(string(t))
	}
	return string(t)
}
