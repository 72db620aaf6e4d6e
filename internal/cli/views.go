package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/emotion-diary/internal/calendar"
	"github.com/heartmarshall/emotion-diary/internal/domain"
)

func addViews(topLevel *cobra.Command, app *App) {
	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all entries, newest first.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.api.List(cmd.Context())
			if err != nil {
				return err
			}
			printTable(app.out, entries, app.loc)
			return nil
		},
	}

	day := &cobra.Command{
		Use:   "day [date]",
		Short: "Show the entries written for one day (default today).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := app.today()
			if len(args) == 1 {
				var err error
				if date, err = app.parseDay(args[0]); err != nil {
					return err
				}
			}

			entries, err := app.api.ListByDate(cmd.Context(), date)
			if err != nil {
				return err
			}
			heading.Fprintf(app.out, "%s\n", date)
			if len(entries) == 1 {
				printEntry(app.out, entries[0], app.loc)
				return nil
			}
			printTable(app.out, entries, app.loc)
			return nil
		},
	}

	var prev, next bool
	cal := &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Show a month with the days you wrote on.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if prev && next {
				return errors.New("--prev and --next cannot be combined")
			}

			month := calendar.MonthOf(app.today())
			if len(args) == 1 {
				m, err := calendar.ParseMonth(args[0])
				if err != nil {
					return domain.NewValidationError("month", "must be YYYY-MM")
				}
				month = m
			}
			switch {
			case prev:
				month = month.Previous()
			case next:
				month = month.Next()
			}

			view, err := app.api.Calendar(cmd.Context(), &month)
			if err != nil {
				return err
			}
			printCalendar(app.out, view)
			return nil
		},
	}
	cal.Flags().BoolVar(&prev, "prev", false, "show the month before")
	cal.Flags().BoolVar(&next, "next", false, "show the month after")

	topLevel.AddCommand(list, day, cal)
}
