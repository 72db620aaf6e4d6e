package cli

import (
	"fmt"

	"github.com/golang-sql/civil"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/emotion-diary/internal/domain"
)

func addEntry(topLevel *cobra.Command, app *App) {
	var (
		date    string
		message string
	)

	write := &cobra.Command{
		Use:   "write",
		Short: "Write a diary entry and receive feedback.",
		Example: `
diary write
diary write --date yesterday -m "비 오는 날 산책을 했다."
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var target *civil.Date
			if date != "" {
				d, err := app.parseDay(date)
				if err != nil {
					return err
				}
				if d.After(app.today()) {
					return domain.ErrFutureDate
				}
				target = &d
			}

			content, err := app.content(message, "오늘 하루는 어땠나요?")
			if err != nil {
				return err
			}

			faint.Fprintln(app.out, "피드백을 기다리는 중...")
			out, err := app.api.Submit(cmd.Context(), content, target)
			if err != nil {
				return err
			}
			printOutcome(app.out, out, app.loc)
			return nil
		},
	}
	write.Flags().StringVarP(&date, "date", "d", "", "day the entry is for (YYYY-MM-DD, today, yesterday)")
	write.Flags().StringVarP(&message, "message", "m", "", "entry text; prompted when empty")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one entry with its feedback.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d, err := app.api.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			printEntry(app.out, d, app.loc)
			return nil
		},
	}

	var editMessage string
	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace the text of an entry and refresh its feedback.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if editMessage == "" {
				current, err := app.api.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				faint.Fprintln(app.out, current.Content)
				fmt.Fprintln(app.out)
			}

			content, err := app.content(editMessage, "새 내용을 입력하세요")
			if err != nil {
				return err
			}
			out, err := app.api.Edit(cmd.Context(), id, content)
			if err != nil {
				return err
			}
			printOutcome(app.out, out, app.loc)
			return nil
		},
	}
	edit.Flags().StringVarP(&editMessage, "message", "m", "", "new entry text; prompted when empty")

	reanalyze := &cobra.Command{
		Use:   "reanalyze <id>",
		Short: "Ask for new feedback on an entry.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			faint.Fprintln(app.out, "피드백을 다시 받는 중...")
			out, err := app.api.Reanalyze(cmd.Context(), id, nil)
			if err != nil {
				return err
			}
			printOutcome(app.out, out, app.loc)
			return nil
		},
	}

	var yes bool
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry after confirmation.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes && !confirm(app.in, app.out, "이 일기를 삭제할까요? 되돌릴 수 없어요.") {
				fmt.Fprintln(app.out, "삭제를 취소했어요.")
				return nil
			}
			if err := app.api.Delete(cmd.Context(), id, true); err != nil {
				return err
			}
			fmt.Fprintln(app.out, "삭제했어요.")
			return nil
		},
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	topLevel.AddCommand(write, show, edit, reanalyze, del)
}

// content returns flagValue, or prompts for multi-line text when it is empty.
// Blank text is rejected before any request is made.
func (a *App) content(flagValue, prompt string) (string, error) {
	text := flagValue
	if text == "" {
		var err error
		if text, err = promptText(a.in, a.out, prompt); err != nil {
			return "", err
		}
	}
	return domain.NormalizeContent(text, 0)
}
