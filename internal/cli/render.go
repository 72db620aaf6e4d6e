package cli

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/heartmarshall/emotion-diary/internal/calendar"
	"github.com/heartmarshall/emotion-diary/internal/client"
	"github.com/heartmarshall/emotion-diary/internal/domain"
)

const (
	previewRunes = 40
	shortIDLen   = 8
	timeLayout   = "2006-01-02 15:04"
)

var (
	bold     = color.New(color.Bold)
	faint    = color.New(color.Faint)
	heading  = color.New(color.Bold, color.Underline)
	feedback = color.New(color.FgCyan)
	marked   = color.New(color.Bold, color.FgMagenta)
	todayFmt = color.New(color.Bold, color.Underline)
)

var weekdays = []string{"일", "월", "화", "수", "목", "금", "토"}

func printOutcome(w io.Writer, out *client.Outcome, loc *time.Location) {
	if out.Message != "" {
		faint.Fprintln(w, out.Message)
	}
	if out.Diary != nil {
		printEntry(w, out.Diary, loc)
		return
	}
	printFeedback(w, out.Feedback)
}

func printEntry(w io.Writer, d *domain.Diary, loc *time.Location) {
	heading.Fprintf(w, "%s\n", d.EffectiveDate(loc))
	faint.Fprintf(w, "id %s · 작성 %s", d.ID, d.CreatedAt.In(loc).Format(timeLayout))
	if d.UpdatedAt.After(d.CreatedAt) {
		faint.Fprintf(w, " · 수정 %s", d.UpdatedAt.In(loc).Format(timeLayout))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, d.Content)
	fmt.Fprintln(w)

	if d.HasFeedback() {
		printFeedback(w, *d.Feedback)
	} else {
		faint.Fprintln(w, "아직 피드백이 없어요. `diary reanalyze`로 다시 요청할 수 있어요.")
	}
}

func printFeedback(w io.Writer, text string) {
	bold.Fprintln(w, "AI 피드백")
	feedback.Fprintln(w, text)
}

func printTable(w io.Writer, entries []*domain.Diary, loc *time.Location) {
	if len(entries) == 0 {
		faint.Fprintln(w, "작성한 일기가 없어요.")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("DATE", "ID", "CONTENT", "FEEDBACK")
	for _, d := range entries {
		fb := "-"
		if d.HasFeedback() {
			fb = "✓"
		}
		tbl.AddRow(d.EffectiveDate(loc).String(), d.ID.String()[:shortIDLen], preview(d.Content), fb)
	}
	fmt.Fprintln(w, tbl)
}

// printCalendar draws the month grid. Days with entries are marked with *,
// today is underlined and future days are dimmed.
func printCalendar(w io.Writer, v calendar.MonthView) {
	heading.Fprintf(w, "%d년 %d월\n", v.Month.Year, int(v.Month.Month))
	for _, d := range weekdays {
		fmt.Fprintf(w, " %s ", d)
	}
	fmt.Fprintln(w)

	for i, c := range v.Cells {
		switch {
		case c.Empty:
			fmt.Fprint(w, "    ")
		default:
			mark := " "
			if len(c.Entries) > 0 {
				mark = "*"
			}
			cell := fmt.Sprintf("%3d%s", c.Date.Day, mark)
			switch {
			case c.Today:
				todayFmt.Fprint(w, cell)
			case c.Future:
				faint.Fprint(w, cell)
			case len(c.Entries) > 0:
				marked.Fprint(w, cell)
			default:
				fmt.Fprint(w, cell)
			}
		}
		if i%7 == 6 {
			fmt.Fprintln(w)
		}
	}
	if len(v.Cells)%7 != 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	faint.Fprintf(w, "이번 달 일기 %d편 · 이전 %s · 다음 %s\n", v.EntryCount(), v.Month.Previous(), v.Month.Next())
}

func preview(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	if utf8.RuneCountInString(line) <= previewRunes && line == content {
		return line
	}
	runes := []rune(line)
	if len(runes) > previewRunes {
		runes = runes[:previewRunes]
	}
	return string(runes) + "…"
}
