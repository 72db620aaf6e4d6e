package rest

import (
	"fmt"

	"github.com/golang-sql/civil"

	"github.com/heartmarshall/emotion-diary/internal/adapter/provider/feedback/function"
	"github.com/heartmarshall/emotion-diary/internal/calendar"
)

// CalendarResponse is the wire form of a projected month.
type CalendarResponse struct {
	Month    string        `json:"month"`
	Today    string        `json:"today"`
	Previous string        `json:"previous"`
	Next     string        `json:"next"`
	Cells    []CalendarDay `json:"cells"`
}

// CalendarDay is one grid cell. Placeholders carry Empty and nothing else.
type CalendarDay struct {
	Empty   bool              `json:"empty,omitempty"`
	Date    string            `json:"date,omitempty"`
	Today   bool              `json:"today,omitempty"`
	Future  bool              `json:"future,omitempty"`
	Entries []*function.Diary `json:"entries,omitempty"`
}

// NewCalendarResponse converts a month view to its wire form.
func NewCalendarResponse(v calendar.MonthView) CalendarResponse {
	resp := CalendarResponse{
		Month:    v.Month.String(),
		Today:    v.Today.String(),
		Previous: v.Month.Previous().String(),
		Next:     v.Month.Next().String(),
		Cells:    make([]CalendarDay, 0, len(v.Cells)),
	}
	for _, c := range v.Cells {
		if c.Empty {
			resp.Cells = append(resp.Cells, CalendarDay{Empty: true})
			continue
		}
		day := CalendarDay{Date: c.Date.String(), Today: c.Today, Future: c.Future}
		for _, e := range c.Entries {
			day.Entries = append(day.Entries, function.NewDiary(e))
		}
		resp.Cells = append(resp.Cells, day)
	}
	return resp
}

// View converts the wire form back into a month view.
func (r CalendarResponse) View() (calendar.MonthView, error) {
	month, err := calendar.ParseMonth(r.Month)
	if err != nil {
		return calendar.MonthView{}, err
	}
	view := calendar.MonthView{Month: month, Cells: make([]calendar.DayCell, 0, len(r.Cells))}
	if r.Today != "" {
		if view.Today, err = civil.ParseDate(r.Today); err != nil {
			return calendar.MonthView{}, fmt.Errorf("today: %w", err)
		}
	}

	for _, c := range r.Cells {
		if c.Empty {
			view.Cells = append(view.Cells, calendar.DayCell{Cell: calendar.Cell{Empty: true}})
			continue
		}
		date, err := civil.ParseDate(c.Date)
		if err != nil {
			return calendar.MonthView{}, fmt.Errorf("cell %q: %w", c.Date, err)
		}
		cell := calendar.DayCell{Cell: calendar.Cell{Date: date}, Today: c.Today, Future: c.Future}
		for _, e := range c.Entries {
			d, err := e.ToDomain()
			if err != nil {
				return calendar.MonthView{}, err
			}
			cell.Entries = append(cell.Entries, d)
		}
		view.Cells = append(view.Cells, cell)
	}
	return view, nil
}

