package calendar

import (
	"cmp"
	"slices"
	"time"

	"github.com/golang-sql/civil"

	"github.com/heartmarshall/emotion-diary/internal/domain"
)

// Cell is one slot of the month grid. Leading placeholders have Empty set
// and a zero Date.
type Cell struct {
	Date  civil.Date
	Empty bool
}

// Day returns the day of month, or 0 for a placeholder.
func (c Cell) Day() int {
	if c.Empty {
		return 0
	}
	return c.Date.Day
}

// DayCell is a grid cell together with the entries written for that day.
type DayCell struct {
	Cell
	Entries []*domain.Diary
	Today   bool
	Future  bool
}

// MonthView is the projection of a user's entries onto one month.
type MonthView struct {
	Month Month
	Today civil.Date
	Cells []DayCell
}

// Day returns the cell for day-of-month n, used for drill-down.
func (v MonthView) Day(n int) (DayCell, bool) {
	if n < 1 || n > v.Month.Days() {
		return DayCell{}, false
	}
	return v.Cells[v.Month.offset()+n-1], true
}

// EntryCount returns the number of entries in the month.
func (v MonthView) EntryCount() int {
	var n int
	for _, c := range v.Cells {
		n += len(c.Entries)
	}
	return n
}

// LayoutMonth returns the grid cells of m: one empty placeholder per weekday
// before the first day (weeks start on Sunday), then one cell per day.
func LayoutMonth(m Month) []Cell {
	offset := m.offset()
	days := m.Days()

	cells := make([]Cell, 0, offset+days)
	for range offset {
		cells = append(cells, Cell{Empty: true})
	}
	for d := m.First(); m.Contains(d); d = d.AddDays(1) {
		cells = append(cells, Cell{Date: d})
	}
	return cells
}

// BucketByDate groups entries of month m by the day of their effective date.
// Every entry is kept. Within a day entries are ordered newest first, so the
// result does not depend on input order.
func BucketByDate(entries []*domain.Diary, m Month, loc *time.Location) map[int][]*domain.Diary {
	buckets := make(map[int][]*domain.Diary)
	for _, e := range entries {
		if e == nil {
			continue
		}
		d := e.EffectiveDate(loc)
		if !m.Contains(d) {
			continue
		}
		buckets[d.Day] = append(buckets[d.Day], e)
	}
	for _, b := range buckets {
		slices.SortFunc(b, newestFirst)
	}
	return buckets
}

// IsFuture reports whether date lies strictly after today in loc.
func IsFuture(date civil.Date, now time.Time, loc *time.Location) bool {
	return date.After(domain.Today(now, loc))
}

// Project lays out m and attaches entries, today and future markers to each day.
func Project(entries []*domain.Diary, m Month, now time.Time, loc *time.Location) MonthView {
	today := domain.Today(now, loc)
	buckets := BucketByDate(entries, m, loc)

	layout := LayoutMonth(m)
	cells := make([]DayCell, len(layout))
	for i, c := range layout {
		cells[i] = DayCell{Cell: c}
		if c.Empty {
			continue
		}
		cells[i].Entries = buckets[c.Date.Day]
		cells[i].Today = c.Date == today
		cells[i].Future = c.Date.After(today)
	}

	return MonthView{Month: m, Today: today, Cells: cells}
}

func newestFirst(a, b *domain.Diary) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID.String(), a.ID.String())
}
