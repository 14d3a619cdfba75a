// Package calendar builds the month grid the frontend renders. The grid is
// six week rows of seven cells at most; months that fit in fewer rows
// produce fewer rows. Building is pure, the events for the month are
// queried by the caller.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/daygrid/scheduler/internal/errdef"
	"github.com/daygrid/scheduler/pkg/access"
	"github.com/daygrid/scheduler/pkg/model"

	"golang.org/x/exp/slices"
)

// EventView is the per-cell projection of an event.
type EventView struct {
	ID         uint   `json:"id"`
	Time       string `json:"time"`
	Title      string `json:"title"`
	Important  bool   `json:"important"`
	IsPrivate  bool   `json:"is_private"`
	Author     string `json:"author"`
	AuthorName string `json:"author_name"`
}

// Cell is one day slot of the grid. Leading and trailing slots outside the
// month are empty cells carrying no date.
type Cell struct {
	Empty    bool        `json:"empty"`
	Date     string      `json:"date,omitempty"`
	Day      int         `json:"day,omitempty"`
	Weekend  bool        `json:"weekend"`
	Today    bool        `json:"today"`
	Selected bool        `json:"selected"`
	Events   []EventView `json:"events"`
}

// Week is a single row of exactly seven cells.
type Week []Cell

// Month is the rendered grid for one year/month pair.
type Month struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Weeks []Week `json:"weeks"`
}

// Options carries the render-time state that is not derived from the
// events themselves. A zero Today means "now".
type Options struct {
	Today    time.Time
	Selected string
}

// BuildMonth lays the given events out on the grid of (year, month).
// Private events are dropped unless viewer owns them. Events within a cell
// are ordered by time of day; events sharing a time keep their input order.
func BuildMonth(year, month int, events []model.Event, viewer *access.Actor, opts Options) (*Month, error) {
	if month < 1 || month > 12 {
		return nil, errdef.NewBadRequest("month must be between 1 and 12, got %d", month)
	}
	if year < 1 {
		return nil, errdef.NewBadRequest("year must be positive, got %d", year)
	}

	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	firstDayOfWeek := int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())

	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}
	todayDate := today.Format("2006-01-02")

	cellEvents := bucketByDate(events, viewer)

	weeks := make([]Week, 0, 6)
	dayCount := 1
	for week := 0; week < 6 && dayCount <= lastDay; week++ {
		row := make(Week, 7)
		for day := 0; day < 7; day++ {
			weekend := day == 0 || day == 6
			if (week == 0 && day < firstDayOfWeek) || dayCount > lastDay {
				row[day] = Cell{Empty: true, Weekend: weekend}
				continue
			}

			date := fmt.Sprintf("%04d-%02d-%02d", year, month, dayCount)
			views := cellEvents[date]
			if views == nil {
				views = []EventView{}
			}
			row[day] = Cell{
				Date:     date,
				Day:      dayCount,
				Weekend:  weekend,
				Today:    date == todayDate,
				Selected: date == opts.Selected,
				Events:   views,
			}
			dayCount++
		}
		weeks = append(weeks, row)
	}

	return &Month{Year: year, Month: month, Weeks: weeks}, nil
}

// Previous returns the year/month pair one month back, rolling the year
// over at January.
func Previous(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// Next returns the year/month pair one month forward, rolling the year
// over at December.
func Next(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}

func bucketByDate(events []model.Event, viewer *access.Actor) map[string][]EventView {
	buckets := make(map[string][]EventView)
	for _, e := range events {
		resource := access.Resource{AuthorID: e.AuthorID, Private: e.IsPrivate, Category: model.CategoryEvent}
		if access.CanView(viewer, resource) != nil {
			continue
		}
		buckets[e.Date] = append(buckets[e.Date], EventView{
			ID:         e.ID,
			Time:       e.Time,
			Title:      e.Title,
			Important:  e.Important,
			IsPrivate:  e.IsPrivate,
			Author:     e.Author.Username,
			AuthorName: e.Author.Name,
		})
	}

	for _, views := range buckets {
		slices.SortStableFunc(views, func(a, b EventView) int {
			return timeOfDay(a.Time) - timeOfDay(b.Time)
		})
	}

	return buckets
}

// timeOfDay ranks "HH:MM" as hour*100+minute. Unparsable values sort first.
func timeOfDay(s string) int {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 {
		return 0
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hour*100 + minute
}
