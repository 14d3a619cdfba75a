package calendar_test

import (
	"testing"
	"time"

	"github.com/daygrid/scheduler/internal/errdef"
	"github.com/daygrid/scheduler/pkg/access"
	"github.com/daygrid/scheduler/pkg/calendar"
	"github.com/daygrid/scheduler/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthShape(t *testing.T) {
	months := []struct {
		year, month int
		days        int
	}{
		{2024, 1, 31},
		{2024, 2, 29}, // leap year
		{2023, 2, 28},
		{2024, 4, 30},
		{2024, 12, 31},
		{2026, 8, 31},
	}

	for _, m := range months {
		got, err := calendar.BuildMonth(m.year, m.month, nil, nil, calendar.Options{})
		require.NoError(t, err)

		firstDayOfWeek := int(time.Date(m.year, time.Month(m.month), 1, 0, 0, 0, 0, time.UTC).Weekday())
		wantRows := (firstDayOfWeek + m.days + 6) / 7
		assert.Len(t, got.Weeks, wantRows, "%d-%02d", m.year, m.month)

		dateCells := 0
		for _, week := range got.Weeks {
			require.Len(t, week, 7)
			for _, cell := range week {
				if !cell.Empty {
					dateCells++
				}
			}
		}
		assert.Equal(t, m.days, dateCells, "%d-%02d", m.year, m.month)
	}
}

func TestBuildMonthLeapFebruary(t *testing.T) {
	got, err := calendar.BuildMonth(2024, 2, nil, nil, calendar.Options{})
	require.NoError(t, err)

	var lastDate calendar.Cell
	var lastRow int
	for i, week := range got.Weeks {
		for _, cell := range week {
			if !cell.Empty {
				lastDate = cell
				lastRow = i
			}
		}
	}

	assert.Equal(t, "2024-02-29", lastDate.Date)
	firstDayOfWeek := int(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).Weekday())
	assert.Equal(t, (firstDayOfWeek+28)/7, lastRow)
}

func TestBuildMonthCellFlags(t *testing.T) {
	opts := calendar.Options{
		Today:    time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
		Selected: "2024-05-20",
	}
	got, err := calendar.BuildMonth(2024, 5, nil, nil, opts)
	require.NoError(t, err)

	for _, week := range got.Weeks {
		for i, cell := range week {
			assert.Equal(t, i == 0 || i == 6, cell.Weekend)
			if cell.Empty {
				continue
			}
			assert.Equal(t, cell.Date == "2024-05-10", cell.Today, cell.Date)
			assert.Equal(t, cell.Date == "2024-05-20", cell.Selected, cell.Date)
		}
	}
}

func TestBuildMonthPlacesAndSortsEvents(t *testing.T) {
	events := []model.Event{
		{ID: 1, Date: "2024-05-10", Time: "14:30", Title: "afternoon", AuthorID: 1},
		{ID: 2, Date: "2024-05-10", Time: "09:00", Title: "morning", AuthorID: 2},
		{ID: 3, Date: "2024-05-10", Time: "09:00", Title: "morning too", AuthorID: 2},
		{ID: 4, Date: "2024-05-11", Time: "08:00", Title: "next day", AuthorID: 1},
	}

	got, err := calendar.BuildMonth(2024, 5, events, nil, calendar.Options{})
	require.NoError(t, err)

	cell := findCell(t, got, "2024-05-10")
	require.Len(t, cell.Events, 3)
	assert.Equal(t, uint(2), cell.Events[0].ID)
	// equal times keep their input order
	assert.Equal(t, uint(3), cell.Events[1].ID)
	assert.Equal(t, uint(1), cell.Events[2].ID)

	next := findCell(t, got, "2024-05-11")
	require.Len(t, next.Events, 1)
	assert.Equal(t, uint(4), next.Events[0].ID)
}

func TestBuildMonthPrivateVisibility(t *testing.T) {
	events := []model.Event{
		{ID: 1, Date: "2024-05-10", Time: "09:00", IsPrivate: true, AuthorID: 1},
		{ID: 2, Date: "2024-05-10", Time: "10:00", AuthorID: 1},
	}

	t.Run("anonymous sees public events only", func(t *testing.T) {
		got, err := calendar.BuildMonth(2024, 5, events, nil, calendar.Options{})
		require.NoError(t, err)
		cell := findCell(t, got, "2024-05-10")
		require.Len(t, cell.Events, 1)
		assert.Equal(t, uint(2), cell.Events[0].ID)
	})

	t.Run("owner sees their private events", func(t *testing.T) {
		got, err := calendar.BuildMonth(2024, 5, events, &access.Actor{ID: 1}, calendar.Options{})
		require.NoError(t, err)
		cell := findCell(t, got, "2024-05-10")
		assert.Len(t, cell.Events, 2)
	})

	t.Run("admins do not see private events of others", func(t *testing.T) {
		got, err := calendar.BuildMonth(2024, 5, events, &access.Actor{ID: 9, IsAdmin: true}, calendar.Options{})
		require.NoError(t, err)
		cell := findCell(t, got, "2024-05-10")
		require.Len(t, cell.Events, 1)
		assert.Equal(t, uint(2), cell.Events[0].ID)
	})
}

func TestBuildMonthRejectsInvalidInput(t *testing.T) {
	_, err := calendar.BuildMonth(2024, 0, nil, nil, calendar.Options{})
	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err))

	_, err = calendar.BuildMonth(2024, 13, nil, nil, calendar.Options{})
	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err))

	_, err = calendar.BuildMonth(0, 5, nil, nil, calendar.Options{})
	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err))
}

func TestNavigationRollsOverYears(t *testing.T) {
	year, month := calendar.Previous(2024, 1)
	assert.Equal(t, 2023, year)
	assert.Equal(t, 12, month)

	year, month = calendar.Next(2024, 12)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, month)

	year, month = calendar.Next(2024, 5)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 6, month)
}

func findCell(t *testing.T, m *calendar.Month, date string) calendar.Cell {
	t.Helper()
	for _, week := range m.Weeks {
		for _, cell := range week {
			if cell.Date == date {
				return cell
			}
		}
	}
	t.Fatalf("no cell with date %s", date)
	return calendar.Cell{}
}
