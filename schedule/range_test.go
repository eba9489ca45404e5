package schedule

import (
	"testing"

	"github.com/rmrobinson/transitcal/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRange(t *testing.T) {
	engine := newTestEngine(&gtfs.Dataset{
		Calendar: []*gtfs.Calendar{
			weekdayCalendar("WD", "20240201", "20241130"),
		},
		CalendarDate: []*gtfs.CalendarDate{
			// Exceptions can extend the range on both ends.
			{ServiceID: "HOLIDAY", Date: testDate("20240101"), ExceptionType: gtfs.ExceptionTypeAdded},
			{ServiceID: "HOLIDAY", Date: testDate("20241225"), ExceptionType: gtfs.ExceptionTypeAdded},
		},
	})

	r, ok := engine.DateRange()

	require.True(t, ok)
	assert.Equal(t, testDay("20240101"), r.Start)
	assert.Equal(t, testDay("20241225"), r.End)
}

func TestDateRangeEmptyDataset(t *testing.T) {
	_, ok := newTestEngine(&gtfs.Dataset{}).DateRange()
	assert.False(t, ok)

	// Trips alone carry no dates.
	_, ok = newTestEngine(&gtfs.Dataset{
		Trips: []*gtfs.Trip{{ID: "T1"}},
	}).DateRange()
	assert.False(t, ok)
}

func TestAvailableDates(t *testing.T) {
	engine := newTestEngine(&gtfs.Dataset{
		Calendar: []*gtfs.Calendar{
			weekdayCalendar("WD", "20240701", "20240710"),
		},
	})

	dates := engine.AvailableDates(testDay("20240101"))
	require.Len(t, dates, 10, "today before the range expands the full range")
	assert.Equal(t, testDay("20240701"), dates[0])
	assert.Equal(t, testDay("20240710"), dates[9])

	dates = engine.AvailableDates(testDay("20240708"))
	require.Len(t, dates, 3, "today inside the range clamps the start")
	assert.Equal(t, testDay("20240708"), dates[0])

	assert.Empty(t, engine.AvailableDates(testDay("20240711")), "today past the range yields nothing")
}

func TestAvailableDatesEmptyDataset(t *testing.T) {
	assert.Empty(t, newTestEngine(&gtfs.Dataset{}).AvailableDates(testDay("20240101")))
}

func TestStats(t *testing.T) {
	engine := newTestEngine(&gtfs.Dataset{
		Routes: []*gtfs.Route{
			{ID: "R1"},
		},
		Trips: []*gtfs.Trip{
			{ID: "T1", RouteID: "R1", ServiceID: "WD"},
			{ID: "T2", RouteID: "R1", ServiceID: "SAT"},
		},
		Calendar: []*gtfs.Calendar{
			weekdayCalendar("WD", "20240101", "20241231"),
			weekdayCalendar("WD", "20240601", "20240831"),
		},
		CalendarDate: []*gtfs.CalendarDate{
			{ServiceID: "WD", Date: testDate("20240704"), ExceptionType: gtfs.ExceptionTypeRemoved},
			{ServiceID: "HOLIDAY", Date: testDate("20240704"), ExceptionType: gtfs.ExceptionTypeAdded},
		},
	})

	stats := engine.Stats()

	assert.Equal(t, 1, stats.RouteCount)
	assert.Equal(t, 2, stats.TripCount)
	assert.Equal(t, 2, stats.CalendarCount)
	assert.Equal(t, 2, stats.ExceptionCount)
	// Distinct union of calendar and exception service ids: WD, HOLIDAY.
	assert.Equal(t, 2, stats.ServiceCount)
}
