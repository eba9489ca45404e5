package schedule

import (
	"testing"

	"github.com/rmrobinson/transitcal/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCleanDataset(t *testing.T) {
	engine := newTestEngine(&gtfs.Dataset{
		Routes: []*gtfs.Route{
			{ID: "R1"},
		},
		Trips: []*gtfs.Trip{
			{ID: "T1", RouteID: "R1", ServiceID: "WD"},
			{ID: "T2", RouteID: "R1", ServiceID: "WD"},
		},
		Calendar: []*gtfs.Calendar{
			weekdayCalendar("WD", "20240101", "20241231"),
		},
		CalendarDate: []*gtfs.CalendarDate{
			{ServiceID: "WD", Date: testDate("20240704"), ExceptionType: gtfs.ExceptionTypeRemoved},
			{ServiceID: "WD", Date: testDate("20241225"), ExceptionType: gtfs.ExceptionTypeRemoved},
		},
	})

	result := engine.Validate()

	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
	assert.Equal(t, 2, result.Stats.TripCount)
	assert.Equal(t, 1, result.Stats.ServiceCount)
}

func TestValidateDuplicateCalendarServiceID(t *testing.T) {
	engine := newTestEngine(&gtfs.Dataset{
		Calendar: []*gtfs.Calendar{
			weekdayCalendar("WD", "20240101", "20241231"),
			weekdayCalendar("WD", "20240601", "20240831"),
			weekdayCalendar("WD", "20240901", "20241231"),
		},
	})

	result := engine.Validate()

	assert.False(t, result.Valid)
	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, "calendar.txt", issue.File)
	assert.Equal(t, "service_id", issue.Field)
	assert.Equal(t, []string{"WD"}, issue.Values, "each offending value listed once")
	assert.Contains(t, issue.Message, "1 duplicate")
}

func TestValidateDuplicateTripIDs(t *testing.T) {
	engine := newTestEngine(&gtfs.Dataset{
		Trips: []*gtfs.Trip{
			{ID: "T2", ServiceID: "WD"},
			{ID: "T1", ServiceID: "WD"},
			{ID: "T2", ServiceID: "SAT"},
			{ID: "T1", ServiceID: "WD"},
		},
	})

	result := engine.Validate()

	assert.False(t, result.Valid)
	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, "trips.txt", issue.File)
	assert.Equal(t, "trip_id", issue.Field)
	assert.Equal(t, []string{"T2", "T1"}, issue.Values, "encounter order preserved")
}

func TestValidateDuplicateExceptionKey(t *testing.T) {
	engine := newTestEngine(&gtfs.Dataset{
		CalendarDate: []*gtfs.CalendarDate{
			{ServiceID: "WD", Date: testDate("20240704"), ExceptionType: gtfs.ExceptionTypeRemoved},
			{ServiceID: "WD", Date: testDate("20241225"), ExceptionType: gtfs.ExceptionTypeRemoved},
			{ServiceID: "WD", Date: testDate("20240704"), ExceptionType: gtfs.ExceptionTypeAdded},
		},
	})

	result := engine.Validate()

	assert.False(t, result.Valid)
	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, "calendar_dates.txt", issue.File)
	assert.Equal(t, "service_id+date", issue.Field)
	assert.Equal(t, []string{"WD@20240704"}, issue.Values)
}

// The validator flags what the resolver tolerates; both must hold at once.
func TestValidateAndResolveDuplicateCalendars(t *testing.T) {
	ds := &gtfs.Dataset{
		Calendar: []*gtfs.Calendar{
			weekdayCalendar("WD", "20240101", "20241231"),
			weekdayCalendar("WD", "20240101", "20241231"),
		},
	}
	engine := newTestEngine(ds)

	result := engine.Validate()
	assert.False(t, result.Valid)
	require.Len(t, result.Issues, 1)

	active, _ := engine.Resolve(testDay("20240703"))
	require.Len(t, active, 2)
	assert.Equal(t, "WD", active[0].ServiceID)
	assert.Equal(t, "WD", active[1].ServiceID)
}

func TestValidateEmptyDataset(t *testing.T) {
	result := newTestEngine(&gtfs.Dataset{}).Validate()

	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
	assert.Equal(t, DatasetStats{}, result.Stats)
}
