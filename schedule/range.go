package schedule

import (
	"time"
)

// DateRange is a closed interval of service dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DatasetStats summarizes the size of one loaded dataset.
type DatasetStats struct {
	RouteCount     int
	TripCount      int
	CalendarCount  int
	ExceptionCount int
	// ServiceCount is the number of distinct service ids seen across the
	// calendar and exception tables combined.
	ServiceCount int
}

// DateRange returns the overall span of dates covered by the dataset's
// calendar ranges and exception dates. The second return is false when the
// dataset carries no calendars and no exceptions.
func (e *Engine) DateRange() (DateRange, bool) {
	var r DateRange
	found := false

	consider := func(date time.Time) {
		if date.IsZero() {
			return
		}
		if !found {
			r.Start, r.End = date, date
			found = true
			return
		}
		if date.Before(r.Start) {
			r.Start = date
		}
		if date.After(r.End) {
			r.End = date
		}
	}

	for _, cal := range e.ds.Calendar {
		consider(cal.StartDate.Time)
		consider(cal.EndDate.Time)
	}
	for _, cd := range e.ds.CalendarDate {
		consider(cd.Date.Time)
	}

	return r, found
}

// AvailableDates expands the dataset's date range into one entry per day,
// starting at today when today falls inside the range. The result is empty
// when the dataset is empty or today is already past the range's end.
// today is always supplied by the caller; the engine never reads the clock.
func (e *Engine) AvailableDates(today time.Time) []time.Time {
	r, ok := e.DateRange()
	if !ok {
		return nil
	}

	start := r.Start
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if day.After(start) {
		start = day
	}
	if start.After(r.End) {
		return nil
	}

	var dates []time.Time
	for d := start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Stats returns the dataset's table counts and distinct service cardinality.
func (e *Engine) Stats() DatasetStats {
	services := map[string]struct{}{}
	for _, cal := range e.ds.Calendar {
		services[cal.ServiceID] = struct{}{}
	}
	for _, cd := range e.ds.CalendarDate {
		services[cd.ServiceID] = struct{}{}
	}

	return DatasetStats{
		RouteCount:     len(e.ds.Routes),
		TripCount:      len(e.ds.Trips),
		CalendarCount:  len(e.ds.Calendar),
		ExceptionCount: len(e.ds.CalendarDate),
		ServiceCount:   len(services),
	}
}
