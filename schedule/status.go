package schedule

import (
	"time"

	"github.com/rmrobinson/transitcal/gtfs"
)

// ServiceStatus describes the resolved state of a single service on a single date.
type ServiceStatus struct {
	ServiceID string
	// Active is false only for services excluded by a Removed exception.
	Active bool
	// IsException is true when an exception row decided this status.
	IsException bool
	// ExceptionType is only meaningful when IsException is true.
	ExceptionType gtfs.ExceptionType
	// Calendar points at the row that produced this status.
	// It is nil for services defined solely by exception rows.
	Calendar *gtfs.Calendar
}

// TripWithRoute pairs a scheduled trip with its route, when the route_id resolves.
type TripWithRoute struct {
	*gtfs.Trip

	// Route is nil if no route shares the trip's route_id.
	Route *gtfs.Route
}

// DayResolution is the complete answer to "what runs on this date".
type DayResolution struct {
	Date    time.Time
	DateKey string

	// Base holds the services the weekly pattern alone would run, ignoring exceptions.
	Base []*ServiceStatus

	Active   []*ServiceStatus
	Excluded []*ServiceStatus

	Trips []*TripWithRoute
}
