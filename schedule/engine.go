package schedule

import (
	"time"

	"github.com/rmrobinson/transitcal/gtfs"
	"go.uber.org/zap"
)

// Engine answers scheduling queries against one immutable dataset snapshot.
// All query methods are read-only and deterministic; the engine never mutates
// the dataset it was created with.
type Engine struct {
	logger *zap.Logger
	ds     *gtfs.Dataset

	routes           map[string]*gtfs.Route
	exceptions       map[string][]*gtfs.CalendarDate
	calendarServices map[string]struct{}
}

// NewEngine creates a new engine over the supplied dataset.
// The dataset must be fully loaded before this is called.
func NewEngine(logger *zap.Logger, ds *gtfs.Dataset) *Engine {
	e := &Engine{
		logger: logger,
		ds:     ds,

		routes:           map[string]*gtfs.Route{},
		exceptions:       map[string][]*gtfs.CalendarDate{},
		calendarServices: map[string]struct{}{},
	}

	e.setup()
	return e
}

// setup populates the internal data structures used to support queries against this dataset.
func (e *Engine) setup() {
	for _, route := range e.ds.Routes {
		e.routes[route.ID] = route
	}

	for _, cal := range e.ds.Calendar {
		e.calendarServices[cal.ServiceID] = struct{}{}
	}

	// Exception rows keep their file order within each service so that
	// duplicate (service_id, date) rows resolve to the first one seen.
	for _, cd := range e.ds.CalendarDate {
		e.exceptions[cd.ServiceID] = append(e.exceptions[cd.ServiceID], cd)
	}

	for _, trip := range e.ds.Trips {
		if _, ok := e.routes[trip.RouteID]; !ok {
			e.logger.Debug("trip specified missing route ID",
				zap.String("trip_id", trip.ID),
				zap.String("route_id", trip.RouteID),
			)
		}
	}
}

// dateKey canonicalizes a date to its YYYYMMDD form, dropping any time of day.
func dateKey(date time.Time) string {
	return date.Format(gtfs.DateFormat)
}
