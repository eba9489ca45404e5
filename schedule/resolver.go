package schedule

import (
	"time"

	"github.com/rmrobinson/transitcal/gtfs"
	"go.uber.org/zap"
)

// Resolve computes the active and excluded service statuses for the supplied date.
//
// Every calendar row is evaluated independently; rows sharing a service_id are
// not merged and may each contribute a status. An exception row matching the
// row's service and the date overrides the weekly pattern: Added always
// activates, Removed excludes only a service the pattern would otherwise run.
// Services with no calendar row at all appear only via Added exception rows.
func (e *Engine) Resolve(date time.Time) (active []*ServiceStatus, excluded []*ServiceStatus) {
	key := dateKey(date)
	day := date.Weekday()

	for _, cal := range e.ds.Calendar {
		baseActive := calendarInRange(cal, key) && cal.ActiveOn(day)

		exc := e.exceptionFor(cal.ServiceID, key)
		if exc == nil {
			if baseActive {
				active = append(active, &ServiceStatus{
					ServiceID: cal.ServiceID,
					Active:    true,
					Calendar:  cal,
				})
			}
			continue
		}

		switch exc.ExceptionType {
		case gtfs.ExceptionTypeAdded:
			active = append(active, &ServiceStatus{
				ServiceID:     cal.ServiceID,
				Active:        true,
				IsException:   true,
				ExceptionType: exc.ExceptionType,
				Calendar:      cal,
			})
		case gtfs.ExceptionTypeRemoved:
			// Removing a service the pattern wouldn't run anyway is a no-op.
			if baseActive {
				excluded = append(excluded, &ServiceStatus{
					ServiceID:     cal.ServiceID,
					IsException:   true,
					ExceptionType: exc.ExceptionType,
					Calendar:      cal,
				})
			}
		default:
			e.logger.Debug("ignoring unrecognized exception type",
				zap.String("service_id", exc.ServiceID),
				zap.Int("exception_type", int(exc.ExceptionType)),
			)
			if baseActive {
				active = append(active, &ServiceStatus{
					ServiceID: cal.ServiceID,
					Active:    true,
					Calendar:  cal,
				})
			}
		}
	}

	// Services defined solely by exception rows. An Added row activates them
	// for its date; a Removed row has no base service to remove and emits nothing.
	for _, cd := range e.ds.CalendarDate {
		if dateKey(cd.Date.Time) != key {
			continue
		}
		if _, ok := e.calendarServices[cd.ServiceID]; ok {
			continue
		}
		if cd.ExceptionType != gtfs.ExceptionTypeAdded {
			continue
		}

		active = append(active, &ServiceStatus{
			ServiceID:     cd.ServiceID,
			Active:        true,
			IsException:   true,
			ExceptionType: cd.ExceptionType,
		})
	}

	return active, excluded
}

// ResolveBase computes the services the weekly pattern alone would run on the
// supplied date, ignoring all exception rows.
func (e *Engine) ResolveBase(date time.Time) []*ServiceStatus {
	key := dateKey(date)
	day := date.Weekday()

	var active []*ServiceStatus
	for _, cal := range e.ds.Calendar {
		if calendarInRange(cal, key) && cal.ActiveOn(day) {
			active = append(active, &ServiceStatus{
				ServiceID: cal.ServiceID,
				Active:    true,
				Calendar:  cal,
			})
		}
	}
	return active
}

// ResolveDay answers the full "what runs today" query for the supplied date.
func (e *Engine) ResolveDay(date time.Time) *DayResolution {
	active, excluded := e.Resolve(date)

	activeIDs := make(map[string]struct{}, len(active))
	for _, status := range active {
		activeIDs[status.ServiceID] = struct{}{}
	}

	return &DayResolution{
		Date:     date,
		DateKey:  dateKey(date),
		Base:     e.ResolveBase(date),
		Active:   active,
		Excluded: excluded,
		Trips:    e.Project(activeIDs),
	}
}

// exceptionFor returns the first exception row for the supplied service and
// date key, in the order the rows appeared in the source file, or nil.
func (e *Engine) exceptionFor(serviceID string, key string) *gtfs.CalendarDate {
	for _, cd := range e.exceptions[serviceID] {
		if dateKey(cd.Date.Time) == key {
			return cd
		}
	}
	return nil
}

// calendarInRange reports whether the date key falls within the calendar's
// inclusive start/end range. A row with an unset date never matches.
func calendarInRange(cal *gtfs.Calendar, key string) bool {
	if cal.StartDate.IsZero() || cal.EndDate.IsZero() {
		return false
	}
	return key >= cal.StartDate.Format(gtfs.DateFormat) && key <= cal.EndDate.Format(gtfs.DateFormat)
}
