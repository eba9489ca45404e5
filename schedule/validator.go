package schedule

import (
	"fmt"
)

// ValidationIssue reports one violated uniqueness constraint.
type ValidationIssue struct {
	// File is the source table the constraint applies to, e.g. "trips.txt".
	File string
	// Field is the key field (or composite) that must be unique.
	Field string
	// Message is a human readable description of the violation.
	Message string
	// Values lists each offending key value once, in encounter order.
	Values []string
}

// ValidationResult is the outcome of checking a dataset's declared
// uniqueness constraints. Violations are reported, never raised; a dataset
// with issues still resolves.
type ValidationResult struct {
	Valid  bool
	Issues []*ValidationIssue
	Stats  DatasetStats
}

// Validate checks the dataset's three uniqueness constraints:
// trip_id in trips.txt, service_id in calendar.txt, and the composite
// (service_id, date) in calendar_dates.txt.
func (e *Engine) Validate() *ValidationResult {
	var issues []*ValidationIssue

	tripIDs := make([]string, 0, len(e.ds.Trips))
	for _, trip := range e.ds.Trips {
		tripIDs = append(tripIDs, trip.ID)
	}
	if issue := checkUnique("trips.txt", "trip_id", tripIDs); issue != nil {
		issues = append(issues, issue)
	}

	serviceIDs := make([]string, 0, len(e.ds.Calendar))
	for _, cal := range e.ds.Calendar {
		serviceIDs = append(serviceIDs, cal.ServiceID)
	}
	if issue := checkUnique("calendar.txt", "service_id", serviceIDs); issue != nil {
		issues = append(issues, issue)
	}

	exceptionKeys := make([]string, 0, len(e.ds.CalendarDate))
	for _, cd := range e.ds.CalendarDate {
		exceptionKeys = append(exceptionKeys, fmt.Sprintf("%s@%s", cd.ServiceID, dateKey(cd.Date.Time)))
	}
	if issue := checkUnique("calendar_dates.txt", "service_id+date", exceptionKeys); issue != nil {
		issues = append(issues, issue)
	}

	return &ValidationResult{
		Valid:  len(issues) == 0,
		Issues: issues,
		Stats:  e.Stats(),
	}
}

// checkUnique builds one issue covering every value occurring two or more
// times in the supplied keys, or nil if all values are distinct.
func checkUnique(file string, field string, keys []string) *ValidationIssue {
	dupes := duplicateValues(keys)
	if len(dupes) == 0 {
		return nil
	}

	return &ValidationIssue{
		File:    file,
		Field:   field,
		Message: fmt.Sprintf("%d duplicate %s value(s) found in %s", len(dupes), field, file),
		Values:  dupes,
	}
}

// duplicateValues returns the values appearing at least twice, each listed
// once, in the order they were first encountered.
func duplicateValues(values []string) []string {
	counts := map[string]int{}
	for _, value := range values {
		counts[value]++
	}

	var dupes []string
	reported := map[string]bool{}
	for _, value := range values {
		if counts[value] < 2 || reported[value] {
			continue
		}
		reported[value] = true
		dupes = append(dupes, value)
	}
	return dupes
}
