package gtfs

import (
	"fmt"
	"strconv"
	"strings"
)

// ExceptionType represents the possible set of service exception types
type ExceptionType int

const (
	// ExceptionTypeAdded indicates the service runs on the specified date.
	ExceptionTypeAdded ExceptionType = 1
	// ExceptionTypeRemoved indicates the service does not run on the specified date.
	ExceptionTypeRemoved = 2
)

// String presents the caller with a human readable version of this enum.
func (et *ExceptionType) String() string {
	switch *et {
	case ExceptionTypeAdded:
		return "Added"
	case ExceptionTypeRemoved:
		return "Removed"
	default:
		return "Unknown"
	}
}

// MarshalCSV converts this enum into a string for CSV writing.
func (et *ExceptionType) MarshalCSV() (string, error) {
	return fmt.Sprintf("%d", *et), nil
}

// UnmarshalCSV attempts to convert a string value from a CSV file into the enum value.
func (et *ExceptionType) UnmarshalCSV(csv string) error {
	val, err := strconv.ParseInt(strings.TrimSpace(csv), 10, 32)
	if err != nil {
		return err
	}

	*et = ExceptionType(val)
	return nil
}

// CalendarDate represents a service override on the specified date.
// The same (service_id, date) pair may appear more than once; consumers decide precedence.
type CalendarDate struct {
	ServiceID     string        `csv:"service_id"`
	Date          CSVDate       `csv:"date"`
	ExceptionType ExceptionType `csv:"exception_type"`
}
