package gtfs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateFormat is the layout of a GTFS service date (YYYYMMDD).
	DateFormat = "20060102"
)

var (
	// ErrInvalidBoolField is returned if a boolean field has invalid data
	ErrInvalidBoolField = errors.New("invalid boolean field supplied")
)

// CSVBool is a CSV marshalable boolean value
type CSVBool bool

// MarshalCSV marshals the value into a string format
func (b *CSVBool) MarshalCSV() (string, error) {
	if *b {
		return "1", nil
	}
	return "0", nil
}

// UnmarshalCSV takes the string representation from a CSV file and attempts to convert it to a bool.
func (b *CSVBool) UnmarshalCSV(csv string) error {
	csv = strings.TrimSpace(csv)
	if len(csv) < 1 {
		*b = false
		return nil
	}

	val, err := strconv.ParseInt(csv, 10, 32)
	if err != nil {
		return err
	}

	if val == 1 {
		*b = true
		return nil
	} else if val == 0 {
		*b = false
		return nil
	}
	return ErrInvalidBoolField
}

// CSVDate is a GTFS date parsed from CSV. An empty field parses to the zero time.
type CSVDate struct {
	time.Time
}

// MarshalCSV marshals the value into a string format
func (d *CSVDate) MarshalCSV() (string, error) {
	return d.Format(DateFormat), nil
}

// UnmarshalCSV takes the string representation from a CSV file and attempts to convert it to a date.
func (d *CSVDate) UnmarshalCSV(csv string) (err error) {
	csv = strings.TrimSpace(csv)
	if len(csv) < 1 {
		d.Time = time.Time{}
		return nil
	}

	d.Time, err = time.Parse(DateFormat, csv)
	return err
}

// CSVInt is a CSV marshalable int32 value
type CSVInt int

// MarshalCSV marshals the value into a string format
func (i *CSVInt) MarshalCSV() (string, error) {
	return fmt.Sprintf("%d", *i), nil
}

// UnmarshalCSV takes the string representation from a CSV file and attempts to convert it to a int32.
func (i *CSVInt) UnmarshalCSV(csv string) error {
	csv = strings.TrimSpace(csv)
	if len(csv) < 1 {
		*i = 0
		return nil
	}

	val, err := strconv.ParseInt(csv, 10, 32)
	if err != nil {
		return err
	}

	*i = CSVInt(val)
	return nil
}
