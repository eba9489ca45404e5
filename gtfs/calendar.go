package gtfs

import "time"

// Calendar is a set of days that the specified service is available.
// service_id is not guaranteed unique; a feed may carry multiple rows for one service.
type Calendar struct {
	ServiceID string  `csv:"service_id"`
	Monday    CSVBool `csv:"monday"`
	Tuesday   CSVBool `csv:"tuesday"`
	Wednesday CSVBool `csv:"wednesday"`
	Thursday  CSVBool `csv:"thursday"`
	Friday    CSVBool `csv:"friday"`
	Saturday  CSVBool `csv:"saturday"`
	Sunday    CSVBool `csv:"sunday"`
	StartDate CSVDate `csv:"start_date"`
	EndDate   CSVDate `csv:"end_date"`
}

// ActiveOn reports whether this calendar's weekly pattern includes the supplied weekday.
func (c *Calendar) ActiveOn(day time.Weekday) bool {
	switch day {
	case time.Monday:
		return bool(c.Monday)
	case time.Tuesday:
		return bool(c.Tuesday)
	case time.Wednesday:
		return bool(c.Wednesday)
	case time.Thursday:
		return bool(c.Thursday)
	case time.Friday:
		return bool(c.Friday)
	case time.Saturday:
		return bool(c.Saturday)
	case time.Sunday:
		return bool(c.Sunday)
	}
	return false
}
