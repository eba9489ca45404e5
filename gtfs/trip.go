package gtfs

// Trip represents a single scheduled run of a vehicle along a route.
type Trip struct {
	ID                   string `csv:"trip_id"`
	RouteID              string `csv:"route_id"`
	ServiceID            string `csv:"service_id"`
	Headsign             string `csv:"trip_headsign"`
	ShortName            string `csv:"trip_short_name"`
	DirectionID          CSVInt `csv:"direction_id"`
	BlockID              string `csv:"block_id"`
	ShapeID              string `csv:"shape_id"`
	WheelchairAccessible CSVInt `csv:"wheelchair_accessible"`
	BikesAllowed         CSVInt `csv:"bikes_allowed"`
}
