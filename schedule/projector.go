package schedule

// Project filters the dataset's trips down to those whose service_id is in
// the supplied active set, attaching the trip's route when its route_id
// resolves. Output order matches the trip table's order.
func (e *Engine) Project(activeServiceIDs map[string]struct{}) []*TripWithRoute {
	var trips []*TripWithRoute
	for _, trip := range e.ds.Trips {
		if _, ok := activeServiceIDs[trip.ServiceID]; !ok {
			continue
		}

		trips = append(trips, &TripWithRoute{
			Trip:  trip,
			Route: e.routes[trip.RouteID],
		})
	}
	return trips
}

// ActiveServiceIDs collects the distinct service ids from a resolved status list.
func ActiveServiceIDs(statuses []*ServiceStatus) map[string]struct{} {
	ids := make(map[string]struct{}, len(statuses))
	for _, status := range statuses {
		ids[status.ServiceID] = struct{}{}
	}
	return ids
}
