package views

import (
	"fmt"

	"fieldroutes/internal/dataset"
	"fieldroutes/internal/geo"
	"fieldroutes/internal/model"
)

type routeKey struct{ worker, day string }

// groupRoutes splits visits by (worker, day). Workers keep first-appearance
// order, and so do days within a worker; visits keep source order.
func groupRoutes(visits []model.Visit) ([]routeKey, map[routeKey][]model.Visit) {
	var workers []string
	days := map[string][]string{}
	groups := map[routeKey][]model.Visit{}
	for _, v := range visits {
		k := routeKey{v.WorkerID, v.Day}
		if _, seen := days[v.WorkerID]; !seen {
			workers = append(workers, v.WorkerID)
		}
		if _, seen := groups[k]; !seen {
			days[v.WorkerID] = append(days[v.WorkerID], v.Day)
		}
		groups[k] = append(groups[k], v)
	}
	keys := make([]routeKey, 0, len(groups))
	for _, w := range workers {
		for _, day := range days[w] {
			keys = append(keys, routeKey{w, day})
		}
	}
	return keys, groups
}

// Routes rebuilds the per-agent daily routes of a plan.
func Routes(d *dataset.Dataset, plan string) (model.RoutesData, error) {
	p, ok := model.ParsePlan(plan)
	if !ok {
		return model.RoutesData{}, fmt.Errorf("plan %q: %w", plan, ErrInvalidArgument)
	}
	keys, groups := groupRoutes(d.Visits(p))
	out := model.RoutesData{Plan: p, Routes: make([]model.Route, 0, len(keys))}
	for _, k := range keys {
		out.Routes = append(out.Routes, buildRoute(d, k, groups[k]))
	}
	return out, nil
}

func buildRoute(d *dataset.Dataset, k routeKey, visits []model.Visit) model.Route {
	r := model.Route{AgentID: k.worker, Day: k.day, Visits: make([]model.RouteVisit, 0, len(visits))}
	var path []geo.Point
	if a, ok := d.AgentByID(k.worker); ok {
		path = append(path, geo.Point{Lat: a.HomeLatitude, Lng: a.HomeLongitude})
	}
	for _, v := range visits {
		rv := model.RouteVisit{
			StoreID:         v.DestinationStoreID,
			ArrivalTime:     v.ArrivalTime,
			DepartureTime:   v.DepartureTime,
			ServiceDuration: v.ServiceMinutes,
			TravelTime:      v.TravelMinutes,
		}
		if s, ok := d.StoreByID(v.DestinationStoreID); ok {
			lat, lng := s.Latitude, s.Longitude
			rv.Latitude, rv.Longitude = &lat, &lng
			path = append(path, geo.Point{Lat: lat, Lng: lng})
		}
		r.Visits = append(r.Visits, rv)
	}
	r.DistanceKm = round(geo.PathMeters(path)/1000, 2)
	return r
}

// MapStores is the store layer of the map.
func MapStores(d *dataset.Dataset) model.StoresData {
	return model.StoresData{Stores: append(make([]model.Store, 0, len(d.Stores())), d.Stores()...)}
}

// MapAgents is the agent layer of the map with each agent's optimized
// route keys.
func MapAgents(d *dataset.Dataset) model.AgentsData {
	keys, _ := groupRoutes(d.Visits(model.PlanOptimized))
	assigned := map[string][]string{}
	for _, k := range keys {
		assigned[k.worker] = append(assigned[k.worker], k.worker+"-"+k.day)
	}
	agents := d.Agents(false)
	out := model.AgentsData{Agents: make([]model.AgentLocation, 0, len(agents))}
	for _, a := range agents {
		routes := assigned[a.WorkerID]
		if routes == nil {
			routes = []string{}
		}
		out.Agents = append(out.Agents, model.AgentLocation{
			AgentID:        a.WorkerID,
			Name:           a.Name,
			HomeLatitude:   a.HomeLatitude,
			HomeLongitude:  a.HomeLongitude,
			Active:         a.Active,
			AssignedRoutes: routes,
		})
	}
	return out
}
