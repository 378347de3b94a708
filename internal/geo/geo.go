// Package geo holds great-circle helpers used for route geometry.
package geo

import "math"

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lat float64
	Lng float64
}

const earthRadiusM = 6371000.0

// HaversineMeters returns the great-circle distance between two points.
func HaversineMeters(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lng - a.Lng) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusM * c
}

// PathMeters sums consecutive legs of a polyline.
func PathMeters(path []Point) float64 {
	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		total += HaversineMeters(path[i], path[i+1])
	}
	return total
}
