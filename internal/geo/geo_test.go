package geo

import (
	"math"
	"testing"
)

func TestHaversineMeters(t *testing.T) {
	// one degree of latitude is ~111.2 km
	d := HaversineMeters(Point{Lat: 0, Lng: 0}, Point{Lat: 1, Lng: 0})
	if math.Abs(d-111195) > 100 {
		t.Fatalf("1 degree lat: got %.0f m", d)
	}
	if d := HaversineMeters(Point{Lat: 19.4, Lng: -99.1}, Point{Lat: 19.4, Lng: -99.1}); d != 0 {
		t.Fatalf("same point: got %f", d)
	}
}

func TestPathMeters(t *testing.T) {
	if PathMeters(nil) != 0 || PathMeters([]Point{{Lat: 1, Lng: 1}}) != 0 {
		t.Fatalf("degenerate paths must be zero")
	}
	a, b, c := Point{Lat: 0, Lng: 0}, Point{Lat: 1, Lng: 0}, Point{Lat: 2, Lng: 0}
	got := PathMeters([]Point{a, b, c})
	want := HaversineMeters(a, b) + HaversineMeters(b, c)
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("got %f want %f", got, want)
	}
}
