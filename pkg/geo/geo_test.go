package geo

import (
	"math"
	"testing"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	d := DistanceKm(12.9716, 77.5946, 12.9716, 77.5946)
	if d != 0 {
		t.Errorf("Expected zero distance for identical points, got %f", d)
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Bengaluru to Chennai, roughly 290 km great-circle
	d := DistanceKm(12.9716, 77.5946, 13.0827, 80.2707)
	if d < 280 || d > 300 {
		t.Errorf("Expected ~290 km, got %f", d)
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	a := DistanceKm(12.9716, 77.5946, 28.7041, 77.1025)
	b := DistanceKm(28.7041, 77.1025, 12.9716, 77.5946)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("Distance is not symmetric: %f vs %f", a, b)
	}
}

func TestRoundKm(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.234567, 1.23},
		{1.235, 1.24},
		{49.999, 50.0},
	}
	for _, c := range cases {
		if got := RoundKm(c.in); got != c.want {
			t.Errorf("RoundKm(%f) = %f, want %f", c.in, got, c.want)
		}
	}
}
