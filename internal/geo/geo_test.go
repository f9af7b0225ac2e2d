package geo

import "testing"

func TestHaversineM(t *testing.T) {
	// SF Ferry Building (37.7955, -122.3937) to SF City Hall (37.7793, -122.4193) ~ 2.8-3.0 km
	d := HaversineM(37.7955, -122.3937, 37.7793, -122.4193)
	if d < 2500 || d > 3500 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

func TestHaversineMZero(t *testing.T) {
	if d := HaversineM(37.7749, -122.4194, 37.7749, -122.4194); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}

func TestBoundingBoxContainsRadius(t *testing.T) {
	lat, lng := 37.7749, -122.4194
	minLat, maxLat, minLng, maxLng := BoundingBox(lat, lng, 1200)

	if minLat >= lat || maxLat <= lat || minLng >= lng || maxLng <= lng {
		t.Fatalf("box does not contain center: %v %v %v %v", minLat, maxLat, minLng, maxLng)
	}

	// Points on the box edge sit at least the radius away along each axis,
	// give or take float rounding.
	if d := HaversineM(lat, lng, maxLat, lng); d < 1199 {
		t.Fatalf("north edge too close: %v", d)
	}
	if d := HaversineM(lat, lng, lat, maxLng); d < 1199 {
		t.Fatalf("east edge too close: %v", d)
	}
}
