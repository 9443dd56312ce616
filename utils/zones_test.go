package utils

import "testing"

// Unit square around the origin.
var squareZone = []byte(`{
	"type": "Polygon",
	"coordinates": [[[ -1, -1 ], [ 1, -1 ], [ 1, 1 ], [ -1, 1 ], [ -1, -1 ]]]
}`)

func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{"valid", 9.03, 38.74, false},
		{"boundary", 90, 180, false},
		{"latitude too big", 90.1, 0, true},
		{"latitude too small", -90.1, 0, true},
		{"longitude too big", 0, 180.5, true},
		{"longitude too small", 0, -181, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate(tt.lat, tt.lng)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoordinate(%v, %v) err = %v, wantErr %v", tt.lat, tt.lng, err, tt.wantErr)
			}
		})
	}
}

func TestPointInZone(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lng  float64
		want bool
	}{
		{"center", 0, 0, true},
		{"inside corner", 0.9, 0.9, true},
		{"outside east", 0, 2, false},
		{"outside north", 2, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PointInZone(squareZone, tt.lat, tt.lng)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if got != tt.want {
				t.Errorf("PointInZone(square, %v, %v) = %v, want %v", tt.lat, tt.lng, got, tt.want)
			}
		})
	}
}

func TestPointInZoneErrors(t *testing.T) {
	if _, err := PointInZone(squareZone, 200, 0); err == nil {
		t.Error("out-of-range latitude: expected error")
	}
	if _, err := PointInZone([]byte(`{"bad`), 0, 0); err == nil {
		t.Error("malformed boundary: expected error")
	}
	point := []byte(`{"type": "Point", "coordinates": [0, 0]}`)
	if _, err := PointInZone(point, 0, 0); err == nil {
		t.Error("non-polygon geometry: expected error")
	}
}
