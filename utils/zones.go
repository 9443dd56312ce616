package utils

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// ValidateCoordinate rejects latitudes/longitudes outside WGS84 bounds.
func ValidateCoordinate(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %.6f is out of valid range [-90, 90]", lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("longitude %.6f is out of valid range [-180, 180]", lng)
	}
	return nil
}

// PointInZone reports whether (lat, lng) falls inside the GeoJSON
// Polygon/MultiPolygon geometry in boundary.
func PointInZone(boundary []byte, lat, lng float64) (bool, error) {
	if err := ValidateCoordinate(lat, lng); err != nil {
		return false, err
	}

	geom, err := geojson.UnmarshalGeometry(boundary)
	if err != nil {
		return false, fmt.Errorf("invalid zone boundary: %w", err)
	}

	point := orb.Point{lng, lat}
	switch g := geom.Geometry().(type) {
	case orb.Polygon:
		return planar.PolygonContains(g, point), nil
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(g, point), nil
	default:
		return false, fmt.Errorf("zone boundary must be a polygon, got %s", geom.Type)
	}
}
