// Package geofence decides whether a device is close enough to the venue to
// be offered edit controls. The decision is a UI hint only: nothing on the
// server refuses a request because of it.
package geofence

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

type Coordinate struct {
	Lat float64 `json:"lat" toml:"lat"`
	Lon float64 `json:"lon" toml:"lon"`
}

func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Lat)
	}
	if math.IsNaN(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}

// Distance returns the great-circle distance between a and b in kilometres.
func Distance(a, b Coordinate) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Gate holds the venue location and the radius inside which editing is offered.
type Gate struct {
	Venue    Coordinate
	RadiusKm float64
}

type Decision struct {
	DistanceKm float64 `json:"distance_km"`
	RadiusKm   float64 `json:"radius_km"`
	CanEdit    bool    `json:"can_edit"`
}

func (g Gate) Check(c Coordinate) Decision {
	d := Distance(c, g.Venue)
	return Decision{
		DistanceKm: d,
		RadiusKm:   g.RadiusKm,
		CanEdit:    d <= g.RadiusKm,
	}
}

func (g Gate) Allows(c Coordinate) bool {
	return g.Check(c).CanEdit
}
