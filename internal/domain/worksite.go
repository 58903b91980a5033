package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Worksite is a physical location employees clock in to.
type Worksite struct {
	ID        uuid.UUID
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	Projects []Project
}

// DistanceMeters returns the great-circle distance from the worksite to the
// given coordinates using the haversine formula.
func (w *Worksite) DistanceMeters(lat, lon float64) float64 {
	const earthRadius = 6371e3

	phi1 := lat * math.Pi / 180
	phi2 := w.Latitude * math.Pi / 180
	dPhi := (w.Latitude - lat) * math.Pi / 180
	dLambda := (w.Longitude - lon) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
