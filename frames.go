package rocketpy

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
)

const (
	// EarthRotationRate is the average Earth rotation rate in radians per second.
	EarthRotationRate = 7.2921158553e-5
	// EarthRadius is the mean equatorial radius of the Earth in km.
	EarthRadius = 6378.1363

	deg2rad = math.Pi / 180
)

// GST returns the Greenwich sidereal time in radians at the given epoch.
// Epochs are converted to UTC before the Julian date is computed.
func GST(dt time.Time) float64 {
	// Vallado, section 3.5: GMST as seconds of time from the UT1 centuries
	// since J2000.
	t := (julian.TimeToJD(dt.UTC()) - 2451545.0) / 36525
	θ := 67310.54841 + (876600*3600+8640184.812866)*t + 0.093104*t*t - 6.2e-6*t*t*t
	θ = math.Mod(θ/240, 360) // 1 second of time is 1/240 degree.
	if θ < 0 {
		θ += 360
	}
	return θ * deg2rad
}

// GEO2ECEF converts the provided parameters (in km and radians) to the ECEF
// vector. Note that the first parameter is the altitude, not the radius from
// the center of the body!
func GEO2ECEF(altitude, latitude, longitude float64) Vec {
	sLong, cLong := math.Sincos(longitude)
	sLat, cLat := math.Sincos(latitude)
	r := altitude + EarthRadius
	return NewVector(r*cLat*cLong, r*cLat*sLong, r*sLat)
}

// ECI2ECEF converts the provided ECI vector to ECEF for the θgst given in
// radians.
func ECI2ECEF(r Vec, θgst float64) Vec {
	return R3(θgst).MulVec(r)
}

// ECEF2ECI converts the provided ECEF vector to ECI for the θgst given in
// radians.
func ECEF2ECI(r Vec, θgst float64) Vec {
	return ECI2ECEF(r, -θgst)
}
