// SPDX-License-Identifier: MIT
package cli

import "math"

// earthRadiusMeters mirrors internal/geo's own constant; duplicated
// here rather than exported from internal/geo, since this projection
// is CLI-owned collaborator code, not part of the pipeline's domain
// model (spec.md §1 Non-goals: the pipeline never derives a
// projection internally).
const earthRadiusMeters = 6371000.0

// lccProjection is a spherical Lambert Conformal Conic projection with
// two standard parallels, ported from
// original_source/scripts/build_railway_network.py's LCC_PROJ
// (+proj=lcc +lat_1=49 +lat_2=77 +lat_0=49 +lon_0=-95). The original
// uses pyproj's ellipsoidal NAD27 transform; this is a spherical
// approximation (using the same earth radius as internal/geo's
// haversine distance) since no geodesy library is wired into this
// module — see DESIGN.md's "Rejected dependencies."
type lccProjection struct {
	lat1, lat2 float64 // standard parallels, radians
	lat0, lon0 float64 // origin, radians
	n          float64
	f          float64
	rho0       float64
}

func newSKLambertConformalConic() lccProjection {
	p := lccProjection{
		lat1: deg2rad(49),
		lat2: deg2rad(77),
		lat0: deg2rad(49),
		lon0: deg2rad(-95),
	}

	cosLat1 := math.Cos(p.lat1)
	tanTerm1 := math.Tan(math.Pi/4 + p.lat1/2)
	tanTerm2 := math.Tan(math.Pi/4 + p.lat2/2)

	p.n = (math.Log(cosLat1) - math.Log(math.Cos(p.lat2))) / (math.Log(tanTerm2) - math.Log(tanTerm1))
	p.f = cosLat1 * math.Pow(tanTerm1, p.n) / p.n
	p.rho0 = earthRadiusMeters * p.f / math.Pow(math.Tan(math.Pi/4+p.lat0/2), p.n)
	return p
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

func (p lccProjection) rho(lat float64) float64 {
	return earthRadiusMeters * p.f / math.Pow(math.Tan(math.Pi/4+lat/2), p.n)
}

// forward converts geographic degrees to projected meters.
func (p lccProjection) forward(lat, lon float64) (x, y float64) {
	latR, lonR := deg2rad(lat), deg2rad(lon)
	r := p.rho(latR)
	theta := p.n * (lonR - p.lon0)
	x = r * math.Sin(theta)
	y = p.rho0 - r*math.Cos(theta)
	return x, y
}

// inverse converts projected meters back to geographic degrees.
func (p lccProjection) inverse(x, y float64) (lat, lon float64) {
	dy := p.rho0 - y
	r := math.Copysign(math.Sqrt(x*x+dy*dy), p.n)
	theta := math.Atan2(x, dy)

	latR := 2*math.Atan(math.Pow(earthRadiusMeters*p.f/r, 1/p.n)) - math.Pi/2
	lonR := theta/p.n + p.lon0
	return rad2deg(latR), rad2deg(lonR)
}
