// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.22
//

package goecef

import (
	"math"
)

// Reference ellipsoid parameters. The derived terms are computed once in
// NewEllipsoid so every conversion works from the same numbers.
type Ellipsoid struct {
	A  float64 // Equatorial radius [m]
	B  float64 // Polar radius [m]
	E  float64 // First eccentricity, e = sqrt(1 - b^2/a^2)
	E1 float64 // Complementary eccentricity, e' = sqrt(1 - e^2)
	C  float64 // Helper term of the inverse solver, c = a*e^2
}

func NewEllipsoid(a, b float64) Ellipsoid {
	e := math.Sqrt(1 - b*b/(a*a))
	return Ellipsoid{
		A:  a,
		B:  b,
		E:  e,
		E1: math.Sqrt(1 - e*e),
		C:  a * e * e,
	}
}

var (
	WGS84  = NewEllipsoid(Re, Rp) // WGS84 reference ellipsoid
	SPHERE = NewEllipsoid(Rs, Rs) // Degenerate spherical model (e = 0)
)
