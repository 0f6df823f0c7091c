// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.23
//

package goecef

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingular reports an input for which the inverse transform is undefined
var ErrSingular = errors.New("singular input")

// Convert ECEF coordinates to geodetic latitude, longitude and height above
// the WGS84 ellipsoid using Bowring's method in the Fukushima reformulation.
// Lat and Lon are returned in degrees when deg is true, radians otherwise;
// Hei is always meters. The iteration is capped at MAX_ITER rounds and the
// last iterate is accepted if the tolerance is not met, so extreme inputs
// deep inside the ellipsoid may lose precision without an error.
func (pos *PosXYZ) ToLLH(deg bool) (PosLLH, error) {
	return pos.toLLH(&WGS84, deg)
}

// Convert ECEF coordinates to spherical latitude, longitude and radial
// height above the sphere of radius Rs. Same solver as ToLLH with the
// eccentricity collapsed to zero.
func (pos *PosXYZ) ToSpherical(deg bool) (PosLLH, error) {
	return pos.toLLH(&SPHERE, deg)
}

func (pos *PosXYZ) toLLH(el *Ellipsoid, deg bool) (PosLLH, error) {
	lat, lon, hei, err := el.solve(pos.X, pos.Y, pos.Z)
	if err != nil {
		return PosLLH{}, err
	}
	if deg {
		lat = ToDeg(lat)
		lon = ToDeg(lon)
	}
	return PosLLH{Lat: lat, Lon: lon, Hei: hei}, nil
}

// Solve the inverse transform. Latitude and longitude are in radians.
// Longitude is closed-form; latitude and height come from the iterative
// solver, which runs on |Z| so that sign flips of intermediate iterates
// near the polar axis can never leak into the output hemisphere.
func (el *Ellipsoid) solve(x, y, z float64) (lat, lon, hei float64, err error) {
	p := math.Sqrt(x*x + y*y)
	if p == 0 && z == 0 {
		return 0, 0, 0, fmt.Errorf("%w: zero position vector", ErrSingular)
	}
	lon = math.Atan2(y, x)
	lat, hei, ok := el.solveTan(p, math.Abs(z))
	if !ok {
		PrintD(1, "solveTan() produced NaN, falling back to the S/C iteration. p=%f, z=%f\n", p, z)
		lat, hei = el.solveSC(p, math.Abs(z))
	}
	if math.IsNaN(lat) || math.IsNaN(hei) || math.IsInf(hei, 0) {
		return 0, 0, 0, fmt.Errorf("%w: inverse transform failed at x=%f, y=%f, z=%f", ErrSingular, x, y, z)
	}
	lat = math.Copysign(lat, z)
	return lat, lon, hei, nil
}

// Fukushima's tangent iteration, equations (C7)-(C12). Operates on |Z| and
// returns a non-negative latitude; the caller restores the hemisphere sign.
// ok is false when an iterate went NaN and the slower S/C form should run.
func (el *Ellipsoid) solveTan(p, az float64) (lat, hei float64, ok bool) {
	t := az / (el.E1 * p) // (C8) - zero approximation
	if p == 0 {
		t = 1 // directly over a pole
	}
	for i := 0; i < MAX_ITER; i++ {
		c := 1 / math.Sqrt(1+t*t)                        // (C9)
		s := c * t                                       // (C9)
		tn := (el.E1*az + el.C*s*s*s) / (p - el.C*c*c*c) // (C7)
		if math.IsNaN(tn) {
			return 0, 0, false
		}
		d := (tn - t) / tn
		t = tn
		if math.IsInf(t, 0) {
			break // tangent diverged: the point is on the polar axis
		}
		if math.Abs(d) < CONV_TOL {
			break
		}
	}
	t = math.Abs(t)
	if math.IsInf(t, 1) {
		return PI / 2, az - el.B, true
	}
	lat = math.Atan2(t, el.E1) // (C10)
	t1 := 1 + t*t
	if p > az {
		// (C11) - conditioned for points nearer the equator
		hei = math.Sqrt(t1-el.E*el.E) / el.E1 * (p - el.A/math.Sqrt(t1))
	} else {
		// (C12) - conditioned for points nearer the pole
		hei = math.Sqrt(t1-el.E*el.E) * (az/t - el.B/math.Sqrt(t1))
	}
	return lat, hei, true
}

// Fukushima (2006) form iterating the (S, C) pair without normalization.
// Slower than the tangent form but has no division by the cylindrical
// radius, so it survives where solveTan degenerates. Runs once; the caller
// checks the outputs and fails rather than retrying.
func (el *Ellipsoid) solveSC(p, az float64) (lat, hei float64) {
	e2 := el.E * el.E
	zn := el.E1 * az / el.A
	pn := p / el.A
	s, c := zn, el.E1*pn
	if s == 0 {
		s = 1
	}
	if c == 0 {
		c = 1
	}
	var sn, cn float64
	for i := 0; i < 5; i++ {
		a := math.Sqrt(s*s + c*c)
		a3 := a * a * a
		cn = pn*a3 - e2*c*c*c
		sn = zn*a3 + e2*s*s*s
		d := math.Abs(sn/cn-s/c) * c / s
		if math.IsNaN(d) || math.Abs(d) < 1e-10 {
			break
		}
		s, c = sn, cn
	}
	cc := el.E1 * cn
	lat = math.Atan2(sn, math.Abs(cc)) // |cc| keeps the latitude in [0, pi/2]
	hei = (p*cc + az*sn - el.B*math.Sqrt(sn*sn+cn*cn)) / math.Sqrt(cc*cc+sn*sn)
	return lat, hei
}
