// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.23
//

package goecef

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

//-------------------------------------------------------------------
// PosLLH
//-------------------------------------------------------------------

// Geodetic position. Lat and Lon are in degrees on the public boundary
// (ToXYZ, Set, String); ToLLH and ToSpherical fill them in radians when
// called with deg=false. Hei is meters above the reference surface.
type PosLLH struct {
	Lat float64
	Lon float64
	Hei float64
}

func NewPosLLH(lat, lon, hei float64) *PosLLH {
	return &PosLLH{
		Lat: lat,
		Lon: lon,
		Hei: hei,
	}
}

// Convert to ECEF coordinates. No range check is done on Lat and Lon.
func (llh *PosLLH) ToXYZ() PosXYZ {
	a2 := WGS84.A * WGS84.A
	b2 := WGS84.B * WGS84.B
	lat := ToRad(llh.Lat)
	lon := ToRad(llh.Lon)

	// Local radius of the ellipsoid at this latitude
	r := math.Sqrt(a2*SQ(math.Cos(lat)) + b2*SQ(math.Sin(lat)))

	// a2/r is the radius of curvature in the prime vertical, b2/r its polar counterpart
	return PosXYZ{
		X: math.Cos(lon) * math.Cos(lat) * (llh.Hei + a2/r),
		Y: math.Sin(lon) * math.Cos(lat) * (llh.Hei + a2/r),
		Z: math.Sin(lat) * (llh.Hei + b2/r),
	}
}

func (llh *PosLLH) ToENU(base PosXYZ) (PosENU, error) {
	xyz := llh.ToXYZ()
	return xyz.ToENU(base)
}

func (usr *PosLLH) Elevation(sat PosXYZ, deg bool) (float64, error) {
	xyz := usr.ToXYZ()
	return xyz.Elevation(sat, deg)
}

func (usr *PosLLH) Azimuth(sat PosXYZ, deg bool) (float64, error) {
	xyz := usr.ToXYZ()
	return xyz.Azimuth(sat, deg)
}

// Read from string ("lat lon hei", degrees and meters)
func (llh *PosLLH) Set(s string) error {
	var err error
	f := strings.Fields(s)
	if len(f) < 3 {
		return fmt.Errorf("not enough fields in position: %q", s)
	}
	llh.Lat, err = strconv.ParseFloat(f[0], 64)
	if err != nil {
		return err
	}
	llh.Lon, err = strconv.ParseFloat(f[1], 64)
	if err != nil {
		return err
	}
	llh.Hei, err = strconv.ParseFloat(f[2], 64)
	if err != nil {
		return err
	}
	return nil
}

// Convert to string
func (llh *PosLLH) String() string {
	return fmt.Sprintf("%.8f %.8f %.4f", llh.Lat, llh.Lon, llh.Hei)
}

//-------------------------------------------------------------------
// PosXYZ
//-------------------------------------------------------------------

// ECEF position in meters
type PosXYZ struct {
	X float64
	Y float64
	Z float64
}

func NewPosXYZ(x, y, z float64) *PosXYZ {
	return &PosXYZ{
		X: x,
		Y: y,
		Z: z,
	}
}

// Elevation angle of sat above the local horizon of usr.
// Negative when sat is below the horizon.
func (usr *PosXYZ) Elevation(sat PosXYZ, deg bool) (float64, error) {
	enu, err := sat.ToENU(*usr)
	if err != nil {
		return 0, err
	}
	// arcsin of the unit up component, in the atan2 form that cannot leave
	// the arcsin domain when normalization rounds U past 1
	elv := enu.Elevation()
	if deg {
		elv = ToDeg(elv)
	}
	return elv, nil
}

// Azimuth of sat as seen from usr, measured clockwise from north,
// in (-180, 180] when deg is true. Note the atan2(E, N) argument order.
// The bearing is unstable when sat is at the observer's zenith.
func (usr *PosXYZ) Azimuth(sat PosXYZ, deg bool) (float64, error) {
	enu, err := sat.ToENU(*usr)
	if err != nil {
		return 0, err
	}
	azm := enu.Azimuth()
	if deg {
		azm = ToDeg(azm)
	}
	return azm, nil
}

//-------------------------------------------------------------------
// PosENU
//-------------------------------------------------------------------

// Direction in the local east-north-up frame of some observer.
// Vectors produced by ToENU are unit-norm.
type PosENU struct {
	E float64
	N float64
	U float64
}

func NewPosENU(e, n, u float64) *PosENU {
	return &PosENU{
		E: e,
		N: n,
		U: u,
	}
}

// Elevation angle in radians. Valid for unit and non-unit vectors.
func (enu *PosENU) Elevation() float64 {
	return math.Atan2(enu.U, math.Sqrt(enu.E*enu.E+enu.N*enu.N))
}

// Azimuth in radians, clockwise from north
func (enu *PosENU) Azimuth() float64 {
	return math.Atan2(enu.E, enu.N)
}
