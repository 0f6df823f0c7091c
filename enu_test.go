// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.23
//

package goecef

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestToENU_UnitNorm(t *testing.T) {
	base := PosLLH{Lat: 35.68, Lon: 139.69, Hei: 40} // Tokyo-ish
	baseXYZ := base.ToXYZ()
	targets := []PosLLH{
		{Lat: 36, Lon: 140, Hei: 20200000}, // MEO
		{Lat: -10, Lon: 100, Hei: 35786000},
		{Lat: 35.68, Lon: 139.70, Hei: 40}, // nearly alongside
		{Lat: 80, Lon: -60, Hei: 1000},
	}
	for _, tgt := range targets {
		sat := tgt.ToXYZ()
		enu, err := sat.ToENU(baseXYZ)
		if err != nil {
			t.Fatalf("ToENU(%v) failed: %v", tgt, err)
		}
		n := math.Sqrt(enu.E*enu.E + enu.N*enu.N + enu.U*enu.U)
		if !scalar.EqualWithinAbs(n, 1, 1e-9) {
			t.Errorf("ToENU(%v) norm = %.15f, want 1", tgt, n)
		}
	}
}

func TestToENU_Coincident(t *testing.T) {
	base := NewPosXYZ(Re, 0, 0)
	same := *base
	_, err := same.ToENU(*base)
	if err == nil {
		t.Fatal("ToENU with coincident positions must fail, got nil error")
	}
	if !errors.Is(err, ErrSingular) {
		t.Errorf("coincident error = %v, want ErrSingular", err)
	}
}

func TestToENU_OriginBase(t *testing.T) {
	// A base at the geocenter has no tangent frame; the solver's error must
	// stay recognizable through the wrapping.
	sat := PosXYZ{X: Re + 400000, Y: 0, Z: 0}
	_, err := sat.ToENU(PosXYZ{})
	if err == nil {
		t.Fatal("ToENU with the base at the origin must fail, got nil error")
	}
	if !errors.Is(err, ErrSingular) {
		t.Errorf("origin-base error = %v, want ErrSingular in the chain", err)
	}
}

func TestToENU_RotationRoundTrip(t *testing.T) {
	usr := PosLLH{Lat: 48.85, Lon: 2.35, Hei: 35}
	base := usr.ToXYZ()
	tgt := PosLLH{Lat: 50, Lon: 5, Hei: 20200000}
	sat := tgt.ToXYZ()

	enu, err := sat.ToENU(base)
	if err != nil {
		t.Fatalf("ToENU failed: %v", err)
	}
	dir, err := enu.ToXYZ(base)
	if err != nil {
		t.Fatalf("PosENU.ToXYZ failed: %v", err)
	}

	// The rotation is orthonormal, so the ECEF direction must equal the
	// normalized range vector.
	dx := sat.X - base.X
	dy := sat.Y - base.Y
	dz := sat.Z - base.Z
	r := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if math.Abs(dir.X-dx/r) > 1e-9 || math.Abs(dir.Y-dy/r) > 1e-9 || math.Abs(dir.Z-dz/r) > 1e-9 {
		t.Errorf("rotated-back direction (%f, %f, %f), want (%f, %f, %f)",
			dir.X, dir.Y, dir.Z, dx/r, dy/r, dz/r)
	}
}

func TestElevation_Zenith(t *testing.T) {
	usr := PosXYZ{X: Re, Y: 0, Z: 0} // (0N, 0E, 0m)
	sat := PosXYZ{X: Re + 400000, Y: 0, Z: 0}

	elv, err := usr.Elevation(sat, true)
	if err != nil {
		t.Fatalf("Elevation failed: %v", err)
	}
	if math.Abs(elv-90) > 1e-9 {
		t.Errorf("zenith elevation = %.12f deg, want 90", elv)
	}
	// Azimuth at zenith is a documented degenerate direction; it must still
	// return without error.
	if _, err := usr.Azimuth(sat, true); err != nil {
		t.Errorf("Azimuth at zenith failed: %v", err)
	}
}

func TestAzimuth_DueEast(t *testing.T) {
	usr := PosXYZ{X: Re, Y: 0, Z: 0}
	east := PosLLH{Lat: 0, Lon: 10, Hei: 0}
	sat := east.ToXYZ()

	azm, err := usr.Azimuth(sat, true)
	if err != nil {
		t.Fatalf("Azimuth failed: %v", err)
	}
	if math.Abs(azm-90) > 1e-9 {
		t.Errorf("due-east azimuth = %.12f deg, want 90", azm)
	}

	// Same target, radians flag off the degree default.
	azr, err := usr.Azimuth(sat, false)
	if err != nil {
		t.Fatalf("Azimuth failed: %v", err)
	}
	if math.Abs(azr-PI/2) > 1e-9 {
		t.Errorf("due-east azimuth = %.12f rad, want pi/2", azr)
	}

	// A ground target over the horizon is below the observer's tangent plane.
	elv, err := usr.Elevation(sat, true)
	if err != nil {
		t.Fatalf("Elevation failed: %v", err)
	}
	if elv >= 0 {
		t.Errorf("ground target 10 deg away has elevation %.3f, want negative", elv)
	}
}

func TestAzimuth_CompassQuadrants(t *testing.T) {
	usr := PosLLH{Lat: 0, Lon: 0, Hei: 0}
	usrXYZ := usr.ToXYZ()
	cases := []struct {
		name string
		tgt  PosLLH
		want float64
	}{
		{"north", PosLLH{Lat: 10, Lon: 0, Hei: 400000}, 0},
		{"east", PosLLH{Lat: 0, Lon: 10, Hei: 400000}, 90},
		{"south", PosLLH{Lat: -10, Lon: 0, Hei: 400000}, 180},
		{"west", PosLLH{Lat: 0, Lon: -10, Hei: 400000}, -90},
	}
	for _, c := range cases {
		sat := c.tgt.ToXYZ()
		azm, err := usrXYZ.Azimuth(sat, true)
		if err != nil {
			t.Fatalf("%s: Azimuth failed: %v", c.name, err)
		}
		d := math.Abs(azm - c.want)
		if d > 180 {
			d = 360 - d
		}
		if d > 1e-6 {
			t.Errorf("%s: azimuth = %.9f deg, want %.1f", c.name, azm, c.want)
		}
	}
}

func TestPosENU_LookAngleMethods(t *testing.T) {
	enu := NewPosENU(1, 0, 0)
	if math.Abs(ToDeg(enu.Azimuth())-90) > 1e-9 {
		t.Errorf("east unit vector azimuth = %f deg, want 90", ToDeg(enu.Azimuth()))
	}
	if math.Abs(enu.Elevation()) > 1e-9 {
		t.Errorf("east unit vector elevation = %f, want 0", enu.Elevation())
	}

	up := PosENU{E: 0, N: 0, U: 1}
	if math.Abs(up.Elevation()-PI/2) > 1e-9 {
		t.Errorf("up unit vector elevation = %f rad, want pi/2", up.Elevation())
	}
}
