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

	"gonum.org/v1/gonum/mat"
)

// Rotation matrix from ECEF to the ENU frame of an observer at (lat, lon) [rad]
func enuRotation(lat, lon float64) *mat.Dense {
	s1 := math.Sin(lon)
	c1 := math.Cos(lon)
	s2 := math.Sin(lat)
	c2 := math.Cos(lat)
	return mat.NewDense(3, 3, []float64{
		-s1, c1, 0,
		-c1 * s2, -s1 * s2, c2,
		c1 * c2, s1 * c2, s2,
	})
}

// ToENU returns the unit vector pointing from base to pos, expressed in the
// east-north-up frame tangent to the ellipsoid at base. The observer's
// latitude and longitude come from the iterative inverse transform.
// Coincident positions have no direction and yield an error.
func (pos *PosXYZ) ToENU(base PosXYZ) (PosENU, error) {
	if EucDist(pos, &base) == 0 {
		return PosENU{}, fmt.Errorf("%w: coincident positions", ErrSingular)
	}
	lat, lon, _, err := WGS84.solve(base.X, base.Y, base.Z)
	if err != nil {
		return PosENU{}, fmt.Errorf("ToENU() failed, err=%w", err)
	}

	// Relative position from the reference location
	d := mat.NewVecDense(3, []float64{pos.X - base.X, pos.Y - base.Y, pos.Z - base.Z})

	// Rotate into ENU and normalize to unit length
	var enu mat.VecDense
	enu.MulVec(enuRotation(lat, lon), d)
	n := mat.Norm(&enu, 2)
	enu.ScaleVec(1/n, &enu)
	if DBG_ >= 2 {
		PrintMat(&enu)
	}
	return PosENU{E: enu.AtVec(0), N: enu.AtVec(1), U: enu.AtVec(2)}, nil
}

// ToXYZ rotates an ENU direction back into the ECEF frame of the observer
// at base. The result is a direction, not a position; callers scale it by a
// range and add base themselves.
func (enu *PosENU) ToXYZ(base PosXYZ) (PosXYZ, error) {
	lat, lon, _, err := WGS84.solve(base.X, base.Y, base.Z)
	if err != nil {
		return PosXYZ{}, fmt.Errorf("ToXYZ() failed, err=%w", err)
	}
	v := mat.NewVecDense(3, []float64{enu.E, enu.N, enu.U})
	var xyz mat.VecDense
	xyz.MulVec(enuRotation(lat, lon).T(), v)
	return PosXYZ{X: xyz.AtVec(0), Y: xyz.AtVec(1), Z: xyz.AtVec(2)}, nil
}
