// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.22
//

package goecef

const (
	PI = 3.1415926535897932 // Pi
	Re = 6378137.0          // WGS84 equatorial radius [m]
	Rp = 6356752.314245     // WGS84 polar radius [m]
	Rs = 6366255.89         // Radius of the degenerate spherical model [m]

	MAX_ITER = 10   // Iteration budget of the inverse solver
	CONV_TOL = 1e-9 // Relative convergence tolerance on the tangent iterate
)
