// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.23
//

package goecef

import (
	"fmt"
	"sort"

	"golang.org/x/exp/slices"
)

// Satellite name, system letter plus number ("G01", "R12", ...)
type SatType string

// Satellite system identifier ('G', 'J', 'E', 'R', 'C', 'S')
type SysType byte

func (s SatType) Sys() SysType {
	return SysType(s[0])
}

// Look angles of one satellite in the observer's sky [deg]
type SkyPos struct {
	Sat SatType
	Elv float64
	Azm float64
}

// SkyView computes elevation and azimuth for every satellite above the
// elevation mask elMask [deg], skipping satellites listed in xs. The result
// is sorted by system precedence and satellite number, the order receiver
// front ends expect.
func SkyView(usr PosXYZ, sats map[SatType]PosXYZ, elMask float64, xs []SatType) ([]SkyPos, error) {
	views := []SkyPos{}
	for sat, spos := range sats {
		if xs != nil && slices.Contains(xs, sat) {
			continue
		}
		elv, err := usr.Elevation(spos, true)
		if err != nil {
			return nil, fmt.Errorf("SkyView() failed for %s, err=%w", sat, err)
		}
		if elv < elMask {
			PrintD(2, "\t%s: below elevation mask, elev=%8.3f < %8.3f\n", sat, elv, elMask)
			continue
		}
		azm, err := usr.Azimuth(spos, true)
		if err != nil {
			return nil, fmt.Errorf("SkyView() failed for %s, err=%w", sat, err)
		}
		views = append(views, SkyPos{Sat: sat, Elv: elv, Azm: azm})
	}
	sort.Slice(views, func(i, j int) bool {
		m := map[byte]int{'G': 0, 'J': 1, 'E': 2, 'R': 3, 'C': 4, 'S': 5}
		if m[byte(views[i].Sat.Sys())] == m[byte(views[j].Sat.Sys())] {
			return views[i].Sat < views[j].Sat
		} else {
			return m[byte(views[i].Sat.Sys())] < m[byte(views[j].Sat.Sys())]
		}
	})
	return views, nil
}
