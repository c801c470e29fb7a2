package geoutil

import "math"

// NormalizeAzimuth wraps a compass bearing (degrees, clockwise from north)
// into the half-open range [0, 360).
func NormalizeAzimuth(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Sector describes a contiguous wedge of the compass, measured clockwise
// from north, possibly wrapping across 0/360.
type Sector struct {
	Start, End float64 // degrees, both normalized to [0, 360)
	FullCircle bool    // true when the sector covers the entire compass
}

// NewSector builds the sector [azimuth-halfFOV, azimuth+halfFOV] mod 360,
// per spec: sector bounds are inclusive on both sides. A fieldOfViewDeg of
// 360 or more degenerates to "every azimuth is in sector" (see SPEC_FULL.md
// Open Question 2), matching the source's prescribed wrap behavior.
func NewSector(azimuthDeg, fieldOfViewDeg float64) Sector {
	if fieldOfViewDeg >= 360 {
		return Sector{FullCircle: true}
	}
	half := fieldOfViewDeg / 2
	return Sector{
		Start: NormalizeAzimuth(azimuthDeg - half),
		End:   NormalizeAzimuth(azimuthDeg + half),
	}
}

// Contains reports whether azimuthDeg lies within the sector, inclusive of
// both bounds, wrap-aware across 0/360.
func (s Sector) Contains(azimuthDeg float64) bool {
	if s.FullCircle {
		return true
	}
	a := NormalizeAzimuth(azimuthDeg)
	if s.Start <= s.End {
		return a >= s.Start && a <= s.End
	}
	// sector wraps through 0/360
	return a >= s.Start || a <= s.End
}
