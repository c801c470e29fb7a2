package geoutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAzimuth(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeAzimuth(360))
	assert.Equal(t, 10.0, NormalizeAzimuth(370))
	assert.Equal(t, 350.0, NormalizeAzimuth(-10))
	assert.Equal(t, 180.0, NormalizeAzimuth(180))
}

func TestSectorContainsWrap(t *testing.T) {
	s := NewSector(0, 90) // [315, 45]
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(315))
	assert.True(t, s.Contains(45))
	assert.False(t, s.Contains(180))
}

func TestSectorFullCircle(t *testing.T) {
	s := NewSector(45, 360)
	assert.True(t, s.FullCircle)
	for _, az := range []float64{0, 90, 180, 270, 359.9} {
		assert.True(t, s.Contains(az))
	}
}

func TestZoneForLonLat(t *testing.T) {
	z := ZoneForLonLat(-122.4, 37.8) // San Francisco
	assert.Equal(t, 10, z.Number)
	assert.True(t, z.Northern)
	assert.Equal(t, 32610, z.EPSG())

	z2 := ZoneForLonLat(151.2, -33.9) // Sydney
	assert.Equal(t, 56, z2.Number)
	assert.False(t, z2.Northern)
	assert.Equal(t, 32756, z2.EPSG())
}

func TestUTMRoundTrip(t *testing.T) {
	z := ZoneForLonLat(-105.2, 39.7) // Denver area
	lat, lon := 39.7, -105.2
	e, n := z.FromLatLon(lat, lon)
	lat2, lon2 := z.ToLatLon(e, n)
	assert.InDelta(t, lat, lat2, 1e-6)
	assert.InDelta(t, lon, lon2, 1e-6)
}

func TestGreatCircleDistance(t *testing.T) {
	// roughly 1 degree of latitude is ~111km
	d := GreatCircleDistanceMeters(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 500)
	assert.Equal(t, 0.0, GreatCircleDistanceMeters(10, 20, 10, 20))
}

func TestUnitConversions(t *testing.T) {
	assert.InDelta(t, 1609.344, MilesToMeters(1), 1e-9)
	assert.InDelta(t, 1.0, MetersToMiles(MetersPerMile), 1e-9)
	assert.InDelta(t, 1000.0, KilometersToMeters(1), 1e-9)
	assert.True(t, math.Abs(MetersToKilometers(2000)-2) < 1e-9)
}
