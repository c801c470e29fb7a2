package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sytelus/highpoint/internal/status"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsOutOfRangeLatitude(t *testing.T) {
	cfg := Default()
	cfg.Observer.LatitudeDeg = 200
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.OutOfRange))
}

func TestValidateRejectsEvenNeighborhood(t *testing.T) {
	cfg := Default()
	cfg.Terrain.Neighborhood = 4
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.InvalidInput))
}

func TestValidateRejectsAzimuthAtExclusiveUpperBound(t *testing.T) {
	cfg := Default()
	cfg.Visibility.AzimuthDeg = 360
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.OutOfRange))
}

func TestValidateAcceptsAzimuthJustBelowUpperBound(t *testing.T) {
	cfg := Default()
	cfg.Visibility.AzimuthDeg = 359.999
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsOutOfRangeMaxDriveMinutes(t *testing.T) {
	cfg := Default()
	bad := 1000.0
	cfg.Roads.MaxDriveMinutes = &bad
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.OutOfRange))
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.yml"
	require.NoError(t, os.WriteFile(path, []byte("observer:\n  latitude: 10\n  made_up_key: 1\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestWriteDefaultThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/default.yml"
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
