package geo

import "errors"

var (
	// ErrNotUTM is returned when a raster's CRS is not a WGS84 UTM zone.
	ErrNotUTM = errors.New("raster CRS is not a UTM zone")

	// ErrZoneMismatch is returned when a raster's UTM zone differs from
	// the run's reference zone.
	ErrZoneMismatch = errors.New("utm zone mismatch")

	// ErrNoOverlap is returned when the input rasters share no common footprint.
	ErrNoOverlap = errors.New("input rasters do not overlap")
)
