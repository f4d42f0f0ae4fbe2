package raster

import (
	"fmt"
	"os"

	"github.com/airbusgeo/godal"
)

// WarpToWGS84 reprojects a raster to geographic WGS84 (EPSG:4326) in
// place. GDAL cannot warp a GeoTIFF onto itself, so the output goes to a
// temporary file in the same directory and is renamed over the original.
func WarpToWGS84(path string) error {
	tmp := path + ".wgs84.tif"

	ds, err := godal.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	out, err := ds.Warp(tmp, []string{"-t_srs", "EPSG:4326"})
	if err != nil {
		ds.Close()
		return fmt.Errorf("failed to warp %s to EPSG:4326: %w", path, err)
	}

	if err := out.Close(); err != nil {
		ds.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to finalize %s: %w", tmp, err)
	}
	if err := ds.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
