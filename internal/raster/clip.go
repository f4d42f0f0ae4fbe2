// Package raster implements the per-file transforms of the subsetting
// pipeline: clipping to a projection window, incidence-angle correction
// and reprojection to geographic WGS84.
package raster

import (
	"fmt"
	"strconv"

	"github.com/airbusgeo/godal"

	"github.com/rkm/sarprep/internal/geo"
)

// ClipOptions parameterize a projection-window clip.
type ClipOptions struct {
	// Box is the clip window in the projected coordinates of Zone.
	Box geo.BBox

	// Zone is the EPSG code of the window's UTM zone, e.g. "32606".
	Zone string

	// Compress writes the output with DEFLATE compression.
	Compress bool
}

// Clip writes a copy of src clipped to the projection window into dest.
// The output carries a no-data value of zero; dest is replaced, never merged.
func Clip(src, dest string, opts ClipOptions) error {
	ds, err := godal.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer ds.Close()

	ulx, uly := opts.Box.UL()
	lrx, lry := opts.Box.LR()

	switches := []string{
		"-projwin", ftoa(ulx), ftoa(uly), ftoa(lrx), ftoa(lry),
		"-projwin_srs", "EPSG:" + opts.Zone,
		"-a_nodata", "0",
	}
	if opts.Compress {
		switches = append(switches, "-co", "COMPRESS=DEFLATE")
	}

	out, err := ds.Translate(dest, switches)
	if err != nil {
		return fmt.Errorf("failed to clip %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", dest, err)
	}

	return nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
