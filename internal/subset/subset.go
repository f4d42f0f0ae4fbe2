// Package subset orchestrates the HyP3 clipping pipeline: discover
// products, establish a projected bounding box, clip every file into the
// MintPy layout and emit the configuration template.
package subset

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/rkm/sarprep/internal/geo"
	"github.com/rkm/sarprep/internal/hyp3"
	"github.com/rkm/sarprep/internal/mintpy"
	"github.com/rkm/sarprep/internal/raster"
)

// Options configure a subsetting run.
type Options struct {
	// Output is the root of the tree to build; the hyp3/ and mintpy/
	// subtrees under it are owned (and wiped) by the run.
	Output string

	// Lat is the explicit latitude range [south, north] and Lon the
	// longitude range [west, east], both in geographic degrees. Nil
	// slices select the adaptive derivation (adaptive mode only).
	Lat []float64
	Lon []float64

	// WGS84 warps every clipped raster to geographic WGS84.
	WGS84 bool

	// Adaptive enables the refined pipeline: DEFLATE-compressed output,
	// incidence-angle correction, and bounding-box derivation when no
	// explicit range is given.
	Adaptive bool
}

// A Subsetter runs the clipping pipeline over one directory of products.
type Subsetter struct {
	opts   Options
	logger *slog.Logger
}

// New creates a Subsetter.
func New(opts Options, logger *slog.Logger) *Subsetter {
	return &Subsetter{opts: opts, logger: logger}
}

// Run executes the pipeline against the interferogram directory at root.
func (s *Subsetter) Run(ctx context.Context, root string) error {
	files, err := hyp3.Discover(root)
	if err != nil {
		return err
	}
	s.logger.Info("discovered products",
		slog.String("root", root),
		slog.Int("count", len(files)),
	)

	// The first raster seeds the reference coordinate system; every other
	// raster must agree with it.
	refPath, err := firstRaster(files)
	if err != nil {
		return err
	}
	zone, err := geo.UTMZone(refPath)
	if err != nil {
		return err
	}
	s.logger.Info("reference coordinate system",
		slog.String("file", filepath.Base(refPath)),
		slog.String("epsg", zone),
	)

	box, err := s.boundingBox(files, zone)
	if err != nil {
		return err
	}
	s.logger.Info("projection window", slog.String("box", box.String()))

	hyp3Dir, err := mintpy.BuildLayout(s.opts.Output, hyp3.Interferograms(files), s.logger)
	if err != nil {
		return err
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.processFile(f, hyp3Dir, box, zone); err != nil {
			return err
		}
	}

	templatePath, err := mintpy.WriteTemplate(s.opts.Output, s.logger)
	if err != nil {
		return err
	}
	s.logger.Info("wrote template", slog.String("path", templatePath))

	return nil
}

// boundingBox resolves the projection window in UTM coordinates, either
// from the explicit geographic ranges or adaptively as the common overlap
// of all unwrapped-phase rasters.
func (s *Subsetter) boundingBox(files []hyp3.File, zone string) (geo.BBox, error) {
	if len(s.opts.Lat) == 2 && len(s.opts.Lon) == 2 {
		geographic := geo.BBox{
			MinX: s.opts.Lon[0],
			MinY: s.opts.Lat[0],
			MaxX: s.opts.Lon[1],
			MaxY: s.opts.Lat[1],
		}
		return geo.GeographicToUTM(geographic, zone)
	}

	if !s.opts.Adaptive {
		return geo.BBox{}, fmt.Errorf("explicit latitude and longitude ranges are required")
	}

	unw := hyp3.ByKind(files, hyp3.UnwrappedPhase)
	if len(unw) == 0 {
		return geo.BBox{}, fmt.Errorf("no unwrapped-phase rasters to derive a bounding box from")
	}

	box, err := geo.CommonExtent(unw)
	if err != nil {
		return geo.BBox{}, err
	}
	s.logger.Info("derived bounding box from unwrapped-phase overlap",
		slog.Int("rasters", len(unw)),
	)
	return box, nil
}

func (s *Subsetter) processFile(f hyp3.File, hyp3Dir string, box geo.BBox, zone string) error {
	dest := filepath.Join(hyp3Dir, f.Interferogram(), filepath.Base(f.Path))

	if f.Kind == hyp3.Metadata {
		s.logger.Debug("copying metadata", slog.String("file", f.Path))
		return raster.CopyText(f.Path, dest)
	}

	fileZone, err := geo.UTMZone(f.Path)
	if err != nil {
		return err
	}
	if fileZone != zone {
		return fmt.Errorf("%s: %w: EPSG:%s, reference EPSG:%s", f.Path, geo.ErrZoneMismatch, fileZone, zone)
	}

	s.logger.Debug("clipping raster",
		slog.String("file", f.Path),
		slog.String("kind", f.Kind.String()),
	)
	err = raster.Clip(f.Path, dest, raster.ClipOptions{
		Box:      box,
		Zone:     zone,
		Compress: s.opts.Adaptive,
	})
	if err != nil {
		return err
	}

	// Correction applies to the clipped raster, before any warp.
	if f.Kind == hyp3.Incidence && s.opts.Adaptive {
		s.logger.Debug("correcting incidence angles", slog.String("file", dest))
		if err := raster.CorrectIncidence(dest); err != nil {
			return err
		}
	}

	if s.opts.WGS84 {
		s.logger.Debug("warping to WGS84", slog.String("file", dest))
		if err := raster.WarpToWGS84(dest); err != nil {
			return err
		}
	}

	return nil
}

// firstRaster returns the first non-metadata file in discovery order.
func firstRaster(files []hyp3.File) (string, error) {
	for _, f := range files {
		if f.Kind != hyp3.Metadata {
			return f.Path, nil
		}
	}
	return "", fmt.Errorf("no rasters among discovered products")
}
