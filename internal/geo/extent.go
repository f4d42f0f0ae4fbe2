package geo

import (
	"fmt"

	"github.com/airbusgeo/godal"
)

// Extent computes a raster's footprint from its geotransform and pixel
// dimensions. The pixel height term of the geotransform is conventionally
// negative, so the origin is the upper-left corner.
func Extent(path string) (BBox, error) {
	ds, err := godal.Open(path)
	if err != nil {
		return BBox{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer ds.Close()

	gt, err := ds.GeoTransform()
	if err != nil {
		return BBox{}, fmt.Errorf("failed to read geotransform of %s: %w", path, err)
	}

	st := ds.Structure()
	return extentOf(gt, st.SizeX, st.SizeY), nil
}

func extentOf(gt [6]float64, sizeX, sizeY int) BBox {
	minX := gt[0]
	maxY := gt[3]
	maxX := minX + gt[1]*float64(sizeX)
	minY := maxY + gt[5]*float64(sizeY)
	return BBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// CommonExtent returns the tightest box contained in every raster's
// footprint. This is the minimal safe clip window across a stack of
// imperfectly-aligned products. An empty intersection is an error.
func CommonExtent(paths []string) (BBox, error) {
	if len(paths) == 0 {
		return BBox{}, fmt.Errorf("no rasters to intersect")
	}

	box, err := Extent(paths[0])
	if err != nil {
		return BBox{}, err
	}

	for _, p := range paths[1:] {
		ext, err := Extent(p)
		if err != nil {
			return BBox{}, err
		}
		box = box.Intersect(ext)
	}

	if box.Empty() {
		return BBox{}, fmt.Errorf("%w: common extent is empty", ErrNoOverlap)
	}

	return box, nil
}
