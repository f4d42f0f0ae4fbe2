// Package geo implements the coordinate handling of the subsetting
// pipeline: bounding boxes, raster extents, UTM zone extraction and the
// geographic-to-projected corner transform.
package geo

import "fmt"

// BBox is an axis-aligned bounding box. Coordinates are in whatever
// system the caller put them in (geographic degrees or UTM meters);
// the box itself does not carry a CRS.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// UL returns the upper-left corner (min easting, max northing).
func (b BBox) UL() (x, y float64) { return b.MinX, b.MaxY }

// LR returns the lower-right corner (max easting, min northing).
func (b BBox) LR() (x, y float64) { return b.MaxX, b.MinY }

// Empty reports whether the box is degenerate or inverted.
func (b BBox) Empty() bool {
	return b.MaxX <= b.MinX || b.MaxY <= b.MinY
}

// Intersect returns the componentwise intersection of two boxes:
// max of the mins, min of the maxs. The result may be Empty.
func (b BBox) Intersect(o BBox) BBox {
	return BBox{
		MinX: max(b.MinX, o.MinX),
		MinY: max(b.MinY, o.MinY),
		MaxX: min(b.MaxX, o.MaxX),
		MaxY: min(b.MaxY, o.MaxY),
	}
}

// Contains reports whether o lies entirely within b.
func (b BBox) Contains(o BBox) bool {
	return o.MinX >= b.MinX && o.MinY >= b.MinY && o.MaxX <= b.MaxX && o.MaxY <= b.MaxY
}

func (b BBox) String() string {
	return fmt.Sprintf("[%g %g %g %g]", b.MinX, b.MinY, b.MaxX, b.MaxY)
}
