package geo

import (
	"fmt"
	"strconv"

	"github.com/airbusgeo/godal"
)

// Geographic WGS84 in traditional lon/lat axis order. Building spatial
// references from proj4 strings keeps coordinates in x=lon/easting,
// y=lat/northing order regardless of the authority's axis definition.
const geographicProj4 = "+proj=longlat +datum=WGS84 +no_defs"

// UTMZone extracts the EPSG code of a raster's projected CRS and
// requires it to be a WGS84 UTM zone (EPSG 326xx north, 327xx south).
// The code is returned as a numeric string, e.g. "32606".
func UTMZone(path string) (string, error) {
	ds, err := godal.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer ds.Close()

	sr := ds.SpatialRef()
	defer sr.Close()

	name := sr.AuthorityName("")
	code := sr.AuthorityCode("")
	if name != "EPSG" || code == "" {
		return "", fmt.Errorf("%w: %s has no EPSG authority code", ErrNotUTM, path)
	}

	if _, _, err := parseUTMCode(code); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return code, nil
}

// parseUTMCode splits a WGS84 UTM EPSG code into zone number and hemisphere.
func parseUTMCode(code string) (zone int, south bool, err error) {
	n, err := strconv.Atoi(code)
	if err != nil {
		return 0, false, fmt.Errorf("%w: invalid EPSG code %q", ErrNotUTM, code)
	}

	switch {
	case n >= 32601 && n <= 32660:
		return n - 32600, false, nil
	case n >= 32701 && n <= 32760:
		return n - 32700, true, nil
	default:
		return 0, false, fmt.Errorf("%w: EPSG:%d", ErrNotUTM, n)
	}
}

func utmProj4(code string) (string, error) {
	zone, south, err := parseUTMCode(code)
	if err != nil {
		return "", err
	}
	p4 := fmt.Sprintf("+proj=utm +zone=%d +datum=WGS84 +units=m +no_defs", zone)
	if south {
		p4 += " +south"
	}
	return p4, nil
}

// ToUTM converts a geographic lon/lat pair to an easting/northing pair
// in the given UTM zone. Pure and stateless per call.
func ToUTM(lon, lat float64, zone string) (easting, northing float64, err error) {
	p4, err := utmProj4(zone)
	if err != nil {
		return 0, 0, err
	}

	src, err := godal.NewSpatialRefFromProj4(geographicProj4)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create geographic CRS: %w", err)
	}
	defer src.Close()

	dst, err := godal.NewSpatialRefFromProj4(p4)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create UTM CRS for EPSG:%s: %w", zone, err)
	}
	defer dst.Close()

	trn, err := godal.NewTransform(src, dst)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create transform to EPSG:%s: %w", zone, err)
	}
	defer trn.Close()

	x := []float64{lon}
	y := []float64{lat}
	if err := trn.TransformEx(x, y, nil, nil); err != nil {
		return 0, 0, fmt.Errorf("failed to transform (%g, %g) to EPSG:%s: %w", lon, lat, zone, err)
	}

	return x[0], y[0], nil
}

// GeographicToUTM transforms a geographic box (lon/lat degrees) into the
// given UTM zone by transforming the upper-left and lower-right corners
// individually.
func GeographicToUTM(box BBox, zone string) (BBox, error) {
	ulX, ulY := box.UL()
	lrX, lrY := box.LR()

	ulE, ulN, err := ToUTM(ulX, ulY, zone)
	if err != nil {
		return BBox{}, err
	}
	lrE, lrN, err := ToUTM(lrX, lrY, zone)
	if err != nil {
		return BBox{}, err
	}

	return BBox{MinX: ulE, MinY: lrN, MaxX: lrE, MaxY: ulN}, nil
}
