package raster

import (
	"fmt"
	"math"
	"os"

	"github.com/airbusgeo/godal"
)

// CorrectIncidence rewrites an incidence-angle (look-vector theta) raster
// in place, mapping every pixel value theta to pi/2 - theta. No-data
// pixels, the geotransform and the projection are preserved. The
// corrected raster is written to a temporary file and renamed over path.
func CorrectIncidence(path string) error {
	tmp := path + ".corrected.tif"
	if err := correctIncidenceFile(path, tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func correctIncidenceFile(src, dest string) error {
	ds, err := godal.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer ds.Close()

	st := ds.Structure()
	if st.NBands < 1 {
		return fmt.Errorf("%s has no raster bands", src)
	}

	gt, err := ds.GeoTransform()
	if err != nil {
		return fmt.Errorf("failed to read geotransform of %s: %w", src, err)
	}
	proj := ds.Projection()

	band := ds.Bands()[0]
	nodata, hasNodata := band.NoData()

	buf := make([]float32, st.SizeX*st.SizeY)
	if err := band.Read(0, 0, buf, st.SizeX, st.SizeY); err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}

	correctIncidenceValues(buf, nodata, hasNodata)

	out, err := godal.Create(godal.GTiff, dest, 1, godal.Float32, st.SizeX, st.SizeY,
		godal.CreationOption("COMPRESS=DEFLATE"))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}

	if err := out.SetGeoTransform(gt); err != nil {
		out.Close()
		return fmt.Errorf("failed to set geotransform on %s: %w", dest, err)
	}
	if err := out.SetProjection(proj); err != nil {
		out.Close()
		return fmt.Errorf("failed to set projection on %s: %w", dest, err)
	}

	outBand := out.Bands()[0]
	if hasNodata {
		if err := outBand.SetNoData(nodata); err != nil {
			out.Close()
			return fmt.Errorf("failed to set no-data on %s: %w", dest, err)
		}
	}
	if err := outBand.Write(0, 0, buf, st.SizeX, st.SizeY); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", dest, err)
	}

	return nil
}

// correctIncidenceValues maps each look-vector angle theta to pi/2 - theta,
// leaving no-data pixels untouched. The map is its own inverse.
func correctIncidenceValues(vals []float32, nodata float64, hasNodata bool) {
	halfPi := float32(math.Pi / 2)
	for i, v := range vals {
		if hasNodata && float64(v) == nodata {
			continue
		}
		vals[i] = halfPi - v
	}
}
