package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkm/sarprep/internal/subset"
)

var (
	subsetLat    []float64
	subsetLon    []float64
	subsetOutput string
)

var subsetCmd = &cobra.Command{
	Use:   "subset <path>",
	Short: "Clip a stack of HyP3 interferograms to a bounding box",
	Long: `Clip every GeoTIFF under the interferogram directory to an explicit
geographic bounding box, reprojected into the stack's UTM zone, and lay
the results out as a MintPy input tree with a configuration template.
Run this before prep_hyp3.py.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateRanges(subsetLat, subsetLon, true); err != nil {
			return err
		}

		s := subset.New(subset.Options{
			Output: subsetOutput,
			Lat:    subsetLat,
			Lon:    subsetLon,
		}, logger)

		return s.Run(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(subsetCmd)

	subsetCmd.Flags().Float64SliceVarP(&subsetLat, "lat", "l", nil, "subset range in latitude (south,north)")
	subsetCmd.Flags().Float64SliceVarP(&subsetLon, "lon", "L", nil, "subset range in longitude (west,east)")
	subsetCmd.Flags().StringVarP(&subsetOutput, "output", "o", "", "path to build the MintPy directory structure")

	subsetCmd.MarkFlagRequired("lat")
	subsetCmd.MarkFlagRequired("lon")
	subsetCmd.MarkFlagRequired("output")
}

// validateRanges checks the lat/lon flag pairs. When required is false the
// ranges may be absent, but must be given together.
func validateRanges(lat, lon []float64, required bool) error {
	if len(lat) == 0 && len(lon) == 0 {
		if required {
			return fmt.Errorf("--lat and --lon are required")
		}
		return nil
	}
	if len(lat) != 2 || len(lon) != 2 {
		return fmt.Errorf("--lat and --lon each take exactly two values (got %d and %d)", len(lat), len(lon))
	}
	if lat[0] >= lat[1] {
		return fmt.Errorf("--lat south bound %g must be less than north bound %g", lat[0], lat[1])
	}
	if lon[0] >= lon[1] {
		return fmt.Errorf("--lon west bound %g must be less than east bound %g", lon[0], lon[1])
	}
	return nil
}
