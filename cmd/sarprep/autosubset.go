package main

import (
	"github.com/spf13/cobra"

	"github.com/rkm/sarprep/internal/subset"
)

var (
	autoLat    []float64
	autoLon    []float64
	autoOutput string
	autoWGS84  bool
)

var autosubsetCmd = &cobra.Command{
	Use:   "autosubset <path>",
	Short: "Clip a stack of HyP3 interferograms, deriving the box when omitted",
	Long: `Like subset, but the bounding box may be omitted: it is then derived
as the tightest common overlap of all unwrapped-phase rasters. Outputs
are DEFLATE-compressed, incidence-angle rasters are corrected to true
incidence values, and --WGS84 reprojects every result to geographic
coordinates.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateRanges(autoLat, autoLon, false); err != nil {
			return err
		}

		s := subset.New(subset.Options{
			Output:   autoOutput,
			Lat:      autoLat,
			Lon:      autoLon,
			WGS84:    autoWGS84,
			Adaptive: true,
		}, logger)

		return s.Run(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(autosubsetCmd)

	autosubsetCmd.Flags().Float64SliceVarP(&autoLat, "lat", "l", nil, "subset range in latitude (south,north); derived when omitted")
	autosubsetCmd.Flags().Float64SliceVarP(&autoLon, "lon", "L", nil, "subset range in longitude (west,east); derived when omitted")
	autosubsetCmd.Flags().BoolVar(&autoWGS84, "WGS84", false, "reproject clipped rasters to geographic WGS84 (EPSG:4326)")
	autosubsetCmd.Flags().StringVarP(&autoOutput, "output", "o", "", "path to build the MintPy directory structure")

	autosubsetCmd.MarkFlagRequired("output")
}
