package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rkm/sarprep/internal/sarviews"
)

var (
	dlOutput string
	dlPath   int
	dlFrame  int
	dlStart  string
	dlEnd    string
	dlID     string
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download a stack of SARVIEWS interferograms for one event",
	Long: `Query the SARVIEWS event catalog for a hazard event, filter its
INSAR_GAMMA products by path, frame and acquisition date, and download
every matching product archive into the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDownload(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().StringVarP(&dlOutput, "output", "o", "", "directory to download products into (must exist)")
	downloadCmd.Flags().IntVarP(&dlPath, "path", "p", 0, "granule path to filter by")
	downloadCmd.Flags().IntVarP(&dlFrame, "frame", "f", 0, "granule frame to filter by")
	downloadCmd.Flags().StringVarP(&dlStart, "start", "s", "", "start date (YYYY-MM-DD, exclusive)")
	downloadCmd.Flags().StringVarP(&dlEnd, "end", "e", "", "end date (YYYY-MM-DD, exclusive)")
	downloadCmd.Flags().StringVarP(&dlID, "id", "i", "", "SARVIEWS event ID")

	for _, name := range []string{"output", "path", "frame", "start", "end", "id"} {
		downloadCmd.MarkFlagRequired(name)
	}
}

func runDownload(ctx context.Context) error {
	start, err := parseDate(dlStart)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	end, err := parseDate(dlEnd)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}

	info, err := os.Stat(dlOutput)
	if err != nil {
		return fmt.Errorf("output directory %s: %w", dlOutput, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path %s is not a directory", dlOutput)
	}

	client := sarviews.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout).WithLogger(logger)

	event, err := client.GetEvent(ctx, dlID)
	if err != nil {
		return err
	}
	logger.Info("fetched event",
		slog.String("event_id", dlID),
		slog.Int("products", len(event.Products)),
	)

	filter := sarviews.Filter{
		Path:    dlPath,
		Frame:   dlFrame,
		JobType: sarviews.JobTypeInSARGamma,
		Start:   start,
		End:     end,
	}
	products, err := filter.Apply(event.Products)
	if err != nil {
		return err
	}
	logger.Info("products after filtering",
		slog.Int("count", len(products)),
		slog.Int("path", dlPath),
		slog.Int("frame", dlFrame),
	)

	for _, product := range products {
		dest, err := client.Download(ctx, product, dlOutput)
		if err != nil {
			return err
		}
		logger.Info("downloaded", slog.String("file", dest))
	}

	return nil
}

// parseDate parses a YYYY-MM-DD flag value as midnight UTC.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
