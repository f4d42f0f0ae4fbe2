// Package mintpy lays out the clipped product tree and the MintPy
// configuration template.
//
// The output root is owned by these operations: per-interferogram
// directories under hyp3/ and the mintpy/ directory are destroyed and
// recreated empty on every run. Callers accept data loss under the
// output root by invoking them.
package mintpy

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// BuildLayout recreates <outputRoot>/hyp3 with one empty subdirectory per
// interferogram and returns the hyp3 directory path. Removal failures on
// pre-existing directories are logged and the run continues.
func BuildLayout(outputRoot string, interferograms []string, logger *slog.Logger) (string, error) {
	hyp3Dir := filepath.Join(outputRoot, "hyp3")
	if err := os.MkdirAll(hyp3Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", hyp3Dir, err)
	}

	for _, name := range interferograms {
		dir := filepath.Join(hyp3Dir, name)
		if err := os.RemoveAll(dir); err != nil {
			logger.Warn("failed to remove existing directory",
				slog.String("path", dir),
				slog.String("error", err.Error()),
			)
		}
		if err := os.Mkdir(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	return hyp3Dir, nil
}
