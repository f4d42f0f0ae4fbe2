package mintpy

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Field names are fixed by MintPy's configuration format.
const templateFormat = `mintpy.load.processor        = hyp3
# ---------interferogram datasets:
mintpy.load.unwFile          = %s
mintpy.load.corFile          = %s
# ---------geometry datasets:
mintpy.load.demFile          = %s
mintpy.load.incAngleFile     = %s
`

// WriteTemplate destructively recreates <outputRoot>/mintpy and writes
// template.txt with file-glob fields pointing at the hyp3 product tree.
// Returns the template file path. A removal failure on the pre-existing
// directory is logged and the run continues.
func WriteTemplate(outputRoot string, logger *slog.Logger) (string, error) {
	mintpyDir := filepath.Join(outputRoot, "mintpy")
	if err := os.RemoveAll(mintpyDir); err != nil {
		logger.Warn("failed to remove existing directory",
			slog.String("path", mintpyDir),
			slog.String("error", err.Error()),
		)
	}
	if err := os.MkdirAll(mintpyDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", mintpyDir, err)
	}

	hyp3Dir := filepath.Join(outputRoot, "hyp3")
	content := fmt.Sprintf(templateFormat,
		filepath.Join(hyp3Dir, "*", "*unw_phase.tif"),
		filepath.Join(hyp3Dir, "*", "*corr.tif"),
		filepath.Join(hyp3Dir, "*", "*dem.tif"),
		filepath.Join(hyp3Dir, "*", "*inc_map.tif"),
	)

	templatePath := filepath.Join(mintpyDir, "template.txt")
	if err := os.WriteFile(templatePath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", templatePath, err)
	}

	return templatePath, nil
}
