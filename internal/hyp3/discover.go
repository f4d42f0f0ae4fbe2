// Package hyp3 classifies and discovers HyP3 interferogram products on disk.
//
// A HyP3 interferogram is delivered as one directory of GeoTIFF layers
// plus a metadata text file; layers are identified purely by filename
// suffix. Discovery is deterministic: files are grouped by kind, sorted
// within each kind, and concatenated in a fixed kind order, so the first
// raster of a run is stable and can serve as the coordinate reference.
package hyp3

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Kind is the product category of a discovered file.
type Kind int

const (
	Correlation Kind = iota
	UnwrappedPhase
	Metadata
	DEM
	Incidence
)

func (k Kind) String() string {
	switch k {
	case Correlation:
		return "correlation"
	case UnwrappedPhase:
		return "unwrapped-phase"
	case Metadata:
		return "metadata"
	case DEM:
		return "dem"
	case Incidence:
		return "incidence"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// discoveryOrder fixes the concatenation order of discovery results.
var discoveryOrder = []Kind{Correlation, UnwrappedPhase, Metadata, DEM, Incidence}

// Classify maps a file name to its product kind by suffix.
// The second return value is false for files that are not HyP3 products.
func Classify(name string) (Kind, bool) {
	switch {
	case strings.HasSuffix(name, "_corr.tif"):
		return Correlation, true
	case strings.HasSuffix(name, "_unw_phase.tif"):
		return UnwrappedPhase, true
	case strings.HasSuffix(name, "_dem.tif"):
		return DEM, true
	case strings.HasSuffix(name, "_inc_map.tif"), strings.HasSuffix(name, "_lv_theta.tif"):
		return Incidence, true
	case strings.HasSuffix(name, ".txt") && !strings.HasSuffix(name, ".md.txt"):
		return Metadata, true
	}
	return 0, false
}

// File is a discovered HyP3 product file.
type File struct {
	Path string
	Kind Kind
}

// Interferogram returns the interferogram identifier a file belongs to,
// which is the name of its parent directory.
func (f File) Interferogram() string {
	return filepath.Base(filepath.Dir(f.Path))
}

// Discover walks root recursively and returns every HyP3 product file,
// sorted within each kind and concatenated in discovery order.
// A missing root or a walk yielding zero products returns *InputNotFoundError.
func Discover(root string) ([]File, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &InputNotFoundError{Path: root, Reason: "directory does not exist"}
		}
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, &InputNotFoundError{Path: root, Reason: "not a directory"}
	}

	perKind := make(map[Kind][]string)
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if kind, ok := Classify(d.Name()); ok {
			perKind[kind] = append(perKind[kind], p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	var files []File
	for _, kind := range discoveryOrder {
		paths := perKind[kind]
		sort.Strings(paths)
		for _, p := range paths {
			files = append(files, File{Path: p, Kind: kind})
		}
	}

	if len(files) == 0 {
		return nil, &InputNotFoundError{Path: root, Reason: "no HyP3 products found"}
	}

	return files, nil
}

// ByKind returns the paths of all files of one kind, in discovery order.
func ByKind(files []File, kind Kind) []string {
	var paths []string
	for _, f := range files {
		if f.Kind == kind {
			paths = append(paths, f.Path)
		}
	}
	return paths
}

// Interferograms returns the sorted set of interferogram identifiers
// present in files.
func Interferograms(files []File) []string {
	seen := make(map[string]bool)
	var names []string
	for _, f := range files {
		name := f.Interferogram()
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
