package result

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
)

const (
	DefaultSummaryFile = "summary.csv"
	UnknownWorkflow    = "UNKNOWN"
)

// ErrNoSummaries is returned when a walk finds no summary file at all.
var ErrNoSummaries = errors.New("no summary files found")

// InvalidRootError reports a results root that is missing or not a directory.
type InvalidRootError struct {
	Path string
	Err  error
}

func (e *InvalidRootError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid results root %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid results root %s: not a directory", e.Path)
}

func (e *InvalidRootError) Unwrap() error { return e.Err }

// FindSummaries walks root and returns the absolute path of every file
// named name, sorted lexicographically.
func FindSummaries(root, name string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &InvalidRootError{Path: root, Err: err}
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, &InvalidRootError{Path: abs, Err: err}
	}
	if !info.IsDir() {
		return nil, &InvalidRootError{Path: abs}
	}

	var paths []string
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == abs {
				return err
			}
			logrus.Warnf("skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && d.Name() == name {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", abs, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoSummaries, abs)
	}
	sort.Strings(paths)
	return paths, nil
}

// ParetoFile is the per-run Pareto front file written for one algorithm.
func ParetoFile(runDir string, a Algorithm) string {
	return filepath.Join(runDir, "pareto_"+a.Key+".csv")
}

// HypervolumeFile is the per-run hypervolume-per-generation file of one algorithm.
func HypervolumeFile(runDir string, a Algorithm) string {
	return filepath.Join(runDir, "hv_"+a.Key+".csv")
}
