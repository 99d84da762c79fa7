package aggregate

import (
	"github.com/signalnine/paretobench/internal/runner"
	"github.com/signalnine/paretobench/internal/table"
	"github.com/sirupsen/logrus"
)

// LoadSummary reads one summary file. Any failure is logged and reported as
// a nil table so that a single broken file never aborts the batch.
func LoadSummary(path string) *table.Table {
	return LoadAll([]string{path}, 1)[0]
}

// LoadAll loads every path with at most workers concurrent reads. The
// result is index-aligned with paths; unreadable files are logged and left
// nil.
func LoadAll(paths []string, workers int) []*table.Table {
	out := make([]*table.Table, len(paths))
	jobs := make([]runner.Job, len(paths))
	for i, p := range paths {
		jobs[i] = func() error {
			t, err := table.ReadFile(p)
			if err != nil {
				return err
			}
			out[i] = t
			return nil
		}
	}
	for i, err := range runner.RunPool(workers, jobs) {
		if err != nil {
			logrus.Warnf("failed to read %s: %v", paths[i], err)
		}
	}
	return out
}
