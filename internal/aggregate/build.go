package aggregate

import (
	"path/filepath"

	"github.com/signalnine/paretobench/internal/result"
	"github.com/signalnine/paretobench/internal/table"
	"github.com/sirupsen/logrus"
)

type Options struct {
	SummaryFile      string
	ExperimentPrefix string
	Workers          int
}

// Result is the output of one aggregation pass. Unified is owned by the
// aggregator; consumers must treat it as read-only.
type Result struct {
	Root      string
	Summaries []string
	Sources   []Source
	Unified   *table.Table
	Stats     *table.Table
	Missing   []string
}

// Build discovers, loads, merges and summarizes every summary under root.
// It fails only when root is invalid, nothing is found, or nothing loads.
func Build(root string, opts Options) (*Result, error) {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	paths, err := result.FindSummaries(root, opts.SummaryFile)
	if err != nil {
		return nil, err
	}
	logrus.Infof("found %d summary files under %s", len(paths), root)

	tables := LoadAll(paths, opts.Workers)
	sources := make([]Source, len(paths))
	for i, p := range paths {
		sources[i] = Source{
			Path: p,
			Meta: result.ParseMetadata(p, opts.ExperimentPrefix),
			Rows: tables[i],
		}
	}

	unified, err := Merge(sources)
	if err != nil {
		return nil, err
	}

	missing := MissingColumns(unified, result.ExpectedColumns())
	if len(missing) > 0 {
		logrus.Warnf("missing columns in summaries (ok if not yet added): %v", missing)
	}

	stats, err := GroupStats(unified, result.MetricColumns())
	if err != nil {
		return nil, err
	}

	return &Result{
		Root:      root,
		Summaries: paths,
		Sources:   sources,
		Unified:   unified,
		Stats:     stats,
		Missing:   missing,
	}, nil
}
