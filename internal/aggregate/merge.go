package aggregate

import (
	"fmt"

	"github.com/signalnine/paretobench/internal/result"
	"github.com/signalnine/paretobench/internal/table"
	"github.com/sirupsen/logrus"
)

// Source is one discovered summary with its resolved metadata and loaded
// rows. Rows is nil when the file could not be read.
type Source struct {
	Path string
	Meta result.Metadata
	Rows *table.Table
}

// NoUsableDataError means every discovered summary was unreadable or empty.
type NoUsableDataError struct {
	Sources int
}

func (e *NoUsableDataError) Error() string {
	return fmt.Sprintf("all %d summary files were unreadable or empty", e.Sources)
}

// Merge tags each usable source with its metadata columns and stacks them in
// source order into the unified table.
func Merge(sources []Source) (*table.Table, error) {
	var parts []*table.Table
	for _, src := range sources {
		if src.Rows == nil || src.Rows.Len() == 0 {
			logrus.Debugf("skipping %s: no rows", src.Path)
			continue
		}
		tagged, err := tag(src)
		if err != nil {
			logrus.Warnf("skipping %s: %v", src.Path, err)
			continue
		}
		parts = append(parts, tagged)
	}
	if len(parts) == 0 {
		return nil, &NoUsableDataError{Sources: len(sources)}
	}
	return table.Concat(parts...), nil
}

func tag(src Source) (*table.Table, error) {
	values := map[string]string{
		result.ColScenarioDir: src.Meta.ScenarioDir,
		result.ColSummaryPath: src.Path,
		result.ColExperiment:  src.Meta.Experiment,
		result.ColWorkflow:    src.Meta.Workflow,
		result.ColScenario:    src.Meta.Scenario,
	}
	t := src.Rows
	for i, name := range result.MetadataColumns {
		var err error
		if t, err = t.WithText(i, name, values[name]); err != nil {
			return nil, fmt.Errorf("adding %s: %w", name, err)
		}
	}
	return t, nil
}

// MissingColumns lists, in order, the expected columns absent from t.
func MissingColumns(t *table.Table, expected []string) []string {
	var missing []string
	for _, c := range expected {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	return missing
}
