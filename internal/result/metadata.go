package result

import (
	"path/filepath"
	"strings"
)

const DefaultExperimentPrefix = "exp_"

// Metadata identifies where a summary came from. It is derived from the
// summary's path alone: <root>/<experiment>/<scenario>/summary.csv.
type Metadata struct {
	Experiment  string
	Workflow    string
	Scenario    string
	ScenarioDir string
}

// ParseMetadata resolves the experiment, workflow and scenario of a summary
// file from its path. It never touches the filesystem.
func ParseMetadata(path, prefix string) Metadata {
	scenarioDir := filepath.Dir(path)
	experimentDir := filepath.Dir(scenarioDir)

	m := Metadata{
		Experiment:  filepath.Base(experimentDir),
		Workflow:    UnknownWorkflow,
		Scenario:    filepath.Base(scenarioDir),
		ScenarioDir: scenarioDir,
	}
	if strings.HasPrefix(m.Experiment, prefix) {
		// exp_<workflow>_<date>_<time>; both arms pick the second token.
		parts := strings.Split(m.Experiment, "_")
		if len(parts) >= 4 {
			m.Workflow = parts[1]
		} else if len(parts) >= 2 {
			m.Workflow = parts[1]
		}
	}
	return m
}
