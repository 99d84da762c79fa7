package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Results Results `yaml:"results"`
	Output  Output  `yaml:"output"`
	Loader  Loader  `yaml:"loader"`
	Charts  Charts  `yaml:"charts"`
}

type Results struct {
	Dir              string `yaml:"dir"`
	SummaryFile      string `yaml:"summary_file"`
	ExperimentPrefix string `yaml:"experiment_prefix"`
}

// Output controls which artifacts an aggregate pass writes. An empty
// AggregateDir disables the root-level tables.
type Output struct {
	AggregateDir      string `yaml:"aggregate_dir"`
	ScenarioArtifacts bool   `yaml:"scenario_artifacts"`
	Charts            bool   `yaml:"charts"`
}

type Loader struct {
	Workers int `yaml:"workers"`
}

type Charts struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func Default() *Config {
	return &Config{
		Results: Results{
			Dir:              "results",
			SummaryFile:      "summary.csv",
			ExperimentPrefix: "exp_",
		},
		Output: Output{
			AggregateDir:      "_aggregate",
			ScenarioArtifacts: true,
			Charts:            true,
		},
		Loader: Loader{Workers: 4},
		Charts: Charts{Width: 1280, Height: 640},
	}
}

// Load reads a YAML config over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Results.SummaryFile == "" {
		return fmt.Errorf("results.summary_file is required")
	}
	if cfg.Results.ExperimentPrefix == "" {
		return fmt.Errorf("results.experiment_prefix is required")
	}
	if cfg.Loader.Workers < 1 {
		return fmt.Errorf("loader.workers must be at least 1")
	}
	if cfg.Charts.Width <= 0 || cfg.Charts.Height <= 0 {
		return fmt.Errorf("charts.width and charts.height must be positive")
	}
	return nil
}
