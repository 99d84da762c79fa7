package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/signalnine/paretobench/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paretobench.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Results.SummaryFile != "summary.csv" {
		t.Errorf("expected summary.csv, got %q", cfg.Results.SummaryFile)
	}
	if cfg.Output.AggregateDir != "_aggregate" {
		t.Errorf("expected _aggregate, got %q", cfg.Output.AggregateDir)
	}
	if cfg.Loader.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Loader.Workers)
	}
	if cfg.Charts.Width != 1280 || cfg.Charts.Height != 640 {
		t.Errorf("expected 1280x640, got %dx%d", cfg.Charts.Width, cfg.Charts.Height)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
results:
  dir: /data/runs
loader:
  workers: 8
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Results.Dir != "/data/runs" {
		t.Errorf("expected /data/runs, got %q", cfg.Results.Dir)
	}
	if cfg.Loader.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.Loader.Workers)
	}
	if cfg.Results.ExperimentPrefix != "exp_" {
		t.Errorf("expected default prefix, got %q", cfg.Results.ExperimentPrefix)
	}
	if !cfg.Output.Charts || !cfg.Output.ScenarioArtifacts {
		t.Error("expected charts and scenario artifacts enabled by default")
	}
}

func TestLoadDisablesOutputs(t *testing.T) {
	path := writeConfig(t, `
output:
  aggregate_dir: ""
  scenario_artifacts: false
  charts: false
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.AggregateDir != "" {
		t.Errorf("expected aggregate dir disabled, got %q", cfg.Output.AggregateDir)
	}
	if cfg.Output.ScenarioArtifacts || cfg.Output.Charts {
		t.Error("expected scenario artifacts and charts disabled")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := config.Load("nonexistent.yaml")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "results: [unclosed"},
		{"zero workers", "loader:\n  workers: 0\n"},
		{"empty summary file", "results:\n  summary_file: \"\"\n"},
		{"empty prefix", "results:\n  experiment_prefix: \"\"\n"},
		{"negative width", "charts:\n  width: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := config.Load(writeConfig(t, tt.content)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}
