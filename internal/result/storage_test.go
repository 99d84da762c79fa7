package result_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signalnine/paretobench/internal/result"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindSummariesSorted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "exp_B_2024-01-02_00-00-00", "s1", "summary.csv"), "run\n1\n")
	writeFile(t, filepath.Join(root, "exp_A_2024-01-01_00-00-00", "s2", "summary.csv"), "run\n1\n")
	writeFile(t, filepath.Join(root, "exp_A_2024-01-01_00-00-00", "s1", "summary.csv"), "run\n1\n")
	writeFile(t, filepath.Join(root, "exp_A_2024-01-01_00-00-00", "s1", "all_runs.csv"), "run\n1\n")

	paths, err := result.FindSummaries(root, result.DefaultSummaryFile)
	if err != nil {
		t.Fatalf("FindSummaries: %v", err)
	}
	want := []string{
		filepath.Join(root, "exp_A_2024-01-01_00-00-00", "s1", "summary.csv"),
		filepath.Join(root, "exp_A_2024-01-01_00-00-00", "s2", "summary.csv"),
		filepath.Join(root, "exp_B_2024-01-02_00-00-00", "s1", "summary.csv"),
	}
	if len(paths) != len(want) {
		t.Fatalf("got %d paths, want %d: %v", len(paths), len(want), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d]: got %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestFindSummariesReturnsAbsolutePaths(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "exp_A", "s1", "summary.csv"), "run\n1\n")
	t.Chdir(root)

	paths, err := result.FindSummaries(".", result.DefaultSummaryFile)
	if err != nil {
		t.Fatalf("FindSummaries: %v", err)
	}
	if len(paths) != 1 || !filepath.IsAbs(paths[0]) {
		t.Errorf("expected one absolute path, got %v", paths)
	}
}

func TestFindSummariesInvalidRoot(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "plain.txt")
	writeFile(t, file, "x")

	tests := []struct {
		name string
		root string
	}{
		{"missing", filepath.Join(base, "nope")},
		{"regular file", file},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := result.FindSummaries(tt.root, result.DefaultSummaryFile)
			var rootErr *result.InvalidRootError
			if !errors.As(err, &rootErr) {
				t.Fatalf("expected InvalidRootError, got %v", err)
			}
		})
	}
}

func TestFindSummariesNoneFound(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "exp_A", "s1", "other.csv"), "run\n1\n")

	_, err := result.FindSummaries(root, result.DefaultSummaryFile)
	if !errors.Is(err, result.ErrNoSummaries) {
		t.Fatalf("expected ErrNoSummaries, got %v", err)
	}
}

func TestParetoAndHypervolumeFiles(t *testing.T) {
	dir := filepath.Join("results", "run-1")
	a := result.Algorithms[1]
	if got, want := result.ParetoFile(dir, a), filepath.Join(dir, "pareto_aco.csv"); got != want {
		t.Errorf("ParetoFile: got %q, want %q", got, want)
	}
	if got, want := result.HypervolumeFile(dir, a), filepath.Join(dir, "hv_aco.csv"); got != want {
		t.Errorf("HypervolumeFile: got %q, want %q", got, want)
	}
}
