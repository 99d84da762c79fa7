package pareto_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/signalnine/paretobench/internal/pareto"
	"github.com/signalnine/paretobench/internal/plot"
	"github.com/signalnine/paretobench/internal/result"
	"github.com/signalnine/paretobench/internal/table"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.ErrorLevel)
	}
	os.Exit(m.Run())
}

const mojsFront = `f1_makespan,f2_cost,f3_energy
10,5,3
12,4,2
15,3,
`

func runDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "scen_a", "run_01")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return dir
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

type recorder struct {
	scatter map[string]plot.ScatterSpec
	lines   map[string]plot.LineSpec
	fail    string
}

func newRecorder() *recorder {
	return &recorder{scatter: map[string]plot.ScatterSpec{}, lines: map[string]plot.LineSpec{}}
}

func (r *recorder) Scatter(path string, spec plot.ScatterSpec) error {
	if filepath.Base(path) == r.fail {
		return errors.New("boom")
	}
	r.scatter[filepath.Base(path)] = spec
	return nil
}

func (r *recorder) Lines(path string, spec plot.LineSpec) error {
	r.lines[filepath.Base(path)] = spec
	return nil
}

func TestFrontBest(t *testing.T) {
	f := pareto.Front{Objectives: [][]float64{{10, 12, 15}, {5, 4, 3}, {3, 2, math.NaN()}}}
	assert.Equal(t, []float64{10, 3, 2}, f.Best())
	assert.Equal(t, 3, f.Len())

	empty := pareto.Front{Objectives: [][]float64{{}, {}, {}}}
	for _, v := range empty.Best() {
		assert.True(t, math.IsNaN(v))
	}
}

func TestBestTable(t *testing.T) {
	fronts := []pareto.Front{
		{Algorithm: result.Algorithms[0], Objectives: [][]float64{{10, 12}, {5, 4}, {3, 2}}},
		{Algorithm: result.Algorithms[3], Objectives: [][]float64{{20}, {9}, {math.NaN()}}},
	}
	best, err := pareto.BestTable(fronts)
	require.NoError(t, err)
	assert.Equal(t, 2, best.Len())
	assert.Equal(t, "GREEDY", best.Value("algorithm", 1))
	cost, _ := best.Floats("best_cost")
	assert.Equal(t, []float64{4, 9}, cost)
	energy, _ := best.Floats("best_energy")
	assert.True(t, math.IsNaN(energy[1]))
}

func TestLoadFrontsSkipsMissing(t *testing.T) {
	dir := runDir(t)
	write(t, result.ParetoFile(dir, result.Algorithms[0]), mojsFront)
	write(t, result.ParetoFile(dir, result.Algorithms[3]), "f1_makespan,f2_cost,f3_energy\n20,9,9\n")
	write(t, result.ParetoFile(dir, result.Algorithms[2]), "f1_makespan,f2_cost\n1,2\n")

	fronts, err := pareto.LoadFronts(dir)
	require.NoError(t, err)
	require.Len(t, fronts, 2)
	assert.Equal(t, "mojs", fronts[0].Algorithm.Key)
	assert.Equal(t, "greedy", fronts[1].Algorithm.Key)
}

func TestLoadFrontsNone(t *testing.T) {
	_, err := pareto.LoadFronts(runDir(t))
	assert.True(t, errors.Is(err, pareto.ErrNoFronts))
}

func TestLoadHypervolume(t *testing.T) {
	dir := runDir(t)
	write(t, result.HypervolumeFile(dir, result.Algorithms[1]), "generation,hypervolume\n0,0.1\n1,0.3\n")

	hv := pareto.LoadHypervolume(dir)
	require.Len(t, hv, 1)
	assert.Equal(t, "aco", hv[0].Algorithm.Key)
	assert.Equal(t, []float64{0.1, 0.3}, hv[0].Hypervolume)
}

func TestPlotWritesEverything(t *testing.T) {
	dir := runDir(t)
	write(t, result.ParetoFile(dir, result.Algorithms[0]), mojsFront)
	write(t, result.ParetoFile(dir, result.Algorithms[1]), "f1_makespan,f2_cost,f3_energy\n11,6,4\n")
	write(t, result.HypervolumeFile(dir, result.Algorithms[0]), "generation,hypervolume\n0,0.2\n1,0.4\n")

	rec := newRecorder()
	out, err := pareto.Plot(dir, rec)
	require.NoError(t, err)
	assert.Empty(t, out.Failed)
	assert.Len(t, out.Written, 6)

	assert.Contains(t, rec.scatter, "pareto_f1_f2.png")
	assert.Contains(t, rec.scatter, "pareto_f1_f3.png")
	assert.Contains(t, rec.scatter, "pareto_f2_f3.png")
	assert.Contains(t, rec.scatter, pareto.ProjectionChart)
	require.Contains(t, rec.lines, pareto.EvolutionChart)

	pair := rec.scatter["pareto_f1_f2.png"]
	assert.Equal(t, "Pareto fronts: Makespan vs Cost (scen_a / run_01)", pair.Title)
	assert.Equal(t, "Makespan (f1)", pair.XLabel)
	require.Len(t, pair.Series, 2)
	assert.Equal(t, "MOJS", pair.Series[0].Name)
	assert.Equal(t, "MO-ACO", pair.Series[1].Name)

	best, err := table.ReadFile(filepath.Join(dir, pareto.BestFile))
	require.NoError(t, err)
	assert.Equal(t, []string{"algorithm", "points", "best_makespan", "best_cost", "best_energy"}, best.Columns())
	energy, _ := best.Floats("best_energy")
	assert.Equal(t, []float64{2, 4}, energy)
}

func TestPlotWithoutHypervolumeSkipsEvolution(t *testing.T) {
	dir := runDir(t)
	write(t, result.ParetoFile(dir, result.Algorithms[0]), mojsFront)

	rec := newRecorder()
	out, err := pareto.Plot(dir, rec)
	require.NoError(t, err)
	assert.Empty(t, rec.lines)
	assert.Len(t, out.Written, 5)
}

func TestPlotChartFailureIsNotFatal(t *testing.T) {
	dir := runDir(t)
	write(t, result.ParetoFile(dir, result.Algorithms[0]), mojsFront)

	rec := newRecorder()
	rec.fail = pareto.ProjectionChart
	out, err := pareto.Plot(dir, rec)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, pareto.ProjectionChart)}, out.Failed)
	assert.FileExists(t, filepath.Join(dir, pareto.BestFile))
}

func TestProjectionNormalizes(t *testing.T) {
	fronts := []pareto.Front{{
		Algorithm:  result.Algorithms[0],
		Objectives: [][]float64{{0, 10}, {5, 15}, {1, 1}},
	}}
	spec := pareto.Projection(fronts, "s / r")
	require.Len(t, spec.Series, 1)
	// f3 is constant so it contributes no depth.
	assert.Equal(t, []float64{0, 1}, spec.Series[0].X)
	assert.Equal(t, []float64{0, 1}, spec.Series[0].Y)
}

func TestPlotRendersPNGs(t *testing.T) {
	dir := runDir(t)
	write(t, result.ParetoFile(dir, result.Algorithms[0]), mojsFront)
	write(t, result.HypervolumeFile(dir, result.Algorithms[0]), "generation,hypervolume\n0,0.2\n1,0.4\n")

	out, err := pareto.Plot(dir, plot.NewRenderer(640, 320))
	require.NoError(t, err)
	assert.Empty(t, out.Failed)
	assert.FileExists(t, filepath.Join(dir, pareto.EvolutionChart))
}
