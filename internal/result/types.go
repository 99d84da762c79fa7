package result

// Algorithm is one optimizer whose results appear side by side in a summary.
type Algorithm struct {
	Key   string // column suffix, e.g. "mojs"
	Label string // display name, e.g. "MOJS"
}

// Objective is one minimized objective of the scheduling problem.
type Objective struct {
	Key   string // column token, e.g. "f1"
	Name  string // e.g. "makespan"
	Label string // e.g. "Makespan"
}

var Algorithms = []Algorithm{
	{Key: "mojs", Label: "MOJS"},
	{Key: "aco", Label: "ACO"},
	{Key: "random", Label: "RANDOM"},
	{Key: "greedy", Label: "GREEDY"},
}

var Objectives = []Objective{
	{Key: "f1", Name: "makespan", Label: "Makespan"},
	{Key: "f2", Name: "cost", Label: "Cost"},
	{Key: "f3", Name: "energy", Label: "Energy"},
}

// Metadata columns prepended to every row of the unified table, in order.
const (
	ColScenarioDir = "scenario_dir"
	ColSummaryPath = "summary_path"
	ColExperiment  = "experiment"
	ColWorkflow    = "workflow"
	ColScenario    = "scenario"
)

var MetadataColumns = []string{ColScenarioDir, ColSummaryPath, ColExperiment, ColWorkflow, ColScenario}

func ParetoColumn(a Algorithm) string { return "pareto_" + a.Key }

func HypervolumeColumn(a Algorithm) string { return "hv_" + a.Key }

func BestColumn(o Objective, a Algorithm) string { return "best_" + o.Key + "_" + a.Key }

// ObjectiveColumn names an objective in per-run Pareto front files, e.g. "f1_makespan".
func ObjectiveColumn(o Objective) string { return o.Key + "_" + o.Name }

// ExpectedColumns lists the summary columns every optimizer run is supposed to emit.
func ExpectedColumns() []string {
	cols := []string{"run", "seed", "ref_f1", "ref_f2", "ref_f3"}
	return append(cols, MetricColumns()...)
}

// MetricColumns are the columns summarized by grouped statistics:
// Pareto-front sizes then hypervolumes, one per algorithm.
func MetricColumns() []string {
	var cols []string
	for _, a := range Algorithms {
		cols = append(cols, ParetoColumn(a))
	}
	return append(cols, HypervolumeColumns()...)
}

func HypervolumeColumns() []string {
	cols := make([]string, 0, len(Algorithms))
	for _, a := range Algorithms {
		cols = append(cols, HypervolumeColumn(a))
	}
	return cols
}

// BestObjectiveColumns lists the best-on-Pareto columns, objective-major.
func BestObjectiveColumns() []string {
	cols := make([]string, 0, len(Algorithms)*len(Objectives))
	for _, o := range Objectives {
		for _, a := range Algorithms {
			cols = append(cols, BestColumn(o, a))
		}
	}
	return cols
}
