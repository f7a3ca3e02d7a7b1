package compiler

import "github.com/KromDaniel/addrspec/internal/fsm"

// AnalysisResult summarizes a tabulated automaton without generating code.
type AnalysisResult struct {
	States     int      `json:"states" yaml:"states"`
	Start      string   `json:"start" yaml:"start"`
	Reachable  []string `json:"reachable" yaml:"reachable"`
	Accepting  []string `json:"accepting" yaml:"accepting"`
	Dead       []string `json:"dead" yaml:"dead"`
	Classes    int      `json:"classes" yaml:"classes"`
	TableBytes int      `json:"table_bytes" yaml:"table_bytes"`
}

// Analyze tabulates a and reports its shape. The table size counts the
// class map plus one byte per (state, class) cell.
func Analyze(a fsm.Automaton) (*AnalysisResult, error) {
	d, err := BuildDFA(a, nil)
	if err != nil {
		return nil, err
	}
	classes := d.Classes()

	result := &AnalysisResult{
		States:     fsm.NumStates,
		Start:      d.Start.String(),
		Reachable:  stateNames(d.Reachable),
		Dead:       stateNames(d.DeadStates()),
		Classes:    classes.Len(),
		TableBytes: fsm.MaxASCIIRune + fsm.NumStates*classes.Len(),
	}
	for _, s := range fsm.States() {
		if d.Accept[s] {
			result.Accepting = append(result.Accepting, s.String())
		}
	}
	return result, nil
}

func stateNames(states []fsm.State) []string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.String()
	}
	return names
}
