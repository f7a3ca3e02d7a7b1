package fsm

//go:generate go run ../../cmd/addrspec --generate table_gen.go --package fsm

// Automaton is a deterministic finite automaton over runes.
type Automaton interface {
	// Start returns the initial state.
	Start() State

	// Transition returns the next state for the given input symbol.
	// It must be total and return Error for symbols without a rule.
	Transition(s State, r rune) State

	// IsFinal reports whether s is an accepting state.
	IsFinal(s State) bool
}

// Grammar evaluates the transition rules directly.
type Grammar struct{}

// Start implements Automaton.
func (Grammar) Start() State { return Start() }

// Transition implements Automaton.
func (Grammar) Transition(s State, r rune) State { return Transition(s, r) }

// IsFinal implements Automaton.
func (Grammar) IsFinal(s State) bool { return IsFinal(s) }

// Table is the table-driven form of Grammar, backed by the tables in
// table_gen.go. Runes outside 7-bit ASCII map to Error.
type Table struct{}

// Start implements Automaton.
func (Table) Start() State { return Start() }

// Transition implements Automaton.
func (Table) Transition(s State, r rune) State {
	if !s.Valid() || r < 0 || r >= MaxASCIIRune {
		return Error
	}
	return classTransitions[s][byteClass[r]]
}

// IsFinal implements Automaton.
func (Table) IsFinal(s State) bool {
	return s.Valid() && acceptStates[s]
}
