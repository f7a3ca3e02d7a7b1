package fsm

import (
	"iter"
	"unicode/utf8"
)

// Machine runs an Automaton over an input string, one rune per step.
// It is forward-only: once the input is consumed it yields nothing more.
// A Machine is not safe for concurrent use; validations of different
// strings use different machines.
type Machine struct {
	input  string
	offset int
	state  State
	auto   Automaton
}

// NewMachine creates a machine positioned at the start state of a.
// A nil automaton selects Grammar.
func NewMachine(input string, a Automaton) *Machine {
	if a == nil {
		a = Grammar{}
	}
	return &Machine{
		input: input,
		state: a.Start(),
		auto:  a,
	}
}

// Next consumes one rune and returns the state reached. It returns false
// once the input is exhausted, in which case the state is unchanged.
func (m *Machine) Next() (State, bool) {
	if m.offset >= len(m.input) {
		return m.state, false
	}
	r, size := utf8.DecodeRuneInString(m.input[m.offset:])
	m.offset += size
	m.state = m.auto.Transition(m.state, r)
	return m.state, true
}

// States returns the remaining states lazily. Element i is the state after
// consuming the i-th remaining rune.
func (m *Machine) States() iter.Seq[State] {
	return func(yield func(State) bool) {
		for {
			s, ok := m.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Last drains the machine and returns the final state. It returns false
// when no rune was left to consume, which for a fresh machine means the
// input was empty.
func (m *Machine) Last() (State, bool) {
	var (
		last     State
		consumed bool
	)
	for s := range m.States() {
		last, consumed = s, true
	}
	return last, consumed
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Offset returns the byte offset of the next unconsumed rune.
func (m *Machine) Offset() int {
	return m.offset
}

// Accepted reports whether the input is fully consumed and the machine is
// in an accepting state.
func (m *Machine) Accepted() bool {
	return m.offset >= len(m.input) && m.auto.IsFinal(m.state)
}

// Run folds input through the generated tables and returns the final
// state. It returns false for empty input. Any byte outside 7-bit ASCII
// belongs to a rune the grammar rejects, so it short-circuits to Error.
func Run(input string) (State, bool) {
	if input == "" {
		return AddrSpec, false
	}
	s := AddrSpec
	for i := 0; i < len(input); i++ {
		b := input[i]
		if b >= utf8.RuneSelf {
			return Error, true
		}
		s = classTransitions[s][byteClass[b]]
		if s == Error {
			return Error, true
		}
	}
	return s, true
}
