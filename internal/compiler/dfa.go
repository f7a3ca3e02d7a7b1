package compiler

import (
	"fmt"
	"unicode/utf8"

	"github.com/KromDaniel/addrspec/internal/fsm"
)

// DFA is the dense form of an fsm.Automaton over the 7-bit alphabet.
// Every state has a full row, reachable or not, so the table can be
// indexed by any valid fsm.State.
type DFA struct {
	Start fsm.State

	// Transitions[state][byte] is the state reached by consuming byte.
	Transitions [fsm.NumStates][fsm.MaxASCIIRune]fsm.State

	// Accept marks accepting states.
	Accept [fsm.NumStates]bool

	// Reachable lists the states reachable from Start, in discovery order.
	Reachable []fsm.State
}

// InvalidStateError is returned when an automaton yields a state outside
// the fsm.State enumeration.
type InvalidStateError struct {
	From  fsm.State
	Input rune
	To    fsm.State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("compiler: transition %s --%U--> %s leaves the state set", e.From, e.Input, e.To)
}

// NonASCIIError is returned when an automaton accepts a rune the
// generated tables cannot represent.
type NonASCIIError struct {
	From  fsm.State
	Input rune
	To    fsm.State
}

func (e *NonASCIIError) Error() string {
	return fmt.Sprintf("compiler: transition %s --%U--> %s; tables only cover 7-bit ASCII", e.From, e.Input, e.To)
}

// nonASCIIProbes are runes checked to lead to Error from every state.
var nonASCIIProbes = []rune{-1, 0x80, 0xa0, 0xff, 0x100, 0x20ac, 0xfeff, utf8.RuneError, utf8.MaxRune}

// BuildDFA tabulates a. It explores the automaton from its start state
// with a worklist, then fills the rows of any state left unreached.
func BuildDFA(a fsm.Automaton, logger *Logger) (*DFA, error) {
	if logger == nil {
		logger = NewLogger(false)
	}

	d := &DFA{Start: a.Start()}
	if !d.Start.Valid() {
		return nil, fmt.Errorf("compiler: invalid start state %s", d.Start)
	}

	var filled [fsm.NumStates]bool
	fill := func(s fsm.State) ([]fsm.State, error) {
		filled[s] = true
		d.Accept[s] = a.IsFinal(s)

		var successors []fsm.State
		for c := 0; c < fsm.MaxASCIIRune; c++ {
			next := a.Transition(s, rune(c))
			if !next.Valid() {
				return nil, &InvalidStateError{From: s, Input: rune(c), To: next}
			}
			d.Transitions[s][c] = next
			successors = append(successors, next)
		}
		for _, r := range nonASCIIProbes {
			if next := a.Transition(s, r); next != fsm.Error {
				return nil, &NonASCIIError{From: s, Input: r, To: next}
			}
		}
		return successors, nil
	}

	logger.Section("DFA Construction")

	worklist := []fsm.State{d.Start}
	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]

		if filled[s] {
			continue
		}
		successors, err := fill(s)
		if err != nil {
			return nil, err
		}
		d.Reachable = append(d.Reachable, s)
		logger.Log("state %s reachable (accepting: %v)", s, d.Accept[s])

		for _, next := range successors {
			if !filled[next] {
				worklist = append(worklist, next)
			}
		}
	}

	for _, s := range fsm.States() {
		if filled[s] {
			continue
		}
		logger.Log("state %s unreachable from %s", s, d.Start)
		if _, err := fill(s); err != nil {
			return nil, err
		}
	}

	logger.Log("DFA constructed with %d reachable states", len(d.Reachable))
	return d, nil
}

// Step returns the state reached from s on byte c.
func (d *DFA) Step(s fsm.State, c byte) fsm.State {
	if !s.Valid() || c >= fsm.MaxASCIIRune {
		return fsm.Error
	}
	return d.Transitions[s][c]
}

// DeadStates returns the states from which no accepting state can be
// reached, in declaration order.
func (d *DFA) DeadStates() []fsm.State {
	var live [fsm.NumStates]bool
	for _, s := range fsm.States() {
		live[s] = d.Accept[s]
	}

	for changed := true; changed; {
		changed = false
		for _, s := range fsm.States() {
			if live[s] {
				continue
			}
			for _, next := range d.Transitions[s] {
				if live[next] {
					live[s] = true
					changed = true
					break
				}
			}
		}
	}

	var dead []fsm.State
	for _, s := range fsm.States() {
		if !live[s] {
			dead = append(dead, s)
		}
	}
	return dead
}
