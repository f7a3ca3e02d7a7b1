// Package fsm defines the deterministic finite automaton that accepts the
// addr-spec subset of RFC 5322 §3.4.1 (no folding white space, no comments,
// no obsolete forms) and the driver that runs it over an input string.
//
// The grammar is regular, so no lexer or parser is needed:
//
//	addr-spec      = local-part "@" domain
//	local-part     = dot-atom / quoted-string
//	domain         = dot-atom / domain-literal
//	dot-atom       = 1*atext *("." 1*atext)
//	quoted-string  = DQUOTE *(qtext / "\" escape) DQUOTE
//	domain-literal = "[" *dtext "]"
package fsm

import "fmt"

// State is a position in the automaton. The set of states is closed.
type State uint8

// Automaton states. Error is the trap state: once entered it is never left.
const (
	AddrSpec State = iota
	LocalAtom
	LocalQText
	LocalDot
	LocalEscape
	LocalQString
	LocalPart
	DomainAtom
	DomainDText
	DomainDot
	DomainLiteral
	Error

	// NumStates is the number of states; valid states are < NumStates.
	NumStates = int(Error) + 1
)

var stateNames = [NumStates]string{
	AddrSpec:      "AddrSpec",
	LocalAtom:     "LocalAtom",
	LocalQText:    "LocalQText",
	LocalDot:      "LocalDot",
	LocalEscape:   "LocalEscape",
	LocalQString:  "LocalQString",
	LocalPart:     "LocalPart",
	DomainAtom:    "DomainAtom",
	DomainDText:   "DomainDText",
	DomainDot:     "DomainDot",
	DomainLiteral: "DomainLiteral",
	Error:         "Error",
}

// expectations describes, per state, the symbols that keep the automaton
// out of Error. Used in diagnostics.
var expectations = [NumStates]string{
	AddrSpec:      `atext or '"'`,
	LocalAtom:     `atext, '.' or '@'`,
	LocalQText:    `qtext, '\' or '"'`,
	LocalDot:      `atext`,
	LocalEscape:   `a printable character, space or tab`,
	LocalQString:  `'@'`,
	LocalPart:     `atext or '['`,
	DomainAtom:    `atext or '.'`,
	DomainDText:   `dtext or ']'`,
	DomainDot:     `atext`,
	DomainLiteral: `end of input`,
	Error:         `nothing`,
}

// String returns the state name.
func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", uint8(s))
	}
	return stateNames[s]
}

// Valid reports whether s is one of the defined states.
func (s State) Valid() bool {
	return int(s) < NumStates
}

// Expect describes the input accepted from s.
func (s State) Expect() string {
	if !s.Valid() {
		return expectations[Error]
	}
	return expectations[s]
}

// States returns every state in declaration order.
func States() []State {
	states := make([]State, NumStates)
	for i := range states {
		states[i] = State(i)
	}
	return states
}
