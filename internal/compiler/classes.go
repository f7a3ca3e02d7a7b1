package compiler

import "github.com/KromDaniel/addrspec/internal/fsm"

// ByteClasses partitions the alphabet into classes of bytes that lead to
// the same state from every state. Classes are numbered in the order their
// first byte appears.
type ByteClasses struct {
	// Of maps a byte to its class.
	Of [fsm.MaxASCIIRune]uint8

	// Columns[class][state] is the state reached on any byte of class.
	Columns [][fsm.NumStates]fsm.State
}

// Len returns the number of classes.
func (b ByteClasses) Len() int {
	return len(b.Columns)
}

// Members returns the bytes of class k in ascending order.
func (b ByteClasses) Members(k int) []byte {
	var members []byte
	for c, class := range b.Of {
		if int(class) == k {
			members = append(members, byte(c))
		}
	}
	return members
}

// Classes computes the byte equivalence classes of d.
func (d *DFA) Classes() ByteClasses {
	var b ByteClasses
	index := make(map[[fsm.NumStates]fsm.State]uint8)

	for c := 0; c < fsm.MaxASCIIRune; c++ {
		var column [fsm.NumStates]fsm.State
		for _, s := range fsm.States() {
			column[s] = d.Transitions[s][c]
		}

		k, ok := index[column]
		if !ok {
			k = uint8(len(b.Columns))
			index[column] = k
			b.Columns = append(b.Columns, column)
		}
		b.Of[c] = k
	}
	return b
}
