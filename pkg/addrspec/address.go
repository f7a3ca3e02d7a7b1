// Package addrspec validates and decomposes email addresses using a
// deterministic finite automaton for the addr-spec production of RFC 5322
// §3.4.1. Folding white space, comments and the obsolete forms are not
// supported and are always rejected.
//
// Example:
//
//	addr, err := addrspec.Parse("someone@example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(addr.Local())  // someone
//	fmt.Println(addr.Domain()) // example.com
package addrspec

import (
	"io"
	"strings"

	"github.com/KromDaniel/addrspec/internal/fsm"
)

// Address is a validated addr-spec split into its local part and domain.
// The zero value is not a valid address; every constructor runs the
// automaton.
type Address struct {
	local  string
	domain string
}

// Parse validates s and splits it at the first '@' into local part and
// domain. The error, if any, is a *ParseError wrapping ErrEmptyAddress or
// ErrInvalidAddress.
//
// A quoted local part may itself contain '@'; it is still the first one
// that separates the two halves, so Local()+"@"+Domain() always rebuilds s.
func Parse(s string) (Address, error) {
	m := fsm.NewMachine(s, fsm.Table{})

	var (
		state    = fsm.Start()
		consumed bool
	)
	for {
		offset := m.Offset()
		next, ok := m.Next()
		if !ok {
			break
		}
		consumed = true

		// Error is absorbing; the rest of the input cannot change the verdict.
		if next == fsm.Error {
			return Address{}, &ParseError{Input: s, Offset: offset, state: state, Err: ErrInvalidAddress}
		}
		state = next
	}

	if !consumed {
		return Address{}, &ParseError{Input: s, Err: ErrEmptyAddress}
	}
	if !fsm.IsFinal(state) {
		return Address{}, &ParseError{Input: s, Offset: len(s), state: state, Err: ErrInvalidAddress}
	}

	local, domain, _ := strings.Cut(s, "@")
	return Address{local: local, domain: domain}, nil
}

// MustParse is like Parse but panics if s is not a valid address.
func MustParse(s string) Address {
	addr, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// Valid reports whether s is a valid address without building one.
func Valid(s string) bool {
	state, ok := fsm.Run(s)
	return ok && fsm.IsFinal(state)
}

// Local returns the local part, including quotes if it was quoted.
func (a Address) Local() string {
	return a.local
}

// Domain returns the domain, including brackets if it is a literal.
func (a Address) Domain() string {
	return a.domain
}

// IsZero reports whether a is the zero Address.
func (a Address) IsZero() bool {
	return a.local == "" && a.domain == ""
}

// String returns the address as local@domain.
func (a Address) String() string {
	if a.IsZero() {
		return ""
	}
	return a.local + "@" + a.domain
}

// WriteTo writes the display form of the address, local@domain followed
// by a newline. It implements io.WriterTo.
func (a Address) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.String()+"\n")
	return int64(n), err
}

// MarshalText implements encoding.TextMarshaler. The zero Address
// marshals to an empty string.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text decodes
// to the zero Address, mirroring MarshalText; any other text must parse.
func (a *Address) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*a = Address{}
		return nil
	}
	addr, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
