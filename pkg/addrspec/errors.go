package addrspec

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/KromDaniel/addrspec/internal/fsm"
)

var (
	// ErrEmptyAddress is returned for an input with no characters.
	ErrEmptyAddress = errors.New("addrspec: empty address")

	// ErrInvalidAddress is returned when the input is not an addr-spec.
	ErrInvalidAddress = errors.New("addrspec: invalid address")
)

// ParseError describes why an input was rejected.
type ParseError struct {
	// Input is the rejected string.
	Input string

	// Offset is the byte offset of the offending character, or len(Input)
	// when the input ended before the address was complete.
	Offset int

	// Err is ErrEmptyAddress or ErrInvalidAddress.
	Err error

	// state is the last state before the failure.
	state fsm.State
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrEmptyAddress) {
		return e.Err.Error()
	}
	if e.Offset >= len(e.Input) {
		return fmt.Sprintf("%v %q: unexpected end of input, want %s", e.Err, e.Input, e.state.Expect())
	}
	r, _ := utf8.DecodeRuneInString(e.Input[e.Offset:])
	return fmt.Sprintf("%v %q: unexpected %q at offset %d, want %s", e.Err, e.Input, r, e.Offset, e.state.Expect())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Expected describes what the address needed at Offset.
func (e *ParseError) Expected() string {
	if errors.Is(e.Err, ErrEmptyAddress) {
		return fsm.Start().Expect()
	}
	return e.state.Expect()
}
