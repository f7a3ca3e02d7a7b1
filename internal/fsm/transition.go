package fsm

// Start returns the start state.
func Start() State {
	return AddrSpec
}

// IsFinal reports whether s is an accepting state.
func IsFinal(s State) bool {
	return s == DomainAtom || s == DomainLiteral
}

// Transition returns the state reached from s by consuming r. It is total:
// any symbol without a rule, and any invalid state, leads to Error.
func Transition(s State, r rune) State {
	switch s {
	case AddrSpec:
		switch {
		case r == DQuote:
			return LocalQText
		case IsAtext(r):
			return LocalAtom
		}
	case LocalAtom:
		switch {
		case r == Dot:
			return LocalDot
		case r == At:
			return LocalPart
		case IsAtext(r):
			return LocalAtom
		}
	case LocalQText:
		switch {
		case r == Backslash:
			return LocalEscape
		case r == DQuote:
			return LocalQString
		case IsQtext(r):
			return LocalQText
		}
	case LocalDot:
		if IsAtext(r) {
			return LocalAtom
		}
	case LocalEscape:
		if IsEscape(r) {
			return LocalQText
		}
	case LocalQString:
		if r == At {
			return LocalPart
		}
	case LocalPart:
		switch {
		case r == OpenBracket:
			return DomainDText
		case IsAtext(r):
			return DomainAtom
		}
	case DomainAtom:
		switch {
		case r == Dot:
			return DomainDot
		case IsAtext(r):
			return DomainAtom
		}
	case DomainDText:
		switch {
		case r == CloseBracket:
			return DomainLiteral
		case IsDtext(r):
			return DomainDText
		}
	case DomainDot:
		if IsAtext(r) {
			return DomainAtom
		}
	case DomainLiteral, Error:
		// Nothing may follow a closed domain literal.
	}
	return Error
}
