package fsm

// Symbols with dedicated transitions.
const (
	DQuote       = '"'
	Dot          = '.'
	Backslash    = '\\'
	At           = '@'
	OpenBracket  = '['
	CloseBracket = ']'
)

// MaxASCIIRune is the exclusive upper bound of the alphabet the grammar
// uses. Every rune at or above it is rejected by all classes.
const MaxASCIIRune = 128

// class is a membership bitmap over 7-bit ASCII.
type class [2]uint64

// newClass creates a class from inclusive [lo, hi] rune pairs.
func newClass(ranges ...rune) class {
	var c class
	for i := 0; i+1 < len(ranges); i += 2 {
		lo, hi := ranges[i], ranges[i+1]
		for r := lo; r <= hi; r++ {
			if r >= 0 && r < MaxASCIIRune {
				c[r/64] |= uint64(1) << uint(r%64)
			}
		}
	}
	return c
}

func (c class) has(r rune) bool {
	return r >= 0 && r < MaxASCIIRune && c[r/64]&(uint64(1)<<uint(r%64)) != 0
}

var (
	// ALPHA / DIGIT / "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" /
	// "/" / "=" / "?" / "^" / "_" / "`" / "{" / "|" / "}" / "~"
	atext = newClass(
		'A', 'Z',
		'a', 'z',
		'0', '9',
		'!', '!',
		'#', '\'',
		'*', '+',
		'-', '-',
		'/', '/',
		'=', '=',
		'?', '?',
		'^', '`',
		'{', '~',
	)

	// %d33 / %d35-91 / %d93-126
	qtext = newClass(33, 33, 35, 91, 93, 126)

	// %d33-90 / %d94-126
	dtext = newClass(33, 90, 94, 126)

	// VCHAR / SP / HTAB
	escape = newClass(0x21, 0x7e, 0x20, 0x20, 0x09, 0x09)
)

// IsAtext reports whether r may appear in an atom.
func IsAtext(r rune) bool { return atext.has(r) }

// IsQtext reports whether r may appear unescaped in a quoted string.
func IsQtext(r rune) bool { return qtext.has(r) }

// IsDtext reports whether r may appear in a domain literal.
func IsDtext(r rune) bool { return dtext.has(r) }

// IsEscape reports whether r may follow a backslash in a quoted string.
func IsEscape(r rune) bool { return escape.has(r) }
