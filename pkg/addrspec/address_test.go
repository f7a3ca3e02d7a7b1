package addrspec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLocal  string
		wantDomain string
		wantErr    error
	}{
		{"dot atom", "someone@example.com", "someone", "example.com", nil},
		{"empty", "", "", "", ErrEmptyAddress},
		{"no at", "plainaddress", "", "", ErrInvalidAddress},
		{"domain literal", "a@[192.168.1.1]", "a", "[192.168.1.1]", nil},
		{"quoted local", `"quoted"@example.com`, `"quoted"`, "example.com", nil},
		{"trailing space", "a@b.com extra", "", "", ErrInvalidAddress},
		{"after literal", "a@[1]extra", "", "", ErrInvalidAddress},
		{"dotted local", "first.last@sub.example.org", "first.last", "sub.example.org", nil},
		{"atext specials", "!#$%&'*+-/=?^_`{|}~@x", "!#$%&'*+-/=?^_`{|}~", "x", nil},
		{"single label domain", "admin@localhost", "admin", "localhost", nil},
		{"empty quoted local", `""@example.com`, `""`, "example.com", nil},
		{"escaped quote", `"a\"b"@example.com`, `"a\"b"`, "example.com", nil},
		{"quoted at splits at first at", `"a@b"@example.com`, `"a`, `b"@example.com`, nil},
		{"escaped space", `"x\ y"@example.com`, `"x\ y"`, "example.com", nil},
		{"unescaped space in quotes", `"x y"@example.com`, "", "", ErrInvalidAddress},
		{"quoted specials", `"(a),[b]:<c>"@x`, `"(a),[b]:<c>"`, "x", nil},
		{"empty literal", "a@[]", "a", "[]", nil},
		{"ipv6 literal", "a@[IPv6:2001:db8::1]", "a", "[IPv6:2001:db8::1]", nil},
		{"leading dot", ".a@example.com", "", "", ErrInvalidAddress},
		{"trailing local dot", "a.@example.com", "", "", ErrInvalidAddress},
		{"double dot", "a..b@example.com", "", "", ErrInvalidAddress},
		{"trailing domain dot", "a@example.com.", "", "", ErrInvalidAddress},
		{"empty domain", "a@", "", "", ErrInvalidAddress},
		{"empty local", "@example.com", "", "", ErrInvalidAddress},
		{"two ats", "a@b@c", "", "", ErrInvalidAddress},
		{"unclosed quote", `"abc@example.com`, "", "", ErrInvalidAddress},
		{"unclosed literal", "a@[1.2.3.4", "", "", ErrInvalidAddress},
		{"comment", "a(comment)@example.com", "", "", ErrInvalidAddress},
		{"folding white space", "a @example.com", "", "", ErrInvalidAddress},
		{"non ascii", "jörg@example.com", "", "", ErrInvalidAddress},
		{"invalid utf8", "a\xff@example.com", "", "", ErrInvalidAddress},
		{"nul byte", "a\x00@example.com", "", "", ErrInvalidAddress},
		{"space only", " ", "", "", ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := Parse(tt.input)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				assert.True(t, addr.IsZero(), "no partial result on error")
				assert.False(t, Valid(tt.input))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLocal, addr.Local())
			assert.Equal(t, tt.wantDomain, addr.Domain())
			assert.True(t, Valid(tt.input))
		})
	}
}

// Bytes 91-93 are "[", "\" and "]": none of them may appear inside a
// domain literal, while their neighbours 90 and 94 may.
func TestParseDtextBoundaries(t *testing.T) {
	tests := []struct {
		b     byte
		valid bool
	}{
		{90, true},
		{91, false},
		{92, false},
		{93, false}, // closes the literal, so the trailing "]" is rejected
		{94, true},
	}

	for _, tt := range tests {
		input := "a@[x" + string(rune(tt.b)) + "y]"
		_, err := Parse(input)
		assert.Equalf(t, tt.valid, err == nil, "byte %d in %q: %v", tt.b, input, err)
	}
}

func TestParseIdempotent(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"someone@example.com", true},
		{`"x\ y"@[1.2.3.4]`, true},
		{`"a@b"@example.com`, true},
		{"plainaddress", false},
		{"", false},
	}

	for _, tt := range tests {
		a1, err1 := Parse(tt.input)
		a2, err2 := Parse(tt.input)
		assert.Equal(t, tt.valid, err1 == nil, "%q: %v", tt.input, err1)
		assert.Equal(t, a1, a2)
		assert.Equal(t, err1, err2)
	}
}

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"someone@example.com",
		"a@[192.168.1.1]",
		`"quoted"@example.com`,
		`"a@b"@example.com`,
		`"a\ b"@x.y`,
		"x.y.z@a-b.c",
	}

	for _, in := range inputs {
		addr, err := Parse(in)
		require.NoError(t, err, in)

		again, err := Parse(addr.Local() + "@" + addr.Domain())
		require.NoError(t, err, in)
		assert.Equal(t, addr, again)
		assert.Equal(t, in, addr.String())
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		input      string
		wantOffset int
		wantMsg    string
		wantExpect string
	}{
		{"", 0, "addrspec: empty address", `atext or '"'`},
		{"plainaddress", 12, `addrspec: invalid address "plainaddress": unexpected end of input, want atext, '.' or '@'`, `atext, '.' or '@'`},
		{"a@b.com extra", 7, `addrspec: invalid address "a@b.com extra": unexpected ' ' at offset 7, want atext or '.'`, `atext or '.'`},
		{"a@[1]extra", 5, `addrspec: invalid address "a@[1]extra": unexpected 'e' at offset 5, want end of input`, "end of input"},
		{"jö@x", 1, `addrspec: invalid address "jö@x": unexpected 'ö' at offset 1, want atext, '.' or '@'`, `atext, '.' or '@'`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.input, pe.Input)
			assert.Equal(t, tt.wantOffset, pe.Offset)
			assert.Equal(t, tt.wantMsg, pe.Error())
			assert.Equal(t, tt.wantExpect, pe.Expected())
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, "b.c", MustParse("a@b.c").Domain())
	assert.Panics(t, func() { MustParse("nope") })
}

func TestAddressDisplay(t *testing.T) {
	addr := MustParse("someone@example.com")

	var buf bytes.Buffer
	n, err := addr.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len("someone@example.com\n")), n)
	assert.Equal(t, "someone@example.com\n", buf.String())

	assert.Equal(t, "someone@example.com", addr.String())
	assert.Equal(t, "", Address{}.String())
}

type contact struct {
	Name  string  `json:"name" yaml:"name"`
	Email Address `json:"email" yaml:"email"`
}

func TestAddressText(t *testing.T) {
	c := contact{Name: "x", Email: MustParse(`"x\ y"@example.com`)}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x","email":"\"x\\ y\"@example.com"}`, string(data))

	var decoded contact
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, c, decoded)

	err = json.Unmarshal([]byte(`{"name":"x","email":"not-an-address"}`), &decoded)
	assert.Error(t, err)

	out, err := yaml.Marshal(c)
	require.NoError(t, err)

	var fromYAML contact
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	assert.Equal(t, c, fromYAML)

	err = yaml.Unmarshal([]byte("name: x\nemail: \"x y\"\n"), &fromYAML)
	assert.Error(t, err)
}

func TestAddressTextZero(t *testing.T) {
	c := contact{Name: "nobody"}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"nobody","email":""}`, string(data))

	decoded := contact{Email: MustParse("old@example.com")}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, c, decoded)
	assert.True(t, decoded.Email.IsZero())

	out, err := yaml.Marshal(c)
	require.NoError(t, err)

	var fromYAML contact
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	assert.Equal(t, c, fromYAML)

	var addr Address
	require.NoError(t, addr.UnmarshalText(nil))
	assert.True(t, addr.IsZero())
	assert.ErrorIs(t, addr.UnmarshalText([]byte("@")), ErrInvalidAddress)
}

func TestParseLongInput(t *testing.T) {
	local := strings.Repeat("a", 10000)
	addr, err := Parse(local + "@" + strings.Repeat("b.", 5000) + "c")
	require.NoError(t, err)
	assert.Equal(t, local, addr.Local())
}
