package stream

import (
	"bufio"
	"bytes"
	"io"

	"github.com/KromDaniel/addrspec/pkg/addrspec"
)

// LineFilter returns an io.Reader that only outputs lines matching the
// predicate. Lines are delimited by '\n'. The predicate sees the line
// without its "\n" or "\r\n" terminator; the output keeps lines unchanged.
//
// Example - keep only lines that are valid addresses:
//
//	r := stream.LineFilter(input, func(line []byte) bool {
//	    return addrspec.Valid(string(line))
//	})
//	io.Copy(os.Stdout, r)
func LineFilter(r io.Reader, pred func(line []byte) bool) io.Reader {
	return &lineFilterReader{
		source: bufio.NewReader(r),
		pred:   pred,
	}
}

// ValidLines returns an io.Reader that passes through only the lines of r
// that are valid addresses.
func ValidLines(r io.Reader) io.Reader {
	return LineFilter(r, func(line []byte) bool {
		return addrspec.Valid(string(line))
	})
}

// lineFilterReader implements io.Reader for LineFilter.
type lineFilterReader struct {
	source *bufio.Reader
	pred   func(line []byte) bool

	// pending holds the unread part of the last line that passed.
	pending []byte
	err     error
}

func (r *lineFilterReader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}

		line, err := r.source.ReadBytes('\n')
		if len(line) > 0 && r.pred(trimEOL(line)) {
			r.pending = line
		}
		r.err = err
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	return bytes.TrimSuffix(line, []byte{'\r'})
}
