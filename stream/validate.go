package stream

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KromDaniel/addrspec/pkg/addrspec"
)

// Result is the verdict for one candidate address.
type Result struct {
	// Line is the 1-based line number (or position in a batch).
	Line int

	// Input is the candidate with its line terminator removed.
	Input string

	// Address is the parsed address; zero when Err is set.
	Address addrspec.Address

	// Err is the *addrspec.ParseError for an invalid candidate.
	Err error
}

// Valid reports whether the candidate is a valid address.
func (r Result) Valid() bool {
	return r.Err == nil
}

// bufPool holds line buffers of the default size.
var bufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, defaultBufferSize)
		return &buf
	},
}

// ValidateReader validates r one line at a time. Lines may end in "\n" or
// "\r\n"; empty lines are skipped but still counted. fn is called for
// every candidate in order and returns false to stop early.
func ValidateReader(r io.Reader, cfg Config, fn func(Result) bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.ApplyDefaults()

	var buf []byte
	if cfg.BufferSize == defaultBufferSize {
		pooled := bufPool.Get().(*[]byte)
		defer bufPool.Put(pooled)
		buf = *pooled
	} else {
		buf = make([]byte, cfg.BufferSize)
	}

	scanner := bufio.NewScanner(r)
	// The scanner counts the newline against its limit.
	scanner.Buffer(buf, cfg.MaxLineLength+2)

	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSuffix(scanner.Bytes(), []byte{'\r'})
		if len(text) == 0 {
			continue
		}
		if len(text) > cfg.MaxLineLength {
			return fmt.Errorf("%w: line %d exceeds %d bytes", ErrLineTooLong, line, cfg.MaxLineLength)
		}
		if !fn(validate(line, string(text))) {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("%w: line %d exceeds %d bytes", ErrLineTooLong, line+1, cfg.MaxLineLength)
		}
		return fmt.Errorf("stream: read: %w", err)
	}
	return nil
}

// ValidateAll validates inputs concurrently on at most workers goroutines
// (GOMAXPROCS when workers <= 0). Results are returned in input order with
// Line set to the 1-based position. If ctx is cancelled before every
// input is validated, ValidateAll returns ctx.Err().
func ValidateAll(ctx context.Context, inputs []string, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = validate(i+1, in)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func validate(line int, input string) Result {
	addr, err := addrspec.Parse(input)
	return Result{Line: line, Input: input, Address: addr, Err: err}
}
