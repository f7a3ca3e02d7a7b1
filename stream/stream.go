// Package stream validates email addresses read from streams, one
// candidate per line, and in parallel batches.
//
// Memory use is bounded by Config.MaxLineLength regardless of the input
// size. Results are delivered via callbacks to avoid buffering them.
//
// Example:
//
//	file, _ := os.Open("contacts.txt")
//	defer file.Close()
//
//	err := stream.ValidateReader(file, stream.DefaultConfig(), func(r stream.Result) bool {
//	    if r.Err != nil {
//	        fmt.Printf("line %d: %v\n", r.Line, r.Err)
//	    }
//	    return true // continue
//	})
package stream

import (
	"errors"
	"fmt"
)

const (
	defaultBufferSize    = 4 * 1024
	defaultMaxLineLength = 64 * 1024
)

// Config configures stream validation.
type Config struct {
	// BufferSize is the initial size of the line buffer.
	// Default: 4KB. The buffer grows up to MaxLineLength as needed.
	BufferSize int

	// MaxLineLength limits the length of a single line, terminator
	// excluded. A longer line aborts the stream with ErrLineTooLong.
	// Default: 64KB.
	MaxLineLength int
}

// DefaultConfig returns a Config with the default sizes.
func DefaultConfig() Config {
	return Config{
		BufferSize:    defaultBufferSize,
		MaxLineLength: defaultMaxLineLength,
	}
}

// ErrLineTooLong is returned when a line exceeds Config.MaxLineLength.
var ErrLineTooLong = errors.New("stream: line too long")

// ErrBufferTooLarge is returned when Config.BufferSize exceeds
// Config.MaxLineLength.
type ErrBufferTooLarge struct {
	Requested int
	Maximum   int
}

func (e ErrBufferTooLarge) Error() string {
	return fmt.Sprintf("stream: buffer size %d exceeds max line length %d", e.Requested, e.Maximum)
}

// Validate returns an error if the Config is invalid. Zero values are
// valid and mean "use the default".
func (c Config) Validate() error {
	if c.BufferSize < 0 {
		return fmt.Errorf("stream: negative buffer size %d", c.BufferSize)
	}
	if c.MaxLineLength < 0 {
		return fmt.Errorf("stream: negative max line length %d", c.MaxLineLength)
	}
	if c.BufferSize > 0 && c.MaxLineLength > 0 && c.BufferSize > c.MaxLineLength {
		return ErrBufferTooLarge{Requested: c.BufferSize, Maximum: c.MaxLineLength}
	}
	return nil
}

// ApplyDefaults returns a Config with defaults applied for any zero values.
func (c Config) ApplyDefaults() Config {
	result := c

	if result.MaxLineLength == 0 {
		result.MaxLineLength = defaultMaxLineLength
	}
	if result.BufferSize == 0 {
		result.BufferSize = min(defaultBufferSize, result.MaxLineLength)
	}

	return result
}
