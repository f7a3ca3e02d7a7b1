package stream

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KromDaniel/addrspec/pkg/addrspec"
)

func collect(t *testing.T, input string, cfg Config) []Result {
	t.Helper()

	var results []Result
	err := ValidateReader(strings.NewReader(input), cfg, func(r Result) bool {
		results = append(results, r)
		return true
	})
	require.NoError(t, err)
	return results
}

func TestValidateReader(t *testing.T) {
	input := "someone@example.com\r\n\nplainaddress\na@[192.168.1.1]\n\"quoted\"@example.com"

	results := collect(t, input, DefaultConfig())
	require.Len(t, results, 4)

	assert.Equal(t, 1, results[0].Line)
	assert.Equal(t, "someone@example.com", results[0].Input)
	assert.True(t, results[0].Valid())
	assert.Equal(t, "example.com", results[0].Address.Domain())

	assert.Equal(t, 3, results[1].Line, "blank lines are counted")
	assert.False(t, results[1].Valid())
	assert.ErrorIs(t, results[1].Err, addrspec.ErrInvalidAddress)
	assert.True(t, results[1].Address.IsZero())

	assert.Equal(t, 4, results[2].Line)
	assert.Equal(t, "[192.168.1.1]", results[2].Address.Domain())

	assert.Equal(t, 5, results[3].Line)
	assert.Equal(t, `"quoted"`, results[3].Address.Local())
}

func TestValidateReaderEarlyStop(t *testing.T) {
	input := strings.Repeat("a@b.c\n", 100)

	calls := 0
	err := ValidateReader(strings.NewReader(input), Config{}, func(Result) bool {
		calls++
		return calls < 3
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestValidateReaderLineTooLong(t *testing.T) {
	cfg := Config{BufferSize: 16, MaxLineLength: 32}

	t.Run("at limit", func(t *testing.T) {
		line := strings.Repeat("a", 30) + "@b"
		results := collect(t, line+"\r\n", cfg)
		require.Len(t, results, 1)
		assert.True(t, results[0].Valid())
	})

	t.Run("over limit", func(t *testing.T) {
		input := "a@b\n" + strings.Repeat("a", 31) + "@b\n"
		var seen int
		err := ValidateReader(strings.NewReader(input), cfg, func(Result) bool {
			seen++
			return true
		})
		require.ErrorIs(t, err, ErrLineTooLong)
		assert.Contains(t, err.Error(), "line 2")
		assert.Equal(t, 1, seen)
	})

	t.Run("far over limit", func(t *testing.T) {
		err := ValidateReader(strings.NewReader(strings.Repeat("x", 1000)), cfg, func(Result) bool { return true })
		require.ErrorIs(t, err, ErrLineTooLong)
	})
}

func TestValidateReaderInvalidConfig(t *testing.T) {
	err := ValidateReader(strings.NewReader("a@b"), Config{BufferSize: -1}, func(Result) bool { return true })
	assert.Error(t, err)
}

func TestValidateAll(t *testing.T) {
	inputs := make([]string, 0, 200)
	for i := range 200 {
		if i%3 == 0 {
			inputs = append(inputs, fmt.Sprintf("bad %d", i))
		} else {
			inputs = append(inputs, fmt.Sprintf("user%d@example.com", i))
		}
	}

	for _, workers := range []int{0, 1, 4, 64} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			results, err := ValidateAll(context.Background(), inputs, workers)
			require.NoError(t, err)
			require.Len(t, results, len(inputs))

			for i, r := range results {
				assert.Equal(t, i+1, r.Line)
				assert.Equal(t, inputs[i], r.Input)
				assert.Equal(t, i%3 != 0, r.Valid(), r.Input)
				if r.Valid() {
					assert.Equal(t, fmt.Sprintf("user%d", i), r.Address.Local())
				}
			}
		})
	}
}

func TestValidateAllEmpty(t *testing.T) {
	results, err := ValidateAll(context.Background(), nil, 2)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestValidateAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := ValidateAll(ctx, []string{"a@b", "c@d"}, 1)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, results)
}
