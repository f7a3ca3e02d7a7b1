// Package logging builds the zap loggers used by the addrspec command.
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BootstrapLogger returns a development logger for early startup, before
// configuration is loaded. It writes to w, or stderr when w is nil.
func BootstrapLogger(w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(enc), sink(w), zap.InfoLevel))
}

// ValidLogLevels lists all valid zap log levels for validation.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

// IsValidLogLevel checks if the given level string is a valid zap log level.
// Comparison is case-insensitive.
func IsValidLogLevel(level string) bool {
	level = strings.ToLower(level)
	for _, valid := range ValidLogLevels {
		if level == valid {
			return true
		}
	}
	return false
}

// BuildLogger constructs the final logger based on log level and env.
// If env is "prod", it uses a JSON encoder with production field names;
// otherwise, a console encoder. Logs go to w, or stderr when w is nil.
//
// An invalid level defaults to "info" and a warning is written to w so
// the misconfiguration is visible.
func BuildLogger(level, env string, w io.Writer) (*zap.Logger, error) {
	var (
		encCfg  zapcore.EncoderConfig
		encoder zapcore.Encoder
		opts    []zap.Option
	)
	if env == "prod" {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
		opts = append(opts, zap.Development())
	}

	out := sink(w)

	lvl := zap.NewAtomicLevelAt(zap.InfoLevel)
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		if _, werr := out.Write([]byte("WARNING: invalid log level \"" + level +
			"\"; valid levels are: " + strings.Join(ValidLogLevels, ", ") + ". Defaulting to \"info\".\n")); werr != nil {
			return nil, werr
		}
		lvl.SetLevel(zap.InfoLevel)
	}

	return zap.New(zapcore.NewCore(encoder, out, lvl), opts...), nil
}

func sink(w io.Writer) zapcore.WriteSyncer {
	if w == nil {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(w)
}
