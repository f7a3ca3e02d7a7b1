package compiler

import (
	"io"
	"os"

	"github.com/KromDaniel/addrspec/internal/codegen"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides verbose output for analysis decisions during compilation.
type Logger struct {
	enabled bool
	log     *zap.SugaredLogger
}

// NewLogger creates a new logger instance writing to stderr.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		log:     consoleLogger(os.Stderr),
	}
}

// NewLoggerFrom creates a logger on top of an existing zap logger.
// A nil base behaves like NewLogger.
func NewLoggerFrom(enabled bool, base *zap.Logger) *Logger {
	if base == nil {
		return NewLogger(enabled)
	}
	return &Logger{
		enabled: enabled,
		log:     base.Named(codegen.Generator).Sugar(),
	}
}

func consoleLogger(w io.Writer) *zap.SugaredLogger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core).Named(codegen.Generator).Sugar()
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.log = consoleLogger(w)
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		l.log.Infof(format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.enabled {
		l.log.Infof("=== %s ===", name)
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
