package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/KromDaniel/addrspec/internal/logging"
)

// arrayFlags collects a repeatable string flag.
type arrayFlags []string

func (a *arrayFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

func (a *arrayFlags) Type() string {
	return "stringArray"
}

// Config is the merged command configuration.
type Config struct {
	Env       string `mapstructure:"env"`       // "dev" | "prod"
	LogLevel  string `mapstructure:"log_level"` // debug, info, warn, error …
	Format    string `mapstructure:"format"`    // text | json | yaml
	Workers   int    `mapstructure:"workers"`   // 0 = GOMAXPROCS
	MaxLine   int    `mapstructure:"max_line"`  // bytes per stdin line
	OnlyValid bool   `mapstructure:"only_valid"`

	// table generation
	Generate string `mapstructure:"generate"`
	Package  string `mapstructure:"package"`
	Verbose  bool   `mapstructure:"verbose"`
	Analyze  bool   `mapstructure:"analyze"`

	// Inputs are the addresses given on the command line.
	Inputs []string `mapstructure:"-"`
}

var formats = []string{"text", "json", "yaml"}

func allKeys() []string {
	return []string{
		"env", "log_level", "format", "workers", "max_line", "only_valid",
		"generate", "package", "verbose", "analyze",
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "warn")
	v.SetDefault("format", "text")
	v.SetDefault("workers", 0)
	v.SetDefault("max_line", 64*1024)
	v.SetDefault("only_valid", false)

	v.SetDefault("generate", "")
	v.SetDefault("package", "fsm")
	v.SetDefault("verbose", false)
	v.SetDefault("analyze", false)
}

func newFlagSet(stderr io.Writer, addrs *arrayFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("addrspec", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: addrspec [flags] [address ...]\n\n")
		fmt.Fprintf(stderr, "Validates addresses given as arguments, or one per line on stdin.\n\n")
		fs.PrintDefaults()
	}

	fs.String("config", "", "Config file (default: addrspec.{yaml,yml,json,toml} in the working directory)")
	fs.String("env", "dev", `Runtime environment "dev"|"prod"`)
	fs.String("log-level", "warn", "Log level")
	fs.StringP("format", "f", "text", "Output format: text, json or yaml")
	fs.Int("workers", 0, "Parallel validations for command line inputs (0 = GOMAXPROCS)")
	fs.Int("max-line", 64*1024, "Maximum stdin line length in bytes")
	fs.Bool("only-valid", false, "Print only the valid input lines, unchanged")
	fs.VarP(addrs, "addr", "a", "Address to validate (repeatable)")

	fs.String("generate", "", "Write the transition tables to this Go file and exit")
	fs.String("package", "fsm", "Package name of the generated file")
	fs.BoolP("verbose", "v", false, "Log table construction")
	fs.Bool("analyze", false, "Print the automaton analysis and exit")

	return fs
}

// loadConfig merges defaults → config file → env vars → explicit flags.
// Final precedence (highest wins): flags(explicit) > env > config > defaults.
func loadConfig(args []string, stderr io.Writer, logger *zap.Logger) (*Config, error) {
	// .env never overrides the real environment.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	var addrs arrayFlags
	fs := newFlagSet(stderr, &addrs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("ADDRSPEC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, k := range allKeys() {
		_ = v.BindEnv(k)
	}

	if err := mergeConfigFile(v, fs, logger); err != nil {
		return nil, err
	}

	setDefaults(v)

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed && f.Name != "config" && f.Name != "addr" {
			_ = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		}
	})

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Inputs = append(fs.Args(), addrs...)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigFile reads the --config file, or the first
// addrspec.{yaml,yml,json,toml} found in the working directory.
func mergeConfigFile(v *viper.Viper, fs *pflag.FlagSet, logger *zap.Logger) error {
	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return fmt.Errorf("cannot load config file %s: %w", path, err)
		}
		logger.Debug("loaded config file", zap.String("file", path))
		return nil
	}

	for _, ext := range [...]string{"yaml", "yml", "json", "toml"} {
		file := "addrspec." + ext
		b, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		v.SetConfigType(ext)
		if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
			logger.Warn("cannot decode config file", zap.String("file", file), zap.Error(err))
			continue
		}
		logger.Debug("loaded config file", zap.String("file", file))
		return nil
	}
	return nil
}

func validateConfig(cfg Config) error {
	var invalid []string

	if !logging.IsValidLogLevel(cfg.LogLevel) {
		invalid = append(invalid, fmt.Sprintf("log_level must be one of %s", strings.Join(logging.ValidLogLevels, ", ")))
	}
	if !contains(formats, cfg.Format) {
		invalid = append(invalid, fmt.Sprintf("format must be one of %s", strings.Join(formats, ", ")))
	}
	if cfg.Workers < 0 {
		invalid = append(invalid, "workers must be >= 0")
	}
	if cfg.MaxLine <= 0 {
		invalid = append(invalid, "max_line must be > 0")
	}
	if cfg.Generate != "" {
		if filepath.Ext(cfg.Generate) != ".go" {
			invalid = append(invalid, "generate must name a .go file")
		}
		if strings.TrimSpace(cfg.Package) == "" {
			invalid = append(invalid, "package cannot be empty")
		}
	}

	if len(invalid) == 0 {
		return nil
	}
	return fmt.Errorf("configuration errors: invalid: %s", strings.Join(invalid, ", "))
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
