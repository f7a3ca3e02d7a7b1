// Package compiler tabulates an fsm.Automaton and emits the resulting
// transition tables as Go source.
package compiler

import (
	"errors"
	"fmt"
	"io"

	"github.com/KromDaniel/addrspec/internal/codegen"
	"github.com/KromDaniel/addrspec/internal/fsm"
	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"
)

// Config holds the configuration for code generation.
type Config struct {
	Name        string        // Prefix for generated identifiers ("" keeps the fsm names)
	Package     string        // Package name of the generated file (default "fsm")
	PackagePath string        // Import path of the generated package, if known
	OutputFile  string        // Destination of Generate
	Automaton   fsm.Automaton // Automaton to tabulate (default fsm.Grammar)
	Verbose     bool          // Enable verbose logging of analysis decisions
	Logger      *zap.Logger   // Base logger for verbose output (default stderr console)
}

// Validate checks if the configuration is usable for Generate.
func (c Config) Validate() error {
	if c.OutputFile == "" {
		return errors.New("output file cannot be empty")
	}
	return nil
}

// Compiler generates Go transition tables from an automaton.
type Compiler struct {
	config Config
	file   *jen.File
	logger *Logger
	dfa    *DFA
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	if config.Automaton == nil {
		config.Automaton = fsm.Grammar{}
	}
	if config.Package == "" {
		config.Package = codegen.FSMPackageName
	}
	if config.PackagePath == "" && config.Package == codegen.FSMPackageName {
		config.PackagePath = codegen.FSMPackagePath
	}

	var file *jen.File
	if config.PackagePath != "" {
		file = jen.NewFilePathName(config.PackagePath, config.Package)
	} else {
		file = jen.NewFile(config.Package)
	}

	return &Compiler{
		config: config,
		file:   file,
		logger: NewLoggerFrom(config.Verbose, config.Logger),
	}
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// DFA builds, once, and returns the tabulated automaton.
func (c *Compiler) DFA() (*DFA, error) {
	if c.dfa != nil {
		return c.dfa, nil
	}
	d, err := BuildDFA(c.config.Automaton, c.logger)
	if err != nil {
		return nil, err
	}
	c.dfa = d
	c.emit()
	return d, nil
}

// Generate writes the generated tables to the configured output file.
func (c *Compiler) Generate() error {
	if err := c.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.DFA(); err != nil {
		return fmt.Errorf("failed to build tables: %w", err)
	}
	if err := c.file.Save(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.config.OutputFile, err)
	}
	c.logger.Log("wrote %s", c.config.OutputFile)
	return nil
}

// Render writes the generated tables to w.
func (c *Compiler) Render(w io.Writer) error {
	if _, err := c.DFA(); err != nil {
		return fmt.Errorf("failed to build tables: %w", err)
	}
	return c.file.Render(w)
}

// multiLine renders a composite literal with one item per line.
var multiLine = jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true}

// emit adds the table declarations to the file.
func (c *Compiler) emit() {
	classes := c.dfa.Classes()

	c.logger.Section("Code Generation")
	c.logger.Log("Generating class-compressed table (states: %d, classes: %d)", fsm.NumStates, classes.Len())

	numClasses := codegen.Ident(c.config.Name, codegen.NumClassesName)
	byteClass := codegen.Ident(c.config.Name, codegen.ByteClassName)
	transitions := codegen.Ident(c.config.Name, codegen.TransitionsName)
	accept := codegen.Ident(c.config.Name, codegen.AcceptName)

	c.file.HeaderComment(fmt.Sprintf("Code generated by %s; DO NOT EDIT.", codegen.Generator))

	c.file.Comment(fmt.Sprintf("%s is the number of byte equivalence classes.", numClasses))
	c.file.Const().Id(numClasses).Op("=").Lit(classes.Len())
	c.file.Line()

	c.file.Comment(fmt.Sprintf("%s maps each 7-bit byte to its equivalence class.", byteClass))
	c.file.Var().Id(byteClass).Op("=").Index(jen.Lit(fsm.MaxASCIIRune)).Uint8().
		Custom(multiLine, c.byteClassRows(classes)...)
	c.file.Line()

	c.file.Comment(fmt.Sprintf("%s maps [state][class] to the next state.", transitions))
	c.file.Var().Id(transitions).Op("=").
		Index(jen.Qual(codegen.FSMPackagePath, codegen.NumStatesName)).
		Index(jen.Id(numClasses)).
		Qual(codegen.FSMPackagePath, codegen.StateType).
		Custom(multiLine, c.transitionRows(classes)...)
	c.file.Line()

	acceptDict := jen.Dict{}
	for _, s := range fsm.States() {
		if c.dfa.Accept[s] {
			acceptDict[stateID(s)] = jen.True()
		}
	}
	c.file.Comment(fmt.Sprintf("%s marks the accepting states.", accept))
	c.file.Var().Id(accept).Op("=").
		Index(jen.Qual(codegen.FSMPackagePath, codegen.NumStatesName)).Bool().
		Values(acceptDict)
}

// byteClassRows groups the byte class map into rows of 16.
func (c *Compiler) byteClassRows(classes ByteClasses) []jen.Code {
	const width = 16

	rows := make([]jen.Code, 0, fsm.MaxASCIIRune/width)
	for i := 0; i < fsm.MaxASCIIRune; i += width {
		lits := make([]jen.Code, width)
		for j := range lits {
			lits[j] = jen.Lit(int(classes.Of[i+j]))
		}
		rows = append(rows, jen.List(lits...))
	}
	return rows
}

// transitionRows renders one row per state, one cell per class.
func (c *Compiler) transitionRows(classes ByteClasses) []jen.Code {
	rows := make([]jen.Code, 0, fsm.NumStates)
	for _, s := range fsm.States() {
		cells := make([]jen.Code, classes.Len())
		for k, column := range classes.Columns {
			cells[k] = stateID(column[s])
		}
		rows = append(rows, jen.Values(cells...))
	}
	return rows
}

func stateID(s fsm.State) *jen.Statement {
	return jen.Qual(codegen.FSMPackagePath, s.String())
}
