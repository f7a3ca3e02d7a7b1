package main

import (
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/KromDaniel/addrspec/internal/compiler"
	"github.com/KromDaniel/addrspec/pkg/addrspec"
	"github.com/KromDaniel/addrspec/stream"
)

// record is the json and yaml form of a stream.Result.
type record struct {
	Line     int    `json:"line" yaml:"line"`
	Input    string `json:"input" yaml:"input"`
	Valid    bool   `json:"valid" yaml:"valid"`
	Local    string `json:"local,omitempty" yaml:"local,omitempty"`
	Domain   string `json:"domain,omitempty" yaml:"domain,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
	Offset   *int   `json:"offset,omitempty" yaml:"offset,omitempty"`
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`
}

func newRecord(r stream.Result) record {
	rec := record{
		Line:   r.Line,
		Input:  r.Input,
		Valid:  r.Valid(),
		Local:  r.Address.Local(),
		Domain: r.Address.Domain(),
	}
	if r.Err != nil {
		rec.Error = r.Err.Error()
	}
	var pe *addrspec.ParseError
	if errors.As(r.Err, &pe) && errors.Is(pe, addrspec.ErrInvalidAddress) {
		offset := pe.Offset
		rec.Offset = &offset
		rec.Expected = pe.Expected()
	}
	return rec
}

// resultWriter renders results in one output format.
type resultWriter interface {
	Write(r stream.Result) error
	Close() error
}

func newResultWriter(format string, w io.Writer) resultWriter {
	switch format {
	case "json":
		return &jsonWriter{enc: json.NewEncoder(w)}
	case "yaml":
		return &yamlWriter{w: w}
	default:
		return &textWriter{w: w}
	}
}

// textWriter prints the display form of valid addresses.
type textWriter struct {
	w io.Writer
}

func (t *textWriter) Write(r stream.Result) error {
	if r.Err != nil {
		_, err := fmt.Fprintf(t.w, "invalid: %v\n", r.Err)
		return err
	}
	_, err := r.Address.WriteTo(t.w)
	return err
}

func (t *textWriter) Close() error { return nil }

// validLineWriter prints the input of valid results, one per line.
type validLineWriter struct {
	w io.Writer
}

func (v *validLineWriter) Write(r stream.Result) error {
	if !r.Valid() {
		return nil
	}
	_, err := fmt.Fprintln(v.w, r.Input)
	return err
}

func (v *validLineWriter) Close() error { return nil }

// jsonWriter prints one JSON object per line.
type jsonWriter struct {
	enc *json.Encoder
}

func (j *jsonWriter) Write(r stream.Result) error {
	return j.enc.Encode(newRecord(r))
}

func (j *jsonWriter) Close() error { return nil }

// yamlWriter collects the results and prints them as one sequence.
type yamlWriter struct {
	w       io.Writer
	records []record
}

func (y *yamlWriter) Write(r stream.Result) error {
	y.records = append(y.records, newRecord(r))
	return nil
}

func (y *yamlWriter) Close() error {
	if len(y.records) == 0 {
		return nil
	}
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)
	if err := enc.Encode(y.records); err != nil {
		return err
	}
	return enc.Close()
}

// writeAnalysis prints the automaton analysis in the given format.
func writeAnalysis(w io.Writer, format string, a *compiler.AnalysisResult) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(a); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintf(w, "states:      %d\nstart:       %s\nreachable:   %v\naccepting:   %v\ndead:        %v\nclasses:     %d\ntable bytes: %d\n",
			a.States, a.Start, a.Reachable, a.Accepting, a.Dead, a.Classes, a.TableBytes)
		return err
	}
}
