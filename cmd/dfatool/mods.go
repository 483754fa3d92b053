package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Comcast/dfareader/core"
	"github.com/Comcast/dfareader/tools"

	"github.com/cockroachdb/errors"
	"github.com/jsccast/yaml"
)

// Mods are the subcommands that work on a valid DFA.
var Mods = map[string]Mod{
	"check":   &Checker{},
	"analyze": &Analyzer{},
	"dot":     &Grapher{},
	"png":     &Imager{},
	"mermaid": &Mermaider{},
	"html":    &Pager{},
	"eval":    &Evaluator{},
	"expect":  &Expecter{},
}

type Mod interface {
	F(d *core.DFA, out io.Writer) error
	Doc() string
	Flags() *flag.FlagSet
}

// writeCloser lets a plain Writer go where the renderers want to
// Close.
type writeCloser struct {
	io.Writer
}

func (w writeCloser) Close() error {
	return nil
}

func parsePath(s string) []core.State {
	if s == "" {
		return nil
	}
	var acc []core.State
	for _, name := range strings.Split(s, ",") {
		acc = append(acc, core.State(name))
	}
	return acc
}

type Checker struct {
}

func (m *Checker) F(d *core.DFA, out io.Writer) error {
	fmt.Fprint(out, d)
	return nil
}

func (m *Checker) Doc() string {
	return "Validates the DFA and prints a summary."
}

func (m *Checker) Flags() *flag.FlagSet {
	return flag.NewFlagSet("check", flag.ContinueOnError)
}

type Analyzer struct {
	JSON bool
}

func (m *Analyzer) F(d *core.DFA, out io.Writer) error {
	var (
		a   = tools.Analyze(d)
		bs  []byte
		err error
	)
	if m.JSON {
		bs, err = json.MarshalIndent(a, "", "  ")
	} else {
		bs, err = yaml.Marshal(a)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", bs)
	return nil
}

func (m *Analyzer) Doc() string {
	return "Reports unreachable, dead, and sink states."
}

func (m *Analyzer) Flags() *flag.FlagSet {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.BoolVar(&m.JSON, "json", false, "write JSON instead of YAML")
	return fs
}

type Grapher struct {
	Path string
}

func (m *Grapher) F(d *core.DFA, out io.Writer) error {
	return tools.Dot(d, writeCloser{out}, parsePath(m.Path))
}

func (m *Grapher) Doc() string {
	return "Writes Graphviz input."
}

func (m *Grapher) Flags() *flag.FlagSet {
	fs := flag.NewFlagSet("dot", flag.ContinueOnError)
	fs.StringVar(&m.Path, "path", "", "comma-separated states to highlight")
	return fs
}

type Imager struct {
	Basename string
	Path     string
}

func (m *Imager) F(d *core.DFA, out io.Writer) error {
	filename, err := tools.PNG(d, m.Basename, parsePath(m.Path))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", filename)
	return nil
}

func (m *Imager) Doc() string {
	return "Writes BASENAME.dot and BASENAME.png (needs Graphviz's dot)."
}

func (m *Imager) Flags() *flag.FlagSet {
	fs := flag.NewFlagSet("png", flag.ContinueOnError)
	fs.StringVar(&m.Basename, "o", "dfa", "output basename")
	fs.StringVar(&m.Path, "path", "", "comma-separated states to highlight")
	return fs
}

type Mermaider struct {
	tools.MermaidOpts
}

func (m *Mermaider) F(d *core.DFA, out io.Writer) error {
	return tools.Mermaid(d, writeCloser{out}, &m.MermaidOpts)
}

func (m *Mermaider) Doc() string {
	return "Writes Mermaid input."
}

func (m *Mermaider) Flags() *flag.FlagSet {
	fs := flag.NewFlagSet("mermaid", flag.ContinueOnError)
	fs.StringVar(&m.Direction, "d", "LR", "graph direction")
	fs.StringVar(&m.AcceptingFill, "fill", "#bfb", "fill color for accepting states")
	fs.StringVar(&m.AcceptingClass, "class", "", "CSS class for accepting states")
	fs.BoolVar(&m.ShowStart, "start", true, "draw an edge to the initial state")
	return fs
}

type Pager struct {
	CSS   string
	Graph bool
}

func (m *Pager) F(d *core.DFA, out io.Writer) error {
	var css []string
	if m.CSS != "" {
		css = strings.Split(m.CSS, ",")
	}
	return tools.RenderPage(d, out, css, m.Graph)
}

func (m *Pager) Doc() string {
	return "Writes an HTML page."
}

func (m *Pager) Flags() *flag.FlagSet {
	fs := flag.NewFlagSet("html", flag.ContinueOnError)
	fs.StringVar(&m.CSS, "css", "", "comma-separated CSS URLs")
	fs.BoolVar(&m.Graph, "graph", false, "include a graph (needs dot)")
	return fs
}

type Evaluator struct {
	Inputs  string
	Analyze bool
}

func (m *Evaluator) F(d *core.DFA, out io.Writer) error {
	var inputs []string
	if m.Inputs != "" {
		inputs = strings.Split(m.Inputs, ",")
	}
	rs := tools.EvaluateAll(d, inputs)
	if err := tools.WriteReport(out, tools.NewReport(d, rs, m.Analyze)); err != nil {
		return err
	}
	if n := tools.Failures(rs); 0 < n {
		return errors.Newf("%d of %d inputs failed", n, len(rs))
	}
	return nil
}

func (m *Evaluator) Doc() string {
	return "Evaluates some strings and writes a YAML report."
}

func (m *Evaluator) Flags() *flag.FlagSet {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	fs.StringVar(&m.Inputs, "i", "", "comma-separated inputs")
	fs.BoolVar(&m.Analyze, "a", false, "include an analysis")
	return fs
}

type Expecter struct {
	Suite   string
	Verbose bool
}

func (m *Expecter) F(d *core.DFA, out io.Writer) error {
	if m.Suite == "" {
		return errors.New("need -s SUITE")
	}
	s, err := tools.ReadSuite(m.Suite)
	if err != nil {
		return err
	}
	s.Verbose = s.Verbose || m.Verbose
	fs := s.Check(d)
	for _, f := range fs {
		fmt.Fprintf(out, "FAIL %s\n", f.Error())
	}
	if 0 < len(fs) {
		return errors.Newf("%d of %d cases failed", len(fs), len(s.Cases))
	}
	fmt.Fprintf(out, "ok %d cases\n", len(s.Cases))
	return nil
}

func (m *Expecter) Doc() string {
	return "Checks the DFA against a suite of expected outcomes."
}

func (m *Expecter) Flags() *flag.FlagSet {
	fs := flag.NewFlagSet("expect", flag.ContinueOnError)
	fs.StringVar(&m.Suite, "s", "", "suite filename (YAML or JSON)")
	fs.BoolVar(&m.Verbose, "v", false, "log each case")
	return fs
}
