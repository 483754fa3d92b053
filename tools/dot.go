package tools

// dot -Tpng g.dot > g.png

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Comcast/dfareader/core"
	"github.com/Comcast/dfareader/util"

	"gopkg.in/yaml.v2"
)

// edgeKey identifies all of the transitions between two states, which
// Dot and Mermaid draw as a single edge.
type edgeKey struct {
	from, to core.State
}

// groupEdges collects the symbols for each (from, to) pair.  The keys
// are returned in order of first appearance.
func groupEdges(d *core.DFA) ([]edgeKey, map[edgeKey][]string) {
	var (
		order   = make([]edgeKey, 0, len(d.States()))
		symbols = make(map[edgeKey][]string)
	)
	for _, t := range d.Transitions() {
		k := edgeKey{t.From, t.To}
		if _, have := symbols[k]; !have {
			order = append(order, k)
		}
		symbols[k] = append(symbols[k], string(t.Symbol))
	}
	return order, symbols
}

// Dot makes a Graphviz dot file for the given DFA.
//
// Accepting states get a double circle.  If a path (from an
// Evaluation) is given, the states and transitions along that path
// are red.
func Dot(d *core.DFA, w io.WriteCloser, path []core.State) error {

	var (
		onPath   = make(map[core.State]bool, len(path))
		pathEdge = make(map[edgeKey]bool, len(path))
	)
	for i, s := range path {
		onPath[s] = true
		if 0 < i {
			pathEdge[edgeKey{path[i-1], s}] = true
		}
	}

	util.Logf("dot: processing %d states", len(d.States()))

	fmt.Fprintf(w, "digraph G {\n")
	fmt.Fprintf(w, `  graph [ordering=out,rankdir=LR,nodesep=0.3,ranksep=0.6,label=%s]
  node [style="filled" fillcolor="#99ddc8"]
  edge [fontsize = "12"]
  __start [shape="point" style="invis"]
`, quote(d.Name()))

	for _, s := range d.States() {
		shape := "circle"
		if d.Accepts(s) {
			shape = "doublecircle"
		}
		color := "black"
		fillcolor := "#99ddc8"
		if onPath[s] {
			color = "red"
			fillcolor = "#f98b8b"
		}
		style := "filled"
		if s == d.InitialState() {
			style += ",bold"
		}
		fmt.Fprintf(w, "  %s [shape=\"%s\", style=\"%s\", color=\"%s\", fillcolor=\"%s\", tooltip=%s]\n",
			quote(string(s)), shape, style, color, fillcolor, quote(rowYAML(d, s)))
	}

	fmt.Fprintf(w, "  __start -> %s\n", quote(string(d.InitialState())))

	order, symbols := groupEdges(d)
	for _, k := range order {
		color := "black"
		if pathEdge[k] {
			color = "red"
		}
		fmt.Fprintf(w, "  %s -> %s [ color=\"%s\" label=%s ]\n",
			quote(string(k.from)), quote(string(k.to)), color, quote(strings.Join(symbols[k], ", ")))
	}

	fmt.Fprintf(w, "}\n")
	return w.Close()
}

// rowYAML renders the transitions out of a state as YAML.
func rowYAML(d *core.DFA, s core.State) string {
	row := make(yaml.MapSlice, 0, len(d.Alphabet()))
	for _, a := range d.Alphabet() {
		to, err := d.Delta(s, a)
		if err != nil {
			return err.Error()
		}
		row = append(row, yaml.MapItem{Key: string(a), Value: string(to)})
	}
	bs, err := yaml.Marshal(row)
	if err != nil {
		return err.Error()
	}
	return strings.TrimSpace(string(bs))
}

// PNG generates a PNG image based on output from Dot.
//
// This function writes two files: basename.dot and basename.png,
// where the basename is the given string.  Requires Graphviz's 'dot'.
func PNG(d *core.DFA, basename string, path []core.State) (string, error) {
	dotname := basename + ".dot"
	pngname := basename + ".png"

	dotfile, err := os.Create(dotname)
	if err != nil {
		return pngname, err
	}
	if err := Dot(d, dotfile, path); err != nil {
		return pngname, err
	}
	if err := exec.Command("dot", "-Tpng", "-o", pngname, dotname).Run(); err != nil {
		return pngname, err
	}
	return pngname, nil
}

// quote makes a double-quoted dot ID.
func quote(s string) string {
	s = strings.Replace(s, `\`, `\\`, -1)
	s = strings.Replace(s, `"`, `\"`, -1)
	s = strings.Replace(s, "\n", `\n`, -1)
	return `"` + s + `"`
}
