package tools

import (
	"encoding/json"
	"fmt"
	"html"
	"io"

	"github.com/Comcast/dfareader/core"

	md "github.com/russross/blackfriday/v2"
)

// RenderHTML writes an HTML fragment describing the DFA: its Doc
// (rendered as Markdown) and its transition table.
//
// If a path is given, the rows for the states on that path are marked
// with the "onPath" class.
func RenderHTML(d *core.DFA, out io.Writer, path []core.State) error {
	f := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	if d.Doc() != "" {
		f(`<div class="dfaDoc doc">%s</div>`, md.Run([]byte(d.Doc())))
	}

	onPath := make(map[core.State]bool, len(path))
	for _, s := range path {
		onPath[s] = true
	}

	f(`<div class="transitions"><table>`)
	f(`<tr><th></th><th>state</th>`)
	for _, a := range d.Alphabet() {
		f(`<th class="symbol"><code>%s</code></th>`, html.EscapeString(string(a)))
	}
	f(`</tr>`)

	for _, s := range d.States() {
		class := "state"
		if onPath[s] {
			class += " onPath"
		}
		var marks string
		if s == d.InitialState() {
			marks += "&rarr;"
		}
		if d.Accepts(s) {
			marks += "*"
		}
		name := html.EscapeString(string(s))
		f(`<tr class="%s"><td class="marks">%s</td><td><span id="%s" class="stateName">%s</span></td>`,
			class, marks, name, name)
		for _, a := range d.Alphabet() {
			to, err := d.Delta(s, a)
			if err != nil {
				return err
			}
			target := html.EscapeString(string(to))
			f(`<td><a href="#%s"><code>%s</code></a></td>`, target, target)
		}
		f(`</tr>`)
	}
	f(`</table></div>`)

	return nil
}

// RenderPage writes a complete HTML page for the DFA.
//
// If includeGraph, the page gets a JSON rendition of the DFA's
// Description as the variable thisDFA for a client-side graph.
func RenderPage(d *core.DFA, out io.Writer, cssFiles []string, includeGraph bool) error {

	if cssFiles == nil {
		cssFiles = []string{"/static/dfa-html.css"}
	}

	title := html.EscapeString(d.Name())
	if title == "" {
		title = "DFA"
	}

	fmt.Fprintf(out, `<!DOCTYPE html>
<meta charset="utf-8">
<html>
  <head>
  <title>%s</title>
`, title)

	if includeGraph {
		js, err := json.Marshal(d.Description())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, `
  <script src="https://cdnjs.cloudflare.com/ajax/libs/cytoscape/3.2.8/cytoscape.min.js"></script>
  <script src="/static/dfa-html.js"></script>
  <script>
  var thisDFA = %s;
  </script>
`, js)
	}

	for _, cssFile := range cssFiles {
		fmt.Fprintf(out, "  <link href=\"%s\" rel=\"stylesheet\">\n", cssFile)
	}

	fmt.Fprintf(out, `
  </head>
  <body>
    <h1>%s</h1>
`, title)

	if includeGraph {
		fmt.Fprintf(out, `<div id="graph"></div>`)
	}

	if err := RenderHTML(d, out, nil); err != nil {
		return err
	}

	fmt.Fprintf(out, `
  </body>
</html>
`)

	return nil
}

// ReadAndRenderPage reads a DFA from a file and renders a page for it.
func ReadAndRenderPage(filename string, cssFiles []string, out io.Writer, includeGraph bool) error {
	d, err := LoadDFA(filename)
	if err != nil {
		return err
	}
	return RenderPage(d, out, cssFiles, includeGraph)
}
