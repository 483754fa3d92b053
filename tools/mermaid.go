/* Copyright 2018 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package tools

import (
	"fmt"
	"io"
	"strings"

	"github.com/Comcast/dfareader/core"
	"github.com/Comcast/dfareader/util"
)

type MermaidOpts struct {
	// Direction is the Mermaid graph direction ("LR", "TB", ...).
	Direction string `json:"direction,omitempty"`

	// AcceptingFill is the fill color of accepting states.  Does
	// not apply if AcceptingClass is set.
	AcceptingFill string `json:"acceptingFill,omitempty"`

	// AcceptingClass will be the CSS class for accepting states.
	AcceptingClass string `json:"acceptingClass,omitempty"`

	// ShowStart adds an invisible node with an edge to the initial
	// state.
	ShowStart bool `json:"showStart,omitempty"`
}

// Mermaid makes a Mermaid (https://mermaidjs.github.io/) input file
// for the given DFA.
func Mermaid(d *core.DFA, w io.WriteCloser, opts *MermaidOpts) error {

	if opts == nil {
		opts = &MermaidOpts{
			Direction:     "LR",
			AcceptingFill: "#bcf2db",
			ShowStart:     true,
		}
	}
	if opts.Direction == "" {
		opts.Direction = "LR"
	}

	util.Logf("mermaid: processing %d states", len(d.States()))

	fmt.Fprintf(w, "graph %s\n", opts.Direction)

	nids := make(map[core.State]string)
	for i, s := range d.States() {
		nid := fmt.Sprintf("n%d", i+1)
		nids[s] = nid
		name := strings.Replace(string(s), `"`, `'`, -1)
		if d.Accepts(s) {
			fmt.Fprintf(w, "  %s((\"%s\"))\n", nid, name)
			switch {
			case opts.AcceptingClass != "":
				fmt.Fprintf(w, "  class %s %s\n", nid, opts.AcceptingClass)
			case opts.AcceptingFill != "":
				fmt.Fprintf(w, "  style %s fill:%s\n", nid, opts.AcceptingFill)
			}
		} else {
			fmt.Fprintf(w, "  %s(\"%s\")\n", nid, name)
		}
	}

	if opts.ShowStart {
		fmt.Fprintf(w, "  start[ ] --> %s\n", nids[d.InitialState()])
		fmt.Fprintf(w, "  style start fill:none,stroke:none\n")
	}

	order, symbols := groupEdges(d)
	for _, k := range order {
		label := strings.Replace(strings.Join(symbols[k], ", "), `"`, `'`, -1)
		fmt.Fprintf(w, "  %s -- \"%s\" --> %s\n", nids[k.from], label, nids[k.to])
	}

	fmt.Fprintf(w, "\n")
	util.Logf("mermaid gen done")

	return w.Close()
}
