// Command dfareader reads a DFA and reports which strings are in its
// language.
//
//	dfareader [-show-path] [-json] [-v] DFA_FILE STRING...
//
// The DFA file can be YAML or JSON.  Exit codes: 0 when everything
// worked, 1 for bad usage, 2 when the DFA file can't be read or
// parsed, 3 when the DFA isn't valid, and 4 when some string couldn't
// be evaluated.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Comcast/dfareader/core"
	"github.com/Comcast/dfareader/tools"
	"github.com/Comcast/dfareader/util"
)

const (
	exitOK = iota
	exitUsage
	exitUnreadable
	exitInvalid
	exitEvalFailed
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dfareader", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		showPath = fs.Bool("show-path", false, "show the path of states taken for each string")
		asJSON   = fs.Bool("json", false, "write results as JSON")
		verbose  = fs.Bool("v", false, "log diagnostics")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dfareader [flags] DFA_FILE STRING...\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return exitUsage
	}
	util.Logging = *verbose

	var (
		filename = fs.Arg(0)
		inputs   = fs.Args()[1:]
	)

	if !*asJSON {
		fmt.Fprintf(stdout, "=> Parsing the DFA\n")
	}

	desc, err := tools.ReadDescription(filename)
	if err != nil {
		fmt.Fprintf(stdout, "=> Error: %v\n", err)
		return exitUnreadable
	}
	d, err := core.Validate(desc)
	if err != nil {
		fmt.Fprintf(stdout, "=> Error: %v\n", err)
		return exitInvalid
	}

	rs := tools.EvaluateAll(d, inputs)

	if *asJSON {
		js, err := json.MarshalIndent(rs, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return exitUnreadable
		}
		fmt.Fprintf(stdout, "%s\n", js)
	} else {
		fmt.Fprintf(stdout, "=> DFA Created\n")
		fmt.Fprint(stdout, d)
		fmt.Fprintf(stdout, "=> Processing Strings....\n\n")
		for _, r := range rs {
			switch {
			case r.Failed():
				fmt.Fprintf(stdout, "==> String \"%s\" could not be evaluated\n", r.Input)
				fmt.Fprintf(stdout, "=> Error: %s\n", r.Error)
				continue
			case r.Accepted:
				fmt.Fprintf(stdout, "==> String \"%s\" is in the language\n", r.Input)
			default:
				fmt.Fprintf(stdout, "==> String \"%s\" is not in the language\n", r.Input)
			}
			if *showPath {
				fmt.Fprintf(stdout, "\tPath:  %s\n", &core.Evaluation{Path: r.Path})
			}
		}
	}

	if 0 < tools.Failures(rs) {
		return exitEvalFailed
	}
	return exitOK
}
