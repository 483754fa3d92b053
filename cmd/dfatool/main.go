// Command dfatool reads a DFA description on stdin and does something
// with it.
//
//	dfatool yamltojson [-p] < dfa.yaml
//	dfatool dot -path q0,q1 < dfa.yaml | dot -Tpng > dfa.png
//
// Run with no arguments for the list of subcommands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/Comcast/dfareader/core"
	"github.com/Comcast/dfareader/tools"

	"github.com/jsccast/yaml"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errs io.Writer) int {

	if len(args) < 1 {
		Usage(errs)
		return 1
	}

	fail := func(err error) int {
		fmt.Fprintf(errs, "error: %v\n", err)
		if tools.IsValidationError(err) {
			return 3
		}
		return 1
	}

	switch args[0] {
	case "yamltojson":
		pretty := false
		switch len(args) {
		case 1:
		case 2:
			if args[1] != "-p" {
				return fail(fmt.Errorf("unsupported args: %v", args))
			}
			pretty = true
		default:
			return fail(fmt.Errorf("unsupported args: %v", args))
		}

		desc, err := readDescription(in)
		if err != nil {
			return fail(err)
		}

		var bs []byte
		if pretty {
			bs, err = json.MarshalIndent(desc, "", "  ")
		} else {
			bs, err = json.Marshal(desc)
		}
		if err != nil {
			return fail(err)
		}
		fmt.Fprintf(out, "%s\n", bs)

	case "jsontoyaml":
		desc, err := readDescription(in)
		if err != nil {
			return fail(err)
		}
		bs, err := yaml.Marshal(desc)
		if err != nil {
			return fail(err)
		}
		if _, err = out.Write(bs); err != nil {
			return fail(err)
		}

	default:
		mod, have := Mods[args[0]]
		if !have {
			fmt.Fprintf(errs, "Unknown subcommand \"%s\"\n", args[0])
			Usage(errs)
			return 1
		}

		fs := mod.Flags()
		fs.SetOutput(errs)
		if err := fs.Parse(args[1:]); err != nil {
			return 1
		}

		desc, err := readDescription(in)
		if err != nil {
			return fail(err)
		}
		d, err := core.Validate(desc)
		if err != nil {
			return fail(err)
		}

		if err := mod.F(d, out); err != nil {
			return fail(err)
		}
	}

	return 0
}

func readDescription(in io.Reader) (*core.Description, error) {
	bs, err := tools.ReadAllWithInlines(in, ".")
	if err != nil {
		return nil, err
	}
	return core.ParseDescription(bs)
}

func Usage(w io.Writer) {
	fmt.Fprintf(w, "Subcommands:\n\n")
	names := make([]string, 0, len(Mods))
	for name := range Mods {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		mod := Mods[name]
		fs := mod.Flags()
		fs.SetOutput(w)
		fmt.Fprintf(w, "%s: %s\n", name, mod.Doc())
		fs.PrintDefaults()
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "yamltojson: Writes the description as JSON.\n")
	fmt.Fprintf(w, "  -p    pretty-print\n\n")
	fmt.Fprintf(w, "jsontoyaml: Writes the description as YAML.\n\n")
}
