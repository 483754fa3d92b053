package tools

import (
	"strings"
	"testing"
)

func TestMermaid(t *testing.T) {
	var out closingBuffer
	if err := Mermaid(substringAB(t), &out, nil); err != nil {
		t.Fatal(err)
	}

	want := `graph LR
  n1("q0")
  n2("q1")
  n3(("q2"))
  style n3 fill:#bcf2db
  start[ ] --> n1
  style start fill:none,stroke:none
  n1 -- "a" --> n2
  n1 -- "b" --> n1
  n2 -- "a" --> n2
  n2 -- "b" --> n3
  n3 -- "a, b" --> n3

`
	if got := out.String(); got != want {
		t.Fatalf("got\n%s", got)
	}
}

func TestMermaidOpts(t *testing.T) {
	var out closingBuffer
	opts := &MermaidOpts{
		Direction:      "TB",
		AcceptingClass: "accepting",
	}
	if err := Mermaid(trapDFA(t), &out, opts); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "graph TB\n") {
		t.Fatal(got)
	}
	if !strings.Contains(got, "class n2 accepting") {
		t.Fatal(got)
	}
	if strings.Contains(got, "start") {
		t.Fatal(got)
	}
}
