/* Copyright 2018-2019 Comcast Cable Communications Management, LLC
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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// closingBuffer is a bytes.Buffer that's an io.WriteCloser.
type closingBuffer struct {
	bytes.Buffer
	closed bool
}

func (b *closingBuffer) Close() error {
	b.closed = true
	return nil
}

func TestDot(t *testing.T) {
	d := substringAB(t)

	var out closingBuffer
	if err := Dot(d, &out, nil); err != nil {
		t.Fatal(err)
	}
	if !out.closed {
		t.Fatal("not closed")
	}

	got := out.String()
	for _, want := range []string{
		"digraph G {",
		`label="substring-ab"`,
		`"q2" [shape="doublecircle"`,
		`"q0" [shape="circle", style="filled,bold"`,
		`__start -> "q0"`,
		`"q2" -> "q2" [ color="black" label="a, b" ]`,
		`"q0" -> "q1" [ color="black" label="a" ]`,
		`tooltip="a: q1\nb: q0"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %s in\n%s", want, got)
		}
	}
	if strings.Contains(got, "red") {
		t.Fatal("red without a path")
	}
}

func TestDotPath(t *testing.T) {
	d := substringAB(t)
	e, err := d.Evaluate("ab")
	if err != nil {
		t.Fatal(err)
	}

	var out closingBuffer
	if err := Dot(d, &out, e.Path); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		`"q0" -> "q1" [ color="red" label="a" ]`,
		`"q1" -> "q2" [ color="red" label="b" ]`,
		`"q0" -> "q0" [ color="black" label="b" ]`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %s in\n%s", want, got)
		}
	}
}

func TestDotFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "g.dot")

	out, err := os.Create(filename)
	if err != nil {
		t.Fatal(err)
	}

	if err := Dot(trapDFA(t), out, nil); err != nil {
		t.Fatal(err)
	}

	bs, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(bs, []byte(`"island"`)) {
		t.Fatalf("%s", bs)
	}
}

func TestQuote(t *testing.T) {
	if got := quote(`say "hi"` + "\n"); got != `"say \"hi\"\n"` {
		t.Fatalf("got %s", got)
	}
}
