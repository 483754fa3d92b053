package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/jsccast/yaml"
)

// Symbol is a single atomic token of an alphabet.
//
// When a Go string is evaluated, each rune is one Symbol.
type Symbol string

// State is the name of a state.  The name is opaque: no part of this
// package looks inside it.
type State string

// Description is the raw, unchecked form of a DFA as it appears in a
// JSON or YAML document:
//
//	{
//	  "Sigma": ["a", "b"],
//	  "InitialState": "q0",
//	  "AcceptingStates": ["q2"],
//	  "States": {
//	    "q0": {"a": "q1", "b": "q0"},
//	    "q1": {"a": "q1", "b": "q2"},
//	    "q2": {"a": "q2", "b": "q2"}
//	  }
//	}
//
// A nil field means that the field was absent.  Use Validate to get
// a DFA.
type Description struct {
	// Name is an optional name for this DFA.  Storage uses it as a
	// key.
	Name string `json:"Name,omitempty" yaml:"Name,omitempty"`

	// Doc is optional documentation (Markdown).
	Doc string `json:"Doc,omitempty" yaml:"Doc,omitempty"`

	Sigma           []Symbol    `json:"Sigma" yaml:"Sigma"`
	InitialState    *State      `json:"InitialState" yaml:"InitialState"`
	AcceptingStates []State     `json:"AcceptingStates" yaml:"AcceptingStates"`
	States          *StateTable `json:"States" yaml:"States"`
}

// Row is one entry of a StateTable: a state and its outgoing
// transitions.
type Row struct {
	State       State
	Transitions map[Symbol]State
}

// StateTable is the transition table of a Description.
//
// Unlike a map, a StateTable remembers the order in which states were
// declared, and it remembers duplicate declarations so that Validate
// can complain about them.
type StateTable struct {
	Rows []Row
}

// NewStateTable makes an empty StateTable.
func NewStateTable() *StateTable {
	return &StateTable{
		Rows: make([]Row, 0, 8),
	}
}

// Add appends a row.  Duplicates are not rejected here.
func (t *StateTable) Add(s State, transitions map[Symbol]State) *StateTable {
	t.Rows = append(t.Rows, Row{
		State:       s,
		Transitions: transitions,
	})
	return t
}

// Len returns the number of rows.
func (t *StateTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Copy makes a deep copy of the StateTable.
func (t *StateTable) Copy() *StateTable {
	if t == nil {
		return nil
	}
	acc := &StateTable{
		Rows: make([]Row, len(t.Rows)),
	}
	for i, r := range t.Rows {
		var ts map[Symbol]State
		if r.Transitions != nil {
			ts = make(map[Symbol]State, len(r.Transitions))
			for a, s := range r.Transitions {
				ts[a] = s
			}
		}
		acc.Rows[i] = Row{
			State:       r.State,
			Transitions: ts,
		}
	}
	return acc
}

// UnmarshalJSON reads a JSON object while preserving key order.
func (t *StateTable) UnmarshalJSON(bs []byte) error {
	// First get the values, which also checks the shape.
	var rows map[State]map[Symbol]State
	if err := json.Unmarshal(bs, &rows); err != nil {
		return err
	}

	// Then walk the tokens to recover the order of the keys.
	// Duplicate keys get the (last) value json.Unmarshal saw.
	dec := json.NewDecoder(bytes.NewReader(bs))
	if _, err := dec.Token(); err != nil {
		return err
	}
	t.Rows = make([]Row, 0, len(rows))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, is := tok.(string)
		if !is {
			return fmt.Errorf("unexpected state key %#v", tok)
		}
		var skip json.RawMessage
		if err = dec.Decode(&skip); err != nil {
			return err
		}
		t.Rows = append(t.Rows, Row{
			State:       State(key),
			Transitions: rows[State(key)],
		})
	}
	return nil
}

// MarshalJSON writes a JSON object with keys in declaration order.
func (t *StateTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range t.Rows {
		if 0 < i {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(r.State)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.Transitions)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML reads a YAML mapping while preserving key order.
func (t *StateTable) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var rows map[State]map[Symbol]State
	if err := unmarshal(&rows); err != nil {
		return err
	}
	var ordered yaml.MapSlice
	if err := unmarshal(&ordered); err != nil {
		return err
	}
	t.Rows = make([]Row, 0, len(ordered))
	placed := make(map[State]bool, len(rows))
	for _, item := range ordered {
		key := State(fmt.Sprintf("%v", item.Key))
		if _, have := rows[key]; !have {
			// A key like "on" or "0x10" that YAML resolved
			// to a non-string.  Placed below.
			continue
		}
		placed[key] = true
		t.Rows = append(t.Rows, Row{
			State:       key,
			Transitions: rows[key],
		})
	}
	rest := make([]string, 0, len(rows)-len(placed))
	for s := range rows {
		if !placed[s] {
			rest = append(rest, string(s))
		}
	}
	sort.Strings(rest)
	for _, s := range rest {
		t.Rows = append(t.Rows, Row{
			State:       State(s),
			Transitions: rows[State(s)],
		})
	}
	return nil
}

// MarshalYAML writes a YAML mapping with keys in declaration order.
func (t *StateTable) MarshalYAML() (interface{}, error) {
	acc := make(yaml.MapSlice, 0, len(t.Rows))
	for _, r := range t.Rows {
		row := make(map[string]string, len(r.Transitions))
		for a, s := range r.Transitions {
			row[string(a)] = string(s)
		}
		acc = append(acc, yaml.MapItem{
			Key:   string(r.State),
			Value: row,
		})
	}
	return acc, nil
}

// ParseDescription reads a Description from YAML or JSON.
//
// Since JSON is (practically) YAML, the YAML parser handles both.
func ParseDescription(src []byte) (*Description, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return nil, errors.New("empty description")
	}
	var d Description
	if err := yaml.Unmarshal(src, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Copy makes a deep copy of the Description.
func (d *Description) Copy() *Description {
	acc := &Description{
		Name:   d.Name,
		Doc:    d.Doc,
		States: d.States.Copy(),
	}
	if d.Sigma != nil {
		acc.Sigma = append(make([]Symbol, 0, len(d.Sigma)), d.Sigma...)
	}
	if d.InitialState != nil {
		q0 := *d.InitialState
		acc.InitialState = &q0
	}
	if d.AcceptingStates != nil {
		acc.AcceptingStates = append(make([]State, 0, len(d.AcceptingStates)), d.AcceptingStates...)
	}
	return acc
}
