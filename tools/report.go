package tools

import (
	"io"
	"time"

	"github.com/Comcast/dfareader/core"

	"gopkg.in/yaml.v2"
)

// Report summarizes a batch of evaluations against one DFA.
type Report struct {
	DFA       string    `yaml:"dfa,omitempty"`
	Generated string    `yaml:"generated,omitempty"`
	Inputs    int       `yaml:"inputs"`
	Accepted  int       `yaml:"accepted"`
	Rejected  int       `yaml:"rejected"`
	Failed    int       `yaml:"failed"`
	Analysis  *Analysis `yaml:"analysis,omitempty"`
	Results   []*Result `yaml:"results"`
}

// NewReport makes a Report.  If analyze, the Report includes an
// Analysis of the DFA.
func NewReport(d *core.DFA, rs []*Result, analyze bool) *Report {
	r := &Report{
		DFA:       d.Name(),
		Generated: time.Now().UTC().Format(time.RFC3339),
		Inputs:    len(rs),
		Results:   rs,
	}
	for _, x := range rs {
		switch {
		case x.Failed():
			r.Failed++
		case x.Accepted:
			r.Accepted++
		default:
			r.Rejected++
		}
	}
	if analyze {
		r.Analysis = Analyze(d)
	}
	return r
}

// WriteReport writes the Report as YAML.
func WriteReport(w io.Writer, r *Report) error {
	bs, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}
