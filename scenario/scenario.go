// Package scenario drives an inittx.RNAP from a YAML-scripted transition
// sequence. A scenario document names an optional initial configuration and
// an ordered list of steps; the runner validates the script, pre-checks each
// step's legality against the entity's public queries, and records a trace
// of the state after every step.
//
// Scripts are caller data: an illegal step is reported as an error before
// the entity is touched, so the entity's fatal-misuse contract is never
// reachable through the runner.
package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/txkinetics/inittx"
)

// Step is one transition in a scenario script.
type Step string

const (
	StepGrow               Step = "grow"
	StepTranslocate        Step = "translocate"
	StepReverseTranslocate Step = "reverse_translocate"
	StepPause              Step = "pause"
	StepBacktrack          Step = "backtrack"
)

var knownSteps = map[Step]bool{
	StepGrow:               true,
	StepTranslocate:        true,
	StepReverseTranslocate: true,
	StepPause:              true,
	StepBacktrack:          true,
}

// Config is a YAML-loadable scenario. Initial-state fields are pointers so
// that omitted fields fall back to the entity's documented defaults.
type Config struct {
	Name string `yaml:"name"`

	RNALength       *int   `yaml:"rnaLength,omitempty"`
	Mode            string `yaml:"mode,omitempty"`
	IPlus1Site      *int   `yaml:"iplus1Site,omitempty"`
	DuplexLength    *int   `yaml:"duplexLength,omitempty"`
	ScrunchedDNA    *int   `yaml:"scrunchedDNASize,omitempty"`
	Free5PrimeRNA   *int   `yaml:"free5PrimeRNALength,omitempty"`
	MaxDuplexLength *int   `yaml:"maxDuplexLength,omitempty"`

	Steps []Step `yaml:"steps"`
}

// Parse unmarshals and validates a scenario document.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the script's steps, mode name, and initial configuration.
func (c *Config) Validate() error {
	if len(c.Steps) == 0 {
		return fmt.Errorf("scenario %q: no steps", c.Name)
	}
	for i, s := range c.Steps {
		if !knownSteps[s] {
			return fmt.Errorf("scenario %q: step %d: unknown step %q", c.Name, i, s)
		}
	}
	opts, err := c.options()
	if err != nil {
		return err
	}
	if err := inittx.Validate(opts...); err != nil {
		return fmt.Errorf("scenario %q: initial state: %w", c.Name, err)
	}
	return nil
}

// options converts the initial-state fields into construction options.
func (c *Config) options() ([]inittx.Option, error) {
	var opts []inittx.Option
	if c.RNALength != nil {
		opts = append(opts, inittx.WithRNALength(*c.RNALength))
	}
	if c.Mode != "" {
		m, err := inittx.ParseMode(c.Mode)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", c.Name, err)
		}
		opts = append(opts, inittx.WithMode(m))
	}
	if c.IPlus1Site != nil {
		opts = append(opts, inittx.WithIPlus1Site(*c.IPlus1Site))
	}
	if c.DuplexLength != nil {
		opts = append(opts, inittx.WithDuplexLength(*c.DuplexLength))
	}
	if c.ScrunchedDNA != nil {
		opts = append(opts, inittx.WithScrunchedDNASize(*c.ScrunchedDNA))
	}
	if c.Free5PrimeRNA != nil {
		opts = append(opts, inittx.WithFree5PrimeRNALength(*c.Free5PrimeRNA))
	}
	if c.MaxDuplexLength != nil {
		opts = append(opts, inittx.WithMaxDuplexLength(*c.MaxDuplexLength))
	}
	return opts, nil
}

// StepResult is the entity state after one applied step.
type StepResult struct {
	Step                Step
	Mode                inittx.Mode
	RNALength           int
	IPlus1Site          int
	DuplexLength        int
	ScrunchedDNASize    int
	Free5PrimeRNALength int
}

func (sr StepResult) String() string {
	return fmt.Sprintf("%-20s %-16s rna=%d iplus1=%d duplex=%d scrunched=%d free5=%d",
		sr.Step, sr.Mode, sr.RNALength, sr.IPlus1Site, sr.DuplexLength, sr.ScrunchedDNASize, sr.Free5PrimeRNALength)
}

// Trace is the per-step state history of a run.
type Trace []StepResult

// Run builds the scenario's initial entity and applies every step in order.
// It stops at the first step that is illegal in the entity's current mode,
// returning the error and the trace up to that point.
func Run(c *Config) (*inittx.RNAP, Trace, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	opts, err := c.options()
	if err != nil {
		return nil, nil, err
	}

	r := inittx.New(opts...)
	trace := make(Trace, 0, len(c.Steps))
	for i, s := range c.Steps {
		if err := apply(r, s); err != nil {
			return r, trace, fmt.Errorf("scenario %q: step %d (%s): %w", c.Name, i, s, err)
		}
		trace = append(trace, snapshot(r, s))
	}
	return r, trace, nil
}

// apply pre-checks legality with the public queries, then performs the step.
func apply(r *inittx.RNAP, s Step) error {
	switch s {
	case StepGrow:
		if !r.CanGrow() {
			return fmt.Errorf("cannot grow RNA in mode %s", r.Mode())
		}
		r.GrowRNA()
	case StepTranslocate:
		if r.PostTranslocated() {
			return fmt.Errorf("already post-translocated")
		}
		if !r.PreTranslocated() {
			return fmt.Errorf("cannot translocate in mode %s", r.Mode())
		}
		r.Translocate()
	case StepReverseTranslocate:
		if r.PreTranslocated() {
			return fmt.Errorf("already pre-translocated")
		}
		r.ReverseTranslocate()
	case StepPause:
		if r.Paused() {
			return fmt.Errorf("already paused")
		}
		if !r.PreTranslocated() {
			return fmt.Errorf("cannot pause in mode %s", r.Mode())
		}
		r.Pause()
	case StepBacktrack:
		if !r.CanBackTrack() {
			return fmt.Errorf("cannot backtrack in mode %s", r.Mode())
		}
		r.Backtrack()
	default:
		return fmt.Errorf("unknown step %q", s)
	}
	return nil
}

func snapshot(r *inittx.RNAP, s Step) StepResult {
	return StepResult{
		Step:                s,
		Mode:                r.Mode(),
		RNALength:           r.RNALength(),
		IPlus1Site:          r.IPlus1Site(),
		DuplexLength:        r.DuplexLength(),
		ScrunchedDNASize:    r.ScrunchedDNASize(),
		Free5PrimeRNALength: r.Free5PrimeRNALength(),
	}
}
