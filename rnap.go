package inittx

import (
	"fmt"
	"strings"
)

// Default field values describe an RNAP at the moment initial transcription
// begins: a two-nucleotide transcript fully hybridized to the template, the
// enzyme pre-translocated, nothing scrunched and no free 5' end yet.
const (
	DefaultRNALength       = 2
	DefaultIPlus1Site      = 2
	DefaultDuplexLength    = 2
	DefaultMaxDuplexLength = 10
)

// RNAP is a single transcribing RNA polymerase during initial transcription.
//
// All fields are unexported: the type owns its consistency contract and every
// mutation happens through a transition method that re-validates the whole
// entity before and after its effect. Misuse (an illegal transition, or a
// construction that violates the contract) panics.
type RNAP struct {
	rnaLength     int
	mode          Mode
	iPlus1Site    int
	duplexLength  int
	scrunchedDNA  int
	free5PrimeRNA int
	maxDuplex     int
}

// Option configures a field of an RNAP under construction.
type Option func(*RNAP)

// WithRNALength sets the total number of nucleotides synthesized so far.
func WithRNALength(n int) Option { return func(r *RNAP) { r.rnaLength = n } }

// WithMode sets the initial translocation mode.
func WithMode(m Mode) Option { return func(r *RNAP) { r.mode = m } }

// WithIPlus1Site sets the index of the next templating position.
func WithIPlus1Site(i int) Option { return func(r *RNAP) { r.iPlus1Site = i } }

// WithDuplexLength sets the length of the RNA:DNA hybrid.
func WithDuplexLength(n int) Option { return func(r *RNAP) { r.duplexLength = n } }

// WithScrunchedDNASize sets the amount of downstream DNA pulled into the enzyme.
func WithScrunchedDNASize(n int) Option { return func(r *RNAP) { r.scrunchedDNA = n } }

// WithFree5PrimeRNALength sets the length of RNA extruded from the enzyme.
func WithFree5PrimeRNALength(n int) Option { return func(r *RNAP) { r.free5PrimeRNA = n } }

// WithMaxDuplexLength sets the duplex length at which further RNA growth
// extrudes a free 5' end instead of growing the hybrid.
func WithMaxDuplexLength(n int) Option { return func(r *RNAP) { r.maxDuplex = n } }

// New constructs a validated RNAP. Without options the enzyme starts at the
// documented defaults. New panics if the resulting state violates the
// consistency contract; use Validate to vet untrusted field values first.
func New(opts ...Option) *RNAP {
	r := build(opts)
	r.sanityCheck()
	return r
}

// Validate reports whether the given options describe a consistent RNAP
// without constructing one. A nil return means New with the same options
// will not panic.
func Validate(opts ...Option) error {
	return build(opts).check()
}

func build(opts []Option) *RNAP {
	r := &RNAP{
		rnaLength:    DefaultRNALength,
		mode:         ModePreTranslocated,
		iPlus1Site:   DefaultIPlus1Site,
		duplexLength: DefaultDuplexLength,
		maxDuplex:    DefaultMaxDuplexLength,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Accessors.

// RNALength returns the total nucleotides synthesized so far.
func (r *RNAP) RNALength() int { return r.rnaLength }

// Mode returns the active translocation mode.
func (r *RNAP) Mode() Mode { return r.mode }

// IPlus1Site returns the index of the next templating position.
func (r *RNAP) IPlus1Site() int { return r.iPlus1Site }

// DuplexLength returns the length of the RNA:DNA hybrid.
func (r *RNAP) DuplexLength() int { return r.duplexLength }

// ScrunchedDNASize returns the amount of downstream DNA pulled into the enzyme.
func (r *RNAP) ScrunchedDNASize() int { return r.scrunchedDNA }

// Free5PrimeRNALength returns the length of RNA extruded from the enzyme.
func (r *RNAP) Free5PrimeRNALength() int { return r.free5PrimeRNA }

// MaxDuplexLength returns the saturation length of the RNA:DNA hybrid.
func (r *RNAP) MaxDuplexLength() int { return r.maxDuplex }

// Mode predicates.

// PreTranslocated reports whether the enzyme is in the pre-translocated register.
func (r *RNAP) PreTranslocated() bool { return r.mode == ModePreTranslocated }

// PostTranslocated reports whether the enzyme is in the post-translocated register.
func (r *RNAP) PostTranslocated() bool { return r.mode == ModePostTranslocated }

// Paused reports whether the enzyme is in an elemental pause.
func (r *RNAP) Paused() bool { return r.mode == ModePaused }

// Backtracked reports whether the enzyme has backtracked.
func (r *RNAP) Backtracked() bool { return r.mode == ModeBacktracked }

// check verifies the full consistency contract and returns the first
// violated rule, or nil. sanityCheck is the aborting form used internally.
func (r *RNAP) check() error {
	switch r.mode {
	case ModePreTranslocated, ModePostTranslocated, ModePaused, ModeBacktracked:
	default:
		return fmt.Errorf("invalid translocation mode %d", int(r.mode))
	}
	if r.rnaLength < r.duplexLength {
		return fmt.Errorf("RNA:DNA duplex (%d) exceeds the transcript (%d)", r.duplexLength, r.rnaLength)
	}
	if r.scrunchedDNA >= r.rnaLength {
		return fmt.Errorf("scrunched DNA size (%d) not below RNA length (%d)", r.scrunchedDNA, r.rnaLength)
	}
	if r.free5PrimeRNA >= r.rnaLength {
		return fmt.Errorf("free 5' RNA length (%d) not below RNA length (%d)", r.free5PrimeRNA, r.rnaLength)
	}
	if r.free5PrimeRNA > 0 && r.free5PrimeRNA != r.rnaLength-r.duplexLength {
		return fmt.Errorf("free 5' RNA length (%d) does not equal the duplex overhang (%d)",
			r.free5PrimeRNA, r.rnaLength-r.duplexLength)
	}
	if r.duplexLength > r.maxDuplex && r.free5PrimeRNA <= 0 {
		return fmt.Errorf("duplex (%d) beyond saturation (%d) without a free 5' RNA end", r.duplexLength, r.maxDuplex)
	}
	return nil
}

// sanityCheck runs at the start and end of every transition. A failure means
// a transition has produced a biophysically invalid state; continuing would
// silently corrupt any simulation driving this entity, so execution stops.
func (r *RNAP) sanityCheck() {
	if err := r.check(); err != nil {
		panic("inittx: state contract violated: " + err.Error())
	}
}

// Translocate moves the enzyme from the pre- to the post-translocated
// register. Calling it while already post-translocated, or from a paused or
// backtracked state, is a caller error.
func (r *RNAP) Translocate() {
	r.sanityCheck()
	if r.PostTranslocated() {
		panic("inittx: Translocate: was already translocated!")
	}
	if !r.PreTranslocated() {
		panic("inittx: Translocate: must be pre-translocated to translocate!")
	}
	r.mode = ModePostTranslocated
	r.sanityCheck()
}

// ReverseTranslocate returns the enzyme to the pre-translocated register
// from any other mode. Calling it while already pre-translocated is a
// caller error.
func (r *RNAP) ReverseTranslocate() {
	r.sanityCheck()
	if r.PreTranslocated() {
		panic("inittx: ReverseTranslocate: was already pre-translocated!")
	}
	r.mode = ModePreTranslocated
	r.sanityCheck()
}

// Pause enters an elemental pause. Pausing is only possible from the
// pre-translocated register.
func (r *RNAP) Pause() {
	r.sanityCheck()
	if r.Paused() {
		panic("inittx: Pause: was already paused!")
	}
	if !r.PreTranslocated() {
		panic("inittx: Pause: must be pre-translocated to pause!")
	}
	r.mode = ModePaused
	r.sanityCheck()
}

// CanBackTrack reports whether Backtrack is legal: the enzyme must be paused
// or already backtracked. Read-only.
func (r *RNAP) CanBackTrack() bool {
	r.sanityCheck()
	return r.Paused() || r.Backtracked()
}

// Backtrack slides the enzyme one position back along the template, either
// from a paused state or deeper from an already backtracked state. One unit
// of scrunched DNA is released and, below duplex saturation, the hybrid
// shortens by one base. Once a free 5' end exists the hybrid and the free
// end are held: the register slides along the transcript without changing
// how it is partitioned.
func (r *RNAP) Backtrack() {
	r.sanityCheck()
	if !r.CanBackTrack() {
		panic("inittx: Backtrack: was not in a state from which to backtrack!")
	}
	if r.Paused() {
		r.mode = ModeBacktracked
	}
	r.iPlus1Site--
	r.scrunchedDNA--
	if r.free5PrimeRNA == 0 && r.duplexLength <= r.maxDuplex {
		r.duplexLength--
	}
	r.sanityCheck()
}

// CanGrow reports whether GrowRNA is legal.
//
// The exclusion below requires three mutually exclusive mode flags to be
// active at once and can therefore never fire for a consistent entity; the
// expression is kept in its original form rather than collapsed to true.
func (r *RNAP) CanGrow() bool {
	excludedFromGrowing := r.PreTranslocated() && r.Backtracked() && r.Paused()
	if excludedFromGrowing && r.PostTranslocated() {
		return false
	}
	return true
}

// GrowRNA adds one nucleotide to the nascent RNA: the +1 site advances and
// one more unit of downstream DNA is scrunched into the enzyme. Below
// saturation the RNA:DNA hybrid grows 1:1 with the transcript; once the
// hybrid is saturated every further nucleotide extrudes one base of free
// 5' RNA instead.
func (r *RNAP) GrowRNA() {
	r.sanityCheck()
	if !r.CanGrow() {
		panic("inittx: GrowRNA: must be post-translocated to grow RNA!")
	}
	r.iPlus1Site++
	r.rnaLength++
	r.scrunchedDNA++
	switch {
	case r.free5PrimeRNA > 0:
		r.free5PrimeRNA++
	case r.rnaLength <= r.maxDuplex:
		r.duplexLength = r.rnaLength
	case r.duplexLength == r.maxDuplex:
		r.free5PrimeRNA++
	}
	r.sanityCheck()
}

// String renders the scalar fields and the active mode for debugging. Not a
// serialization format.
func (r *RNAP) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "RNA-len:\t%d\n", r.rnaLength)
	fmt.Fprintf(&b, "Duplex-len:\t%d\n", r.duplexLength)
	fmt.Fprintf(&b, "Scrunched-size:\t%d\n", r.scrunchedDNA)
	fmt.Fprintf(&b, "Free-5prime:\t%d\n", r.free5PrimeRNA)
	fmt.Fprintf(&b, "iplus1_pos:\t%d\n\n", r.iPlus1Site)
	switch r.mode {
	case ModePostTranslocated:
		b.WriteString("Is POST-translocated\n")
	case ModePreTranslocated:
		b.WriteString("Is PRE-translocated\n")
	case ModePaused:
		b.WriteString("Is paused\n")
	case ModeBacktracked:
		b.WriteString("Is backtracked\n")
	}
	return b.String()
}
