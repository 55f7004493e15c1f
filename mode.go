package inittx

import "fmt"

// Mode is the translocation register of the enzyme. Exactly one mode is
// active at any time; the zero value is not a valid mode.
type Mode int

const (
	// ModePreTranslocated: the 3' RNA end occupies the substrate site; the
	// enzyme must translocate before the next nucleotide can bind.
	ModePreTranslocated Mode = iota + 1
	// ModePostTranslocated: the substrate site is free and the +1 template
	// base is exposed for the incoming nucleotide.
	ModePostTranslocated
	// ModePaused: an elemental pause entered from the pre-translocated
	// register.
	ModePaused
	// ModeBacktracked: the enzyme has slid backwards one or more positions
	// along the template without cleaving the RNA.
	ModeBacktracked
)

func (m Mode) String() string {
	switch m {
	case ModePreTranslocated:
		return "pre-translocated"
	case ModePostTranslocated:
		return "post-translocated"
	case ModePaused:
		return "paused"
	case ModeBacktracked:
		return "backtracked"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a mode name (as produced by Mode.String) back to its Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "pre-translocated":
		return ModePreTranslocated, nil
	case "post-translocated":
		return ModePostTranslocated, nil
	case "paused":
		return ModePaused, nil
	case "backtracked":
		return ModeBacktracked, nil
	}
	return 0, fmt.Errorf("unknown translocation mode %q", s)
}
