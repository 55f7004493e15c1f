package inittx

import (
	"errors"
	"fmt"
)

// ErrSequenceOutOfRange reports an active-site lookup against a transcribed
// region that does not cover the enzyme's current +1 site.
var ErrSequenceOutOfRange = errors.New("transcribed region does not cover the active site")

// ActiveSiteDinucleotide returns the two bases straddling the active site of
// the transcribed region its, using the current +1 site as pivot. The layout
// of its is assumed to be "AT..." where A and T are the +1 and +2 positions
// relative to transcription start.
//
// The lookup never truncates or wraps: a region too short (or a +1 site that
// has backtracked off its 5' end) returns an error wrapping
// ErrSequenceOutOfRange.
func (r *RNAP) ActiveSiteDinucleotide(its string) (string, error) {
	if r.iPlus1Site < 1 {
		return "", fmt.Errorf("%w: +1 site %d precedes the region", ErrSequenceOutOfRange, r.iPlus1Site)
	}
	if len(its) < r.iPlus1Site+1 {
		return "", fmt.Errorf("%w: need %d bases for +1 site %d, have %d",
			ErrSequenceOutOfRange, r.iPlus1Site+1, r.iPlus1Site, len(its))
	}
	return its[r.iPlus1Site-1 : r.iPlus1Site+1], nil
}

// ActiveSiteNucleotide returns the templating base at the +1 site: the
// second base of the active-site dinucleotide.
func (r *RNAP) ActiveSiteNucleotide(its string) (byte, error) {
	dinuc, err := r.ActiveSiteDinucleotide(its)
	if err != nil {
		return 0, err
	}
	return dinuc[1], nil
}
