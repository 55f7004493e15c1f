// Package inittx models the mechanical state of a single RNA polymerase
// (RNAP) during bacterial initial transcription: the promoter-bound phase
// where the enzyme synthesizes a short nascent RNA while oscillating between
// translocation registers, pausing, backtracking, and scrunching downstream
// DNA into itself.
//
// The package exposes one entity, RNAP, which owns a small set of tightly
// coupled scalars (transcript length, RNA:DNA duplex length, scrunched DNA,
// free 5' RNA overhang, +1 site position) plus a four-way translocation Mode.
// Every transition re-validates the entity's internal consistency contract;
// a violation is a programming error and aborts via panic rather than being
// returned to the caller.
//
// # Example Usage
//
//	r := inittx.New()
//	r.GrowRNA()
//	r.Translocate()
//	r.ReverseTranslocate()
//	r.Pause()
//	r.Backtrack()
//	fmt.Println(r)
//
// The entity is an in-memory value with no I/O and no locking: it is meant
// to be owned and driven by exactly one caller (a kinetic simulation loop).
// Parallel simulations own independent RNAP instances.
//
// The scenario subpackage drives an RNAP from a YAML-scripted transition
// sequence; cmd/demo is a runnable walk-through.
package inittx
