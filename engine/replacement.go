package engine

import (
	"fmt"

	"github.com/cohgen/cohgen/state"
)

// ReplacementSynthesizer emits the eviction path from every stable,
// non-invalid state back to the invalid stable state (§4.8). A state with
// active data authority (PCP > 0) or dirty data (SMP > 0) evicts through a
// pre-ordered transient; the Ordered edge is annotated Write-back data
// whenever the evicted state is dirty, independent of which property
// triggered the transient (§8 scenarios 1 and 6 both show a PCP-active,
// SMP-dirty state evicting with Write-back data, which a strict
// PCP-before-SMP branch order would miss). A state with neither property
// but non-zero AP replaces directly with no transient.
type ReplacementSynthesizer struct {
	P *state.Protocol
}

func (r *ReplacementSynthesizer) Synthesize() {
	p := r.P
	inv := p.InvalidStable()

	for _, s := range append([]state.Handle(nil), p.StableStates...) {
		enc := p.Arena.Get(s).Encoding

		switch {
		case enc.PCPWeight() > 0 || enc.SMPWeight() > 0:
			r.chain(s, inv, enc.SMPWeight() > 0)
		case enc.APWeight() > 0:
			p.AddTransition(state.Transition{Source: s, Event: state.Replacement, Destination: inv})
		}
	}
}

func (r *ReplacementSynthesizer) chain(s, inv state.Handle, writeBack bool) {
	p := r.P
	label := fmt.Sprintf("%s%s_A", p.Label(s), p.Label(inv))
	ts, _ := p.AddPreOrdered(state.State{
		Label:        label,
		Encoding:     p.Arena.Get(s).Encoding,
		Source:       s,
		IntendedDest: inv,
		Parent:       state.InvalidHandle,
	})
	p.AddTransition(state.Transition{Source: s, Event: state.Replacement, Destination: ts})

	action := state.ActionNone
	if writeBack {
		action = state.ActionWriteBackData
	}
	p.AddTransition(state.Transition{Source: ts, Event: state.EventOrdered, Destination: inv, Action: action})
}
