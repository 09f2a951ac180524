package engine

import (
	"fmt"

	"github.com/cohgen/cohgen/state"
)

// PostOrderedInterleaver closes the reachability of every post-ordered
// transient under other-events (§4.7).
type PostOrderedInterleaver struct {
	P     *state.Protocol
	Model ConfigModel
}

// Interleave mirrors PreOrderedInterleaver.Interleave's growing-index sweep:
// a non-linear recursive case below can append a new post-ordered state that
// itself needs interleaving within the same call.
func (in *PostOrderedInterleaver) Interleave() {
	for i := 0; i < len(in.P.PostOrdered); i++ {
		ts := in.P.PostOrdered[i]
		for _, evt := range [2]state.Event{state.OtherRead, state.OtherWrite} {
			in.interleaveOne(ts, evt)
		}
	}
}

func (in *PostOrderedInterleaver) interleaveOne(ts state.Handle, evt state.Event) {
	p := in.P
	tsState := p.Arena.Get(ts)

	nextDest, ok := p.Delta(tsState.IntendedDest, evt)
	if !ok {
		return
	}

	intendedEnc := p.Arena.Get(tsState.IntendedDest).Encoding
	nextEnc := p.Arena.Get(nextDest).Encoding

	if nextEnc.AP == intendedEnc.AP {
		p.AddTransition(state.Transition{Source: ts, Event: evt, Destination: ts})
		return
	}

	newLabel := fmt.Sprintf("%s%s_D", p.Label(ts), p.Label(nextDest))
	newTS, _ := p.AddPostOrdered(state.State{
		Label:        newLabel,
		Encoding:     nextEnc,
		Source:       tsState.Source,
		IntendedDest: nextDest,
		Parent:       ts,
	})
	p.AddTransition(state.Transition{Source: ts, Event: evt, Destination: newTS})

	synthetic := state.Transition{Source: tsState.IntendedDest, Event: evt, Destination: nextDest}
	analyzer := &LatencyAnalyzer{P: p, Model: in.Model}

	if analyzer.Classify(synthetic) {
		rootIntendedDest := p.Arena.Get(in.rootOf(ts)).IntendedDest
		preLabel := fmt.Sprintf("%s%s_A", p.Label(rootIntendedDest), p.Label(nextDest))
		pre, _ := p.AddPreOrdered(state.State{
			Label:        preLabel,
			Encoding:     nextEnc,
			Source:       newTS,
			IntendedDest: nextDest,
			Parent:       newTS,
		})
		p.AddTransition(state.Transition{Source: newTS, Event: state.EventData, Destination: pre})
	} else {
		p.AddTransition(state.Transition{Source: newTS, Event: state.EventData, Destination: nextDest})
	}
}

// rootOf walks Parent pointers to the top of the transient chain (§4.7's
// "rootIntendedDest"), a genuine multi-hop walk distinct from the one-hop
// EffectiveSource rule used elsewhere (§9).
func (in *PostOrderedInterleaver) rootOf(h state.Handle) state.Handle {
	cur := h
	for {
		s := in.P.Arena.Get(cur)
		if s.Parent == state.InvalidHandle {
			return cur
		}
		cur = s.Parent
	}
}
