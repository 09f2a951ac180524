package engine

import (
	"fmt"

	"github.com/cohgen/cohgen/state"
)

// PreOrderedInterleaver closes the reachability of every pre-ordered
// transient under other-events (§4.6), synthesizing further pre-ordered
// states as needed. It is run twice by the pipeline: once before the
// replacement synthesizer, and once after, since replacements themselves
// introduce new pre-ordered states (§4.8).
type PreOrderedInterleaver struct {
	P     *state.Protocol
	Model ConfigModel
}

// Interleave walks p.PreOrdered with a growing index so that states
// synthesized mid-pass are themselves interleaved in the same call,
// mirroring the fixed-point sweep described in §4.6.
func (in *PreOrderedInterleaver) Interleave() {
	for i := 0; i < len(in.P.PreOrdered); i++ {
		ts := in.P.PreOrdered[i]
		for _, evt := range [2]state.Event{state.OtherRead, state.OtherWrite} {
			in.interleaveOne(ts, evt)
		}
	}
}

func (in *PreOrderedInterleaver) interleaveOne(ts state.Handle, evt state.Event) {
	p := in.P
	tsState := p.Arena.Get(ts)

	srcHandle := p.EffectiveSource(ts)
	nextDest, ok := p.Delta(srcHandle, evt)
	if !ok {
		return
	}

	srcEnc := p.Arena.Get(srcHandle).Encoding
	dstEnc := p.Arena.Get(tsState.IntendedDest).Encoding
	nextEnc := p.Arena.Get(nextDest).Encoding
	ownEnc := tsState.Encoding

	switch {
	case ownEnc.SameWeight(nextEnc):
		// Stationary (§4.6 case 1).
		p.AddTransition(state.Transition{Source: ts, Event: evt, Destination: ts})

	case srcEnc.APWeight() < dstEnc.APWeight() && nextEnc.APWeight() == 0:
		// Intended upgrade (§4.6 case 2).
		label := fmt.Sprintf("%s%s_AD", p.Label(nextDest), p.Label(tsState.IntendedDest))
		newTS, _ := p.AddPreOrdered(state.State{
			Label:        label,
			Encoding:     nextEnc,
			Source:       nextDest,
			IntendedDest: tsState.IntendedDest,
			Parent:       ts,
		})
		p.AddTransition(state.Transition{Source: ts, Event: evt, Destination: newTS})

	case srcEnc.APWeight() > dstEnc.APWeight():
		// Intended downgrade (§4.6 case 3).
		if srcEnc.PCPWeight() == 1 && (nextEnc.APWeight() == 0 || dstEnc.APWeight() == 0) {
			in.downgrade(ts, evt, srcEnc, dstEnc, nextDest, nextEnc)
		} else {
			p.AddTransition(state.Transition{Source: ts, Event: evt, Destination: ts})
		}

	case srcEnc.PCPWeight() > nextEnc.PCPWeight():
		// PCP downgrade only (§4.6 case 4).
		label := fmt.Sprintf("%s%s_AD", p.Label(nextDest), p.Label(tsState.IntendedDest))
		newTS, _ := p.AddPreOrdered(state.State{
			Label:        label,
			Encoding:     nextEnc,
			Source:       ts,
			IntendedDest: tsState.IntendedDest,
			Parent:       ts,
		})
		p.AddTransition(state.Transition{Source: ts, Event: evt, Destination: newTS, Action: state.ActionSendData})
	}
	// No case matched: left for §4.9's stall completion.
}

func (in *PreOrderedInterleaver) downgrade(ts state.Handle, evt state.Event, srcEnc, dstEnc state.Encoding, nextDest state.Handle, nextEnc state.Encoding) {
	p := in.P
	tsState := p.Arena.Get(ts)

	if in.Model == Memory {
		inv := p.InvalidStable()
		invEnc := p.Arena.Get(inv).Encoding
		label := fmt.Sprintf("%s%s_A", p.Label(inv), p.Label(inv))
		newTS, _ := p.AddPreOrdered(state.State{
			Label:        label,
			Encoding:     invEnc,
			Source:       ts,
			IntendedDest: inv,
			Parent:       ts,
		})
		p.AddTransition(state.Transition{Source: ts, Event: evt, Destination: newTS, Action: state.ActionSendData})
		p.AddTransition(state.Transition{Source: newTS, Event: state.EventOrdered, Destination: inv})
		return
	}

	// Direct model.
	if dstEnc.AP != nextEnc.AP {
		srcLabel := p.Label(p.EffectiveSource(ts))
		label := fmt.Sprintf("%s%s_A", srcLabel, p.Label(nextDest))
		newTS, _ := p.AddPreOrdered(state.State{
			Label:        label,
			Encoding:     srcEnc,
			Source:       ts,
			IntendedDest: nextDest,
			Parent:       ts,
		})
		p.AddTransition(state.Transition{Source: ts, Event: evt, Destination: newTS})

		action := state.ActionCommunicateMessage
		if srcEnc.SMPWeight() > 0 {
			action = state.ActionWriteBackData
		}
		p.AddTransition(state.Transition{Source: newTS, Event: state.EventOrdered, Destination: nextDest, Action: action})
		return
	}

	p.AddTransition(state.Transition{Source: ts, Event: evt, Destination: ts})
	_ = tsState
}
