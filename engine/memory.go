package engine

import (
	"fmt"

	"github.com/cohgen/cohgen/state"
)

// MemoryMachineSynthesizer builds the shared-memory directory state machine
// (§4.10): SM_I and SM_M always, SM_X and SM_F conditionally, and the
// GetS/GetM/PutM transition table, diverging by configModel. Memory states
// are tracked in p.MemStates and do not feed back into the cache machine.
type MemoryMachineSynthesizer struct {
	P     *state.Protocol
	Model ConfigModel
}

func memStable(label string, enc state.Encoding) state.State {
	return state.State{
		Label:        label,
		Encoding:     enc,
		Source:       state.InvalidHandle,
		IntendedDest: state.InvalidHandle,
		Parent:       state.InvalidHandle,
	}
}

func (m *MemoryMachineSynthesizer) Synthesize() {
	p := m.P

	invH := p.Arena.AddStable("SM_I", state.Encoding{AP: state.APInvalid, SMP: state.SMPClean, PCP: state.PCPPassive})
	p.AddMemState(invH)
	modH := p.Arena.AddStable("SM_M", state.Encoding{AP: state.APWrite, SMP: state.SMPDirty, PCP: state.PCPActive})
	p.AddMemState(modH)

	exclusiveH := state.InvalidHandle
	if p.IsExclusiveStateExists() {
		exclusiveH = p.Arena.AddStable("SM_X", state.Encoding{AP: state.APRead, SMP: state.SMPClean, PCP: state.PCPPassive})
		p.AddMemState(exclusiveH)
	}
	forwardingH := state.InvalidHandle
	if p.IsForwardingStateExists() {
		forwardingH = p.Arena.AddStable("SM_F", state.Encoding{AP: state.APRead, SMP: state.SMPClean, PCP: state.PCPActive})
		p.AddMemState(forwardingH)
	}

	events := [3]state.Event{state.GetS, state.GetM, state.PutM}

	for i := 0; i < len(p.MemStates); i++ {
		s := p.MemStates[i]
		for _, e := range events {
			if m.Model == Memory {
				m.memoryEvent(s, e, invH, modH, exclusiveH, forwardingH)
			} else {
				m.directEvent(s, e, invH, modH, exclusiveH, forwardingH)
			}
		}
	}
}

func (m *MemoryMachineSynthesizer) memoryEvent(s state.Handle, e state.Event, inv, mod, exclusive, forwarding state.Handle) {
	p := m.P
	sState := p.Arena.Get(s)

	if sState.IsTransient() {
		p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: s, Action: state.ActionStall})
		return
	}

	enc := sState.Encoding
	if enc.APWeight() < 1 {
		switch e {
		case state.GetS:
			if exclusive != state.InvalidHandle {
				p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: mod, Action: state.ActionSetOwnerSendData})
			} else {
				p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: s, Action: state.ActionSendData})
			}
		case state.GetM:
			p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: mod, Action: state.ActionSetOwnerSendData})
		}
		return
	}

	if enc.SMPWeight() > 0 {
		d, _ := p.Arena.AddTransient(memStable(fmt.Sprintf("%s_D", p.Label(s)), enc))
		p.AddMemState(d)
		p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: d})

		switch e {
		case state.PutM:
			p.AddMemTransition(state.Transition{Source: d, Event: state.EventOrdered, Destination: inv, Action: state.ActionWriteBackData})
		case state.GetM:
			// A GetM against dirty data hands ownership straight to the
			// requester: the new owner lands on SM_M, not SM_X/SM_I.
			p.AddMemTransition(state.Transition{Source: d, Event: state.EventReceiveData, Destination: mod})
		default: // GetS
			dst := inv
			if exclusive != state.InvalidHandle {
				dst = exclusive
			}
			p.AddMemTransition(state.Transition{Source: d, Event: state.EventReceiveData, Destination: dst})
		}
		return
	}

	switch e {
	case state.GetS:
		p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: s, Action: state.ActionSendData})
	case state.GetM:
		p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: mod, Action: state.ActionSendData})
	}
}

func (m *MemoryMachineSynthesizer) directEvent(s state.Handle, e state.Event, inv, mod, exclusive, forwarding state.Handle) {
	p := m.P
	sState := p.Arena.Get(s)

	if sState.IsTransient() {
		switch e {
		case state.GetS:
			p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: s, Action: state.ActionStall})
		case state.GetM:
			p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: mod})
		}
		return
	}

	enc := sState.Encoding
	if enc.APWeight() < 1 {
		switch e {
		case state.GetS:
			switch {
			case exclusive != state.InvalidHandle:
				p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: mod, Action: state.ActionSendData})
			case forwarding != state.InvalidHandle:
				p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: forwarding, Action: state.ActionSendData})
			default:
				p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: s, Action: state.ActionSendData})
			}
		case state.GetM:
			p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: mod, Action: state.ActionSendData})
		}
		return
	}

	switch {
	case enc.SMPWeight() > 0:
		switch e {
		case state.GetM:
			p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: mod})
		case state.PutM:
			d, _ := p.Arena.AddTransient(memStable(fmt.Sprintf("%s_D", p.Label(s)), enc))
			p.AddMemState(d)
			p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: d})
			p.AddMemTransition(state.Transition{Source: d, Event: state.EventOrdered, Destination: inv, Action: state.ActionWriteBackData})
		case state.GetS:
			d, _ := p.Arena.AddTransient(memStable(fmt.Sprintf("%s_D", p.Label(s)), enc))
			p.AddMemState(d)
			p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: d})
			dst := inv
			switch {
			case forwarding != state.InvalidHandle:
				dst = forwarding
			case exclusive != state.InvalidHandle:
				dst = exclusive
			}
			p.AddMemTransition(state.Transition{Source: d, Event: state.EventReceiveData, Destination: dst})
		}

	case enc.PCPWeight() < 1:
		switch e {
		case state.GetS:
			if forwarding != state.InvalidHandle {
				p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: forwarding, Action: state.ActionSetOwnerSendData})
			} else {
				p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: s, Action: state.ActionSendData})
			}
		case state.GetM:
			p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: mod, Action: state.ActionSendData})
		}

	default:
		switch e {
		case state.GetS:
			p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: s, Action: state.ActionSetOwner})
		case state.GetM:
			p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: mod, Action: state.ActionSetOwnerSendData})
		case state.PutM:
			a, _ := p.Arena.AddTransient(memStable(fmt.Sprintf("%s_A", p.Label(s)), enc))
			p.AddMemState(a)
			p.AddMemTransition(state.Transition{Source: s, Event: e, Destination: a})
			dst := inv
			if exclusive != state.InvalidHandle {
				dst = exclusive
			}
			p.AddMemTransition(state.Transition{Source: a, Event: state.EventOrdered, Destination: dst})
		}
	}
}
