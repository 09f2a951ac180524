package engine

import (
	"testing"

	"github.com/cohgen/cohgen/state"
	"github.com/stretchr/testify/require"
)

func TestPreOrderedInterleaveStationaryCaseSelfLoops(t *testing.T) {
	a := state.NewArena()
	p := state.NewProtocol(a)
	p.AddStable("I", state.Encoding{AP: state.APInvalid, SMP: state.SMPClean, PCP: state.PCPPassive})
	i, _ := p.Arena.Lookup("I")
	p.AddTransition(state.Transition{Source: i, Event: state.OtherRead, Destination: i})

	ts, _ := p.AddPreOrdered(state.State{Label: "II_AD", Encoding: p.Arena.Get(i).Encoding, Source: i, IntendedDest: i, Parent: state.InvalidHandle})
	(&PreOrderedInterleaver{P: p, Model: Direct}).Interleave()

	require.Len(t, p.PreOrdered, 1, "a stationary racing event produces no new transient")
	require.Contains(t, p.Transitions, state.Transition{Source: ts, Event: state.OtherRead, Destination: ts})
}

func TestPreOrderedInterleaveIntendedUpgradeSynthesizesTransient(t *testing.T) {
	a := state.NewArena()
	p := state.NewProtocol(a)
	p.AddStable("I", state.Encoding{AP: state.APInvalid, SMP: state.SMPClean, PCP: state.PCPPassive})
	p.AddStable("M", state.Encoding{AP: state.APWrite, SMP: state.SMPDirty, PCP: state.PCPActive})
	p.AddStable("X", state.Encoding{AP: state.APInvalid, SMP: state.SMPDirty, PCP: state.PCPPassive})
	i, _ := p.Arena.Lookup("I")
	m, _ := p.Arena.Lookup("M")
	x, _ := p.Arena.Lookup("X")
	p.AddTransition(state.Transition{Source: i, Event: state.OtherWrite, Destination: x})

	ts, _ := p.AddPreOrdered(state.State{Label: "IM_AD", Encoding: p.Arena.Get(i).Encoding, Source: i, IntendedDest: m, Parent: state.InvalidHandle})
	(&PreOrderedInterleaver{P: p, Model: Direct}).Interleave()

	require.Len(t, p.PreOrdered, 2)
	newTS := p.PreOrdered[1]
	require.Equal(t, "XM_AD", p.Label(newTS))
	require.Equal(t, m, p.Arena.Get(newTS).IntendedDest)
	require.Equal(t, x, p.Arena.Get(newTS).Source)

	require.Contains(t, p.Transitions, state.Transition{Source: ts, Event: state.OtherWrite, Destination: newTS})
	require.Contains(t, p.Transitions, state.Transition{Source: newTS, Event: state.OtherWrite, Destination: newTS},
		"the new transient's own racing closure is itself stationary once it lands on X")
}

func TestPreOrderedInterleaveDirectDowngradeWritesBackData(t *testing.T) {
	a := state.NewArena()
	p := state.NewProtocol(a)
	p.AddStable("I", state.Encoding{AP: state.APInvalid, SMP: state.SMPClean, PCP: state.PCPPassive})
	p.AddStable("S", state.Encoding{AP: state.APRead, SMP: state.SMPClean, PCP: state.PCPPassive})
	p.AddStable("M", state.Encoding{AP: state.APWrite, SMP: state.SMPDirty, PCP: state.PCPActive})
	s, _ := p.Arena.Lookup("S")
	m, _ := p.Arena.Lookup("M")
	i, _ := p.Arena.Lookup("I")
	p.AddTransition(state.Transition{Source: m, Event: state.OtherRead, Destination: s})

	ts, _ := p.AddPreOrdered(state.State{Label: "MI_AD", Encoding: p.Arena.Get(m).Encoding, Source: m, IntendedDest: i, Parent: state.InvalidHandle})
	(&PreOrderedInterleaver{P: p, Model: Direct}).Interleave()

	require.Len(t, p.PreOrdered, 2)
	newTS := p.PreOrdered[1]
	require.Equal(t, "MS_A", p.Label(newTS))
	require.Equal(t, s, p.Arena.Get(newTS).IntendedDest)
	require.True(t, p.Arena.Get(newTS).Encoding.SameWeight(p.Arena.Get(m).Encoding))

	require.Contains(t, p.Transitions, state.Transition{Source: ts, Event: state.OtherRead, Destination: newTS})
	require.Contains(t, p.Transitions, state.Transition{
		Source: newTS, Event: state.EventOrdered, Destination: s, Action: state.ActionWriteBackData,
	}, "M's dirty data must be written back before S can observe the read")
	require.Contains(t, p.Transitions, state.Transition{Source: newTS, Event: state.OtherRead, Destination: newTS})
}

func TestPreOrderedInterleavePCPOnlyDowngradeSendsData(t *testing.T) {
	a := state.NewArena()
	p := state.NewProtocol(a)
	p.AddStable("S", state.Encoding{AP: state.APRead, SMP: state.SMPClean, PCP: state.PCPPassive})
	p.AddStable("O", state.Encoding{AP: state.APRead, SMP: state.SMPDirty, PCP: state.PCPActive})
	o, _ := p.Arena.Lookup("O")
	s, _ := p.Arena.Lookup("S")
	p.AddTransition(state.Transition{Source: o, Event: state.OtherRead, Destination: s})

	ts, _ := p.AddPreOrdered(state.State{Label: "OS_AD", Encoding: p.Arena.Get(o).Encoding, Source: o, IntendedDest: s, Parent: state.InvalidHandle})
	(&PreOrderedInterleaver{P: p, Model: Direct}).Interleave()

	require.Len(t, p.PreOrdered, 2, "equal AP weight rules out the upgrade/downgrade cases, leaving only the PCP-only path")
	newTS := p.PreOrdered[1]
	require.Equal(t, "SS_AD", p.Label(newTS))

	require.Contains(t, p.Transitions, state.Transition{
		Source: ts, Event: state.OtherRead, Destination: newTS, Action: state.ActionSendData,
	})
	require.Contains(t, p.Transitions, state.Transition{Source: newTS, Event: state.OtherRead, Destination: newTS})
}
