package engine

import (
	"testing"

	"github.com/cohgen/cohgen/state"
	"github.com/stretchr/testify/require"
)

func TestOtherElaboratorInsertsTransientForNonLinearTransition(t *testing.T) {
	p := msiWithInput()
	m, _ := p.Arena.Lookup("M")
	s, _ := p.Arena.Lookup("S")

	(&OtherElaborator{P: p, Model: Direct}).Elaborate()

	require.Len(t, p.PreOrdered, 1)
	ts := p.PreOrdered[0]
	require.Equal(t, "MS_A", p.Label(ts))

	require.Contains(t, p.Transitions, state.Transition{Source: m, Event: state.OtherRead, Destination: ts})
	require.Contains(t, p.Transitions, state.Transition{
		Source: ts, Event: state.EventOrdered, Destination: s, Action: state.ActionSendData,
	})
	require.NotContains(t, p.Transitions, state.Transition{Source: m, Event: state.OtherRead, Destination: s})
}

func TestOtherElaboratorLeavesLinearTransitionUnchanged(t *testing.T) {
	p := msiWithInput()
	s, _ := p.Arena.Lookup("S")
	i, _ := p.Arena.Lookup("I")

	(&OtherElaborator{P: p, Model: Direct}).Elaborate()

	require.Contains(t, p.Transitions, state.Transition{Source: s, Event: state.OtherWrite, Destination: i})
}

func TestOtherElaboratorSkipsSelfLoops(t *testing.T) {
	p := msiWithInput()
	s, _ := p.Arena.Lookup("S")

	(&OtherElaborator{P: p, Model: Direct}).Elaborate()

	require.Contains(t, p.Transitions, state.Transition{Source: s, Event: state.OtherRead, Destination: s})
}
