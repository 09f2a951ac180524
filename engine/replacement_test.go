package engine

import (
	"testing"

	"github.com/cohgen/cohgen/state"
	"github.com/stretchr/testify/require"
)

func TestReplacementSynthesizerDirectlyReplacesCleanPassiveState(t *testing.T) {
	p := msiProtocol()
	s, _ := p.Arena.Lookup("S")
	i, _ := p.Arena.Lookup("I")

	(&ReplacementSynthesizer{P: p}).Synthesize()

	require.Contains(t, p.Transitions, state.Transition{Source: s, Event: state.Replacement, Destination: i})
}

func TestReplacementSynthesizerChainsDirtyActiveStateWithWriteBack(t *testing.T) {
	p := msiProtocol()
	m, _ := p.Arena.Lookup("M")
	i, _ := p.Arena.Lookup("I")

	(&ReplacementSynthesizer{P: p}).Synthesize()

	require.Len(t, p.PreOrdered, 1)
	ts := p.PreOrdered[0]
	require.Equal(t, "MI_A", p.Label(ts))
	require.Equal(t, i, p.Arena.Get(ts).IntendedDest)

	require.Contains(t, p.Transitions, state.Transition{Source: m, Event: state.Replacement, Destination: ts})
	require.Contains(t, p.Transitions, state.Transition{
		Source: ts, Event: state.EventOrdered, Destination: i, Action: state.ActionWriteBackData,
	})
}

func TestReplacementSynthesizerSkipsInvalidState(t *testing.T) {
	p := msiProtocol()
	i, _ := p.Arena.Lookup("I")

	(&ReplacementSynthesizer{P: p}).Synthesize()

	for _, tr := range p.Transitions {
		require.NotEqual(t, i, tr.Source, "the invalid stable state never has an outgoing replacement edge")
	}
}
