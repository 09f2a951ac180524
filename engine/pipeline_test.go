package engine

import (
	"testing"

	"github.com/cohgen/cohgen/presets"
	"github.com/cohgen/cohgen/state"
	"github.com/stretchr/testify/require"
)

func hasOutgoingEvent(p *state.Protocol, h state.Handle, evt state.Event) bool {
	for _, t := range p.Transitions {
		if t.Source == h && t.Event == evt {
			return true
		}
	}
	return false
}

func requireTotalOtherEvents(t *testing.T, p *state.Protocol) {
	t.Helper()
	for _, h := range append(append([]state.Handle(nil), p.PreOrdered...), p.PostOrdered...) {
		require.True(t, hasOutgoingEvent(p, h, state.OtherRead), "%s missing an OtherRead edge after stall completion", p.Label(h))
		require.True(t, hasOutgoingEvent(p, h, state.OtherWrite), "%s missing an OtherWrite edge after stall completion", p.Label(h))
	}
}

func TestPipelineRunMSIDirectProducesStructurallyValidProtocol(t *testing.T) {
	p, err := presets.Load(presets.MSI)
	require.NoError(t, err)

	pl := &Pipeline{P: p, Model: Direct}
	require.NoError(t, pl.Run())

	_, hasExclusive := p.Arena.Lookup("SM_X")
	_, hasForwarding := p.Arena.Lookup("SM_F")
	require.False(t, hasExclusive, "MSI has no exclusiveRead stable state, so no SM_X is synthesized")
	require.False(t, hasForwarding)

	_, hasMemInvalid := p.Arena.Lookup("SM_I")
	_, hasMemModified := p.Arena.Lookup("SM_M")
	require.True(t, hasMemInvalid)
	require.True(t, hasMemModified)

	require.True(t, p.IsNonLinearLatency(), "(M, OtherRead, S) classifies as non-linear under Direct")
	require.Len(t, p.LinearTransitions, len(p.InputTransitions)-len(p.NonLinearTransitions))

	requireTotalOtherEvents(t, p)
}

func TestPipelineRunMESIDirectSynthesizesExclusiveMemoryState(t *testing.T) {
	p, err := presets.Load(presets.MESI)
	require.NoError(t, err)

	pl := &Pipeline{P: p, Model: Direct}
	require.NoError(t, pl.Run())

	_, hasExclusive := p.Arena.Lookup("SM_X")
	require.True(t, hasExclusive, "MESI's E state makes IsExclusiveStateExists true, so the memory machine gets SM_X")

	requireTotalOtherEvents(t, p)
}

func TestPipelineRunMOESIMemoryModelSucceeds(t *testing.T) {
	p, err := presets.Load(presets.MOESI)
	require.NoError(t, err)

	pl := &Pipeline{P: p, Model: Memory}
	require.NoError(t, pl.Run())

	require.NotEmpty(t, p.MemStates)
	require.NotEmpty(t, p.MemTransitions)
	requireTotalOtherEvents(t, p)
}

func TestPipelineRunNotifiesEveryStageInOrder(t *testing.T) {
	p, err := presets.Load(presets.MSI)
	require.NoError(t, err)

	var stages []string
	pl := &Pipeline{
		P:     p,
		Model: Direct,
		Observers: []StageObserver{
			func(stage string, _ *state.Protocol) { stages = append(stages, stage) },
		},
	}
	require.NoError(t, pl.Run())

	require.Equal(t, []string{
		"state-view-enumeration",
		"latency-analysis",
		"atomic-own",
		"atomic-other",
		"pre-ordered-interleave",
		"post-ordered-interleave",
		"replacement",
		"pre-ordered-interleave-2",
		"stall-completion",
		"memory-machine",
	}, stages)
}
