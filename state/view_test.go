package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func msiProtocol() *Protocol {
	a := NewArena()
	p := NewProtocol(a)
	p.AddStable("I", Encoding{AP: APInvalid, SMP: SMPClean, PCP: PCPPassive})
	p.AddStable("S", Encoding{AP: APRead, SMP: SMPClean, PCP: PCPPassive})
	p.AddStable("M", Encoding{AP: APWrite, SMP: SMPDirty, PCP: PCPActive})
	return p
}

func TestViewPairRejectsOverweightAP(t *testing.T) {
	p := msiProtocol()
	m, _ := p.Arena.Lookup("M")
	s, _ := p.Arena.Lookup("S")
	// AP weights 2 + 1 = 3 > 2: invalid.
	_, ok := p.ViewPair(m, s)
	require.False(t, ok)
}

func TestViewPairRejectsOverweightPCP(t *testing.T) {
	p := msiProtocol()
	m1, _ := p.Arena.Lookup("M")
	m2 := p.Arena.AddStable("M2", Encoding{AP: APInvalid, SMP: SMPClean, PCP: PCPActive})
	// PCP weights 1 + 1 = 2 > 1: invalid, regardless of AP.
	_, ok := p.ViewPair(m1, m2)
	require.False(t, ok)
}

func TestViewPairAcceptsValidPair(t *testing.T) {
	p := msiProtocol()
	i, _ := p.Arena.Lookup("I")
	s, _ := p.Arena.Lookup("S")
	v, ok := p.ViewPair(i, s)
	require.True(t, ok)
	require.Equal(t, i, v.Get(0))
	require.Equal(t, s, v.Get(1))
}

func TestEnumerateViewsOverStableStates(t *testing.T) {
	p := msiProtocol()
	views := p.EnumerateViews()
	require.NotEmpty(t, views)

	for _, v := range views {
		require.LessOrEqual(t, p.APWeight(v.I)+p.APWeight(v.J), 2)
		require.LessOrEqual(t, p.PCPWeight(v.I)+p.PCPWeight(v.J), 1)
	}
}
