package engine

import "github.com/cohgen/cohgen/state"

// ConfigModel selects the interconnect model latency analysis reasons about
// (§1, §4.3).
type ConfigModel string

const (
	Direct ConfigModel = "direct"
	Memory ConfigModel = "memory"
)

// LatencyAnalyzer decides whether a transition can be completed atomically
// under a chosen interconnect model (§4.3). It is the asymptotic worst-case
// access latency (WCAL) classifier at the heart of the synthesizer.
type LatencyAnalyzer struct {
	P      *state.Protocol
	Model  ConfigModel
}

// allCacheStates returns every state currently tracked by the protocol on
// the cache side: stable plus whatever transients elaboration has produced
// so far. Memory-machine states are tracked separately and never appear
// here.
func (a *LatencyAnalyzer) allCacheStates() []state.Handle {
	out := make([]state.Handle, 0, len(a.P.StableStates)+len(a.P.PreOrdered)+len(a.P.PostOrdered))
	out = append(out, a.P.StableStates...)
	out = append(out, a.P.PreOrdered...)
	out = append(out, a.P.PostOrdered...)
	return out
}

// racingSet selects EV and the candidate peer-state set for the given
// transition, per §4.3's case split on the triggering event and the
// source's PCP.
func (a *LatencyAnalyzer) racingSet(t state.Transition) (ev []state.RacingPair, candidates []state.Handle, skipBroadcast bool) {
	src := a.P.StableSourceOf(t)
	srcPCPActive := a.P.EffectiveEncoding(src).PCP == state.PCPActive

	switch t.Event {
	case state.OtherRead:
		skipBroadcast = true
		if srcPCPActive {
			return []state.RacingPair{{Own: state.OwnReadP, Other: state.OtherRead}},
				[]state.Handle{a.P.InvalidStable()}, skipBroadcast
		}
		return []state.RacingPair{
			{Own: state.OwnReadM, Other: state.OtherRead},
			{Own: state.OwnReadP, Other: state.OtherRead},
		}, a.allCacheStates(), skipBroadcast

	case state.OtherWrite:
		if srcPCPActive {
			return []state.RacingPair{{Own: state.OwnWriteP, Other: state.OtherWrite}}, a.allCacheStates(), false
		}
		return []state.RacingPair{
			{Own: state.OwnWriteM, Other: state.OtherWrite},
			{Own: state.OwnWriteP, Other: state.OtherWrite},
		}, a.allCacheStates(), false
	}
	return nil, nil, false
}

// effectiveSourceOf returns s.getSource() if s is transient (§9's one-hop
// walk), else s itself.
func (a *LatencyAnalyzer) effectiveSourceOf(s state.Handle) state.Handle {
	if a.P.Arena.Get(s).IsTransient() {
		return a.P.EffectiveSource(s)
	}
	return s
}

// Classify decides whether t is linear (false) or non-linear (true) under
// the analyzer's configured model (§4.3). Only OtherRead/OtherWrite are
// analysed; every other event is linear.
func (a *LatencyAnalyzer) Classify(t state.Transition) bool {
	if t.Event != state.OtherRead && t.Event != state.OtherWrite {
		return false
	}

	evSet, candidates, skipBroadcast := a.racingSet(t)
	stableSrc := a.P.StableSourceOf(t)

	for _, pair := range evSet {
		for _, s := range candidates {
			i := a.effectiveSourceOf(s)
			j := stableSrc

			sv, ok := a.P.ViewPair(i, j)
			if !ok {
				continue
			}

			d1, ok1 := a.P.Delta(sv.Get(0), pair.Own)
			d2, ok2 := a.P.Delta(sv.Get(1), pair.Other)
			if !ok1 || !ok2 {
				continue
			}

			if skipBroadcast && (d1 == sv.Get(0) || d2 == sv.Get(1)) {
				continue
			}

			cua := 0
			if pair.Other.IsOwnEvent() {
				cua = 1
			}

			ds := [2]state.Handle{d1, d2}

			if a.Model == Memory {
				before := a.P.EffectiveEncoding(sv.Get(cua))
				after := a.P.EffectiveEncoding(ds[cua])
				if after.SMPWeight() < before.SMPWeight() || after.PCPWeight() < before.PCPWeight() {
					return true
				}
				continue
			}

			// Direct model.
			beforeI, beforeJ := a.P.EffectiveEncoding(sv.Get(0)), a.P.EffectiveEncoding(sv.Get(1))
			afterI, afterJ := a.P.EffectiveEncoding(d1), a.P.EffectiveEncoding(d2)

			deltaSM := (afterI.SMPWeight() + afterJ.SMPWeight()) - (beforeI.SMPWeight() + beforeJ.SMPWeight())
			deltaPC := (afterI.PCPWeight() + afterJ.PCPWeight()) - (beforeI.PCPWeight() + beforeJ.PCPWeight())

			afterCua := [2]state.Encoding{afterI, afterJ}[cua]
			beforeCua := [2]state.Encoding{beforeI, beforeJ}[cua]

			if deltaSM < 0 && afterCua.SMP == beforeCua.SMP {
				return true
			}
			if deltaPC < 0 && afterCua.PCP == beforeCua.PCP {
				return true
			}
		}
	}
	return false
}

// ClassifyAll classifies every transition in p.InputTransitions, populating
// LinearTransitions and NonLinearTransitions (§4.3's "top-level
// classification").
func (a *LatencyAnalyzer) ClassifyAll() {
	for _, t := range a.P.InputTransitions {
		if a.Classify(t) {
			a.P.NonLinearTransitions = append(a.P.NonLinearTransitions, t)
		} else {
			a.P.LinearTransitions = append(a.P.LinearTransitions, t)
		}
	}
}

