package engine

import "github.com/cohgen/cohgen/state"

// StageObserver is invoked after each pipeline stage completes. It exists so
// a caller can observe intermediate protocol sizes without the engine itself
// building deep-copy-at-phase-boundaries scaffolding (§9 warns against
// that: "An implementer should not introduce it; it is diagnostic-only").
type StageObserver func(stage string, p *state.Protocol)

// Pipeline sequences the ten synthesis stages in the fixed order spec.md §2
// requires. Ordering between phases is fixed and never reordered at runtime
// (§5).
type Pipeline struct {
	P         *state.Protocol
	Model     ConfigModel
	Observers []StageObserver
}

func (pl *Pipeline) notify(stage string) {
	for _, obs := range pl.Observers {
		obs(stage, pl.P)
	}
}

// Run executes the full pipeline. assertf-raised Defects are recovered here
// and returned as a typed error so invariant violations never surface as a
// raw panic to a caller (§7, category 3).
func (pl *Pipeline) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if d, ok := r.(*Defect); ok {
				err = d
				return
			}
			panic(r)
		}
	}()

	p := pl.P

	p.EnumerateViews()
	pl.notify("state-view-enumeration")

	p.SnapshotInput()
	(&LatencyAnalyzer{P: p, Model: pl.Model}).ClassifyAll()
	pl.notify("latency-analysis")

	(&OwnElaborator{P: p}).Elaborate()
	pl.notify("atomic-own")

	(&OtherElaborator{P: p, Model: pl.Model}).Elaborate()
	pl.notify("atomic-other")

	preInterleaver := &PreOrderedInterleaver{P: p, Model: pl.Model}
	preInterleaver.Interleave()
	pl.notify("pre-ordered-interleave")

	(&PostOrderedInterleaver{P: p, Model: pl.Model}).Interleave()
	pl.notify("post-ordered-interleave")

	(&ReplacementSynthesizer{P: p}).Synthesize()
	pl.notify("replacement")

	// §4.8: replacements introduce new pre-ordered states, so the
	// interleaver runs again.
	preInterleaver.Interleave()
	pl.notify("pre-ordered-interleave-2")

	pl.stallCompletion()
	pl.notify("stall-completion")

	(&MemoryMachineSynthesizer{P: p, Model: pl.Model}).Synthesize()
	pl.notify("memory-machine")

	return nil
}

// stallCompletion gives every transient state still missing an OtherRead or
// OtherWrite edge a self-loop on that same event, annotated Stall (§4.9).
// The event identity is preserved (rather than collapsed to a bare "Stall"
// event) so the per-event totality property of §8 holds: a caller asking
// "does this transient have an OtherWrite edge" finds one even when it only
// stalls, matching the event-string-concatenation behavior of the original
// mechanism this was distilled from.
func (pl *Pipeline) stallCompletion() {
	p := pl.P
	transients := append(append([]state.Handle(nil), p.PreOrdered...), p.PostOrdered...)
	for _, h := range transients {
		for _, evt := range [2]state.Event{state.OtherRead, state.OtherWrite} {
			if pl.hasOutgoing(h, evt) {
				continue
			}
			p.AddTransition(state.Transition{Source: h, Event: evt, Destination: h, Action: state.ActionStall})
			p.StallCount++
		}
	}
}

func (pl *Pipeline) hasOutgoing(h state.Handle, evt state.Event) bool {
	for _, t := range pl.P.Transitions {
		if t.Source == h && t.Event == evt {
			return true
		}
	}
	return false
}
