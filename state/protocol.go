package state

// Protocol is the aggregate produced by the loader and grown by the engine:
// stable states, transient states, cache transitions, the frozen input
// transition snapshot used by latency analysis, and the synthesized memory
// machine (§3).
type Protocol struct {
	Arena *Arena

	StableStates []Handle
	PreOrdered   []Handle
	PostOrdered  []Handle

	Transitions      []Transition
	InputTransitions []Transition

	MemStates      []Handle
	MemTransitions []Transition

	LinearTransitions    []Transition
	NonLinearTransitions []Transition

	StallCount int
}

func NewProtocol(a *Arena) *Protocol {
	return &Protocol{Arena: a}
}

// AddStable registers a stable state and tracks it in StableStates. Idempotent
// by label (§3).
func (p *Protocol) AddStable(label string, enc Encoding) Handle {
	h := p.Arena.AddStable(label, enc)
	for _, s := range p.StableStates {
		if s == h {
			return h
		}
	}
	p.StableStates = append(p.StableStates, h)
	return h
}

// AddPreOrdered registers a pre-ordered transient, deduplicated by label
// (§3, mirrors addPreOrderedState). Returns the handle and whether it was
// newly created.
func (p *Protocol) AddPreOrdered(s State) (Handle, bool) {
	s.PreOrdered = true
	h, created := p.Arena.AddTransient(s)
	if created {
		p.PreOrdered = append(p.PreOrdered, h)
	}
	return h, created
}

// AddPostOrdered registers a post-ordered transient, deduplicated by label.
func (p *Protocol) AddPostOrdered(s State) (Handle, bool) {
	s.PreOrdered = false
	h, created := p.Arena.AddTransient(s)
	if created {
		p.PostOrdered = append(p.PostOrdered, h)
	}
	return h, created
}

func sameTriple(a, b Transition) bool {
	return a.Source == b.Source && a.Event == b.Event && a.Destination == b.Destination
}

// AddTransition appends t unless an equal (source, event, destination)
// triple is already present (§3).
func (p *Protocol) AddTransition(t Transition) {
	for _, existing := range p.Transitions {
		if sameTriple(existing, t) {
			return
		}
	}
	p.Transitions = append(p.Transitions, t)
}

// RemoveTransition deletes the first transition equal to t by triple. Used
// only by the Atomic-Own and Atomic-Other elaborators, which are the sole
// phases permitted to mutate a prior phase's output (§5).
func (p *Protocol) RemoveTransition(t Transition) {
	for i, existing := range p.Transitions {
		if sameTriple(existing, t) {
			p.Transitions = append(p.Transitions[:i], p.Transitions[i+1:]...)
			return
		}
	}
}

// AddMemTransition appends a memory-machine transition, deduplicated the
// same way as AddTransition.
func (p *Protocol) AddMemTransition(t Transition) {
	for _, existing := range p.MemTransitions {
		if sameTriple(existing, t) {
			return
		}
	}
	p.MemTransitions = append(p.MemTransitions, t)
}

// AddMemState registers a memory-machine state.
func (p *Protocol) AddMemState(h Handle) {
	for _, s := range p.MemStates {
		if s == h {
			return
		}
	}
	p.MemStates = append(p.MemStates, h)
}

// SnapshotInput freezes the current transition table as the input-transition
// set that latency analysis and the interleavers query via Delta (§5: "must
// be captured before Atomic-Own and Atomic-Other run").
func (p *Protocol) SnapshotInput() {
	p.InputTransitions = append([]Transition(nil), p.Transitions...)
}

// Delta looks up δ(src, evt) in the frozen input-transition snapshot. Every
// δ lookup performed by latency analysis and the interleavers goes through
// this function and never through the live, growing Transitions slice
// (§4.6, §4.7: "using the current input-transition table").
func (p *Protocol) Delta(src Handle, evt Event) (Handle, bool) {
	for _, t := range p.InputTransitions {
		if t.Source == src && t.Event == evt {
			return t.Destination, true
		}
	}
	return InvalidHandle, false
}

// InvalidStable returns the unique stable state with AP = invalid (§3). It
// panics if none exists: absence is an invariant violation (§7, category 3),
// not a recoverable condition.
func (p *Protocol) InvalidStable() Handle {
	for _, h := range p.StableStates {
		if p.Arena.Get(h).Encoding.AP == APInvalid {
			return h
		}
	}
	panic("state: protocol has no invalid stable state")
}

// EffectiveSource implements the one-hop getSource() walk called out in §9
// as load-bearing: a transient with no parent resolves to its own Source; a
// transient with a parent resolves to the PARENT's Source (one hop, not a
// recursive walk to the root of the chain). Only meaningful for transient
// states; callers must guard with IsTransient() first, matching every call
// site in the source algorithm.
func (p *Protocol) EffectiveSource(h Handle) Handle {
	s := p.Arena.Get(h)
	if s.Parent == InvalidHandle {
		return s.Source
	}
	return p.Arena.Get(s.Parent).Source
}

// EffectiveEncoding returns the (AP, SMP, PCP) triple used by weight
// comparisons: a stable state's own Encoding, or (per the one-hop rule
// above) the encoding of its effective source for a transient state.
func (p *Protocol) EffectiveEncoding(h Handle) Encoding {
	s := p.Arena.Get(h)
	if s.IsStable() {
		return s.Encoding
	}
	return p.Arena.Get(p.EffectiveSource(h)).Encoding
}

func (p *Protocol) APWeight(h Handle) int  { return p.EffectiveEncoding(h).APWeight() }
func (p *Protocol) SMPWeight(h Handle) int { return p.EffectiveEncoding(h).SMPWeight() }
func (p *Protocol) PCPWeight(h Handle) int { return p.EffectiveEncoding(h).PCPWeight() }

// SameWeight reports whether two states have weight-equal encodings, the
// "sameState" predicate used by §4.6's stationary case.
func (p *Protocol) SameWeight(a, b Handle) bool {
	return p.EffectiveEncoding(a).SameWeight(p.EffectiveEncoding(b))
}

// StableSourceOf returns a transition's stable source: the source itself if
// stable, or its effective source if transient (§3's Transition entity).
func (p *Protocol) StableSourceOf(t Transition) Handle {
	s := p.Arena.Get(t.Source)
	if s.IsStable() {
		return t.Source
	}
	return p.EffectiveSource(t.Source)
}

// StableDestinationOf returns a transition's stable destination: the
// destination itself if stable, or its IntendedDest if transient.
func (p *Protocol) StableDestinationOf(t Transition) Handle {
	d := p.Arena.Get(t.Destination)
	if d.IsStable() {
		return t.Destination
	}
	return d.IntendedDest
}

// IsNonLinearLatency reports whether any input transition was classified
// non-linear (§4.3's top-level classification result).
func (p *Protocol) IsNonLinearLatency() bool {
	return len(p.NonLinearTransitions) > 0
}

// IsExclusiveStateExists reports whether any stable state has AP =
// exclusiveRead (§4.10).
func (p *Protocol) IsExclusiveStateExists() bool {
	for _, h := range p.StableStates {
		if p.Arena.Get(h).Encoding.AP == APExclusiveRead {
			return true
		}
	}
	return false
}

// IsForwardingStateExists reports whether any stable state has AP = read,
// PCP = active, SMP = clean (§4.10).
func (p *Protocol) IsForwardingStateExists() bool {
	for _, h := range p.StableStates {
		enc := p.Arena.Get(h).Encoding
		if enc.AP == APRead && enc.PCP == PCPActive && enc.SMP == SMPClean {
			return true
		}
	}
	return false
}

// Label is a convenience accessor for a handle's label.
func (p *Protocol) Label(h Handle) string {
	return p.Arena.Get(h).Label
}
