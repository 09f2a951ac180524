package state

// Handle is an index into an Arena. Entities are referenced by Handle, never
// by pointer or by re-scanning labels, once constructed (§9: arena + index
// handles instead of a mutable graph with cross-references).
type Handle int32

// InvalidHandle marks the absence of a reference, e.g. a stable state's
// Parent or a stable-only field on a transient.
const InvalidHandle Handle = -1

// Kind distinguishes stable states from synthesized transient ones. It is a
// plain field query, never a method named the same as the field: the source
// material's "isStableState" boolean-field/method collision (§9) is avoided
// here by exposing only the IsStable/IsTransient predicate methods below.
type Kind uint8

const (
	KindStable Kind = iota
	KindTransient
)

// State is a node of the cache-protocol graph. Stable states are fully
// described by Encoding. Transient states additionally carry Source (the
// stable or transient state elaboration departed from), IntendedDest (the
// stable state elaboration is working towards), an optional Parent for
// chained transients, and a PreOrdered/post-ordered classification.
type State struct {
	Label        string
	Kind         Kind
	Encoding     Encoding
	Source       Handle
	IntendedDest Handle
	Parent       Handle
	PreOrdered   bool
}

func (s *State) IsStable() bool    { return s.Kind == KindStable }
func (s *State) IsTransient() bool { return s.Kind == KindTransient }

// Arena is the append-only store of States, addressed by Handle and indexed
// by label for the loader's symbol table and for addState-family
// idempotence (§3: "addState-family operations are idempotent by label").
type Arena struct {
	states []State
	index  map[string]Handle
}

func NewArena() *Arena {
	return &Arena{index: make(map[string]Handle)}
}

func (a *Arena) Get(h Handle) *State {
	return &a.states[h]
}

func (a *Arena) Lookup(label string) (Handle, bool) {
	h, ok := a.index[label]
	return h, ok
}

func (a *Arena) Len() int { return len(a.states) }

// AddStable inserts a stable state, returning the existing handle if the
// label was already present.
func (a *Arena) AddStable(label string, enc Encoding) Handle {
	if h, ok := a.index[label]; ok {
		return h
	}
	h := Handle(len(a.states))
	a.states = append(a.states, State{
		Label:        label,
		Kind:         KindStable,
		Encoding:     enc,
		Source:       InvalidHandle,
		IntendedDest: InvalidHandle,
		Parent:       InvalidHandle,
	})
	a.index[label] = h
	return h
}

// AddTransient inserts a transient state, returning (handle, true) if newly
// created, or (existing handle, false) if one with the same label already
// exists.
func (a *Arena) AddTransient(s State) (Handle, bool) {
	if h, ok := a.index[s.Label]; ok {
		return h, false
	}
	s.Kind = KindTransient
	h := Handle(len(a.states))
	a.states = append(a.states, s)
	a.index[s.Label] = h
	return h, true
}
