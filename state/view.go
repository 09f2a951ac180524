package state

// View is an indexed pair (s_i, s_j) representing two caches' concurrent
// states (§3). Validity requires neither coordinate absent, AP-weight sum
// <= 2, and PCP-weight sum <= 1.
type View struct {
	I, J Handle
}

// ViewPair builds the View for (i, j), validating it per §3's predicate.
func (p *Protocol) ViewPair(i, j Handle) (View, bool) {
	return p.newView(i, j)
}

func (p *Protocol) newView(i, j Handle) (View, bool) {
	if i == InvalidHandle || j == InvalidHandle {
		return View{}, false
	}
	v := View{I: i, J: j}
	if p.APWeight(i)+p.APWeight(j) > 2 {
		return View{}, false
	}
	if p.PCPWeight(i)+p.PCPWeight(j) > 1 {
		return View{}, false
	}
	return v, true
}

// Get returns the idx-th state of the view: 0 for I, anything else for J.
func (v View) Get(idx int) Handle {
	if idx == 0 {
		return v.I
	}
	return v.J
}

// EnumerateViews constructs U, the set of valid two-cache concurrent-state
// views over the stable state set (§4.2).
func (p *Protocol) EnumerateViews() []View {
	var u []View
	for _, si := range p.StableStates {
		for _, sj := range p.StableStates {
			if v, ok := p.newView(si, sj); ok {
				u = append(u, v)
			}
		}
	}
	return u
}
