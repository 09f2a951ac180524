// Package state defines the coherence-protocol data model: the AP/SMP/PCP
// coordinate system, stable and transient states, transitions, state views,
// and the Protocol aggregate that the engine package elaborates.
package state

import "fmt"

// AP is the access-permission coordinate of a cache state.
type AP uint8

const (
	APInvalid AP = iota
	APRead
	APExclusiveRead
	APWrite
)

func (a AP) Weight() int {
	switch a {
	case APInvalid:
		return 0
	case APRead:
		return 1
	case APExclusiveRead, APWrite:
		return 2
	default:
		panic(fmt.Sprintf("state: unknown AP %d", a))
	}
}

func (a AP) String() string {
	switch a {
	case APInvalid:
		return "invalid"
	case APRead:
		return "read"
	case APExclusiveRead:
		return "exclusiveRead"
	case APWrite:
		return "write"
	default:
		return fmt.Sprintf("AP(%d)", uint8(a))
	}
}

func ParseAP(s string) (AP, error) {
	switch s {
	case "invalid":
		return APInvalid, nil
	case "read":
		return APRead, nil
	case "exclusiveRead":
		return APExclusiveRead, nil
	case "write":
		return APWrite, nil
	}
	return 0, fmt.Errorf("unknown access permission %q", s)
}

// SMP is the shared-memory-cleanliness coordinate.
type SMP uint8

const (
	SMPClean SMP = iota
	SMPDirty
)

func (m SMP) Weight() int {
	if m == SMPDirty {
		return 1
	}
	return 0
}

func (m SMP) String() string {
	if m == SMPDirty {
		return "dirty"
	}
	return "clean"
}

func ParseSMP(s string) (SMP, error) {
	switch s {
	case "clean":
		return SMPClean, nil
	case "dirty":
		return SMPDirty, nil
	}
	return 0, fmt.Errorf("unknown shared-memory permission %q", s)
}

// PCP is the peer-copy-presence coordinate. Active means this cache must
// supply data to a requesting peer.
type PCP uint8

const (
	PCPPassive PCP = iota
	PCPActive
)

func (p PCP) Weight() int {
	if p == PCPActive {
		return 1
	}
	return 0
}

func (p PCP) String() string {
	if p == PCPActive {
		return "active"
	}
	return "passive"
}

func ParsePCP(s string) (PCP, error) {
	switch s {
	case "passive":
		return PCPPassive, nil
	case "active":
		return PCPActive, nil
	}
	return 0, fmt.Errorf("unknown peer-copy permission %q", s)
}

// Encoding is the (AP, SMP, PCP) triple that characterizes a stable state,
// or the effective encoding recorded on a transient state (§3, §4.4-4.6).
type Encoding struct {
	AP  AP
	SMP SMP
	PCP PCP
}

func (e Encoding) APWeight() int  { return e.AP.Weight() }
func (e Encoding) SMPWeight() int { return e.SMP.Weight() }
func (e Encoding) PCPWeight() int { return e.PCP.Weight() }

// SameWeight reports whether two encodings are equal under the weight maps,
// the "sameState" equality used by §4.6's stationary case.
func (e Encoding) SameWeight(o Encoding) bool {
	return e.APWeight() == o.APWeight() && e.SMPWeight() == o.SMPWeight() && e.PCPWeight() == o.PCPWeight()
}

func (e Encoding) String() string {
	return fmt.Sprintf("(%s, %s, %s)", e.AP, e.SMP, e.PCP)
}
