package engine

import (
	"fmt"

	"github.com/cohgen/cohgen/state"
)

// OwnElaborator expands own-events that upgrade access permission into a
// pre-ordered/post-ordered transient chain (§4.4): request issue (_AD),
// acknowledgement received (_D), data received (destination reached). This
// is the chain that lets a cache continue observing bus traffic while its
// own request to memory or a peer is still in flight.
type OwnElaborator struct {
	P *state.Protocol
}

// Elaborate mutates p.Transitions in place, replacing each qualifying
// own-event transition with its three-edge chain. It is one of the two
// phases permitted to remove a prior phase's transition (§5).
func (e *OwnElaborator) Elaborate() {
	snapshot := append([]state.Transition(nil), e.P.Transitions...)

	for _, t := range snapshot {
		if !t.Event.IsOwnEvent() {
			continue
		}

		srcEnc := e.P.Arena.Get(t.Source).Encoding
		dstEnc := e.P.Arena.Get(t.Destination).Encoding
		if srcEnc.APWeight() >= 2 || srcEnc.APWeight() == dstEnc.APWeight() {
			continue
		}

		srcLabel := e.P.Label(t.Source)
		dstLabel := e.P.Label(t.Destination)

		ts1Label := fmt.Sprintf("%s%s_AD", srcLabel, dstLabel)
		ts2Label := fmt.Sprintf("%s%s_D", srcLabel, dstLabel)

		ts1, _ := e.P.AddPreOrdered(state.State{
			Label:        ts1Label,
			Encoding:     srcEnc,
			Source:       t.Source,
			IntendedDest: t.Destination,
			Parent:       state.InvalidHandle,
		})

		ts2, _ := e.P.AddPostOrdered(state.State{
			Label:        ts2Label,
			Encoding:     dstEnc,
			Source:       t.Source,
			IntendedDest: t.Destination,
			Parent:       ts1,
		})

		e.P.RemoveTransition(t)
		e.P.AddTransition(state.Transition{Source: t.Source, Event: t.Event, Destination: ts1})
		e.P.AddTransition(state.Transition{Source: ts1, Event: state.EventOrdered, Destination: ts2})
		e.P.AddTransition(state.Transition{Source: ts2, Event: state.EventData, Destination: t.Destination})
	}
}
