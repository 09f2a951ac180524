package engine

import (
	"fmt"

	"github.com/cohgen/cohgen/state"
)

// OtherElaborator inserts a pre-ordered transient for any other-event that
// degrades a non-invalid source when the transition is non-linear (§4.5).
type OtherElaborator struct {
	P     *state.Protocol
	Model ConfigModel
}

func (e *OtherElaborator) Elaborate() {
	snapshot := append([]state.Transition(nil), e.P.Transitions...)
	analyzer := &LatencyAnalyzer{P: e.P, Model: e.Model}

	for _, t := range snapshot {
		if t.Event != state.OtherRead && t.Event != state.OtherWrite {
			continue
		}
		if e.P.Label(t.Source) == e.P.Label(t.Destination) {
			continue
		}
		srcEnc := e.P.Arena.Get(t.Source).Encoding
		if srcEnc.APWeight() == 0 {
			continue
		}

		if analyzer.Classify(t) {
			tsLabel := fmt.Sprintf("%s%s_A", e.P.Label(t.Source), e.P.Label(t.Destination))
			ts, _ := e.P.AddPreOrdered(state.State{
				Label:        tsLabel,
				Encoding:     srcEnc,
				Source:       t.Source,
				IntendedDest: t.Destination,
				Parent:       state.InvalidHandle,
			})

			e.P.RemoveTransition(t)
			e.P.AddTransition(state.Transition{Source: t.Source, Event: t.Event, Destination: ts})

			action := state.ActionSendData
			if e.Model == Memory {
				action = state.ActionWriteBackData
			}
			e.P.AddTransition(state.Transition{Source: ts, Event: state.EventOrdered, Destination: t.Destination, Action: action})
		} else if srcEnc.PCP == state.PCPActive && e.Model == Direct {
			t.Action = state.ActionSendData
			e.P.RemoveTransition(state.Transition{Source: t.Source, Event: t.Event, Destination: t.Destination})
			e.P.AddTransition(t)
		}
	}
}
