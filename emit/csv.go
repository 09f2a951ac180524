package emit

import (
	"encoding/csv"
	"io"

	"github.com/cohgen/cohgen/state"
)

// CacheCSV writes the private-cache machine's transition table as
// Source,Event,Action,Destination rows (§6).
func CacheCSV(p *state.Protocol, w io.Writer) error {
	return writeCSV(p, w, p.Transitions)
}

// MemoryCSV writes the shared-memory machine's transition table in the same
// schema.
func MemoryCSV(p *state.Protocol, w io.Writer) error {
	return writeCSV(p, w, p.MemTransitions)
}

func writeCSV(p *state.Protocol, w io.Writer, transitions []state.Transition) error {
	cw := csv.NewWriter(w)
	header := []string{"Source", "Event", "Action", "Destination"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, t := range transitions {
		row := []string{p.Label(t.Source), string(t.Event), string(t.Action), p.Label(t.Destination)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
