// Package presets supplies the stock stable-state protocols a user can
// select with the --preset flag (§4.11) instead of authoring an input
// file: MSI, MESI, and MOESI. Each preset is expressed in the loader's own
// grammar and parsed through loader.Load, so a preset is exercised by the
// exact same code path a hand-written input file is.
package presets

import (
	"fmt"
	"strings"

	"github.com/cohgen/cohgen/loader"
	"github.com/cohgen/cohgen/state"
)

// Name identifies a stock protocol.
type Name string

const (
	MSI   Name = "msi"
	MESI  Name = "mesi"
	MOESI Name = "moesi"
)

// msi is the three-state invalid/shared/modified protocol: every read miss
// lands in S regardless of who serves it, since MSI has no exclusive state
// to distinguish a memory-served read (no sharer) from a peer-served one.
const msi = `
# @ State modeling
I -> (invalid, passive, clean)
S -> (read, passive, clean)
M -> (write, active, dirty)
# @ Txn specs
(I, OwnReadP) -> S
(I, OwnReadM) -> S
(I, OwnWriteP) -> M
(I, OwnWriteM) -> M
(S, OwnWriteP) -> M
(S, OwnWriteM) -> M
(M, OtherRead) -> S
(M, OtherWrite) -> I
(S, OtherRead) -> S
(S, OtherWrite) -> I
`

// mesi adds E: a peer-served read (OwnReadP) still lands in S, since a live
// peer copy implies sharing, but a memory-served read (OwnReadM) lands in
// E, since no peer held a copy to share with.
const mesi = `
# @ State modeling
I -> (invalid, passive, clean)
S -> (read, passive, clean)
E -> (exclusiveRead, passive, clean)
M -> (write, active, dirty)
# @ Txn specs
(I, OwnReadP) -> S
(I, OwnReadM) -> E
(I, OwnWriteP) -> M
(I, OwnWriteM) -> M
(S, OwnWriteP) -> M
(S, OwnWriteM) -> M
(E, OwnWriteP) -> M
(E, OwnWriteM) -> M
(M, OtherRead) -> S
(M, OtherWrite) -> I
(E, OtherRead) -> S
(E, OtherWrite) -> I
(S, OtherRead) -> S
(S, OtherWrite) -> I
`

// moesi adds O: a dirty cache that is snooped for a read keeps the only
// up-to-date copy and stays obliged to supply it (PCP active, SMP dirty),
// letting the requester finish without forcing a write-back to memory
// first.
const moesi = `
# @ State modeling
I -> (invalid, passive, clean)
S -> (read, passive, clean)
E -> (exclusiveRead, passive, clean)
O -> (read, active, dirty)
M -> (write, active, dirty)
# @ Txn specs
(I, OwnReadP) -> S
(I, OwnReadM) -> E
(I, OwnWriteP) -> M
(I, OwnWriteM) -> M
(S, OwnWriteP) -> M
(S, OwnWriteM) -> M
(E, OwnWriteP) -> M
(E, OwnWriteM) -> M
(O, OwnWriteP) -> M
(O, OwnWriteM) -> M
(M, OtherRead) -> O
(M, OtherWrite) -> I
(E, OtherRead) -> S
(E, OtherWrite) -> I
(O, OtherRead) -> O
(O, OtherWrite) -> I
(S, OtherRead) -> S
(S, OtherWrite) -> I
`

var sources = map[Name]string{
	MSI:   msi,
	MESI:  mesi,
	MOESI: moesi,
}

// Load parses the named preset into a fresh *state.Protocol.
func Load(name Name) (*state.Protocol, error) {
	src, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("presets: unknown preset %q", name)
	}
	return loader.Load(strings.NewReader(src))
}

// Names lists the available preset names, in a stable order, for help text
// and validation.
func Names() []Name {
	return []Name{MSI, MESI, MOESI}
}
