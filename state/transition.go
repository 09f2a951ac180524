package state

// Event is a processor-side, bus-side, or synthetic event symbol (§4.1).
type Event string

const (
	OwnReadP  Event = "OwnReadP"
	OwnReadM  Event = "OwnReadM"
	OwnWriteP Event = "OwnWriteP"
	OwnWriteM Event = "OwnWriteM"

	OtherRead   Event = "OtherRead"
	OtherWrite  Event = "OtherWrite"
	Replacement Event = "Replacement"

	EventOrdered     Event = "Ordered"
	EventData        Event = "Data"
	EventStall       Event = "Stall"
	EventReceiveData Event = "Receive data"

	GetS Event = "GetS"
	GetM Event = "GetM"
	PutM Event = "PutM"
)

// IsOwnEvent reports whether evt is one of the four own-events (§4.1).
func (e Event) IsOwnEvent() bool {
	switch e {
	case OwnReadP, OwnReadM, OwnWriteP, OwnWriteM:
		return true
	default:
		return false
	}
}

// Action is the action label attached to a Transition (§3).
type Action string

const (
	ActionNone               Action = ""
	ActionSendData           Action = "Send data"
	ActionWriteBackData      Action = "Write-back data"
	ActionCommunicateMessage Action = "Communicate message"
	ActionSetOwner           Action = "Set owner"
	ActionSetOwnerSendData   Action = "Set owner + Send data"
	ActionStall              Action = "Stall"
	ActionOrdered            Action = "Ordered"
	ActionData               Action = "Data"
	ActionReceiveData        Action = "Receive data"
	ActionReplacement        Action = "Replacement"
)

// Transition is an ordered (source, event, destination) triple with an
// optional action. Equality is by the triple of source-label, event,
// destination-label (§3).
type Transition struct {
	Source      Handle
	Event       Event
	Destination Handle
	Action      Action
}

// RacingPair is an (own, other) event pair considered by latency analysis
// (§4.1).
type RacingPair struct {
	Own   Event
	Other Event
}

var racingPairs = []RacingPair{
	{OwnWriteM, OtherWrite},
	{OwnWriteP, OtherWrite},
	{OwnReadM, OtherRead},
	{OwnReadP, OtherRead},
}

// RacingPairs returns the racing (own, other) event pairs, §4.1.
func RacingPairs() []RacingPair {
	out := make([]RacingPair, len(racingPairs))
	copy(out, racingPairs)
	return out
}
