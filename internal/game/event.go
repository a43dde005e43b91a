package game

// EventKind enumerates the discrete input symbols the controller consumes.
// The input layer delivers them one at a time, order-preserving.
type EventKind int

const (
	EventHeartbeat EventKind = iota // periodic "no input" tick, redraw only
	EventQuit
	EventRecalculate
	EventCharacterInput
	EventBackspace
	EventSubmit
	EventNextRound
	EventToggleTarget
)

// Event is one input symbol. Char is meaningful only for EventCharacterInput.
type Event struct {
	Kind EventKind
	Char rune
}

// Handle dispatches a single event to the corresponding state mutation. One
// event is fully processed before the next is read; a Heartbeat mutates
// nothing.
func (a *App) Handle(e Event) {
	switch e.Kind {
	case EventQuit:
		a.Quit()
	case EventRecalculate:
		a.Recalc()
	case EventCharacterInput:
		a.AddChar(e.Char)
	case EventBackspace:
		a.RemoveChar()
	case EventSubmit:
		a.SubmitGuess()
	case EventNextRound:
		a.NextRound()
	case EventToggleTarget:
		a.ToggleTarget()
	case EventHeartbeat:
		// Display refresh only.
	}
}
