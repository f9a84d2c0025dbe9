package lifecycle

import (
	"github.com/bebop-dex/go-sdk/protocol"
)

type State string

const (
	StateQuoteReceived State = "QuoteReceived"
	StateSigned        State = "Signed"
	StateSubmitted     State = "Submitted"
	StatePending       State = "Pending"
	StateSettled       State = "Settled"
	StateConfirmed     State = "Confirmed"
	StateFailed        State = "Failed"
	StateTimedOut      State = "TimedOut"
)

var transitions = map[State][]State{
	StateQuoteReceived: {StateSigned},
	StateSigned:        {StateSubmitted, StateFailed},
	StateSubmitted:     {StatePending, StateSettled, StateConfirmed, StateFailed, StateTimedOut},
	StatePending:       {StatePending, StateSettled, StateConfirmed, StateFailed, StateTimedOut},
}

// CanTransition reports whether the lifecycle may move from s to next.
// Terminal states have no successors.
func (s State) CanTransition(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s State) Terminal() bool {
	switch s {
	case StateSettled, StateConfirmed, StateFailed, StateTimedOut:
		return true
	default:
		return false
	}
}

func (s State) Success() bool {
	return s == StateSettled || s == StateConfirmed
}

// StateFromStatus maps an API order status onto the lifecycle.
// Success is not final and keeps the order pending.
func StateFromStatus(status protocol.OrderStatus) State {
	switch status {
	case protocol.OrderStatusSettled:
		return StateSettled
	case protocol.OrderStatusConfirmed:
		return StateConfirmed
	case protocol.OrderStatusFailed:
		return StateFailed
	default:
		return StatePending
	}
}
