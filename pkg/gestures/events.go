// Package gestures defines raw pointer events and the touch tracker that
// classifies them into per-gesture press lifecycles.
package gestures

import (
	"fmt"

	"github.com/go-drift/inkwell/pkg/graphics"
)

// PointerPhase identifies where a pointer event sits in the touch lifecycle.
type PointerPhase int

const (
	// PointerPhaseDown means a touch or button press began.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove means the pointer moved while pressed.
	PointerPhaseMove
	// PointerPhaseUp means the press ended normally.
	PointerPhaseUp
	// PointerPhaseCancel means the system aborted the gesture
	// (e.g. the host scrolled away or the app lost focus).
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is one raw input event delivered by the embedding host.
//
// For a given PointerID the host delivers Down before any Move, Up, or
// Cancel. Simultaneous touches carry distinct PointerIDs.
type PointerEvent struct {
	// PointerID distinguishes concurrent touches.
	PointerID int64
	// Position is the event location in the receiver's coordinate space.
	Position graphics.Offset
	// Delta is the movement since the previous event for this pointer.
	Delta graphics.Offset
	// Phase is the lifecycle phase of this event.
	Phase PointerPhase
}

// PointerHandler is implemented by components that consume pointer events.
type PointerHandler interface {
	HandlePointer(event PointerEvent)
}
