package testing

import (
	"github.com/go-drift/inkwell/pkg/gestures"
	"github.com/go-drift/inkwell/pkg/graphics"
)

// Press sends a pointer-down event to the handler.
func Press(h gestures.PointerHandler, pos graphics.Offset, id int64) {
	h.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
	})
}

// Move sends a pointer-move event to the handler.
func Move(h gestures.PointerHandler, pos graphics.Offset, id int64) {
	h.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     gestures.PointerPhaseMove,
	})
}

// Release sends a pointer-up event to the handler.
func Release(h gestures.PointerHandler, pos graphics.Offset, id int64) {
	h.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     gestures.PointerPhaseUp,
	})
}

// Cancel sends a pointer-cancel event to the handler.
func Cancel(h gestures.PointerHandler, id int64) {
	h.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Phase:     gestures.PointerPhaseCancel,
	})
}

// Tap sends a press immediately followed by a release at the same point.
func Tap(h gestures.PointerHandler, pos graphics.Offset, id int64) {
	Press(h, pos, id)
	Release(h, pos, id)
}
