package gestures

import (
	"time"

	"github.com/go-drift/inkwell/pkg/animation"
	"github.com/go-drift/inkwell/pkg/graphics"
)

// TouchSession is one live press gesture, from down to up or cancel.
type TouchSession struct {
	// ID is the pointer identifier the session is keyed by.
	ID int64
	// Origin is where the press began.
	Origin graphics.Offset
	// Position is the most recent pointer location.
	Position graphics.Offset
	// Start is when the press began.
	Start time.Time
	// Phase is the last phase observed for this session.
	Phase PointerPhase
}

// TouchTracker classifies pointer events into press lifecycles and emits
// press signals. It owns the set of live [TouchSession] values; downstream
// consumers (the ripple engine) associate their own state by pointer ID and
// never hold a session pointer.
//
// TouchTracker does no rendering and keeps no animation state. Events for
// unknown pointer IDs are ignored, never an error: an Up or Move may arrive
// after a Cancel already removed the session.
//
// Not safe for concurrent use; the host delivers events from its UI loop.
type TouchTracker struct {
	sessions map[int64]*TouchSession

	// OnPressStart fires when a new press begins.
	OnPressStart func(id int64, position graphics.Offset)
	// OnPressMove fires when a live press moves.
	OnPressMove func(id int64, position graphics.Offset)
	// OnPressRelease fires when a press ends normally, before the
	// session is discarded.
	OnPressRelease func(id int64)
	// OnPressCancel fires when a press is aborted, before the session
	// is discarded.
	OnPressCancel func(id int64)
}

// NewTouchTracker creates an empty tracker.
func NewTouchTracker() *TouchTracker {
	return &TouchTracker{
		sessions: make(map[int64]*TouchSession),
	}
}

// HandlePointer feeds one raw event through the tracker.
func (t *TouchTracker) HandlePointer(event PointerEvent) {
	switch event.Phase {
	case PointerPhaseDown:
		if _, live := t.sessions[event.PointerID]; live {
			// Duplicate down for a live pointer; keep the original session.
			return
		}
		t.sessions[event.PointerID] = &TouchSession{
			ID:       event.PointerID,
			Origin:   event.Position,
			Position: event.Position,
			Start:    animation.Now(),
			Phase:    PointerPhaseDown,
		}
		if t.OnPressStart != nil {
			t.OnPressStart(event.PointerID, event.Position)
		}

	case PointerPhaseMove:
		session, live := t.sessions[event.PointerID]
		if !live {
			return
		}
		session.Position = event.Position
		session.Phase = PointerPhaseMove
		if t.OnPressMove != nil {
			t.OnPressMove(event.PointerID, event.Position)
		}

	case PointerPhaseUp:
		session, live := t.sessions[event.PointerID]
		if !live {
			return
		}
		session.Phase = PointerPhaseUp
		if t.OnPressRelease != nil {
			t.OnPressRelease(event.PointerID)
		}
		delete(t.sessions, event.PointerID)

	case PointerPhaseCancel:
		session, live := t.sessions[event.PointerID]
		if !live {
			return
		}
		session.Phase = PointerPhaseCancel
		if t.OnPressCancel != nil {
			t.OnPressCancel(event.PointerID)
		}
		delete(t.sessions, event.PointerID)
	}
}

// Session returns the live session for a pointer ID, or nil.
func (t *TouchTracker) Session(id int64) *TouchSession {
	return t.sessions[id]
}

// ActiveCount returns the number of live sessions.
func (t *TouchTracker) ActiveCount() int {
	return len(t.sessions)
}
