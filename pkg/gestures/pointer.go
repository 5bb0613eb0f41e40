// Package gestures turns raw pointer events into drag callbacks.
package gestures

import "github.com/go-drift/modal/pkg/graphics"

// PointerPhase is the lifecycle stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown is a pointer touching down or a button press.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is a pointer moving while down.
	PointerPhaseMove
	// PointerPhaseUp is a pointer lifting.
	PointerPhaseUp
	// PointerPhaseCancel is the platform abandoning the pointer.
	PointerPhaseCancel
)

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
		return "unknown"
	}
}

// PointerEvent is one pointer sample in the host view's coordinate space.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
}

// PointerHandler consumes pointer events routed to a view.
type PointerHandler interface {
	HandlePointer(event PointerEvent)
}

// DragHandler receives the drag phases of a single-pointer pan. Every
// translation is measured from the pointer-down position.
type DragHandler interface {
	OnDragBegin(translation graphics.Offset)
	OnDragChange(translation graphics.Offset)
	OnDragEnd(translation graphics.Offset)
	OnDragCancel()
}
