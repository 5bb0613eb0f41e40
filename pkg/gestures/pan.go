package gestures

import (
	"math"

	"github.com/go-drift/modal/pkg/graphics"
)

// DefaultTouchSlop is the distance a pointer must travel before a pan
// recognizer reports a drag. Zero reports any movement.
const DefaultTouchSlop = 0.0

// PanRecognizer recognizes a free-direction drag from one pointer and
// forwards it to a DragHandler. Pointers other than the first one down are
// ignored until the tracked pointer lifts or is cancelled.
type PanRecognizer struct {
	// Handler receives the drag phases.
	Handler DragHandler
	// Slop is the distance the pointer must move before the drag begins.
	Slop float64

	pointer  int64           // current pointer being tracked
	tracking bool            // true between down and up/cancel
	start    graphics.Offset // pointer-down position
	started  bool            // true after OnDragBegin has been called
}

// NewPanRecognizer returns a recognizer forwarding to handler.
func NewPanRecognizer(handler DragHandler) *PanRecognizer {
	return &PanRecognizer{Handler: handler, Slop: DefaultTouchSlop}
}

// HandlePointer implements PointerHandler.
func (p *PanRecognizer) HandlePointer(event PointerEvent) {
	if event.Phase == PointerPhaseDown {
		if p.tracking {
			return
		}
		p.pointer = event.PointerID
		p.tracking = true
		p.start = event.Position
		p.started = false
		return
	}
	if !p.tracking || event.PointerID != p.pointer {
		return
	}

	translation := event.Position.Sub(p.start)
	switch event.Phase {
	case PointerPhaseMove:
		p.handleMove(translation)
	case PointerPhaseUp:
		p.tracking = false
		if p.started && p.Handler != nil {
			p.Handler.OnDragEnd(translation)
		}
	case PointerPhaseCancel:
		p.tracking = false
		if p.started && p.Handler != nil {
			p.Handler.OnDragCancel()
		}
	}
}

func (p *PanRecognizer) handleMove(translation graphics.Offset) {
	if p.Handler == nil {
		return
	}
	if !p.started {
		if math.Hypot(translation.X, translation.Y) <= p.Slop && p.Slop > 0 {
			return
		}
		p.started = true
		p.Handler.OnDragBegin(translation)
		return
	}
	p.Handler.OnDragChange(translation)
}

// Reset abandons the tracked pointer without notifying the handler.
func (p *PanRecognizer) Reset() {
	p.tracking = false
	p.started = false
}
