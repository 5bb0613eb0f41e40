package presenter

import (
	"reflect"

	"github.com/go-drift/modal/pkg/gestures"
	"github.com/go-drift/modal/pkg/graphics"
)

// ContentView is the panel being presented. The host keeps ownership; the
// presenter only borrows it for the length of a session.
//
// Geometry is in the coordinate space of the HostView it is added to.
type ContentView interface {
	Frame() graphics.Rect
	Center() graphics.Offset
	SetCenter(center graphics.Offset)
	Opacity() float64
	SetOpacity(opacity float64)
	// SetPointerHandler routes the view's pointer events to h. Nil detaches
	// the current handler.
	SetPointerHandler(h gestures.PointerHandler)
	// RemoveFromParent detaches the view from its host.
	RemoveFromParent()
}

// HostView is the view the content is presented over.
type HostView interface {
	Bounds() graphics.Rect
	AddChild(child ContentView)
}

// isNil reports whether v is nil, including a nil pointer (or other nilable
// value) stored in a non-nil interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
