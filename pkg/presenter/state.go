package presenter

import "github.com/go-drift/modal/pkg/graphics"

// Session is the live state of one present to dismiss cycle.
type Session struct {
	Content ContentView
	Host    HostView
	Edge    Edge
	// OriginalCenter is the content's resting center, captured when the
	// session starts and never changed afterwards.
	OriginalCenter graphics.Offset
}

// State is either Idle or Presented.
type State interface {
	isState()
}

// Idle means no modal is on screen.
type Idle struct{}

// Presented carries the session of the modal currently on screen.
type Presented struct {
	Session Session
}

func (Idle) isState()      {}
func (Presented) isState() {}
