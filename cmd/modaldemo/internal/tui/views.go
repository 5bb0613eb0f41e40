package tui

import (
	"math"

	"github.com/go-drift/modal/pkg/gestures"
	"github.com/go-drift/modal/pkg/graphics"
	"github.com/go-drift/modal/pkg/presenter"
)

// Panel is a solid block of terminal cells. Geometry is measured in cells
// with fractional positions rounded when drawn.
type Panel struct {
	Label string

	size    graphics.Size
	center  graphics.Offset
	opacity float64
	handler gestures.PointerHandler
	host    *Host
}

// NewPanel returns an opaque panel of size cells.
func NewPanel(label string, size graphics.Size) *Panel {
	return &Panel{Label: label, size: size, opacity: 1}
}

func (p *Panel) Frame() graphics.Rect { return graphics.RectFromCenter(p.center, p.size) }
func (p *Panel) Center() graphics.Offset { return p.center }
func (p *Panel) SetCenter(center graphics.Offset) { p.center = center }
func (p *Panel) Opacity() float64 { return p.opacity }
func (p *Panel) SetOpacity(opacity float64) { p.opacity = opacity }
func (p *Panel) SetPointerHandler(h gestures.PointerHandler) { p.handler = h }

// RemoveFromParent detaches the panel from its host.
func (p *Panel) RemoveFromParent() {
	if p.host != nil && p.host.child == p {
		p.host.child = nil
	}
	p.host = nil
}

// Attached reports whether the panel is on a host.
func (p *Panel) Attached() bool { return p.host != nil }

// Host is the terminal area the panel is presented over. It holds at most
// one child.
type Host struct {
	size  graphics.Size
	child *Panel
}

// NewHost returns a host of size cells.
func NewHost(size graphics.Size) *Host { return &Host{size: size} }

// Bounds returns the host rectangle in its own coordinates.
func (h *Host) Bounds() graphics.Rect {
	return graphics.RectFromLTWH(0, 0, h.size.Width, h.size.Height)
}

// SetSize resizes the host.
func (h *Host) SetSize(size graphics.Size) { h.size = size }

// AddChild attaches a Panel. Other content views are ignored.
func (h *Host) AddChild(child presenter.ContentView) {
	p, ok := child.(*Panel)
	if !ok {
		return
	}
	if h.child != nil && h.child != p {
		h.child.RemoveFromParent()
	}
	h.child = p
	p.host = h
}

// Child returns the attached panel, or nil.
func (h *Host) Child() *Panel { return h.child }

// HitTest returns the pointer handler of the panel covering cell, if any.
func (h *Host) HitTest(cell graphics.Offset) gestures.PointerHandler {
	if h.child == nil || h.child.handler == nil {
		return nil
	}
	if !cellRect(h.child.Frame()).Contains(cell) {
		return nil
	}
	return h.child.handler
}

// cellRect snaps r to whole cells.
func cellRect(r graphics.Rect) graphics.Rect {
	return graphics.Rect{
		Left:   math.Round(r.Left),
		Top:    math.Round(r.Top),
		Right:  math.Round(r.Right),
		Bottom: math.Round(r.Bottom),
	}
}
