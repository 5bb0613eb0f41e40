package presenter

import "github.com/go-drift/modal/pkg/graphics"

// ExtraSafeOffset is added past the host edge so the content is fully
// clipped at the anchor.
const ExtraSafeOffset = 5.0

// OffscreenAnchor returns the center at which content with the given frame
// and center lies entirely outside a host of size host, past edge.
//
// The frame is in the host's coordinate space. Trailing and Bottom anchors
// are measured against the host size, never the screen, so the result does
// not depend on where the host sits on screen.
func OffscreenAnchor(edge Edge, frame graphics.Rect, center graphics.Offset, host graphics.Size) graphics.Offset {
	anchor := center
	switch edge {
	case Leading:
		anchor.X -= frame.MaxX() + ExtraSafeOffset
	case Trailing:
		anchor.X += host.Width - frame.MinX() + ExtraSafeOffset
	case Top:
		anchor.Y -= frame.MaxY() + ExtraSafeOffset
	default:
		anchor.Y += host.Height - frame.MinY() + ExtraSafeOffset
	}
	return anchor
}
