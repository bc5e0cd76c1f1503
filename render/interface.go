package render

// Renderer receives one frame per publish: Clear, one DrawSquare per live particle, Present
// Calls for a frame arrive on a single goroutine and never interleave with another frame
type Renderer interface {
	Clear()
	DrawSquare(x, y, side float64)
	Present()
}

// CursorSink is optionally implemented by renderers that display the view readout
type CursorSink interface {
	SetCursor(x, y int, k float64)
}

// Discard is a Renderer that draws nothing
type Discard struct{}

func (Discard) Clear()                        {}
func (Discard) DrawSquare(x, y, side float64) {}
func (Discard) Present()                      {}
