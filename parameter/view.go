package parameter

// View controller tuning
const (
	// ScrollSpeed is the pan distance per arrow key press, in screen cells
	ScrollSpeed = 5

	// ZoomMin and ZoomMax bound the view scale factor k
	ZoomMin = 0.25
	ZoomMax = 4.0

	// ZoomStep is the multiplicative scale change per zoom key or wheel notch
	ZoomStep = 1.25
)

// Terminal front-end layout
const (
	// HUDHeight is the number of rows reserved at the bottom for the status bar
	HUDHeight = 1

	// CellAspect compensates for terminal cells being roughly twice as tall as wide
	CellAspect = 2.0
)
