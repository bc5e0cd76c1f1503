package render

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/stellar/parameter"
	"github.com/lixenwraith/stellar/status"
	"github.com/lixenwraith/stellar/view"
)

const (
	glyphSolid = '█'
	glyphSmall = '•'
	glyphDust  = '·'
)

// hudKeys are the registry entries shown in the status bar, in display order
var hudKeys = []struct {
	key   string
	label string
}{
	{status.KeyTicks, "tick"},
	{status.KeyLive, "live"},
	{status.KeyMerges, "merges"},
	{status.KeyTotalMass, "mass"},
	{status.KeyMaxMass, "max"},
	{status.KeyTickMicros, "µs"},
}

// TerminalRenderer draws the field onto a tcell screen through a pan/zoom view
// Field units map to cells by a fit scale so the whole field is visible at k=1
type TerminalRenderer struct {
	mu       sync.Mutex
	screen   tcell.Screen
	view     *view.State
	registry *status.Registry
	fill     colorful.Color

	width  int
	height int

	cursorX, cursorY int
	cursorK          float64
}

// NewTerminalRenderer creates a renderer over screen; registry may be nil
func NewTerminalRenderer(screen tcell.Screen, v *view.State, registry *status.Registry, fillColor string) (*TerminalRenderer, error) {
	fill, err := ParseFill(fillColor)
	if err != nil {
		return nil, err
	}
	r := &TerminalRenderer{
		screen:   screen,
		view:     v,
		registry: registry,
		fill:     fill,
		cursorK:  1,
	}
	r.width, r.height = screen.Size()
	return r, nil
}

// Clear starts a new frame and picks up terminal resizes
func (r *TerminalRenderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = r.screen.Size()
	r.screen.Clear()
}

// DrawSquare draws a particle of the given side centred on (x, y) in field units
func (r *TerminalRenderer) DrawSquare(x, y, side float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	scale := r.fitScale()
	if scale <= 0 {
		return
	}
	_, _, k := r.view.Transform()
	sx, sy := r.view.Apply(x, y)
	half := side * k / 2

	left := int(math.Floor((sx - half) * scale))
	right := int(math.Ceil((sx + half) * scale))
	top := int(math.Floor((sy - half) * scale / parameter.CellAspect))
	bottom := int(math.Ceil((sy + half) * scale / parameter.CellAspect))
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}

	cellSpan := side * k * scale
	glyph := glyphSolid
	switch {
	case cellSpan < 0.5:
		glyph = glyphDust
	case cellSpan < 1:
		glyph = glyphSmall
	}
	style := tcell.StyleDefault.Foreground(toTcell(ShadeForSize(r.fill, side)))

	fieldRows := r.fieldRows()
	for row := max(top, 0); row < min(bottom, fieldRows); row++ {
		for col := max(left, 0); col < min(right, r.width); col++ {
			r.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

// Present draws the status bar and flushes the frame
func (r *TerminalRenderer) Present() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drawHUD()
	r.screen.Show()
}

// SetCursor updates the view readout shown in the status bar
func (r *TerminalRenderer) SetCursor(x, y int, k float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cursorX, r.cursorY, r.cursorK = x, y, k
}

// ScreenToSurface converts a cell position to view surface units
func (r *TerminalRenderer) ScreenToSurface(col, row int) (float64, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	scale := r.fitScale()
	if scale <= 0 {
		return 0, 0
	}
	return (float64(col) + 0.5) / scale, (float64(row) + 0.5) * parameter.CellAspect / scale
}

// fitScale returns cells per surface unit horizontally; caller holds mu
func (r *TerminalRenderer) fitScale() float64 {
	w, h := r.view.Size()
	rows := r.fieldRows()
	if w <= 0 || h <= 0 || r.width <= 0 || rows <= 0 {
		return 0
	}
	return math.Min(float64(r.width)/w, float64(rows)*parameter.CellAspect/h)
}

func (r *TerminalRenderer) fieldRows() int {
	return r.height - parameter.HUDHeight
}

// drawHUD renders the status bar on the bottom row; caller holds mu
func (r *TerminalRenderer) drawHUD() {
	if r.height <= 0 || r.width <= 0 {
		return
	}
	row := r.height - 1
	bg := tcell.StyleDefault.Background(tcell.ColorBlack)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, row, ' ', nil, bg)
	}

	var snap map[string]string
	if r.registry != nil {
		snap = r.registry.Snapshot()
	}
	left := hudStatus(snap)
	right := fmt.Sprintf("pos (%d, %d) zoom %.2f", r.cursorX, r.cursorY, r.cursorK)

	leftStyle := bg.Foreground(colorHUD)
	if snap[status.KeyPaused] == "true" {
		leftStyle = bg.Foreground(colorPaused)
	}

	rightWidth := runewidth.StringWidth(right)
	leftMax := r.width - rightWidth - 1
	if leftMax < 0 {
		leftMax = r.width
		right = ""
		rightWidth = 0
	}
	r.drawText(0, row, runewidth.Truncate(left, leftMax, "…"), leftStyle)
	if right != "" {
		r.drawText(r.width-rightWidth, row, right, bg.Foreground(colorHUDDim))
	}
}

// hudStatus formats a registry snapshot for the status bar
func hudStatus(snap map[string]string) string {
	var b strings.Builder
	b.WriteString("stellar")
	if state, ok := snap[status.KeyState]; ok {
		b.WriteString(" [")
		b.WriteString(state)
		b.WriteString("]")
	}
	for _, h := range hudKeys {
		v, ok := snap[h.key]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, " %s %s", h.label, v)
	}

	// Metrics registered outside the fixed set are appended in key order
	var extra []string
	for key := range snap {
		if !isHUDKey(key) {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		fmt.Fprintf(&b, " %s %s", key, snap[key])
	}
	return b.String()
}

func isHUDKey(key string) bool {
	switch key {
	case status.KeyState, status.KeyPaused, status.KeyRuns:
		return true
	}
	for _, h := range hudKeys {
		if h.key == key {
			return true
		}
	}
	return false
}

// drawText writes s at (x, y) advancing by each rune's display width
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= r.width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		w := runewidth.RuneWidth(ch)
		if w < 1 {
			w = 1
		}
		x += w
	}
}
