package render

import "sync"

// CommandKind tags a recorded draw command
type CommandKind uint8

const (
	CommandClear CommandKind = iota
	CommandSquare
	CommandPresent
)

// Command is one recorded Renderer call
type Command struct {
	Kind       CommandKind
	X, Y, Side float64
}

// Recorder keeps the most recent complete frame; used headless and in tests
type Recorder struct {
	mu      sync.Mutex
	pending []Command
	last    []Command
	frames  int
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending[:0], Command{Kind: CommandClear})
}

func (r *Recorder) DrawSquare(x, y, side float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, Command{Kind: CommandSquare, X: x, Y: y, Side: side})
}

func (r *Recorder) Present() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, Command{Kind: CommandPresent})
	r.last = append(r.last[:0], r.pending...)
	r.pending = r.pending[:0]
	r.frames++
}

// Frames returns the number of presented frames
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// LastFrame returns a copy of the most recently presented frame's commands
func (r *Recorder) LastFrame() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.last))
	copy(out, r.last)
	return out
}

// Squares returns only the square commands of the last frame
func (r *Recorder) Squares() []Command {
	frame := r.LastFrame()
	out := frame[:0]
	for _, c := range frame {
		if c.Kind == CommandSquare {
			out = append(out, c)
		}
	}
	return out
}
