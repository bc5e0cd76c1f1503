package physics

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

var (
	// ErrInvalidBounds is returned for non-positive field dimensions
	ErrInvalidBounds = errors.New("field bounds must be positive")

	// ErrFieldTooSmall is returned when more particles are requested than integer cells exist
	ErrFieldTooSmall = errors.New("particle count exceeds field cells")
)

// NewField places count particles at pairwise-distinct integer coordinates in [0,width) x [0,height)
// Placement is rejection sampling over a bounds-indexed presence grid; the cell budget is checked
// up front so sampling always terminates
func NewField(width, height, count int, mass float64, model VolumeModel, rng *rand.Rand) ([]Particle, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBounds, width, height)
	}
	cells := width * height
	if count > cells {
		return nil, fmt.Errorf("%w: %d particles, %dx%d field has %d cells", ErrFieldTooSmall, count, width, height, cells)
	}
	if count <= 0 {
		return []Particle{}, nil
	}

	used := make([]bool, cells)
	volume := model.Volume(mass)
	particles := make([]Particle, 0, count)

	for len(particles) < count {
		x := rng.IntN(width)
		y := rng.IntN(height)
		idx := y*width + x
		if used[idx] {
			continue
		}
		used[idx] = true

		particles = append(particles, Particle{
			X:      float64(x),
			Y:      float64(y),
			Mass:   mass,
			Volume: volume,
			Alive:  true,
		})
	}

	return particles, nil
}
