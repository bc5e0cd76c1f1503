package parameter

// Simulation defaults, applied when a configuration source leaves a value unset
const (
	// DefaultFrameRate is the tick rate in ticks per second
	DefaultFrameRate = 120

	// DefaultMaxPoints is the initial particle count
	DefaultMaxPoints = 1000

	// DefaultMass is the mass every particle starts with
	DefaultMass = 1.0

	// DefaultSize is the on-screen side length of a particle at DefaultMass
	DefaultSize = 1.0

	// DefaultGravitationalConstant scales the inverse-square force
	DefaultGravitationalConstant = 1e-2

	// DefaultFill is the particle fill color hint
	DefaultFill = "#555555"

	// DefaultFieldWidth and DefaultFieldHeight bound initial placement
	DefaultFieldWidth  = 750
	DefaultFieldHeight = 750

	// MaxFieldCells caps width*height; placement keeps one presence flag per cell
	MaxFieldCells = 1 << 24
)

// Velocity modes
const (
	// VelocityInertial keeps velocity across ticks
	VelocityInertial = "inertial"

	// VelocityReset zeroes velocity before each force pass
	VelocityReset = "reset"
)
