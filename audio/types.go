package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundMerge   SoundType = iota // Single coalescence
	SoundCascade                  // Many merges in one tick
	SoundFault                    // Run stopped on a tick fault
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundMerge:
		return "merge"
	case SoundCascade:
		return "cascade"
	case SoundFault:
		return "fault"
	default:
		return "unknown"
	}
}
