package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer; latency versus underrun trade
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive merge sounds; bursts inside the gap are dropped
	MinSoundGap = 60 * time.Millisecond

	// DefaultMasterVolume is applied to every effect, 0..1
	DefaultMasterVolume = 0.5
)

// Merge blip: pitch falls as the survivor grows
const (
	MergeSoundDuration = 70 * time.Millisecond
	MergeSoundAttack   = 3 * time.Millisecond
	MergeSoundRelease  = 40 * time.Millisecond
	MergeBaseFrequency = 1320.0
	MergeMinFrequency  = 110.0
)

// Cascade chime: several merges in one tick
const (
	CascadeThreshold        = 4
	CascadeNoteDuration     = 60 * time.Millisecond
	CascadeSoundAttack      = 3 * time.Millisecond
	CascadeSoundNoteRelease = 35 * time.Millisecond
)

// Fault buzz
const (
	FaultSoundDuration = 250 * time.Millisecond
	FaultSoundAttack   = 5 * time.Millisecond
	FaultSoundRelease  = 120 * time.Millisecond
)
