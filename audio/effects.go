package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/stellar/parameter"
	"github.com/lixenwraith/stellar/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// MergeFrequency maps survivor mass to blip pitch: heavier bodies sound lower
func MergeFrequency(mass float64) float64 {
	if mass <= 1 {
		return parameter.MergeBaseFrequency
	}
	return vmath.Clamp(parameter.MergeBaseFrequency/math.Sqrt(mass), parameter.MergeMinFrequency, parameter.MergeBaseFrequency)
}

// CreateMergeSound generates a short blip pitched by the survivor's mass
func CreateMergeSound(cfg *AudioConfig, mass float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(MergeFrequency(mass), parameter.MergeSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.MergeSoundDuration, parameter.MergeSoundAttack, parameter.MergeSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundMerge]*cfg.MasterVolume)
}

// CreateCascadeSound generates a rising arpeggio, one note per merge up to four
func CreateCascadeSound(cfg *AudioConfig, merges int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := min(max(merges, 2), 4)
	seq := make([]beep.Streamer, 0, notes)
	freq := parameter.MergeBaseFrequency / 2
	for range notes {
		osc := NewOscillator(freq, parameter.CascadeNoteDuration, WaveSquare, rate)
		seq = append(seq, newVolume(NewEnvelope(osc, parameter.CascadeNoteDuration, parameter.CascadeSoundAttack, parameter.CascadeSoundNoteRelease, rate), 0.4))
		freq *= 1.25
	}

	return newVolume(beep.Seq(seq...), cfg.EffectVolumes[SoundCascade]*cfg.MasterVolume)
}

// CreateFaultSound generates a low saw buzz mixed with noise
func CreateFaultSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	saw := NewOscillator(90, parameter.FaultSoundDuration, WaveSaw, rate)
	noise := NewOscillator(0, parameter.FaultSoundDuration, WaveNoise, rate)
	mixed := beep.Mix(newVolume(saw, 0.7), newVolume(noise, 0.2))
	shaped := NewEnvelope(mixed, parameter.FaultSoundDuration, parameter.FaultSoundAttack, parameter.FaultSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundFault]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType
// For merges intensity is the survivor mass, for cascades the merge count
func GetSoundEffect(soundType SoundType, cfg *AudioConfig, intensity float64) beep.Streamer {
	switch soundType {
	case SoundMerge:
		return CreateMergeSound(cfg, intensity)
	case SoundCascade:
		return CreateCascadeSound(cfg, int(intensity))
	case SoundFault:
		return CreateFaultSound(cfg)
	default:
		return nil
	}
}
