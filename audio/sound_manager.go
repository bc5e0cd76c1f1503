package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/stellar/parameter"
	"github.com/lixenwraith/stellar/physics"
)

// SoundManager plays simulation event sounds through a single beep mixer
// Every method is a no-op until Initialize succeeds, so the simulator runs silent without a device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlay    time.Time
	now         func() time.Time

	// lockSpeaker guards mixer mutation against the speaker goroutine
	lockSpeaker   func()
	unlockSpeaker func()
}

// NewSoundManager creates a sound manager; cfg nil uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:           cfg,
		mixer:         &beep.Mixer{},
		muted:         !cfg.Enabled,
		now:           time.Now,
		lockSpeaker:   speaker.Lock,
		unlockSpeaker: speaker.Unlock,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

// ToggleMute flips the mute flag and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// IsMuted reports whether effects are suppressed
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues one effect; calls inside MinSoundGap of the previous one are dropped
// Fault sounds bypass the gap
func (sm *SoundManager) Play(soundType SoundType, intensity float64) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	now := sm.now()
	if soundType != SoundFault && now.Sub(sm.lastPlay) < parameter.MinSoundGap {
		return false
	}

	s := GetSoundEffect(soundType, sm.cfg, intensity)
	if s == nil {
		return false
	}
	sm.lastPlay = now

	sm.lockSpeaker()
	sm.mixer.Add(s)
	sm.unlockSpeaker()
	return true
}

// OnReport is installed as the simulation's tick observer
func (sm *SoundManager) OnReport(report physics.Report) {
	switch {
	case report.Merges >= parameter.CascadeThreshold:
		sm.Play(SoundCascade, float64(report.Merges))
	case report.Merges > 0:
		sm.Play(SoundMerge, report.HeaviestMerge)
	}
}

// OnFault plays the fault buzz
func (sm *SoundManager) OnFault() {
	sm.Play(SoundFault, 0)
}

// Active returns the number of streamers still playing
func (sm *SoundManager) Active() int {
	sm.lockSpeaker()
	defer sm.unlockSpeaker()
	return sm.mixer.Len()
}
