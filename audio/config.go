package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/stellar/parameter"
	"github.com/lixenwraith/stellar/vmath"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "STELLAR_AUDIO_ENABLED"
	EnvMasterVolume = "STELLAR_MASTER_VOLUME"
	EnvSFXVolumes   = "STELLAR_SFX_VOLUMES"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio disabled at default volumes
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      false,
		MasterVolume: parameter.DefaultMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundMerge:   0.6,
			SoundCascade: 0.8,
			SoundFault:   1.0,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = vmath.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	// Effect volumes as JSON, e.g. {"merge":0.3,"fault":0}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = vmath.Clamp(v, 0, 1)
				}
			}
		}
	}

	return cfg
}
