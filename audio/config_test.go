package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/stellar/parameter"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, parameter.DefaultMasterVolume, cfg.MasterVolume)
	assert.Equal(t, parameter.AudioSampleRate, cfg.SampleRate)
	for st := SoundType(0); st < soundTypeCount; st++ {
		assert.Contains(t, cfg.EffectVolumes, st, st.String())
	}
}

func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "true")
	t.Setenv(EnvMasterVolume, "150")
	t.Setenv(EnvSFXVolumes, `{"merge":0.25,"fault":-1,"bogus":1}`)

	cfg := LoadAudioConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1.0, cfg.MasterVolume, "clamped to 100%")
	assert.Equal(t, 0.25, cfg.EffectVolumes[SoundMerge])
	assert.Equal(t, 0.0, cfg.EffectVolumes[SoundFault])
	assert.Equal(t, 0.8, cfg.EffectVolumes[SoundCascade])
}

func TestLoadAudioConfigIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "maybe")
	t.Setenv(EnvMasterVolume, "loud")
	t.Setenv(EnvSFXVolumes, "{not json")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()
	assert.Equal(t, def.Enabled, cfg.Enabled)
	assert.Equal(t, def.MasterVolume, cfg.MasterVolume)
	assert.Equal(t, def.EffectVolumes, cfg.EffectVolumes)
}

func TestSoundTypeString(t *testing.T) {
	assert.Equal(t, "merge", SoundMerge.String())
	assert.Equal(t, "unknown", soundTypeCount.String())
}
