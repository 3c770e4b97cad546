package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/magnifier/lens"
	"github.com/lixenwraith/magnifier/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays lens feedback through a single speaker mixer
// Every operation is a no-op until Initialize succeeds, so the lens runs silently without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	played      int
}

// NewSoundManager creates a new sound manager at the given master volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close for the oto backend; an empty mixer plays silence
	sm.initialized = false
}

// PlayClick queues one click
func (sm *SoundManager) PlayClick(important bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	click := CreateClick(important, sm.volume, sampleRate)
	speaker.Lock()
	sm.mixer.Add(click)
	speaker.Unlock()
	sm.played++
}

// GlyphChanged is the lens observer: a click per new glyph under the lens
func (sm *SoundManager) GlyphChanged(_ string, tier lens.Tier) {
	sm.PlayClick(tier == lens.Important)
}

// Played returns the number of clicks queued since creation
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}
