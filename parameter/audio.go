package parameter

import "time"

// Audio Feedback
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// Click envelope for a highlight change
	ClickDuration = 35 * time.Millisecond
	ClickAttack   = 2 * time.Millisecond
	ClickRelease  = 25 * time.Millisecond

	// ClickFrequency is the base pitch, important glyphs play an octave up
	ClickFrequency = 660.0

	// DefaultVolume is the master volume in [0, 1]
	DefaultVolume = 0.4
)

// Environment overrides
const (
	EnvAudioEnabled = "MAGNIFIER_AUDIO_ENABLED"
	EnvMasterVolume = "MAGNIFIER_MASTER_VOLUME"
)
