package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(48000)

	// DefaultVolume is the linear master volume
	DefaultVolume = 0.5
)

// Sound identifies a game event with an attached effect
type Sound int

const (
	SoundEat Sound = iota
	SoundCrash
	SoundBoardFull
)

// Player plays game sounds; the session only depends on this
type Player interface {
	Play(s Sound)
	Close()
}

// Nop is a silent Player for disabled audio and tests
type Nop struct{}

// Play implements Player
func (Nop) Play(Sound) {}

// Close implements Player
func (Nop) Close() {}

// SoundManager plays effects through the system speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager opens the speaker and starts the mixer
// Failure is non-fatal for the game; callers fall back to Nop
func NewSoundManager(volume float64) (*SoundManager, error) {
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, errors.Wrap(err, "speaker init")
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return sm, nil
}

// Play implements Player
func (sm *SoundManager) Play(s Sound) {
	streamer := GetSoundEffect(s, sampleRate, sm.volume)
	if streamer == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Close implements Player: stops all sounds and releases the device
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.initialized = false

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
