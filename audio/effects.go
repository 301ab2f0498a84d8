package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// Effect timings
const (
	eatDuration   = 90 * time.Millisecond
	eatAttack     = 5 * time.Millisecond
	eatRelease    = 60 * time.Millisecond
	crashDuration = 450 * time.Millisecond
	crashAttack   = 10 * time.Millisecond
	crashRelease  = 250 * time.Millisecond
	fullNote      = 120 * time.Millisecond
	fullRelease   = 80 * time.Millisecond
)

// oscillator generates a wave gliding linearly from freq to endFreq
type oscillator struct {
	freq, endFreq float64
	phase         float64
	duration      int
	position      int
	wave          WaveType
	rate          beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates an oscillator whose pitch slides from freq to endFreq over duration
func NewGlide(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
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
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release tail
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound is a short two-partial blip for food
func CreateEatSound(rate beep.SampleRate, vol float64) beep.Streamer {
	fund := NewEnvelope(NewOscillator(880, eatDuration, WaveSine, rate), eatDuration, eatAttack, eatRelease, rate)
	over := NewEnvelope(NewOscillator(1760, eatDuration, WaveSine, rate), eatDuration, eatAttack, eatRelease/2, rate)
	return newVolume(beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)), vol)
}

// CreateCrashSound is a falling saw for a lethal collision
func CreateCrashSound(rate beep.SampleRate, vol float64) beep.Streamer {
	glide := NewGlide(220, 55, crashDuration, WaveSaw, rate)
	return newVolume(NewEnvelope(glide, crashDuration, crashAttack, crashRelease, rate), vol)
}

// CreateBoardFullSound is a rising three-note chime for a filled board
func CreateBoardFullSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := []float64{659.25, 783.99, 1046.50}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		seq = append(seq, NewEnvelope(NewOscillator(f, fullNote, WaveSquare, rate), fullNote, eatAttack, fullRelease, rate))
	}
	return newVolume(beep.Seq(seq...), vol)
}

// GetSoundEffect returns the streamer for the given sound
func GetSoundEffect(s Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	switch s {
	case SoundEat:
		return CreateEatSound(rate, vol)
	case SoundCrash:
		return CreateCrashSound(rate, vol)
	case SoundBoardFull:
		return CreateBoardFullSound(rate, vol)
	default:
		return nil
	}
}
