package minigame

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const audioSampleRate = beep.SampleRate(44100)

// soundBank plays short sine blips for simulation events. Audio is
// best-effort; if the speaker cannot initialize the game runs silent.
type soundBank struct {
	ready bool
}

func newSoundBank() *soundBank {
	b := &soundBank{}
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Second/10)); err == nil {
		b.ready = true
	}
	return b
}

func (b *soundBank) tone(freq float64, dur time.Duration) {
	if !b.ready {
		return
	}
	sine, err := generators.SineTone(audioSampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(audioSampleRate.N(dur), sine))
}

// play maps a simulation event to its blip.
func (b *soundBank) play(ev Event) {
	switch ev {
	case EventWallHit:
		b.tone(440, 30*time.Millisecond)
	case EventPaddleHit:
		b.tone(660, 40*time.Millisecond)
	case EventBrickHit:
		b.tone(880, 50*time.Millisecond)
	case EventBallLost:
		b.tone(220, 200*time.Millisecond)
	case EventLevelClear:
		b.tone(1320, 400*time.Millisecond)
	case EventGameOver:
		b.tone(110, 500*time.Millisecond)
	}
}

func (b *soundBank) close() {
	if b.ready {
		speaker.Close()
	}
}
