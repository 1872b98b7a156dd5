// Package sound plays short synthesized cues for game events. Audio
// is strictly optional: a nil or uninitialized Player swallows every
// call, so the game runs the same on machines without a speaker.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes short cues for game events. Safe for concurrent use.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer builds a silent player; call Init to open the speaker.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Failure leaves the player silent; callers
// log and keep playing without audio.
func (p *Player) Init() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the mixer. The speaker itself has no close in beep;
// clearing the mixer is enough to stop output.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// Link plays a blip that rises with the chain length, so a growing
// word sounds like a scale.
func (p *Player) Link(chainLen int) {
	if chainLen > 12 {
		chainLen = 12
	}
	freq := 440 + 40*float64(chainLen)
	p.play(60*time.Millisecond, newTone(sampleRate, freq))
}

// Commit plays a two-note chime.
func (p *Player) Commit() {
	p.play(200*time.Millisecond, newChime(sampleRate))
}

// Reject plays a low buzz.
func (p *Player) Reject() {
	p.play(120*time.Millisecond, newBuzz(sampleRate, 110))
}

// GameOver plays a falling sweep.
func (p *Player) GameOver() {
	p.play(600*time.Millisecond, newSweep(sampleRate, 380, 110))
}

func (p *Player) play(d time.Duration, g beep.Streamer) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	p.mixer.Add(beep.Take(sampleRate.N(d), g))
}

// tone is a plain sine with a short attack so cues never click.
type tone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newTone(sr beep.SampleRate, freq float64) *tone {
	return &tone{sr: sr, freq: freq}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/0.005, 1.0)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error {
	return nil
}

// chime layers a fifth over the root, each decaying.
type chime struct {
	sr  beep.SampleRate
	pos int
}

func newChime(sr beep.SampleRate) *chime {
	return &chime{sr: sr}
}

func (g *chime) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 10)
		sample := envelope * (0.18*math.Sin(2*math.Pi*523.25*t) + 0.12*math.Sin(2*math.Pi*783.99*t))
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *chime) Err() error {
	return nil
}

// buzz stacks harmonics for a harsh reject sound.
type buzz struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBuzz(sr beep.SampleRate, freq float64) *buzz {
	return &buzz{sr: sr, freq: freq}
}

func (g *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.25
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzz) Err() error {
	return nil
}

// sweep glides between two frequencies while fading out.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
}

func newSweep(sr beep.SampleRate, from, to float64) *sweep {
	return &sweep{sr: sr, from: from, to: to, length: sr.N(600 * time.Millisecond)}
}

func (g *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		frac := float64(g.pos) / float64(g.length)
		if frac > 1 {
			frac = 1
		}
		freq := g.from + (g.to-g.from)*frac
		envelope := math.Exp(-t * 3)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error {
	return nil
}
