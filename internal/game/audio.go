package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// SoundKind identifies a sound effect.
type SoundKind int

const (
	SoundStepLeft SoundKind = iota
	SoundStepRight
	SoundToggle
	SoundTick
	numSounds
)

// Audio plays short procedurally generated effects. Samples are generated
// once up front; each Play starts its own oto player.
type Audio struct {
	ctx     *oto.Context
	ready   chan struct{}
	volume  float64
	samples [numSounds][]byte
}

// NewAudio opens the output device. volume is in [0,1].
func NewAudio(volume float64) (*Audio, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	a := &Audio{ctx: ctx, ready: ready}
	a.SetVolume(volume)
	a.samples[SoundStepLeft] = genFootstep(0x5EED1, 1.0)
	a.samples[SoundStepRight] = genFootstep(0x5EED2, 0.88)
	a.samples[SoundToggle] = genToggle()
	a.samples[SoundTick] = genTick()
	return a, nil
}

func (a *Audio) SetVolume(v float64) {
	a.volume = clampF(v, 0, 1)
}

// Play starts kind in the background. Before the device is ready, or on a
// nil receiver, it does nothing.
func (a *Audio) Play(kind SoundKind) {
	if a == nil || a.volume <= 0 || kind < 0 || kind >= numSounds {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	samples := a.samples[kind]
	vol := a.volume
	go func() {
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(vol)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		o := i*4*ChannelCount + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1]; attack, decay and
// release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*4*ChannelCount) }

// genFootstep: soft low thud with a short scuff of filtered noise.
// pitch scales the thud so left and right feet sound slightly different.
func genFootstep(seed uint64, pitch float64) []byte {
	n := int(0.12 * SampleRate)
	buf := makeBuf(n)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		thud := math.Sin(2*math.Pi*(110-60*p)*pitch*t) * math.Exp(-p*18) * 0.55
		lp = lp*0.7 + lcg(&seed)*0.3
		scuff := lp * math.Exp(-p*30) * 0.35
		putStereoF32(buf, i, softSat((thud+scuff)*0.8))
	}
	return buf
}

// genToggle: two quick rising tones.
func genToggle() []byte {
	n := SampleRate * 140 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		freq := 660.0
		if p >= 0.5 {
			freq = 990
		}
		env := adsr(math.Mod(p*2, 1), 0.02, 0.5, 0.2, 0.2)
		s := math.Sin(2*math.Pi*freq*t) * env * 0.35
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genTick: very short click for tuning adjustments.
func genTick() []byte {
	n := SampleRate * 25 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		s := math.Sin(2*math.Pi*1800*t) * math.Exp(-p*12) * 0.2
		putStereoF32(buf, i, s)
	}
	return buf
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
