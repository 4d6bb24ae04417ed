package sim

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	audioSampleRate = beep.SampleRate(48000)

	// Hum pitch range mapped onto the drive's idle..fast speed range.
	humMinFreq = 70.0
	humMaxFreq = 210.0
	humVolume  = 0.25
)

// humStreamer is an endless sine generator whose frequency can be
// retuned while playing. Mutated only under speaker.Lock.
type humStreamer struct {
	freq  float64
	phase float64
}

func (h *humStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		val := math.Sin(2*math.Pi*h.phase) * humVolume
		samples[i][0] = val
		samples[i][1] = val
		h.phase += h.freq / float64(audioSampleRate)
		h.phase -= math.Floor(h.phase)
	}
	return len(samples), true
}

func (h *humStreamer) Err() error { return nil }

// RotorAudio plays a continuous rotor hum whose pitch follows the
// propeller spin speed.
type RotorAudio struct {
	hum  *humStreamer
	ctrl *beep.Ctrl
}

func NewRotorAudio() (*RotorAudio, error) {
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("audio init: %w", err)
	}
	hum := &humStreamer{freq: humMinFreq}
	ctrl := &beep.Ctrl{Streamer: hum, Paused: true}
	speaker.Play(ctrl)
	return &RotorAudio{hum: hum, ctrl: ctrl}, nil
}

// SetSpeed retunes the hum for the given drive speed, expected in the
// idle..fast preset range.
func (a *RotorAudio) SetSpeed(speed float64) {
	t := (speed - SpeedIdle) / (SpeedFast - SpeedIdle)
	t = clamp(t, 0, 1)
	speaker.Lock()
	a.hum.freq = humMinFreq + t*(humMaxFreq-humMinFreq)
	speaker.Unlock()
}

// SetActive pauses or resumes the hum with the drive state.
func (a *RotorAudio) SetActive(active bool) {
	speaker.Lock()
	a.ctrl.Paused = !active
	speaker.Unlock()
}

func (a *RotorAudio) Close() {
	speaker.Lock()
	a.ctrl.Streamer = nil
	speaker.Unlock()
}
