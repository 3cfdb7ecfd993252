package sim

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// DiagnosticsInterval is the minimum wall-clock time between readouts.
const DiagnosticsInterval = time.Second

// Readout is one formatted snapshot of the demo's state.
type Readout struct {
	Position       string
	Heading        string
	CameraAngle    string
	CameraDistance string
	Speed          string
}

// Lines returns the readout as labelled lines for display.
func (r Readout) Lines() []string {
	return []string{
		"Position " + r.Position,
		"Heading  " + r.Heading,
		"Angle    " + r.CameraAngle,
		"Distance " + r.CameraDistance,
		"Speed    " + r.Speed,
	}
}

// Diagnostics rate-limits readouts. It never modifies the state it reads.
type Diagnostics struct {
	interval time.Duration
	last     time.Time
	current  Readout
}

func NewDiagnostics(interval time.Duration) *Diagnostics {
	return &Diagnostics{interval: interval}
}

// Sample returns a fresh readout if at least the interval has passed since
// the previous one; otherwise it returns the previous readout and false.
func (d *Diagnostics) Sample(now time.Time, s *State) (Readout, bool) {
	if !d.last.IsZero() && now.Sub(d.last) < d.interval {
		return d.current, false
	}
	d.last = now
	d.current = FormatReadout(s)
	return d.current, true
}

// Current returns the most recent readout.
func (d *Diagnostics) Current() Readout { return d.current }

func FormatReadout(s *State) Readout {
	return Readout{
		Position:       fmt.Sprintf("<%d, 0, %d>", roundHalfUp(s.Pose.X), roundHalfUp(s.Pose.Z)),
		Heading:        fmt.Sprintf("<%d>", s.Pose.Heading),
		CameraAngle:    fmt.Sprintf("<%d>", roundHalfUp(s.Camera.Angle)),
		CameraDistance: fmt.Sprintf("<%d>", roundHalfUp(s.Camera.Distance)),
		Speed:          "<" + strconv.FormatFloat(s.Anim.Step, 'f', -1, 64) + ">",
	}
}

// roundHalfUp rounds .5 toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
