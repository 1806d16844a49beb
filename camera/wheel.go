package camera

import (
	"time"
)

const (
	notchDetectCount = 4
	initialPeakRate  = 10
	maxWheelInterval = 100 * time.Millisecond
	continuousGain   = 250
)

type WheelKind int

const (
	WheelUnknown WheelKind = iota
	WheelNotched
	WheelContinuous
)

// WheelNormalizer converts raw wheel deltas from devices with very
// different resolutions into a comparable scale. Notched wheels repeating
// the same delta are reported as +-1, continuous ones are scaled by their
// recent peak rate.
type WheelNormalizer struct {
	// Now defaults to time.Now.
	Now func() time.Time

	events int
	kind   WheelKind
	peak   float64

	repeat   int
	lastAbs  float64
	lastTime time.Time
	pending  float64
}

func (n *WheelNormalizer) Kind() WheelKind {
	return n.kind
}

// Ready reports whether enough events have been seen to classify the device.
func (n *WheelNormalizer) Ready() bool {
	return n.events > notchDetectCount
}

func (n *WheelNormalizer) now() time.Time {
	if n.Now != nil {
		return n.Now()
	}
	return time.Now()
}

// Normalize returns the normalized delta and Ready().
func (n *WheelNormalizer) Normalize(d float64) (float64, bool) {
	if n.events <= notchDetectCount {
		n.events++
	}
	ready := n.Ready()

	dAbs := d
	if dAbs < 0 {
		dAbs = -d
	}
	if dAbs == 0 {
		return 0, ready
	}

	if n.lastAbs == dAbs {
		n.repeat++
	} else {
		n.repeat = 0
	}
	n.lastAbs = dAbs

	kind := WheelContinuous
	if n.repeat > notchDetectCount {
		kind = WheelNotched
	}
	if kind != n.kind {
		n.kind = kind
		n.peak = initialPeakRate
	}
	n.updatePeak(d)

	if n.kind == WheelNotched {
		if d < 0 {
			return -1, ready
		}
		return 1, ready
	}
	return d * continuousGain / n.peak, ready
}

func (n *WheelNormalizer) updatePeak(d float64) {
	n.pending += d
	now := n.now()
	dt := now.Sub(n.lastTime)
	if dt <= 0 {
		return
	}
	if dt > maxWheelInterval {
		dt = maxWheelInterval
	}
	rate := n.pending / dt.Seconds()
	if rate < 0 {
		rate = -rate
	}
	n.pending = 0
	n.lastTime = now

	if n.peak < rate {
		// LPF to suppress spikes
		n.peak = n.peak*0.5 + rate*0.5
	}
	n.peak *= 0.95
	if n.peak < 1 {
		n.peak = 1
	}
}
