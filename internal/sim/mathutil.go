package sim

import "math"

// eps absorbs float drift from repeatedly adding a step like 0.1.
const eps = 1e-9

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// approach moves cur toward target by at most maxDelta without overshooting.
func approach(cur, target, maxDelta float64) float64 {
	if cur < target {
		cur += maxDelta
		if cur > target {
			cur = target
		}
		return cur
	}
	if cur > target {
		cur -= maxDelta
		if cur < target {
			cur = target
		}
	}
	return cur
}

func degToRad(deg float64) float32 {
	return float32(deg * math.Pi / 180)
}
