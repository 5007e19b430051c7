package focus

import (
	"math"

	"AI_PROCTOR/go-backend/internal/signal"
)

// Calibrated penalty bands. Pose deviation inside the tolerance band is
// free; past it the penalty grows linearly and saturates at the limit.
const (
	poseToleranceDeg = 15.0
	poseLimitDeg     = 45.0
	gazeTolerance    = 0.20
	gazeLimit        = 0.80

	poseWeight = 0.6
	gazeWeight = 0.4
)

// Engine fuses per-frame signals into a smoothed 0-100 focus score.
// Face presence is a hard gate: any frame without a face scores 0
// instantaneously. An Engine belongs to one session worker.
type Engine struct {
	alpha        float64
	absentStreak int
}

func NewEngine(alpha float64) *Engine {
	return &Engine{alpha: alpha}
}

// Update combines the instantaneous focus value for sig with the
// previous score via an exponential moving average and clamps the
// result to [0, 100].
func (e *Engine) Update(previous float64, sig signal.FrameSignal) float64 {
	inst := e.instantaneous(sig)
	score := e.alpha*inst + (1-e.alpha)*previous
	return clamp(score, 0, 100)
}

// AbsentStreak reports how many consecutive frames had no face.
func (e *Engine) AbsentStreak() int {
	return e.absentStreak
}

func (e *Engine) instantaneous(sig signal.FrameSignal) float64 {
	if !sig.FacePresent {
		e.absentStreak++
		return 0
	}
	e.absentStreak = 0

	poseDeviation := math.Max(math.Abs(sig.Yaw), math.Abs(sig.Pitch))
	posePenalty := linearPenalty(poseDeviation, poseToleranceDeg, poseLimitDeg)
	gazePenalty := linearPenalty(math.Abs(sig.GazeOffset), gazeTolerance, gazeLimit)

	return 100 * (1 - poseWeight*posePenalty - gazeWeight*gazePenalty)
}

// linearPenalty maps v to [0,1]: 0 inside the tolerance band, growing
// linearly to 1 at the limit.
func linearPenalty(v, tolerance, limit float64) float64 {
	if v <= tolerance {
		return 0
	}
	if v >= limit {
		return 1
	}
	return (v - tolerance) / (limit - tolerance)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
