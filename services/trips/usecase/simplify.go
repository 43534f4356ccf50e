package usecase

import (
	"github.com/piresc/armada/internal/pkg/geo"
	"github.com/piresc/armada/internal/pkg/models"
)

// SimplifyTier selects the reduction effort for a track.
type SimplifyTier int

const (
	// TierAuto picks coarse or detailed from the input size.
	TierAuto SimplifyTier = iota
	// TierDetailed keeps stops and uses looser distance/time thresholds.
	// Meant for moderate inputs where shape fidelity matters.
	TierDetailed
	// TierCoarse uses tight thresholds and no stop preservation. Meant for
	// very large inputs where the pass has to stay cheap.
	TierCoarse
)

// defaultCoarseInputSize is the input length at which TierAuto switches
// from detailed to coarse.
const defaultCoarseInputSize = 2000

type simplifyParams struct {
	distanceMeters float64
	timeSeconds    float64
	preserveStops  bool
}

var tierParams = map[SimplifyTier]simplifyParams{
	TierDetailed: {distanceMeters: 60, timeSeconds: 60, preserveStops: true},
	TierCoarse:   {distanceMeters: 25, timeSeconds: 30, preserveStops: false},
}

func resolveTier(tier SimplifyTier, inputLen, coarseInputSize int) simplifyParams {
	if tier == TierAuto {
		if coarseInputSize <= 0 {
			coarseInputSize = defaultCoarseInputSize
		}
		if inputLen >= coarseInputSize {
			tier = TierCoarse
		} else {
			tier = TierDetailed
		}
	}
	return tierParams[tier]
}

// Simplify reduces a chronologically sorted track to at most maxPoints
// samples for rendering. Input at or under the cap is returned unchanged.
// The walk is a single pass: a candidate is retained when it is a stop
// point (candidate and preceding sample both below lowSpeedThreshold, if
// the tier preserves stops), when it moved far enough from the last
// retained point, when enough time elapsed since it, or when the uniform
// stride fallback fires so geometrically uneventful tracks still fill the
// point budget. The first and last samples are always retained and the
// relative order of samples is never changed.
func Simplify(points []models.PositionSample, maxPoints int, tier SimplifyTier, lowSpeedThreshold float64, coarseInputSize int) []models.PositionSample {
	if maxPoints < 2 {
		maxPoints = 2
	}
	n := len(points)
	if n <= maxPoints {
		return points
	}

	params := resolveTier(tier, n, coarseInputSize)

	stride := n / maxPoints
	if stride < 1 {
		stride = 1
	}

	out := make([]models.PositionSample, 0, maxPoints)
	out = append(out, points[0])
	lastKept := points[0]
	lastKeptIdx := 0

	for i := 1; i < n-1; i++ {
		// One slot stays reserved for the final sample.
		if len(out) >= maxPoints-1 {
			break
		}
		candidate := points[i]

		keep := false
		switch {
		case params.preserveStops && isStopPoint(candidate, points[i-1], lowSpeedThreshold):
			keep = true
		case geo.DistanceMeters(geo.PointFromSample(candidate), geo.PointFromSample(lastKept)) > params.distanceMeters:
			keep = true
		case candidate.Timestamp.Sub(lastKept.Timestamp).Seconds() > params.timeSeconds:
			keep = true
		case i-lastKeptIdx >= stride:
			keep = true
		}

		if keep {
			out = append(out, candidate)
			lastKept = candidate
			lastKeptIdx = i
		}
	}

	out = append(out, points[n-1])
	return out
}

// isStopPoint reports whether the candidate marks a stop: both it and the
// sample immediately before it report a speed below the threshold.
func isStopPoint(candidate, previous models.PositionSample, lowSpeedThreshold float64) bool {
	if !candidate.HasSpeed() || !previous.HasSpeed() {
		return false
	}
	return candidate.SpeedValue() < lowSpeedThreshold && previous.SpeedValue() < lowSpeedThreshold
}
