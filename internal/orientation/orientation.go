package orientation

import (
	"fmt"
	"math"
)

// Pose is the canonical representation of orientation for the app.
type Pose struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// Decode converts a unit quaternion (scalar q0, vector q1..q3) into Euler
// angles in degrees.
//
// The output axes are remapped for the device mounting convention: the
// reported pitch is numerically the standard roll rotation and the reported
// roll is the standard pitch. Downstream motion code depends on this remap,
// do not "correct" it.
//
// Non-finite components are rejected up front: a NaN that slips through here
// would poison the motion smoothing accumulators for the rest of the run.
// Non-unit quaternions are accepted and simply produce inaccurate angles.
func Decode(q0, q1, q2, q3 float64) (Pose, error) {
	for _, c := range [4]float64{q0, q1, q2, q3} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Pose{}, fmt.Errorf("non-finite quaternion component in (%g,%g,%g,%g)", q0, q1, q2, q3)
		}
	}

	calcRoll := math.Atan2(q0*q1+q2*q3, 0.5-(q1*q1+q2*q2))

	// Floating point overshoot near the poles can push the asin argument
	// just past ±1; clamp instead of letting it go NaN. The atan2 arguments
	// have no domain limit, so only this one needs the clamp.
	pitchArg := -2 * (q1*q3 - q0*q2)
	if pitchArg > 1.0 {
		pitchArg = 1.0
	} else if pitchArg < -1.0 {
		pitchArg = -1.0
	}
	calcPitch := math.Asin(pitchArg)

	calcYaw := math.Atan2(q1*q2+q0*q3, 0.5-(q2*q2+q3*q3))

	// Axis swap per the mounting convention.
	return Pose{
		Roll:  calcPitch * 180.0 / math.Pi,
		Pitch: calcRoll * 180.0 / math.Pi,
		Yaw:   calcYaw * 180.0 / math.Pi,
	}, nil
}
