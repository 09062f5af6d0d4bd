package quat

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sample is one orientation quaternion as delivered by the sensor:
// q0 is the scalar part, q1..q3 the vector part. Assumed unit-norm.
type Sample struct {
	Q0 float64 `json:"q0"`
	Q1 float64 `json:"q1"`
	Q2 float64 `json:"q2"`
	Q3 float64 `json:"q3"`
}

// Source is anything that can provide quaternion samples over time:
// a serial-attached IMU, a mock generator, maybe a replay from file later.
type Source interface {
	Next() (Sample, error)
}

// ParseLine parses the sensor wire format: a comma-separated line
// "q0,q1,q2,q3". Fields beyond the fourth are ignored, matching the
// firmware which appends debug columns in some builds. Short lines,
// non-numeric fields and non-finite values are rejected.
func ParseLine(line string) (Sample, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		return Sample{}, fmt.Errorf("quaternion line has %d fields, want 4: %q", len(parts), line)
	}

	var vals [4]float64
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return Sample{}, fmt.Errorf("quaternion field %d: %w", i, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Sample{}, fmt.Errorf("quaternion field %d is non-finite: %q", i, parts[i])
		}
		vals[i] = v
	}

	return Sample{Q0: vals[0], Q1: vals[1], Q2: vals[2], Q3: vals[3]}, nil
}

// FromEuler builds a unit quaternion from intrinsic ZYX Euler angles
// (radians). Used by the mock source and tests.
func FromEuler(yaw, pitch, roll float64) Sample {
	cy, sy := math.Cos(yaw/2), math.Sin(yaw/2)
	cp, sp := math.Cos(pitch/2), math.Sin(pitch/2)
	cr, sr := math.Cos(roll/2), math.Sin(roll/2)

	return Sample{
		Q0: cr*cp*cy + sr*sp*sy,
		Q1: sr*cp*cy - cr*sp*sy,
		Q2: cr*sp*cy + sr*cp*sy,
		Q3: cr*cp*sy - sr*sp*cy,
	}
}
