package orientation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIdentity(t *testing.T) {
	pose, err := Decode(1, 0, 0, 0)
	require.NoError(t, err)

	assert.InDelta(t, 0, pose.Yaw, 1e-12)
	assert.InDelta(t, 0, pose.Pitch, 1e-12)
	assert.InDelta(t, 0, pose.Roll, 1e-12)
}

// Single-axis rotations land on a single output angle, which also pins the
// intentional pitch/roll axis swap.
func TestDecodeAxisRemap(t *testing.T) {
	const theta = 20.0 // degrees
	half := theta / 2 * math.Pi / 180

	tests := []struct {
		name           string
		q0, q1, q2, q3 float64
		wantYaw        float64
		wantPitch      float64
		wantRoll       float64
	}{
		// Rotation about the sensor X axis shows up as reported pitch.
		{"x axis", math.Cos(half), math.Sin(half), 0, 0, 0, theta, 0},
		// Rotation about the sensor Y axis shows up as reported roll.
		{"y axis", math.Cos(half), 0, math.Sin(half), 0, 0, 0, theta},
		// Rotation about the sensor Z axis is yaw, unswapped.
		{"z axis", math.Cos(half), 0, 0, math.Sin(half), theta, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pose, err := Decode(tt.q0, tt.q1, tt.q2, tt.q3)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantYaw, pose.Yaw, 1e-9)
			assert.InDelta(t, tt.wantPitch, pose.Pitch, 1e-9)
			assert.InDelta(t, tt.wantRoll, pose.Roll, 1e-9)
		})
	}
}

func TestDecodeClampsPitchArgument(t *testing.T) {
	// A 90° rotation about Y with rounded components makes the asin
	// argument overshoot 1 by a few ulps. The decode must clamp, not NaN.
	const c = 0.7071068 // cos(45°) rounded up
	pose, err := Decode(c, 0, c, 0)
	require.NoError(t, err)

	assert.False(t, math.IsNaN(pose.Roll), "roll must not be NaN at the pole")
	assert.InDelta(t, 90.0, pose.Roll, 1e-4)
}

func TestDecodeRejectsNonFinite(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name           string
		q0, q1, q2, q3 float64
	}{
		{"nan scalar", nan, 0, 0, 0},
		{"nan q1", 1, nan, 0, 0},
		{"nan q2", 1, 0, nan, 0},
		{"nan q3", 1, 0, 0, nan},
		{"positive inf", inf, 0, 0, 0},
		{"negative inf", 1, 0, math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.q0, tt.q1, tt.q2, tt.q3)
			assert.Error(t, err)
		})
	}
}

func TestDecodeAcceptsNonUnit(t *testing.T) {
	// Degenerate but finite input must never error; the angles are simply
	// whatever the formulas produce.
	_, err := Decode(2, 0.5, -3, 10)
	assert.NoError(t, err)
}
