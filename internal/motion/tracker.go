package motion

import "math"

// Config holds the tuning parameters for motion tracking.
type Config struct {
	// GainX and GainY scale smoothed angular deltas (degrees) into
	// screen-space units.
	GainX float64
	GainY float64
	// Alpha is the exponential smoothing weight on the newest delta,
	// in (0, 1]. Lower is smoother but laggier.
	Alpha float64
	// Deadzone is the smoothed-delta magnitude (degrees) below which
	// motion is suppressed, so sensor jitter does not drift the cursor.
	Deadzone float64
}

// DefaultConfig matches the tuning of the reference device.
func DefaultConfig() Config {
	return Config{
		GainX:    18.0,
		GainY:    18.0,
		Alpha:    0.2,
		Deadzone: 0.02,
	}
}

// Tracker converts successive yaw/pitch readings into screen-space motion
// deltas. It carries the previous angles and the per-axis smoothed deltas
// across calls, so one Tracker must only ever see a single angle stream,
// one sample at a time.
type Tracker struct {
	cfg Config

	// seeded distinguishes "no previous sample yet" from a previous
	// sample at zero degrees.
	seeded    bool
	prevYaw   float64
	prevPitch float64

	avgDeltaYaw   float64
	avgDeltaPitch float64
}

// NewTracker creates a Tracker with the given tuning.
func NewTracker(cfg Config) *Tracker {
	return &Tracker{cfg: cfg}
}

// Update takes the latest yaw and pitch in degrees and returns the screen
// motion delta for this sample. The first call after construction or Reset
// only records the baseline and returns zero motion.
func (t *Tracker) Update(yaw, pitch float64) (dx, dy float64) {
	if !t.seeded {
		t.prevYaw = yaw
		t.prevPitch = pitch
		t.seeded = true
		return 0, 0
	}

	rawDeltaYaw := yaw - t.prevYaw
	rawDeltaPitch := pitch - t.prevPitch

	// Take the shortest signed path across the ±180° boundary, so a yaw
	// step from 179° to -179° reads as +2°, not -358°.
	if rawDeltaYaw > 180 {
		rawDeltaYaw -= 360
	}
	if rawDeltaYaw < -180 {
		rawDeltaYaw += 360
	}
	if rawDeltaPitch > 180 {
		rawDeltaPitch -= 360
	}
	if rawDeltaPitch < -180 {
		rawDeltaPitch += 360
	}

	t.avgDeltaYaw = t.cfg.Alpha*rawDeltaYaw + (1-t.cfg.Alpha)*t.avgDeltaYaw
	t.avgDeltaPitch = t.cfg.Alpha*rawDeltaPitch + (1-t.cfg.Alpha)*t.avgDeltaPitch

	// The deadzone gates only the emitted motion; the accumulators keep
	// integrating, so motion already under way is not clipped by one
	// small raw delta.
	moveYaw := t.avgDeltaYaw
	if math.Abs(moveYaw) < t.cfg.Deadzone {
		moveYaw = 0
	}
	movePitch := t.avgDeltaPitch
	if math.Abs(movePitch) < t.cfg.Deadzone {
		movePitch = 0
	}

	// Yaw sign is inverted to match screen X direction.
	dx = -moveYaw * t.cfg.GainX
	dy = movePitch * t.cfg.GainY

	t.prevYaw = yaw
	t.prevPitch = pitch

	return dx, dy
}

// Reset drops all cross-sample memory; the next Update seeds again.
func (t *Tracker) Reset() {
	t.seeded = false
	t.avgDeltaYaw = 0
	t.avgDeltaPitch = 0
}
