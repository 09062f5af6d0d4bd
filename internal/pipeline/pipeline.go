package pipeline

import (
	"github.com/relabs-tech/imu_cursor/internal/cursor"
	"github.com/relabs-tech/imu_cursor/internal/motion"
	"github.com/relabs-tech/imu_cursor/internal/orientation"
	"github.com/relabs-tech/imu_cursor/internal/quat"
)

// Frame is the result of processing one quaternion sample: the decoded
// orientation, the screen-space delta it produced, and the cursor position
// after applying it.
type Frame struct {
	Pose orientation.Pose `json:"pose"`
	DX   float64          `json:"dx"`
	DY   float64          `json:"dy"`
	X    float64          `json:"x"`
	Y    float64          `json:"y"`
}

// Pipeline turns a stream of orientation quaternions into cursor motion:
// decode → motion tracking → cursor plotting. It is not safe for
// concurrent use; samples must be processed one at a time, in arrival
// order. The pipeline never blocks and keeps no notion of time, so the
// caller owns the cadence.
type Pipeline struct {
	tracker *motion.Tracker
	plotter *cursor.Plotter
}

// New creates a Pipeline with the given motion tuning and trail capacity.
func New(motionCfg motion.Config, pathCapacity int) *Pipeline {
	return &Pipeline{
		tracker: motion.NewTracker(motionCfg),
		plotter: cursor.NewPlotter(pathCapacity),
	}
}

// ProcessSample runs one quaternion through the pipeline and returns the
// resulting frame. The first sample after construction or Reset seeds the
// motion baseline and leaves the cursor at rest. A decode error (non-finite
// input) leaves all state untouched, so the caller can drop the sample and
// carry on.
func (p *Pipeline) ProcessSample(s quat.Sample) (Frame, error) {
	pose, err := orientation.Decode(s.Q0, s.Q1, s.Q2, s.Q3)
	if err != nil {
		return Frame{}, err
	}

	dx, dy := p.tracker.Update(pose.Yaw, pose.Pitch)
	x, y := p.plotter.Advance(dx, dy, pose.Roll)

	return Frame{Pose: pose, DX: dx, DY: dy, X: x, Y: y}, nil
}

// Path returns the bounded cursor trail, oldest first.
func (p *Pipeline) Path() []cursor.Point {
	return p.plotter.Path()
}

// Reset reseeds the motion tracker and returns the cursor to the origin.
func (p *Pipeline) Reset() {
	p.tracker.Reset()
	p.plotter.Reset()
}
