// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text


package quat

import (
	"math"
	"time"
)

type mockSource struct {
	start time.Time
}

// NewMockSource creates a mock quaternion source that generates a smooth
// wrist-like sweep, for development without hardware attached.
func NewMockSource() Source {
	return &mockSource{start: time.Now()}
}

func (m *mockSource) Next() (Sample, error) {
	elapsed := time.Since(m.start).Seconds()

	yaw := 0.4 * math.Sin(elapsed*0.5)
	pitch := 0.3 * math.Cos(elapsed*0.7)
	roll := 0.2 * math.Sin(elapsed*0.3)

	return FromEuler(yaw, pitch, roll), nil
}
