// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text


package app

import (
	"fmt"
	"log"
	"time"

	"github.com/relabs-tech/imu_cursor/internal/config"
	"github.com/relabs-tech/imu_cursor/internal/quat"
)

// RunMockConsole drives the cursor pipeline from the mock quaternion source
// and prints each frame. Useful without hardware or a broker attached.
func RunMockConsole(cfg *config.Config) error {
	src := quat.NewMockSource()
	pipe := newPipeline(cfg)

	ticker := time.NewTicker(time.Duration(cfg.SampleInterval) * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		sample, err := src.Next()
		if err != nil {
			return err
		}

		frame, err := pipe.ProcessSample(sample)
		if err != nil {
			log.Printf("mock console: dropping sample: %v", err)
			continue
		}

		fmt.Printf(
			"YAW=%7.2f PITCH=%7.2f ROLL=%7.2f  dx=%7.3f dy=%7.3f  cursor=(%8.2f,%8.2f)\n",
			frame.Pose.Yaw, frame.Pose.Pitch, frame.Pose.Roll,
			frame.DX, frame.DY, frame.X, frame.Y,
		)
	}
	return nil
}
