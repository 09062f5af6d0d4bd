// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text


package main

import (
	"log"

	"github.com/relabs-tech/imu_cursor/internal/app"
	"github.com/relabs-tech/imu_cursor/internal/config"
)

func main() {
	log.Println("starting imu-cursor console (MQTT subscriber)")

	cfg, err := config.Load("cursor_config.txt")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunConsole(cfg); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
