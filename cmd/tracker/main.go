package main

import (
	"log"

	"github.com/relabs-tech/imu_cursor/internal/app"
	"github.com/relabs-tech/imu_cursor/internal/config"
)

func main() {
	log.Println("starting imu-cursor tracker (serial -> MQTT)")

	cfg, err := config.Load("cursor_config.txt")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunTracker(cfg); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
