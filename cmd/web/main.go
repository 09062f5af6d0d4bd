package main

import (
	"log"

	"github.com/relabs-tech/imu_cursor/internal/app"
	"github.com/relabs-tech/imu_cursor/internal/config"
)

func main() {
	log.Println("starting imu-cursor web server (MQTT subscriber)")

	cfg, err := config.Load("cursor_config.txt")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunWeb(cfg); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
