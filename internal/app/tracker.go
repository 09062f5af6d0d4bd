package app

import (
	"encoding/json"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/imu_cursor/internal/config"
	"github.com/relabs-tech/imu_cursor/internal/motion"
	"github.com/relabs-tech/imu_cursor/internal/pipeline"
	"github.com/relabs-tech/imu_cursor/internal/quat"
)

// newPipeline builds the cursor pipeline from the loaded configuration.
func newPipeline(cfg *config.Config) *pipeline.Pipeline {
	return pipeline.New(motion.Config{
		GainX:    cfg.GainX,
		GainY:    cfg.GainY,
		Alpha:    cfg.SmoothingAlpha,
		Deadzone: cfg.DeadzoneThreshold,
	}, cfg.PathCapacity)
}

// RunTracker opens the quaternion serial port, runs every sample through
// the cursor pipeline, and publishes the resulting frames as JSON to MQTT.
func RunTracker(cfg *config.Config) error {
	// ---- 1) Connect to MQTT broker ----
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDTracker)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer client.Disconnect(250)
	log.Printf("tracker: connected to MQTT broker at %s", cfg.MQTTBroker)

	// ---- 2) Open the IMU serial port ----
	src, err := quat.NewSerialSource(cfg.SerialPort, cfg.BaudRate)
	if err != nil {
		return err
	}
	defer src.Close()

	pipe := newPipeline(cfg)

	// ---- 3) Sequential sample loop ----
	// One sample is processed to completion before the next is read; the
	// pipeline owns no timing of its own.
	for {
		sample, err := src.Next()
		if err != nil {
			log.Printf("tracker: serial read error: %v", err)
			return err
		}

		frame, err := pipe.ProcessSample(sample)
		if err != nil {
			log.Printf("tracker: dropping sample: %v", err)
			continue
		}

		payload, err := json.Marshal(frame)
		if err != nil {
			log.Printf("tracker: json marshal error: %v", err)
			continue
		}

		token := client.Publish(cfg.TopicFrame, 0, true, payload)
		token.Wait()
		if token.Error() != nil {
			log.Printf("tracker: publish error: %v", token.Error())
		}
	}
}
