package app

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/imu_cursor/internal/config"
	"github.com/relabs-tech/imu_cursor/internal/pipeline"
)

// RunConsole subscribes to the cursor frame topic and prints each frame
// until interrupted.
func RunConsole(cfg *config.Config) error {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDConsole)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: connected to MQTT broker at %s", cfg.MQTTBroker)

	frameToken := client.Subscribe(cfg.TopicFrame, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var f pipeline.Frame
		if err := json.Unmarshal(msg.Payload(), &f); err != nil {
			log.Printf("console: frame unmarshal error: %v", err)
			return
		}

		fmt.Printf(
			"[FRAME] YAW=%7.2f PITCH=%7.2f ROLL=%7.2f  dx=%7.3f dy=%7.3f  cursor=(%8.2f,%8.2f)\n",
			f.Pose.Yaw, f.Pose.Pitch, f.Pose.Roll, f.DX, f.DY, f.X, f.Y,
		)
	})
	frameToken.Wait()
	if frameToken.Error() != nil {
		return frameToken.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicFrame)

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("console: shutting down")
	client.Disconnect(250)
	return nil
}
