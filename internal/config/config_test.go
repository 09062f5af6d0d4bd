package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cursor_config.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "/dev/ttyACM0", cfg.SerialPort)
	assert.Equal(t, uint(115200), cfg.BaudRate)
	assert.Equal(t, 18.0, cfg.GainX)
	assert.Equal(t, 18.0, cfg.GainY)
	assert.Equal(t, 0.2, cfg.SmoothingAlpha)
	assert.Equal(t, 0.02, cfg.DeadzoneThreshold)
	assert.Equal(t, 400, cfg.PathCapacity)
	assert.Equal(t, 10, cfg.SampleInterval)
	assert.Equal(t, "tcp://localhost:1883", cfg.MQTTBroker)
	assert.Equal(t, "cursor/frame", cfg.TopicFrame)
	assert.Equal(t, 8080, cfg.WebServerPort)

	assert.NoError(t, cfg.validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does_not_exist.txt"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
# tuning for the left-handed rig
GAIN_X = 24.5
GAIN_Y=12
SMOOTHING_ALPHA=0.5
DEADZONE_THRESHOLD=0.05
PATH_CAPACITY=100
SERIAL_PORT=/dev/ttyUSB1
BAUD_RATE=921600
MQTT_BROKER=tcp://pi4.local:1883
TOPIC_FRAME=lab/cursor
WEB_SERVER_PORT=9090
SAMPLE_INTERVAL=20
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 24.5, cfg.GainX)
	assert.Equal(t, 12.0, cfg.GainY)
	assert.Equal(t, 0.5, cfg.SmoothingAlpha)
	assert.Equal(t, 0.05, cfg.DeadzoneThreshold)
	assert.Equal(t, 100, cfg.PathCapacity)
	assert.Equal(t, "/dev/ttyUSB1", cfg.SerialPort)
	assert.Equal(t, uint(921600), cfg.BaudRate)
	assert.Equal(t, "tcp://pi4.local:1883", cfg.MQTTBroker)
	assert.Equal(t, "lab/cursor", cfg.TopicFrame)
	assert.Equal(t, 9090, cfg.WebServerPort)
	assert.Equal(t, 20, cfg.SampleInterval)

	// Untouched keys keep their defaults.
	assert.Equal(t, "imu-cursor-tracker", cfg.MQTTClientIDTracker)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "NO_SUCH_KEY=1"},
		{"malformed line", "GAIN_X"},
		{"non-numeric gain", "GAIN_X=fast"},
		{"alpha zero", "SMOOTHING_ALPHA=0"},
		{"alpha above one", "SMOOTHING_ALPHA=1.5"},
		{"negative deadzone", "DEADZONE_THRESHOLD=-0.1"},
		{"zero capacity", "PATH_CAPACITY=0"},
		{"zero interval", "SAMPLE_INTERVAL=0"},
		{"bad baud", "BAUD_RATE=-9600"},
		{"port out of range", "WEB_SERVER_PORT=70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
