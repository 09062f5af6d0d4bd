package config

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration values. It is loaded once at
// startup and passed explicitly to the components that need it; there is
// no process-wide mutable configuration.
type Config struct {
	// Serial transport
	SerialPort string
	BaudRate   uint

	// Motion tuning
	GainX             float64
	GainY             float64
	SmoothingAlpha    float64
	DeadzoneThreshold float64
	PathCapacity      int

	// Timing
	SampleInterval int // milliseconds, mock source cadence

	// MQTT
	MQTTBroker          string
	MQTTClientIDTracker string
	MQTTClientIDConsole string
	MQTTClientIDWeb     string
	TopicFrame          string

	// Web Server
	WebServerPort int
}

// Default returns the configuration matching the reference device tuning.
func Default() *Config {
	return &Config{
		SerialPort:        "/dev/ttyACM0",
		BaudRate:          115200,
		GainX:             18.0,
		GainY:             18.0,
		SmoothingAlpha:    0.2,
		DeadzoneThreshold: 0.02,
		PathCapacity:      400,
		SampleInterval:    10,

		MQTTBroker:          "tcp://localhost:1883",
		MQTTClientIDTracker: "imu-cursor-tracker",
		MQTTClientIDConsole: "imu-cursor-console",
		MQTTClientIDWeb:     "imu-cursor-web",
		TopicFrame:          "cursor/frame",

		WebServerPort: 8080,
	}
}

// Load reads a KEY=VALUE configuration file on top of the defaults.
// A missing file is not an error: the defaults cover a stock setup.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// Serial transport
	case "SERIAL_PORT":
		c.SerialPort = value
	case "BAUD_RATE":
		rate, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid BAUD_RATE %q: %w", value, err)
		}
		if rate <= 0 {
			return fmt.Errorf("BAUD_RATE must be positive, got %d", rate)
		}
		c.BaudRate = uint(rate)

	// Motion tuning
	case "GAIN_X":
		gain, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid GAIN_X %q: %w", value, err)
		}
		c.GainX = gain
	case "GAIN_Y":
		gain, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid GAIN_Y %q: %w", value, err)
		}
		c.GainY = gain
	case "SMOOTHING_ALPHA":
		alpha, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid SMOOTHING_ALPHA %q: %w", value, err)
		}
		c.SmoothingAlpha = alpha
	case "DEADZONE_THRESHOLD":
		dz, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid DEADZONE_THRESHOLD %q: %w", value, err)
		}
		c.DeadzoneThreshold = dz
	case "PATH_CAPACITY":
		capacity, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid PATH_CAPACITY %q: %w", value, err)
		}
		c.PathCapacity = capacity

	// Timing
	case "SAMPLE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid SAMPLE_INTERVAL %q: %w", value, err)
		}
		c.SampleInterval = interval

	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_TRACKER":
		c.MQTTClientIDTracker = value
	case "MQTT_CLIENT_ID_CONSOLE":
		c.MQTTClientIDConsole = value
	case "MQTT_CLIENT_ID_WEB":
		c.MQTTClientIDWeb = value
	case "TOPIC_FRAME":
		c.TopicFrame = value

	// Web Server
	case "WEB_SERVER_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WEB_SERVER_PORT %q: %w", value, err)
		}
		c.WebServerPort = port

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

// validate checks that all values are usable.
func (c *Config) validate() error {
	if c.SerialPort == "" {
		return fmt.Errorf("SERIAL_PORT is required")
	}
	if c.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required")
	}
	if c.TopicFrame == "" {
		return fmt.Errorf("TOPIC_FRAME is required")
	}
	if math.IsNaN(c.GainX) || math.IsInf(c.GainX, 0) {
		return fmt.Errorf("GAIN_X must be finite")
	}
	if math.IsNaN(c.GainY) || math.IsInf(c.GainY, 0) {
		return fmt.Errorf("GAIN_Y must be finite")
	}
	if !(c.SmoothingAlpha > 0 && c.SmoothingAlpha <= 1) {
		return fmt.Errorf("SMOOTHING_ALPHA must be in (0,1], got %g", c.SmoothingAlpha)
	}
	if c.DeadzoneThreshold < 0 || math.IsNaN(c.DeadzoneThreshold) {
		return fmt.Errorf("DEADZONE_THRESHOLD must be >= 0, got %g", c.DeadzoneThreshold)
	}
	if c.PathCapacity <= 0 {
		return fmt.Errorf("PATH_CAPACITY must be positive, got %d", c.PathCapacity)
	}
	if c.SampleInterval <= 0 {
		return fmt.Errorf("SAMPLE_INTERVAL must be positive, got %d", c.SampleInterval)
	}
	if c.WebServerPort <= 0 || c.WebServerPort > 65535 {
		return fmt.Errorf("WEB_SERVER_PORT must be in 1-65535, got %d", c.WebServerPort)
	}
	return nil
}
