package quat

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	serial "github.com/jacobsa/go-serial/serial"
)

// SerialSource reads newline-terminated quaternion samples from the IMU's
// serial port. Garbled or partial lines are dropped, which is normal while
// the sensor firmware is booting.
type SerialSource struct {
	port   io.ReadWriteCloser
	reader *bufio.Reader
}

// NewSerialSource opens portName at baudRate, 8N1.
func NewSerialSource(portName string, baudRate uint) (*SerialSource, error) {
	opts := serial.OpenOptions{
		PortName:              portName,
		BaudRate:              baudRate,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 0,
	}

	port, err := serial.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portName, err)
	}
	log.Printf("serial port %s opened at %d baud", portName, baudRate)

	return &SerialSource{port: port, reader: bufio.NewReader(port)}, nil
}

// Next blocks until a well-formed sample arrives. A transport error ends
// the stream.
func (s *SerialSource) Next() (Sample, error) {
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return Sample{}, fmt.Errorf("serial read: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		sample, err := ParseLine(line)
		if err != nil {
			// noisy link or partial sentence; skip and keep reading
			continue
		}
		return sample, nil
	}
}

// Close closes the underlying serial port.
func (s *SerialSource) Close() error {
	return s.port.Close()
}
