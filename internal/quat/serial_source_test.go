package quat

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialSourceSkipsGarbage(t *testing.T) {
	data := "boot banner\n\n1,0,0,0\n0.9,0.1,0,0,extra\nnot,a,quat\n0.8,0.2,0,0\n"
	src := &SerialSource{reader: bufio.NewReader(strings.NewReader(data))}

	s, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, Sample{Q0: 1}, s)

	s, err = src.Next()
	require.NoError(t, err)
	assert.Equal(t, Sample{Q0: 0.9, Q1: 0.1}, s)

	s, err = src.Next()
	require.NoError(t, err)
	assert.Equal(t, Sample{Q0: 0.8, Q1: 0.2}, s)

	// Stream exhausted: the transport error surfaces.
	_, err = src.Next()
	assert.Error(t, err)
}
