package main

import (
	"bytes"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericoliveiras/dessert-api/internal/config"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	std := log.StandardLogger()
	out, level := std.Out, std.GetLevel()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetLevel(level)
	})
}

func TestConfigureLoggingUsesStdout(t *testing.T) {
	restoreLogger(t)

	level, err := configureLogging(config.Config{LogLevel: "debug"}, os.Stdout)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)
	assert.Same(t, os.Stdout, log.StandardLogger().Out)
}

func TestConfigureLoggingWritesStartupLine(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	_, err := configureLogging(config.Config{LogLevel: "info"}, &buf)
	require.NoError(t, err)

	log.Infof("Server running on %s", config.Config{Port: 3000}.URL())
	assert.Contains(t, buf.String(), "Server running on http://localhost:3000")
}

func TestConfigureLoggingRejectsBadLevel(t *testing.T) {
	restoreLogger(t)

	_, err := configureLogging(config.Config{LogLevel: "loud"}, os.Stdout)
	assert.Error(t, err)
}
