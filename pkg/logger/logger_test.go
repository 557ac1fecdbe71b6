package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, logrus.DebugLevel)
	l.SetFormatter(&logrus.JSONFormatter{})

	For(l, "engine").WithField("documentType", "EReferral").Info("generated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cdagen", entry["application"])
	assert.Equal(t, "engine", entry["component"])
	assert.Equal(t, "EReferral", entry["documentType"])
	assert.Equal(t, "generated", entry["msg"])
}

func TestConfigure(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	file := filepath.Join(t.TempDir(), "cdagen.log")
	l, err := Configure(Config{Level: "warn", Format: "json", File: file})
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	assert.Same(t, l, Default())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	_, err = Configure(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	var buf bytes.Buffer
	SetDefault(New(&buf, logrus.WarnLevel))
	Infof("hidden %d", 1)
	assert.Zero(t, buf.Len())

	Errorf("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")

	SetLevel(logrus.ErrorLevel)
	buf.Reset()
	Infof("hidden")
	assert.Zero(t, buf.Len())
	Errorf("failed")
	assert.Contains(t, buf.String(), "failed")
}
