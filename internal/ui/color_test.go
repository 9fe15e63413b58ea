package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// capture redirects the color package output for the duration of fn.
func capture(fn func()) string {
	var buf bytes.Buffer
	orig := color.Output
	color.Output = &buf
	defer func() { color.Output = orig }()

	fn()
	return buf.String()
}

func TestSuccess(t *testing.T) {
	out := capture(func() { Success("wrote %s", "docker-compose.yaml") })
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "wrote docker-compose.yaml")
}

func TestError(t *testing.T) {
	out := capture(func() { Error("failed: %v", "boom") })
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "failed: boom")
}

func TestWarning(t *testing.T) {
	out := capture(func() { Warning("check %s", "Network") })
	assert.Contains(t, out, "⚠")
	assert.Contains(t, out, "check Network")
}

func TestInfo(t *testing.T) {
	out := capture(func() { Info("Config entries: %d", 3) })
	assert.Contains(t, out, "Config entries: 3")
}

func TestHeader(t *testing.T) {
	out := capture(func() { Header("Template: %s", "plex.xml") })
	assert.Contains(t, out, "Template: plex.xml")
}
