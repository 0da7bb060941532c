package rlog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer func() {
		DebugEnabled = false
	}()

	DebugEnabled = false
	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	DebugEnabled = true
	Debug("shown %d", 2)
	assert.Contains(t, buf.String(), "[DEBUG] shown 2")

	Error("failed: %s", "boom")
	assert.Contains(t, buf.String(), "[ERROR] failed: boom")
}
