package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(os.Stdout, os.Stderr)
		Init(false)
	})
	return &out, &errOut
}

func TestLevelsGoToTheirStreams(t *testing.T) {
	out, errOut := capture(t)

	Info("[INFO] hello %s\n", "world")
	Warn("[WARN] careful\n")
	Error("[ERROR] broken\n")

	assert.Contains(t, out.String(), "[INFO] hello world")
	assert.NotContains(t, out.String(), "careful")
	assert.Contains(t, errOut.String(), "[WARN] careful")
	assert.Contains(t, errOut.String(), "[ERROR] broken")
}

func TestDebugIsGated(t *testing.T) {
	out, _ := capture(t)

	Init(false)
	Debug("[DEBUG] hidden\n")
	assert.Empty(t, out.String())

	Init(true)
	Debug("[DEBUG] shown\n")
	assert.Contains(t, out.String(), "[DEBUG] shown")
}

func TestSetOutputIgnoresNil(t *testing.T) {
	out, errOut := capture(t)
	SetOutput(nil, nil)

	Info("still here\n")
	Error("and here\n")

	assert.Contains(t, out.String(), "still here")
	assert.Contains(t, errOut.String(), "and here")
}
