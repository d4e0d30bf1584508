package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptureStdout(t *testing.T) {
	out := CaptureStdout(t, func() { fmt.Print("hello") })
	assert.Equal(t, "hello", out)
}

func TestCaptureStdout_LargeOutput(t *testing.T) {
	payload := strings.Repeat("x", 256*1024)
	out := CaptureStdout(t, func() { fmt.Print(payload) })
	assert.Len(t, out, len(payload))
}

func TestRequireResultSchema(t *testing.T) {
	RequireResultSchema(t, []byte(`{"status":"success","command":"version","metadata":{"duration_ms":1,"api_version":"v1"}}`))
}
