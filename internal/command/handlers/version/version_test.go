package version

import (
	"bytes"
	"context"
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/apk-issues/internal/command/handlers/shared"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/constants"
	"github.com/Kargones/apk-issues/internal/pkg/output"
	"github.com/Kargones/apk-issues/internal/pkg/testutil"
	"github.com/Kargones/apk-issues/internal/pkg/tracing"
)

func TestHandler_Name(t *testing.T) {
	h := New(shared.Deps{})
	assert.Equal(t, "version", h.Name())
	assert.NotEmpty(t, h.Description())
}

func TestExecute_TextToStdout(t *testing.T) {
	h := New(shared.Deps{})

	var execErr error
	out := testutil.CaptureStdout(t, func() {
		execErr = h.Execute(context.Background(), nil)
	})

	require.NoError(t, execErr)
	assert.Contains(t, out, "apk-issues version "+constants.Version)
	assert.Contains(t, out, runtime.Version())
}

func TestExecute_JSON(t *testing.T) {
	var buf bytes.Buffer
	h := New(shared.Deps{Stdout: &buf})
	traceID := tracing.GenerateTraceID()
	ctx := tracing.WithTraceID(context.Background(), traceID)

	require.NoError(t, h.Execute(ctx, &config.Config{OutputFormat: "json"}))
	testutil.RequireResultSchema(t, buf.Bytes())

	var result struct {
		output.Result
		Data Data `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "version", result.Command)
	assert.Equal(t, traceID, result.Metadata.TraceID)
	assert.Equal(t, runtime.Version(), result.Data.GoVersion)
}

func TestBuildData_Fallbacks(t *testing.T) {
	d := buildData("", "")
	assert.Equal(t, "dev", d.Version)
	assert.Equal(t, "unknown", d.Commit)

	d = buildData("1.2.3", "abc123")
	assert.Equal(t, "1.2.3", d.Version)
	assert.Equal(t, "abc123", d.Commit)
}
