package di

import (
	"context"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/apk-issues/internal/adapter/issuetracker"
	"github.com/Kargones/apk-issues/internal/adapter/issuetracker/issuetrackertest"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/pkg/metrics"
	"github.com/Kargones/apk-issues/internal/pkg/output"
)

var traceIDPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestProvideLogger_NilConfig(t *testing.T) {
	assert.NotNil(t, ProvideLogger(nil))
}

func TestProvideLogger_FileOutput(t *testing.T) {
	cfg := &config.Config{Logging: config.LoggingConfig{
		Level:    "debug",
		Format:   "json",
		Output:   "file",
		FilePath: t.TempDir() + "/apk-issues.log",
	}}
	logger := ProvideLogger(cfg)
	require.NotNil(t, logger)
	logger.Debug("проверка записи в файл")
}

func TestProvideOutputWriter(t *testing.T) {
	tests := []struct {
		name   string
		cfg    *config.Config
		expect output.Writer
	}{
		{"nil config", nil, &output.TextWriter{}},
		{"пустой формат", &config.Config{}, &output.TextWriter{}},
		{"json", &config.Config{OutputFormat: "json"}, &output.JSONWriter{}},
		{"JSON в верхнем регистре", &config.Config{OutputFormat: "JSON"}, &output.JSONWriter{}},
		{"text", &config.Config{OutputFormat: "text"}, &output.TextWriter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.expect, ProvideOutputWriter(tt.cfg))
		})
	}
}

func TestProvideTraceID(t *testing.T) {
	a, b := ProvideTraceID(), ProvideTraceID()
	assert.Regexp(t, traceIDPattern, a)
	assert.NotEqual(t, a, b)
}

func TestProvideMetricsCollector(t *testing.T) {
	logger := ProvideLogger(nil)

	assert.IsType(t, &metrics.NopCollector{}, ProvideMetricsCollector(nil, logger))
	assert.IsType(t, &metrics.NopCollector{}, ProvideMetricsCollector(&config.Config{}, logger))

	// Включено без URL: ошибка создания даёт NopCollector.
	bad := &config.Config{Metrics: config.MetricsConfig{Enabled: true, JobName: "apk-issues"}}
	assert.IsType(t, &metrics.NopCollector{}, ProvideMetricsCollector(bad, logger))

	good := &config.Config{Metrics: config.MetricsConfig{
		Enabled:        true,
		PushgatewayURL: "http://pushgateway:9091",
		JobName:        "apk-issues",
		Timeout:        time.Second,
	}}
	assert.IsType(t, &metrics.PrometheusCollector{}, ProvideMetricsCollector(good, logger))
}

func TestProvideTracerProvider(t *testing.T) {
	logger := ProvideLogger(nil)

	shutdown := ProvideTracerProvider(nil, logger)
	assert.NoError(t, shutdown(context.Background()))

	// Включено без endpoint: nop shutdown вместо ошибки.
	shutdown = ProvideTracerProvider(&config.Config{Tracing: config.TracingConfig{Enabled: true}}, logger)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitializeApp_AllFieldsSet(t *testing.T) {
	cfg := &config.Config{OutputFormat: "json"}

	app, err := InitializeApp(cfg)
	require.NoError(t, err)

	assert.Same(t, cfg, app.Config)
	assert.NotNil(t, app.Logger)
	assert.IsType(t, &output.JSONWriter{}, app.OutputWriter)
	assert.Regexp(t, traceIDPattern, app.TraceID)
	assert.NotNil(t, app.MetricsCollector)
	assert.NotNil(t, app.TracerShutdown)
	assert.NotNil(t, app.IssueClients)

	deps := app.HandlerDeps()
	assert.Equal(t, app.OutputWriter, deps.Writer)
	assert.Nil(t, deps.Stdout)
}

func TestInitializeApp_IssueClientsReachServer(t *testing.T) {
	srv := issuetrackertest.NewServer(t)
	cfg := &config.Config{
		APIURL:      srv.URL,
		AccessToken: issuetrackertest.TestToken,
		Owner:       issuetrackertest.TestOwner,
		Repo:        issuetrackertest.TestRepo,
	}

	app, err := InitializeApp(cfg)
	require.NoError(t, err)

	client, err := app.IssueClients(cfg)
	require.NoError(t, err)

	resp, err := client.GetIssues(context.Background(), issuetracker.ModeRaw)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, ok := resp.Raw()
	assert.True(t, ok)
	assert.JSONEq(t, issuetrackertest.IssueListJSON(), body)
}
