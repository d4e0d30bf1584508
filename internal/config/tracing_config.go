package config

import (
	"fmt"
	"time"
)

// TracingConfig — настройки OpenTelemetry трейсинга (BR_TRACING_*).
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled" env:"BR_TRACING_ENABLED" env-default:"false"`
	Endpoint    string `yaml:"endpoint" env:"BR_TRACING_ENDPOINT"`
	ServiceName string `yaml:"serviceName" env:"BR_TRACING_SERVICE_NAME" env-default:"apk-issues"`
	Environment string `yaml:"environment" env:"BR_TRACING_ENVIRONMENT" env-default:"production"`

	// Insecure — HTTP вместо HTTPS для OTLP endpoint; по умолчанию true, см. newConfig.
	Insecure bool `yaml:"insecure" env:"BR_TRACING_INSECURE"`

	Timeout      time.Duration `yaml:"timeout" env:"BR_TRACING_TIMEOUT" env-default:"5s"`
	SamplingRate float64       `yaml:"samplingRate" env:"BR_TRACING_SAMPLING_RATE"`
}

func validateTracingConfig(tc *TracingConfig) error {
	if !tc.Enabled {
		return nil
	}
	if tc.Endpoint == "" {
		return fmt.Errorf("tracing: BR_TRACING_ENDPOINT обязателен при enabled=true")
	}
	if tc.SamplingRate < 0 || tc.SamplingRate > 1 {
		return fmt.Errorf("tracing: sampling rate должен быть от 0.0 до 1.0, получено %g", tc.SamplingRate)
	}
	return nil
}
