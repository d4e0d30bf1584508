package config

import (
	"fmt"
	"time"
)

// MetricsConfig — настройки отправки метрик в Pushgateway (BR_METRICS_*).
type MetricsConfig struct {
	Enabled        bool          `yaml:"enabled" env:"BR_METRICS_ENABLED" env-default:"false"`
	PushgatewayURL string        `yaml:"pushgatewayUrl" env:"BR_METRICS_PUSHGATEWAY_URL"`
	JobName        string        `yaml:"jobName" env:"BR_METRICS_JOB_NAME" env-default:"apk-issues"`
	Timeout        time.Duration `yaml:"timeout" env:"BR_METRICS_TIMEOUT" env-default:"10s"`

	// InstanceLabel — пусто означает hostname.
	InstanceLabel string `yaml:"instanceLabel" env:"BR_METRICS_INSTANCE"`
}

func validateMetricsConfig(mc *MetricsConfig) error {
	if !mc.Enabled {
		return nil
	}
	if mc.PushgatewayURL == "" {
		return fmt.Errorf("metrics: BR_METRICS_PUSHGATEWAY_URL обязателен при enabled=true")
	}
	if mc.Timeout <= 0 {
		return fmt.Errorf("metrics: timeout должен быть положительным")
	}
	return nil
}
