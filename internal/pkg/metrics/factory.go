package metrics

import (
	"github.com/Kargones/apk-issues/internal/pkg/logging"
)

// NewCollector создаёт Collector по конфигурации:
// NopCollector при Enabled = false, иначе PrometheusCollector.
func NewCollector(config Config, logger logging.Logger) (Collector, error) {
	if !config.Enabled {
		return NewNopCollector(), nil
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return NewPrometheusCollector(config, logger)
}
