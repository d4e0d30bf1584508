package metrics

import (
	"context"
	"time"
)

// NopCollector — no-op реализация Collector.
type NopCollector struct{}

// NewNopCollector создаёт NopCollector.
func NewNopCollector() *NopCollector {
	return &NopCollector{}
}

func (c *NopCollector) RecordCommandStart(_, _ string) {}

func (c *NopCollector) RecordCommandEnd(_, _ string, _ time.Duration, _ bool) {}

func (c *NopCollector) RecordRequest(_, _ string, _ int, _ time.Duration) {}

// Push всегда возвращает nil.
func (c *NopCollector) Push(_ context.Context) error {
	return nil
}
