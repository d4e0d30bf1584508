package tracing

import "context"

// NewNopTracerProvider возвращает пустую shutdown-функцию для выключенного трейсинга.
func NewNopTracerProvider() func(context.Context) error {
	return func(_ context.Context) error { return nil }
}
