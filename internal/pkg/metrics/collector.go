// Package metrics собирает метрики запусков команд и HTTP запросов
// к трекеру задач и отправляет их в Prometheus Pushgateway.
//
// При выключенных метриках используется NopCollector.
package metrics

import (
	"context"
	"time"
)

// Collector определяет интерфейс сбора метрик.
type Collector interface {
	// RecordCommandStart отмечает начало выполнения команды.
	RecordCommandStart(command, repository string)

	// RecordCommandEnd записывает завершение команды с результатом.
	RecordCommandEnd(command, repository string, duration time.Duration, success bool)

	// RecordRequest записывает один HTTP запрос к трекеру задач.
	// statusCode == 0 означает, что ответ не был получен.
	RecordRequest(operation, method string, statusCode int, duration time.Duration)

	// Push отправляет метрики в Pushgateway.
	// Всегда возвращает nil: ошибки отправки только логируются.
	Push(ctx context.Context) error
}
