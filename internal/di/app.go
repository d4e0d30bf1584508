package di

import (
	"context"

	"github.com/Kargones/apk-issues/internal/command/handlers/shared"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/pkg/logging"
	"github.com/Kargones/apk-issues/internal/pkg/metrics"
	"github.com/Kargones/apk-issues/internal/pkg/output"
)

// App содержит инициализированные зависимости приложения.
// Создаётся через Wire DI в InitializeApp().
//
// При добавлении новых зависимостей:
// 1. Добавить поле в App struct
// 2. Создать провайдер в providers.go
// 3. Добавить провайдер в ProviderSet в wire.go
// 4. Перегенерировать wire_gen.go: go generate ./internal/di/...
type App struct {
	// Config передаётся извне через InitializeApp().
	Config *config.Config

	// Logger создаётся через ProvideLogger на основе LoggingConfig.
	Logger logging.Logger

	// OutputWriter форматирует результаты команд по BR_OUTPUT_FORMAT.
	OutputWriter output.Writer

	// TraceID — идентификатор запуска для корреляции логов и span-ов.
	TraceID string

	// MetricsCollector собирает метрики команд и HTTP запросов к трекеру.
	// Если метрики отключены — NopCollector.
	MetricsCollector metrics.Collector

	// TracerShutdown завершает OTel TracerProvider и отправляет буферизированные span-ы.
	// Если трейсинг отключён — nop function.
	TracerShutdown func(context.Context) error

	// IssueClients создаёт клиент трекера задач с логгером и метриками приложения.
	IssueClients shared.ClientFactory
}

// HandlerDeps возвращает зависимости для регистрации обработчиков команд.
func (a *App) HandlerDeps() shared.Deps {
	return shared.Deps{
		Logger:    a.Logger,
		Writer:    a.OutputWriter,
		NewClient: a.IssueClients,
	}
}
