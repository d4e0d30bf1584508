//go:build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Kargones/apk-issues/internal/config"
)

//go:generate wire

// ProviderSet объединяет все провайдеры приложения.
//
// При добавлении провайдера:
// 1. Создать функцию провайдера в providers.go
// 2. Добавить её в ProviderSet
// 3. Перегенерировать wire_gen.go: make generate (проверка: make wire-check)
var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideOutputWriter,
	ProvideTraceID,
	ProvideMetricsCollector,
	ProvideTracerProvider,
	ProvideIssueClientFactory,
	wire.Struct(new(App), "*"),
)

// InitializeApp создаёт App через Wire DI.
// Реализация генерируется в wire_gen.go.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	app, err := di.InitializeApp(cfg)
func InitializeApp(cfg *config.Config) (*App, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
