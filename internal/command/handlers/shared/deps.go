// Package shared содержит общие компоненты обработчиков команд:
// зависимости, создание клиента трекера и вывод результата.
package shared

import (
	"fmt"
	"io"
	"os"

	"github.com/Kargones/apk-issues/internal/adapter/issuetracker"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/pkg/logging"
	"github.com/Kargones/apk-issues/internal/pkg/metrics"
	"github.com/Kargones/apk-issues/internal/pkg/output"
)

// ClientFactory создаёт клиент трекера задач по конфигурации запуска.
// opts дополняют опции, заданные фабрикой.
type ClientFactory func(cfg *config.Config, opts ...issuetracker.Option) (issuetracker.API, error)

// Deps — зависимости, общие для всех обработчиков.
type Deps struct {
	Logger    logging.Logger
	Writer    output.Writer
	NewClient ClientFactory

	// Stdout — куда пишется результат. nil означает os.Stdout.
	Stdout io.Writer

	// Stderr — куда выводится прогресс. nil означает os.Stderr.
	Stderr io.Writer
}

// Out возвращает writer для результата команды.
func (d Deps) Out() io.Writer {
	if d.Stdout != nil {
		return d.Stdout
	}
	return os.Stdout
}

// ErrOut возвращает writer для прогресса.
func (d Deps) ErrOut() io.Writer {
	if d.Stderr != nil {
		return d.Stderr
	}
	return os.Stderr
}

// Log возвращает логгер, nop если не задан.
func (d Deps) Log() logging.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return logging.NewNopLogger()
}

// OutputWriter возвращает Writer; при его отсутствии формат берётся из cfg.
func (d Deps) OutputWriter(cfg *config.Config) output.Writer {
	if d.Writer != nil {
		return d.Writer
	}
	format := output.FormatText
	if cfg != nil && cfg.OutputFormat != "" {
		format = cfg.OutputFormat
	}
	return output.NewWriter(format)
}

// Client создаёт клиент трекера через NewClient.
func (d Deps) Client(cfg *config.Config, opts ...issuetracker.Option) (issuetracker.API, error) {
	if d.NewClient == nil {
		return nil, fmt.Errorf("фабрика клиента трекера не задана")
	}
	return d.NewClient(cfg, opts...)
}

// NewClientFactory возвращает ClientFactory, создающую issuetracker.Client
// с логгером и сбором метрик по каждому HTTP запросу.
func NewClientFactory(logger logging.Logger, collector metrics.Collector, base ...issuetracker.Option) ClientFactory {
	return func(cfg *config.Config, opts ...issuetracker.Option) (issuetracker.API, error) {
		if cfg == nil {
			return nil, fmt.Errorf("конфигурация не может быть nil")
		}

		policy, err := issuetracker.ParseBulkPolicy(cfg.BulkPolicy)
		if err != nil {
			return nil, err
		}

		all := []issuetracker.Option{issuetracker.WithBulkPolicy(policy)}
		if logger != nil {
			all = append(all, issuetracker.WithLogger(logger))
		}
		if collector != nil {
			all = append(all, issuetracker.WithObserver(collector))
		}
		all = append(all, base...)
		all = append(all, opts...)

		return issuetracker.NewClient(issuetracker.Config{
			BaseURL:     cfg.APIURL,
			AccessToken: cfg.AccessToken,
			Owner:       cfg.Owner,
			Repo:        cfg.Repo,
		}, all...)
	}
}
