// Package main содержит точку входа apk-issues: создание, обновление
// и чтение задач GitHub/Gitea из шагов CI.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/apk-issues/internal/command"
	"github.com/Kargones/apk-issues/internal/command/handlers"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/constants"
	"github.com/Kargones/apk-issues/internal/di"
	"github.com/Kargones/apk-issues/internal/pkg/apperrors"
	"github.com/Kargones/apk-issues/internal/pkg/metrics"
	"github.com/Kargones/apk-issues/internal/pkg/output"
	"github.com/Kargones/apk-issues/internal/pkg/tracing"
)

func main() {
	os.Exit(run())
}

// run возвращает exit code. os.Exit вызывается в main после отработки
// всех defer (shutdown трейсинга, span.End).
func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось загрузить конфигурацию: %v\n", err)
		return constants.ExitConfigError
	}
	if cfg.Command == "" {
		cfg.Command = constants.ActHelp
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Некорректная конфигурация: %v\n", err)
		return constants.ExitConfigError
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось инициализировать приложение: %v\n", err)
		return constants.ExitConfigError
	}

	l := app.Logger.With("trace_id", app.TraceID, "command", cfg.Command)
	l.Debug("Информация о сборке",
		"version", constants.Version,
		"commit_hash", constants.PreCommitHash,
	)

	ctx := tracing.WithTraceID(context.Background(), app.TraceID)
	ctx = tracing.ContextWithOTelTraceID(ctx, app.TraceID)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.TracerShutdown(shutdownCtx); err != nil {
			l.Error("ошибка завершения tracing", "error", err.Error())
		}
	}()

	ctx, span := otel.Tracer(tracing.TracerName).Start(ctx, cfg.Command,
		trace.WithAttributes(
			attribute.String("command", cfg.Command),
			attribute.String("repository", cfg.Repository()),
			attribute.String("trace_id", app.TraceID),
		),
	)
	defer span.End()

	if err := handlers.RegisterAll(app.HandlerDeps()); err != nil {
		l.Error("ошибка регистрации команд", "error", err.Error())
		return constants.ExitCommandFailed
	}

	handler, ok := command.Get(cfg.Command)
	if !ok {
		l.Error("неизвестная команда", "available", command.Names())
		writeUnknownCommand(app, cfg.Command)
		return constants.ExitUnknownCommand
	}

	app.MetricsCollector.RecordCommandStart(cfg.Command, cfg.Repository())
	start := time.Now()

	execErr := handler.Execute(ctx, cfg)
	recordMetrics(ctx, app.MetricsCollector, cfg.Command, cfg.Repository(), start, execErr == nil)

	if execErr != nil {
		span.RecordError(execErr)
		l.Error("Ошибка выполнения команды",
			"error", execErr.Error(),
			"code", apperrors.CodeOf(execErr),
		)
		return constants.ExitCommandFailed
	}
	return constants.ExitOK
}

// recordMetrics записывает завершение команды и отправляет метрики в Pushgateway.
func recordMetrics(ctx context.Context, collector metrics.Collector, cmd, repository string, start time.Time, success bool) {
	collector.RecordCommandEnd(cmd, repository, time.Since(start), success)
	_ = collector.Push(ctx) // ошибки push логируются внутри
}

func writeUnknownCommand(app *di.App, name string) {
	result := &output.Result{
		Status:  output.StatusError,
		Command: name,
		Error: &output.ErrorInfo{
			Code:    apperrors.ErrCommandNotFound,
			Message: fmt.Sprintf("неизвестная команда %q, список команд: INPUT_COMMAND=help", name),
		},
		Metadata: &output.Metadata{
			TraceID:    app.TraceID,
			APIVersion: constants.APIVersion,
		},
	}
	_ = app.OutputWriter.Write(os.Stdout, result)
}
