package shared

import (
	"context"
	"time"

	"github.com/Kargones/apk-issues/internal/adapter/issuetracker"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/constants"
	"github.com/Kargones/apk-issues/internal/pkg/apperrors"
	"github.com/Kargones/apk-issues/internal/pkg/output"
	"github.com/Kargones/apk-issues/internal/pkg/tracing"
)

// Report выводит результат одной команды.
type Report struct {
	deps    Deps
	cfg     *config.Config
	command string
	start   time.Time
	traceID string
}

// NewReport начинает отсчёт времени выполнения команды.
// Trace ID берётся из ctx, при отсутствии генерируется.
func NewReport(ctx context.Context, deps Deps, cfg *config.Config, command string) *Report {
	traceID := tracing.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = tracing.GenerateTraceID()
	}
	return &Report{
		deps:    deps,
		cfg:     cfg,
		command: command,
		start:   time.Now(),
		traceID: traceID,
	}
}

// Success пишет успешный результат.
func (r *Report) Success(data any, summary *output.SummaryInfo) error {
	result := &output.Result{
		Status:   output.StatusSuccess,
		Command:  r.command,
		Data:     data,
		Metadata: r.metadata(),
		Summary:  summary,
	}
	if err := r.deps.OutputWriter(r.cfg).Write(r.deps.Out(), result); err != nil {
		return apperrors.NewAppError(apperrors.ErrOutputFormat, "не удалось вывести результат", err)
	}
	return nil
}

// Fail пишет результат с ошибкой и возвращает cause.
// data может быть nil, например для частично выполненного пакета.
func (r *Report) Fail(cause error, data any) error {
	info := ErrorInfo(cause)
	r.deps.Log().Error("команда завершилась с ошибкой",
		"command", r.command,
		"code", info.Code,
		"status_code", info.StatusCode,
		"error", cause.Error(),
	)

	result := &output.Result{
		Status:   output.StatusError,
		Command:  r.command,
		Data:     data,
		Error:    info,
		Metadata: r.metadata(),
	}
	if err := r.deps.OutputWriter(r.cfg).Write(r.deps.Out(), result); err != nil {
		r.deps.Log().Error("не удалось вывести результат", "error", err.Error())
	}
	return cause
}

func (r *Report) metadata() *output.Metadata {
	return &output.Metadata{
		DurationMs: time.Since(r.start).Milliseconds(),
		TraceID:    r.traceID,
		APIVersion: constants.APIVersion,
	}
}

// ErrorInfo переводит ошибку в output.ErrorInfo: код из цепочки ошибок
// и HTTP статус, если ответ трекера был получен.
func ErrorInfo(err error) *output.ErrorInfo {
	if err == nil {
		return nil
	}
	return &output.ErrorInfo{
		Code:       apperrors.CodeOf(err),
		Message:    err.Error(),
		StatusCode: issuetracker.StatusCode(err),
	}
}
