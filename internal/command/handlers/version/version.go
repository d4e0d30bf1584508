// Package version реализует команду version.
package version

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/Kargones/apk-issues/internal/command/handlers/shared"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/constants"
	"github.com/Kargones/apk-issues/internal/pkg/output"
)

// Data содержит информацию о версии приложения.
type Data struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Commit    string `json:"commit"`
}

// writeText выводит версию в человекочитаемом формате.
func (d *Data) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "apk-issues version %s\n  Go:     %s\n  Commit: %s\n",
		d.Version, d.GoVersion, d.Commit)
	return err
}

// buildData создаёт Data; пустые version и commit заменяются на "dev" и "unknown".
func buildData(version, commit string) *Data {
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	return &Data{
		Version:   version,
		GoVersion: runtime.Version(),
		Commit:    commit,
	}
}

// Handler обрабатывает команду version.
type Handler struct {
	deps shared.Deps
}

// New создаёт обработчик version.
func New(deps shared.Deps) *Handler {
	return &Handler{deps: deps}
}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	return constants.ActVersion
}

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	return "Вывод информации о версии приложения"
}

// Execute выводит версию. Текстовый формат компактный, без metadata;
// trace_id и duration_ms есть только в JSON.
func (h *Handler) Execute(ctx context.Context, cfg *config.Config) error {
	data := buildData(constants.Version, constants.PreCommitHash)

	if cfg == nil || !strings.EqualFold(cfg.OutputFormat, output.FormatJSON) {
		return data.writeText(h.deps.Out())
	}
	return shared.NewReport(ctx, h.deps, cfg, constants.ActVersion).Success(data, nil)
}
