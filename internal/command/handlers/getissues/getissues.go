// Package getissues реализует команду get-issues.
package getissues

import (
	"context"
	"fmt"

	"github.com/Kargones/apk-issues/internal/command/handlers/shared"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/constants"
	"github.com/Kargones/apk-issues/internal/pkg/output"
)

// Handler читает первую страницу задач репозитория.
type Handler struct {
	deps shared.Deps
}

// New создаёт обработчик get-issues.
func New(deps shared.Deps) *Handler {
	return &Handler{deps: deps}
}

func (h *Handler) Name() string { return constants.ActGetIssues }

func (h *Handler) Description() string {
	return "Получение списка задач репозитория"
}

// Execute запрашивает список задач. Пагинация не выполняется:
// выводится то, что трекер вернул на первой странице.
func (h *Handler) Execute(ctx context.Context, cfg *config.Config) error {
	report := shared.NewReport(ctx, h.deps, cfg, h.Name())

	client, err := h.deps.Client(cfg)
	if err != nil {
		return report.Fail(err, nil)
	}

	resp, err := client.GetIssues(ctx, shared.Mode(cfg))
	if err != nil {
		return report.Fail(err, nil)
	}

	data := shared.NewIssueListData(resp)
	var summary *output.SummaryInfo
	if data.Count >= 0 {
		summary = output.NewSummaryInfo()
		summary.AddMetric("Задач получено", fmt.Sprintf("%d", data.Count), "шт")
	}
	return report.Success(data, summary)
}
