// Package getissue реализует команду get-issue.
package getissue

import (
	"context"

	"github.com/Kargones/apk-issues/internal/command/handlers/shared"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/constants"
)

// Handler читает одну задачу.
type Handler struct {
	deps shared.Deps
}

// New создаёт обработчик get-issue.
func New(deps shared.Deps) *Handler {
	return &Handler{deps: deps}
}

func (h *Handler) Name() string { return constants.ActGetIssue }

func (h *Handler) Description() string {
	return "Получение задачи INPUT_ISSUENUMBER"
}

// Execute запрашивает задачу и выводит ответ трекера.
func (h *Handler) Execute(ctx context.Context, cfg *config.Config) error {
	report := shared.NewReport(ctx, h.deps, cfg, h.Name())

	client, err := h.deps.Client(cfg)
	if err != nil {
		return report.Fail(err, nil)
	}

	resp, err := client.GetIssue(ctx, cfg.IssueNumber, shared.Mode(cfg))
	if err != nil {
		return report.Fail(err, nil)
	}
	return report.Success(shared.NewIssueData(cfg.IssueNumber, resp), nil)
}
