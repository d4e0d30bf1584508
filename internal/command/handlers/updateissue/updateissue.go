// Package updateissue реализует команды update-issue и update-issue-from-json.
package updateissue

import (
	"context"

	"github.com/Kargones/apk-issues/internal/adapter/issuetracker"
	"github.com/Kargones/apk-issues/internal/command/handlers/shared"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/constants"
)

// Handler обновляет задачу INPUT_ISSUENUMBER.
type Handler struct {
	deps     shared.Deps
	fromJSON bool
}

// New создаёт обработчик update-issue.
func New(deps shared.Deps) *Handler {
	return &Handler{deps: deps}
}

// NewFromJSON создаёт обработчик update-issue-from-json.
func NewFromJSON(deps shared.Deps) *Handler {
	return &Handler{deps: deps, fromJSON: true}
}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	if h.fromJSON {
		return constants.ActUpdateIssueFromJSON
	}
	return constants.ActUpdateIssue
}

// Description возвращает описание команды для help.
func (h *Handler) Description() string {
	if h.fromJSON {
		return "Обновление задачи INPUT_ISSUENUMBER из JSON объекта INPUT_ISSUEJSON"
	}
	return "Обновление задачи INPUT_ISSUENUMBER из полей INPUT_*"
}

// Execute обновляет задачу и выводит ответ трекера.
func (h *Handler) Execute(ctx context.Context, cfg *config.Config) error {
	report := shared.NewReport(ctx, h.deps, cfg, h.Name())

	client, err := h.deps.Client(cfg)
	if err != nil {
		return report.Fail(err, nil)
	}

	mode := shared.Mode(cfg)
	h.deps.Log().Info("обновление задачи",
		"command", h.Name(),
		"repository", cfg.Repository(),
		"issue_number", cfg.IssueNumber,
		"mode", mode.String(),
	)

	var resp *issuetracker.Response
	if h.fromJSON {
		contents, parseErr := shared.IssueJSON(cfg)
		if parseErr != nil {
			return report.Fail(parseErr, nil)
		}
		resp, err = client.UpdateIssueFromMap(ctx, cfg.IssueNumber, contents, mode)
	} else {
		resp, err = client.UpdateIssue(ctx, cfg.IssueNumber, shared.Fields(cfg), mode)
	}
	if err != nil {
		return report.Fail(err, nil)
	}
	return report.Success(shared.NewIssueData(cfg.IssueNumber, resp), nil)
}
