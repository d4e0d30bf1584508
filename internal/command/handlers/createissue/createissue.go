// Package createissue реализует команды create-issue и create-issue-from-json.
package createissue

import (
	"context"

	"github.com/Kargones/apk-issues/internal/adapter/issuetracker"
	"github.com/Kargones/apk-issues/internal/command/handlers/shared"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/constants"
)

// Handler создаёт задачу. С fromJSON содержимое берётся из INPUT_ISSUEJSON,
// иначе из отдельных полей INPUT_*.
type Handler struct {
	deps     shared.Deps
	fromJSON bool
}

// New создаёт обработчик create-issue.
func New(deps shared.Deps) *Handler {
	return &Handler{deps: deps}
}

// NewFromJSON создаёт обработчик create-issue-from-json.
func NewFromJSON(deps shared.Deps) *Handler {
	return &Handler{deps: deps, fromJSON: true}
}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	if h.fromJSON {
		return constants.ActCreateIssueFromJSON
	}
	return constants.ActCreateIssue
}

// Description возвращает описание команды для help.
func (h *Handler) Description() string {
	if h.fromJSON {
		return "Создание задачи из JSON объекта INPUT_ISSUEJSON"
	}
	return "Создание задачи из INPUT_TITLE, INPUT_BODY, INPUT_ASSIGNEE, INPUT_LABELS"
}

// Execute создаёт задачу и выводит ответ трекера.
func (h *Handler) Execute(ctx context.Context, cfg *config.Config) error {
	report := shared.NewReport(ctx, h.deps, cfg, h.Name())
	log := h.deps.Log().With("command", h.Name(), "repository", cfg.Repository())

	client, err := h.deps.Client(cfg)
	if err != nil {
		return report.Fail(err, nil)
	}

	mode := shared.Mode(cfg)
	log.Info("создание задачи", "mode", mode.String())

	var resp *issuetracker.Response
	if h.fromJSON {
		contents, parseErr := shared.IssueJSON(cfg)
		if parseErr != nil {
			return report.Fail(parseErr, nil)
		}
		resp, err = client.CreateIssueFromMap(ctx, contents, mode)
	} else {
		resp, err = client.CreateIssue(ctx, shared.Fields(cfg), mode)
	}
	if err != nil {
		return report.Fail(err, nil)
	}

	data := shared.NewIssueData(0, resp)
	var issue issuetracker.Issue
	if decodeErr := resp.Decode(&issue); decodeErr == nil && issue.Number > 0 {
		log.Info("задача создана", "issue_number", issue.Number)
	}
	return report.Success(data, nil)
}
