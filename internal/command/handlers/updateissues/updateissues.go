// Package updateissues реализует пакетное обновление задач:
// update-issues и update-issues-from-json.
package updateissues

import (
	"context"
	"strings"

	"github.com/Kargones/apk-issues/internal/adapter/issuetracker"
	"github.com/Kargones/apk-issues/internal/command/handlers/shared"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/constants"
	"github.com/Kargones/apk-issues/internal/pkg/output"
	"github.com/Kargones/apk-issues/internal/pkg/progress"
)

// Handler обновляет задачи INPUT_ISSUENUMBERS по очереди, одинаковым содержимым.
type Handler struct {
	deps     shared.Deps
	fromJSON bool
}

// New создаёт обработчик update-issues.
func New(deps shared.Deps) *Handler {
	return &Handler{deps: deps}
}

// NewFromJSON создаёт обработчик update-issues-from-json.
func NewFromJSON(deps shared.Deps) *Handler {
	return &Handler{deps: deps, fromJSON: true}
}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	if h.fromJSON {
		return constants.ActUpdateIssuesFromJSON
	}
	return constants.ActUpdateIssues
}

// Description возвращает описание команды для help.
func (h *Handler) Description() string {
	if h.fromJSON {
		return "Обновление задач INPUT_ISSUENUMBERS из JSON объекта INPUT_ISSUEJSON"
	}
	return "Обновление задач INPUT_ISSUENUMBERS из полей INPUT_*"
}

// Execute обновляет задачи. Частичный результат выводится и при ошибке:
// статус error, в data перечислены обновлённые и упавшие задачи.
func (h *Handler) Execute(ctx context.Context, cfg *config.Config) error {
	report := shared.NewReport(ctx, h.deps, cfg, h.Name())
	mode := shared.Mode(cfg)

	numbers, err := shared.IssueNumbers(cfg)
	if err != nil {
		return report.Fail(err, nil)
	}

	client, err := h.deps.Client(cfg, issuetracker.WithProgress(h.progress(cfg, len(numbers))))
	if err != nil {
		return report.Fail(err, nil)
	}

	h.deps.Log().Info("пакетное обновление задач",
		"command", h.Name(),
		"repository", cfg.Repository(),
		"count", len(numbers),
		"policy", cfg.BulkPolicy,
	)

	var res *issuetracker.BulkResult
	if h.fromJSON {
		contents, parseErr := shared.IssueJSON(cfg)
		if parseErr != nil {
			return report.Fail(parseErr, nil)
		}
		res, err = client.UpdateIssuesFromMap(ctx, numbers, contents, mode)
	} else {
		res, err = client.UpdateIssues(ctx, numbers, shared.Fields(cfg), mode)
	}

	data := shared.NewBulkData(numbers, res, policyName(cfg), mode)
	if err != nil {
		return report.Fail(err, data)
	}
	return report.Success(data, data.Summary())
}

// progress выводит прогресс в stderr. Для JSON вывода отключён.
func (h *Handler) progress(cfg *config.Config, total int) progress.Progress {
	return progress.New(progress.Options{
		Enabled: cfg.ShowProgress && !strings.EqualFold(cfg.OutputFormat, output.FormatJSON),
		Total:   int64(total),
		Output:  h.deps.ErrOut(),
		Logger:  h.deps.Log(),
	})
}

func policyName(cfg *config.Config) string {
	if cfg.BulkPolicy == "" {
		return constants.BulkPolicyStop
	}
	return cfg.BulkPolicy
}
