package shared

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/Kargones/apk-issues/internal/adapter/issuetracker"
	"github.com/Kargones/apk-issues/internal/config"
)

// Mode возвращает режим ответа по INPUT_RAW.
func Mode(cfg *config.Config) issuetracker.ResponseMode {
	if cfg != nil && cfg.Raw {
		return issuetracker.ModeRaw
	}
	return issuetracker.ModeDecoded
}

// Fields собирает поля задачи из INPUT_TITLE, INPUT_BODY, INPUT_ASSIGNEE,
// INPUT_STATE и INPUT_LABELS.
func Fields(cfg *config.Config) issuetracker.IssueFields {
	return issuetracker.IssueFields{
		Title:    cfg.Input.GHATitle,
		Body:     cfg.Input.GHABody,
		Assignee: strings.TrimSpace(cfg.Input.GHAAssignee),
		State:    strings.TrimSpace(cfg.Input.GHAState),
		Labels:   cfg.Labels,
	}
}

// IssueJSON разбирает INPUT_ISSUEJSON в содержимое задачи.
// Ожидается JSON объект; пустое значение, массив или скаляр дают ValidationError.
func IssueJSON(cfg *config.Config) (issuetracker.IssueRequest, error) {
	raw := strings.TrimSpace(cfg.Input.GHAIssueJSON)
	if raw == "" {
		return nil, issuetracker.NewValidationError("issue_json", "не задан INPUT_ISSUEJSON")
	}

	// UseNumber сохраняет числа дополнительных полей (milestone и т.п.) как есть.
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var contents issuetracker.IssueRequest
	if err := dec.Decode(&contents); err != nil {
		return nil, issuetracker.NewValidationError("issue_json", "ожидался JSON объект: "+err.Error())
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, issuetracker.NewValidationError("issue_json", "лишние данные после JSON объекта")
	}
	if contents == nil {
		return nil, issuetracker.NewValidationError("issue_json", "ожидался JSON объект, получено null")
	}
	return contents, nil
}

// IssueNumbers возвращает номера задач из INPUT_ISSUENUMBERS.
func IssueNumbers(cfg *config.Config) ([]int64, error) {
	if len(cfg.IssueNums) == 0 {
		return nil, issuetracker.NewValidationError("issue_numbers", "не задан INPUT_ISSUENUMBERS")
	}
	return cfg.IssueNums, nil
}
