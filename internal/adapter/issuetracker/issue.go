package issuetracker

import (
	"fmt"
	"strings"
	"time"
)

// IssueRequest — аргументы создания или обновления задачи.
// Распознаваемые ключи: title (обязателен), body, assignee, labels, state.
// Остальные ключи передаются API без изменений.
type IssueRequest map[string]any

// IssueFields — фиксированный набор полей задачи.
type IssueFields struct {
	Title    string
	Body     string
	Assignee string
	// State учитывается только при обновлении; пустое значение означает "open".
	State  string
	Labels []string
}

// DefaultState — состояние задачи при обновлении по умолчанию.
const DefaultState = "open"

func (f IssueFields) labels() []string {
	if f.Labels == nil {
		return []string{}
	}
	return f.Labels
}

// createRequest строит тело POST: title, body, assignee, labels.
func (f IssueFields) createRequest() IssueRequest {
	return IssueRequest{
		"title":    f.Title,
		"body":     f.Body,
		"assignee": f.Assignee,
		"labels":   f.labels(),
	}
}

// updateRequest строит тело PATCH: title, body, assignee, state, labels.
func (f IssueFields) updateRequest() IssueRequest {
	state := f.State
	if state == "" {
		state = DefaultState
	}
	return IssueRequest{
		"title":    f.Title,
		"body":     f.Body,
		"assignee": f.Assignee,
		"state":    state,
		"labels":   f.labels(),
	}
}

// validateTitle проверяет наличие непустого строкового title.
func validateTitle(req IssueRequest) error {
	raw, ok := req["title"]
	if !ok || raw == nil {
		return NewValidationError("title", "обязательное поле отсутствует")
	}
	title, ok := raw.(string)
	if !ok {
		return NewValidationError("title", fmt.Sprintf("ожидалась строка, получено %T", raw))
	}
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "не может быть пустым")
	}
	return nil
}

func validateNumber(field string, number int64) error {
	if number <= 0 {
		return NewValidationError(field, fmt.Sprintf("номер задачи должен быть положительным, получено %d", number))
	}
	return nil
}

// Issue — типизированное представление задачи в ответах API.
type Issue struct {
	ID        int64      `json:"id"`
	Number    int64      `json:"number"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	State     string     `json:"state"`
	HTMLURL   string     `json:"html_url"`
	User      *User      `json:"user,omitempty"`
	Assignee  *User      `json:"assignee,omitempty"`
	Labels    []Label    `json:"labels"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// User — автор или исполнитель задачи.
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// Label — метка задачи.
type Label struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// LabelNames возвращает имена меток в исходном порядке.
func (i *Issue) LabelNames() []string {
	names := make([]string, 0, len(i.Labels))
	for _, l := range i.Labels {
		names = append(names, l.Name)
	}
	return names
}
