package shared

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Kargones/apk-issues/internal/adapter/issuetracker"
	"github.com/Kargones/apk-issues/internal/pkg/output"
)

// IssueData — результат команды над одной задачей.
type IssueData struct {
	// IssueNumber — номер задачи из входных параметров, 0 для создания.
	IssueNumber int64  `json:"issue_number,omitempty"`
	Mode        string `json:"mode"`
	StatusCode  int    `json:"status_code"`

	// Response — разобранный JSON ответа или сырой текст в режиме raw.
	Response *issuetracker.Response `json:"response"`
}

// NewIssueData создаёт IssueData из ответа трекера.
func NewIssueData(number int64, resp *issuetracker.Response) *IssueData {
	return &IssueData{
		IssueNumber: number,
		Mode:        resp.Mode().String(),
		StatusCode:  resp.StatusCode,
		Response:    resp,
	}
}

// WriteText выводит задачу одной строкой с URL. Сырой ответ выводится как есть.
func (d *IssueData) WriteText(w io.Writer) error {
	if body, ok := d.Response.Raw(); ok {
		_, err := fmt.Fprintf(w, "HTTP %d\n%s\n", d.StatusCode, body)
		return err
	}

	var issue issuetracker.Issue
	if err := d.Response.Decode(&issue); err != nil || issue.Number == 0 {
		return writeValue(w, d.StatusCode, d.Response)
	}
	if _, err := fmt.Fprintf(w, "%s\n", issueLine(&issue)); err != nil {
		return err
	}
	if issue.HTMLURL != "" {
		if _, err := fmt.Fprintf(w, "  %s\n", issue.HTMLURL); err != nil {
			return err
		}
	}
	return nil
}

// IssueListData — результат get-issues.
type IssueListData struct {
	// Count — число задач в ответе; -1 в режиме raw.
	Count      int                    `json:"count"`
	Mode       string                 `json:"mode"`
	StatusCode int                    `json:"status_code"`
	Response   *issuetracker.Response `json:"response"`
}

// NewIssueListData создаёт IssueListData из ответа трекера.
func NewIssueListData(resp *issuetracker.Response) *IssueListData {
	count := -1
	if v, ok := resp.Value(); ok {
		if list, isList := v.([]any); isList {
			count = len(list)
		}
	}
	return &IssueListData{
		Count:      count,
		Mode:       resp.Mode().String(),
		StatusCode: resp.StatusCode,
		Response:   resp,
	}
}

// WriteText выводит по строке на задачу.
func (d *IssueListData) WriteText(w io.Writer) error {
	if body, ok := d.Response.Raw(); ok {
		_, err := fmt.Fprintf(w, "HTTP %d\n%s\n", d.StatusCode, body)
		return err
	}

	var issues []issuetracker.Issue
	if err := d.Response.Decode(&issues); err != nil {
		return writeValue(w, d.StatusCode, d.Response)
	}
	if _, err := fmt.Fprintf(w, "Задач: %d\n", len(issues)); err != nil {
		return err
	}
	for i := range issues {
		if _, err := fmt.Fprintf(w, "  %s\n", issueLine(&issues[i])); err != nil {
			return err
		}
	}
	return nil
}

// BulkEntryData — результат обновления одной задачи в пакете.
type BulkEntryData struct {
	IssueNumber int64                  `json:"issue_number"`
	Status      string                 `json:"status"`
	Error       *output.ErrorInfo      `json:"error,omitempty"`
	Response    *issuetracker.Response `json:"response,omitempty"`
}

// Статусы BulkEntryData.
const (
	EntryUpdated = "updated"
	EntryFailed  = "failed"
)

// BulkData — результат пакетного обновления.
type BulkData struct {
	Policy    string `json:"policy"`
	Mode      string `json:"mode"`
	Total     int    `json:"total"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`

	// Skipped — номера, до которых не дошла очередь после остановки.
	Skipped int `json:"skipped"`

	Entries []BulkEntryData `json:"entries"`
}

// NewBulkData собирает BulkData. res может быть nil, если пакет
// не был запущен из-за ошибки валидации.
func NewBulkData(numbers []int64, res *issuetracker.BulkResult, policy string, mode issuetracker.ResponseMode) *BulkData {
	d := &BulkData{
		Policy:  policy,
		Mode:    mode.String(),
		Total:   len(numbers),
		Entries: make([]BulkEntryData, 0, len(numbers)),
	}
	if res == nil {
		d.Skipped = len(numbers)
		return d
	}

	for _, e := range res.Entries {
		entry := BulkEntryData{IssueNumber: e.IssueNumber}
		if e.Err != nil {
			entry.Status = EntryFailed
			entry.Error = ErrorInfo(e.Err)
			d.Failed++
		} else {
			entry.Status = EntryUpdated
			entry.Response = e.Response
			d.Succeeded++
		}
		d.Entries = append(d.Entries, entry)
	}
	d.Skipped = d.Total - len(d.Entries)
	return d
}

// Summary возвращает ключевые метрики пакета.
func (d *BulkData) Summary() *output.SummaryInfo {
	s := output.NewSummaryInfo()
	s.AddMetric("Задач обновлено", fmt.Sprintf("%d", d.Succeeded), "шт")
	if d.Failed > 0 {
		s.AddMetric("Ошибок", fmt.Sprintf("%d", d.Failed), "шт")
	}
	if d.Skipped > 0 {
		s.AddWarning(fmt.Sprintf("пропущено задач после остановки: %d", d.Skipped))
	}
	return s
}

// WriteText выводит итог и строку на каждую задачу.
func (d *BulkData) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Всего: %d, обновлено: %d, ошибок: %d, пропущено: %d (политика %s)\n",
		d.Total, d.Succeeded, d.Failed, d.Skipped, d.Policy); err != nil {
		return err
	}
	for _, e := range d.Entries {
		line := fmt.Sprintf("  #%d %s", e.IssueNumber, e.Status)
		if e.Error != nil {
			line += fmt.Sprintf(" [%s] %s", e.Error.Code, e.Error.Message)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func issueLine(issue *issuetracker.Issue) string {
	line := fmt.Sprintf("#%d %s [%s]", issue.Number, issue.Title, issue.State)
	if labels := issue.LabelNames(); len(labels) > 0 {
		line += " (" + strings.Join(labels, ", ") + ")"
	}
	if issue.Assignee != nil && issue.Assignee.Login != "" {
		line += " @" + issue.Assignee.Login
	}
	return line
}

func writeValue(w io.Writer, status int, resp *issuetracker.Response) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "HTTP %d\n%s\n", status, data)
	return err
}
