package issuetracker

import (
	"context"
	"errors"
	"fmt"
)

// BulkPolicy определяет поведение пакетного обновления при ошибке.
type BulkPolicy int

const (
	// BulkStopOnError останавливает цикл на первой ошибке.
	BulkStopOnError BulkPolicy = iota
	// BulkContinueOnError выполняет все запросы и собирает ошибки.
	BulkContinueOnError
)

// String возвращает имя политики.
func (p BulkPolicy) String() string {
	if p == BulkContinueOnError {
		return "continue"
	}
	return "stop"
}

// ParseBulkPolicy разбирает "stop" или "continue".
func ParseBulkPolicy(s string) (BulkPolicy, error) {
	switch s {
	case "", "stop":
		return BulkStopOnError, nil
	case "continue":
		return BulkContinueOnError, nil
	default:
		return BulkStopOnError, fmt.Errorf("неизвестная политика %q, ожидалось stop или continue", s)
	}
}

// BulkEntry — результат обновления одной задачи.
type BulkEntry struct {
	IssueNumber int64     `json:"issue_number"`
	Response    *Response `json:"response,omitempty"`
	Err         error     `json:"-"`
}

// BulkResult — результаты пакетного обновления в порядке входных номеров.
// Повторяющиеся номера дают по записи на каждый вызов.
type BulkResult struct {
	Entries []BulkEntry `json:"entries"`
}

// Get возвращает ответ последней успешной записи для номера.
func (b *BulkResult) Get(number int64) (*Response, bool) {
	for i := len(b.Entries) - 1; i >= 0; i-- {
		e := b.Entries[i]
		if e.IssueNumber == number && e.Err == nil {
			return e.Response, true
		}
	}
	return nil, false
}

// Responses возвращает успешные ответы по номеру задачи; при повторах
// побеждает последний.
func (b *BulkResult) Responses() map[int64]*Response {
	out := make(map[int64]*Response, len(b.Entries))
	for _, e := range b.Entries {
		if e.Err == nil {
			out[e.IssueNumber] = e.Response
		}
	}
	return out
}

// Failed возвращает записи с ошибкой.
func (b *BulkResult) Failed() []BulkEntry {
	var out []BulkEntry
	for _, e := range b.Entries {
		if e.Err != nil {
			out = append(out, e)
		}
	}
	return out
}

// Err объединяет ошибки всех записей, nil если ошибок нет.
func (b *BulkResult) Err() error {
	var errs []error
	for _, e := range b.Entries {
		if e.Err != nil {
			errs = append(errs, fmt.Errorf("задача #%d: %w", e.IssueNumber, e.Err))
		}
	}
	return errors.Join(errs...)
}

// UpdateIssues обновляет каждую задачу из numbers одинаковыми полями.
func (c *Client) UpdateIssues(ctx context.Context, numbers []int64, fields IssueFields, mode ResponseMode) (*BulkResult, error) {
	return c.UpdateIssuesFromMap(ctx, numbers, fields.updateRequest(), mode)
}

// UpdateIssuesFromMap обновляет каждую задачу из numbers одним набором полей.
// Запросы выполняются последовательно в порядке numbers. title и номера
// проверяются до первого запроса. При BulkStopOnError возвращается
// частичный результат и ошибка первой неудачи; при BulkContinueOnError —
// все записи и объединённая ошибка. Отмена ctx прерывает цикл при любой политике.
func (c *Client) UpdateIssuesFromMap(ctx context.Context, numbers []int64, contents IssueRequest, mode ResponseMode) (*BulkResult, error) {
	if err := validateTitle(contents); err != nil {
		return nil, err
	}
	for _, n := range numbers {
		if err := validateNumber("issue_numbers", n); err != nil {
			return nil, err
		}
	}

	c.progress.Start(fmt.Sprintf("обновление задач: %d", len(numbers)))
	defer c.progress.Finish()

	result := &BulkResult{Entries: make([]BulkEntry, 0, len(numbers))}
	for i, n := range numbers {
		if err := ctx.Err(); err != nil {
			return result, errors.Join(result.Err(), err)
		}

		resp, err := c.patch(ctx, opUpdateIssue, c.issueURL(n), contents, mode)
		result.Entries = append(result.Entries, BulkEntry{IssueNumber: n, Response: resp, Err: err})
		c.progress.Update(int64(i+1), fmt.Sprintf("#%d", n))
		if err != nil && c.bulkPolicy == BulkStopOnError {
			c.logger.Warn("пакетное обновление остановлено", "issue_number", n, "processed", len(result.Entries), "total", len(numbers))
			return result, fmt.Errorf("задача #%d: %w", n, err)
		}
	}
	return result, result.Err()
}
