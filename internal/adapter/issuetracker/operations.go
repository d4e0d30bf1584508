package issuetracker

import (
	"context"
)

// Имена операций для логов и метрик.
const (
	opCreateIssue = "create-issue"
	opUpdateIssue = "update-issue"
	opGetIssues   = "get-issues"
	opGetIssue    = "get-issue"
)

// CreateIssue создаёт задачу из фиксированных полей (State игнорируется).
func (c *Client) CreateIssue(ctx context.Context, fields IssueFields, mode ResponseMode) (*Response, error) {
	return c.CreateIssueFromMap(ctx, fields.createRequest(), mode)
}

// CreateIssueFromMap создаёт задачу из произвольного набора полей.
func (c *Client) CreateIssueFromMap(ctx context.Context, contents IssueRequest, mode ResponseMode) (*Response, error) {
	if err := validateTitle(contents); err != nil {
		return nil, err
	}
	return c.post(ctx, opCreateIssue, c.issuesURL(), contents, mode)
}

// UpdateIssue обновляет задачу фиксированными полями; пустой State означает "open".
func (c *Client) UpdateIssue(ctx context.Context, number int64, fields IssueFields, mode ResponseMode) (*Response, error) {
	return c.UpdateIssueFromMap(ctx, number, fields.updateRequest(), mode)
}

// UpdateIssueFromMap обновляет задачу произвольным набором полей.
// state по умолчанию не добавляется.
func (c *Client) UpdateIssueFromMap(ctx context.Context, number int64, contents IssueRequest, mode ResponseMode) (*Response, error) {
	if err := validateNumber("issue_number", number); err != nil {
		return nil, err
	}
	if err := validateTitle(contents); err != nil {
		return nil, err
	}
	return c.patch(ctx, opUpdateIssue, c.issueURL(number), contents, mode)
}

// GetIssues возвращает одну страницу задач без фильтров.
func (c *Client) GetIssues(ctx context.Context, mode ResponseMode) (*Response, error) {
	return c.get(ctx, opGetIssues, c.issuesURL(), mode)
}

// GetIssue возвращает задачу по номеру.
func (c *Client) GetIssue(ctx context.Context, number int64, mode ResponseMode) (*Response, error) {
	if err := validateNumber("issue_number", number); err != nil {
		return nil, err
	}
	return c.get(ctx, opGetIssue, c.issueURL(number), mode)
}
