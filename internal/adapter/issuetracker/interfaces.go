package issuetracker

import "context"

// IssueCreator создаёт задачи.
type IssueCreator interface {
	CreateIssue(ctx context.Context, fields IssueFields, mode ResponseMode) (*Response, error)
	CreateIssueFromMap(ctx context.Context, contents IssueRequest, mode ResponseMode) (*Response, error)
}

// IssueUpdater обновляет задачи по одной и пакетно.
type IssueUpdater interface {
	UpdateIssue(ctx context.Context, number int64, fields IssueFields, mode ResponseMode) (*Response, error)
	UpdateIssueFromMap(ctx context.Context, number int64, contents IssueRequest, mode ResponseMode) (*Response, error)
	UpdateIssues(ctx context.Context, numbers []int64, fields IssueFields, mode ResponseMode) (*BulkResult, error)
	UpdateIssuesFromMap(ctx context.Context, numbers []int64, contents IssueRequest, mode ResponseMode) (*BulkResult, error)
}

// IssueReader читает задачи.
type IssueReader interface {
	GetIssues(ctx context.Context, mode ResponseMode) (*Response, error)
	GetIssue(ctx context.Context, number int64, mode ResponseMode) (*Response, error)
}

// API объединяет все операции с задачами.
type API interface {
	IssueCreator
	IssueUpdater
	IssueReader
}

var _ API = (*Client)(nil)
