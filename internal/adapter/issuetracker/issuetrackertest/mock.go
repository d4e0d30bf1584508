package issuetrackertest

import (
	"context"
	"encoding/json"

	"github.com/Kargones/apk-issues/internal/adapter/issuetracker"
)

var _ issuetracker.API = (*MockClient)(nil)

// MockClient — мок issuetracker.API. Неустановленная функция возвращает
// ответ по умолчанию: задачу #1 или пустой список.
type MockClient struct {
	CreateIssueFunc         func(ctx context.Context, fields issuetracker.IssueFields, mode issuetracker.ResponseMode) (*issuetracker.Response, error)
	CreateIssueFromMapFunc  func(ctx context.Context, contents issuetracker.IssueRequest, mode issuetracker.ResponseMode) (*issuetracker.Response, error)
	UpdateIssueFunc         func(ctx context.Context, number int64, fields issuetracker.IssueFields, mode issuetracker.ResponseMode) (*issuetracker.Response, error)
	UpdateIssueFromMapFunc  func(ctx context.Context, number int64, contents issuetracker.IssueRequest, mode issuetracker.ResponseMode) (*issuetracker.Response, error)
	UpdateIssuesFunc        func(ctx context.Context, numbers []int64, fields issuetracker.IssueFields, mode issuetracker.ResponseMode) (*issuetracker.BulkResult, error)
	UpdateIssuesFromMapFunc func(ctx context.Context, numbers []int64, contents issuetracker.IssueRequest, mode issuetracker.ResponseMode) (*issuetracker.BulkResult, error)
	GetIssuesFunc           func(ctx context.Context, mode issuetracker.ResponseMode) (*issuetracker.Response, error)
	GetIssueFunc            func(ctx context.Context, number int64, mode issuetracker.ResponseMode) (*issuetracker.Response, error)
}

// NewMockClient создаёт MockClient с ответами по умолчанию.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// ResponseFor строит Response из JSON текста в нужном режиме.
func ResponseFor(status int, body string, mode issuetracker.ResponseMode) *issuetracker.Response {
	if mode == issuetracker.ModeRaw {
		return issuetracker.Raw(status, body)
	}
	var v any
	_ = json.Unmarshal([]byte(body), &v)
	return issuetracker.Decoded(status, v, []byte(body))
}

func (m *MockClient) CreateIssue(ctx context.Context, fields issuetracker.IssueFields, mode issuetracker.ResponseMode) (*issuetracker.Response, error) {
	if m.CreateIssueFunc != nil {
		return m.CreateIssueFunc(ctx, fields, mode)
	}
	return ResponseFor(201, IssueJSON(1), mode), nil
}

func (m *MockClient) CreateIssueFromMap(ctx context.Context, contents issuetracker.IssueRequest, mode issuetracker.ResponseMode) (*issuetracker.Response, error) {
	if m.CreateIssueFromMapFunc != nil {
		return m.CreateIssueFromMapFunc(ctx, contents, mode)
	}
	return ResponseFor(201, IssueJSON(1), mode), nil
}

func (m *MockClient) UpdateIssue(ctx context.Context, number int64, fields issuetracker.IssueFields, mode issuetracker.ResponseMode) (*issuetracker.Response, error) {
	if m.UpdateIssueFunc != nil {
		return m.UpdateIssueFunc(ctx, number, fields, mode)
	}
	return ResponseFor(201, IssueJSON(number), mode), nil
}

func (m *MockClient) UpdateIssueFromMap(ctx context.Context, number int64, contents issuetracker.IssueRequest, mode issuetracker.ResponseMode) (*issuetracker.Response, error) {
	if m.UpdateIssueFromMapFunc != nil {
		return m.UpdateIssueFromMapFunc(ctx, number, contents, mode)
	}
	return ResponseFor(201, IssueJSON(number), mode), nil
}

func (m *MockClient) UpdateIssues(ctx context.Context, numbers []int64, fields issuetracker.IssueFields, mode issuetracker.ResponseMode) (*issuetracker.BulkResult, error) {
	if m.UpdateIssuesFunc != nil {
		return m.UpdateIssuesFunc(ctx, numbers, fields, mode)
	}
	return bulkOK(numbers, mode), nil
}

func (m *MockClient) UpdateIssuesFromMap(ctx context.Context, numbers []int64, contents issuetracker.IssueRequest, mode issuetracker.ResponseMode) (*issuetracker.BulkResult, error) {
	if m.UpdateIssuesFromMapFunc != nil {
		return m.UpdateIssuesFromMapFunc(ctx, numbers, contents, mode)
	}
	return bulkOK(numbers, mode), nil
}

func (m *MockClient) GetIssues(ctx context.Context, mode issuetracker.ResponseMode) (*issuetracker.Response, error) {
	if m.GetIssuesFunc != nil {
		return m.GetIssuesFunc(ctx, mode)
	}
	return ResponseFor(200, "[]", mode), nil
}

func (m *MockClient) GetIssue(ctx context.Context, number int64, mode issuetracker.ResponseMode) (*issuetracker.Response, error) {
	if m.GetIssueFunc != nil {
		return m.GetIssueFunc(ctx, number, mode)
	}
	return ResponseFor(200, IssueJSON(number), mode), nil
}

func bulkOK(numbers []int64, mode issuetracker.ResponseMode) *issuetracker.BulkResult {
	res := &issuetracker.BulkResult{}
	for _, n := range numbers {
		res.Entries = append(res.Entries, issuetracker.BulkEntry{IssueNumber: n, Response: ResponseFor(201, IssueJSON(n), mode)})
	}
	return res
}
