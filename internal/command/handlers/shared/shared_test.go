package shared

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/apk-issues/internal/adapter/issuetracker"
	"github.com/Kargones/apk-issues/internal/adapter/issuetracker/issuetrackertest"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/pkg/logging"
	"github.com/Kargones/apk-issues/internal/pkg/metrics"
	"github.com/Kargones/apk-issues/internal/pkg/output"
	"github.com/Kargones/apk-issues/internal/pkg/testutil"
	"github.com/Kargones/apk-issues/internal/pkg/tracing"
)

func TestIssueJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"объект", `{"title":"t","labels":["a"]}`, false},
		{"пусто", "  ", true},
		{"null", "null", true},
		{"массив", `[1,2]`, true},
		{"не JSON", `{title`, true},
		{"два объекта", `{"title":"t"} {"title":"u"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Input.GHAIssueJSON = tt.input

			contents, err := IssueJSON(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, issuetracker.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "t", contents["title"])
		})
	}
}

func TestIssueJSON_LargeNumbersSentVerbatim(t *testing.T) {
	srv := issuetrackertest.NewServer(t)
	cfg := &config.Config{
		APIURL:      srv.URL,
		AccessToken: issuetrackertest.TestToken,
		Owner:       issuetrackertest.TestOwner,
		Repo:        issuetrackertest.TestRepo,
	}
	cfg.Input.GHAIssueJSON = `{"title":"t","milestone":9007199254740993,"weight":1.25}`

	contents, err := IssueJSON(cfg)
	require.NoError(t, err)

	client, err := NewClientFactory(logging.NewNopLogger(), metrics.NewNopCollector())(cfg)
	require.NoError(t, err)
	_, err = client.CreateIssueFromMap(context.Background(), contents, issuetracker.ModeRaw)
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Contains(t, string(reqs[0].Body), `"milestone":9007199254740993`)
	assert.Contains(t, string(reqs[0].Body), `"weight":1.25`)
}

func TestFieldsAndMode(t *testing.T) {
	cfg := &config.Config{Labels: []string{"bug"}, Raw: true}
	cfg.Input.GHATitle = "Заголовок"
	cfg.Input.GHAAssignee = " octo "
	cfg.Input.GHAState = "closed"

	f := Fields(cfg)
	assert.Equal(t, "Заголовок", f.Title)
	assert.Equal(t, "octo", f.Assignee)
	assert.Equal(t, "closed", f.State)
	assert.Equal(t, []string{"bug"}, f.Labels)

	assert.Equal(t, issuetracker.ModeRaw, Mode(cfg))
	assert.Equal(t, issuetracker.ModeDecoded, Mode(&config.Config{}))
	assert.Equal(t, issuetracker.ModeDecoded, Mode(nil))
}

func TestIssueNumbers_Empty(t *testing.T) {
	_, err := IssueNumbers(&config.Config{})
	assert.True(t, issuetracker.IsValidationError(err))
}

func TestErrorInfo(t *testing.T) {
	assert.Nil(t, ErrorInfo(nil))

	te := &issuetracker.TransportError{Code: issuetracker.ErrIssueNotFound, Method: "GET", StatusCode: 404, Message: "неожиданный статус"}
	info := ErrorInfo(te)
	assert.Equal(t, issuetracker.ErrIssueNotFound, info.Code)
	assert.Equal(t, 404, info.StatusCode)

	info = ErrorInfo(errors.New("plain"))
	assert.Equal(t, "UNKNOWN", info.Code)
	assert.Zero(t, info.StatusCode)
}

func TestNewBulkData(t *testing.T) {
	fail := &issuetracker.TransportError{Code: issuetracker.ErrIssueAPI, StatusCode: 500}
	res := &issuetracker.BulkResult{Entries: []issuetracker.BulkEntry{
		{IssueNumber: 1, Response: issuetracker.Raw(201, "{}")},
		{IssueNumber: 2, Err: fail},
	}}

	d := NewBulkData([]int64{1, 2, 3}, res, "stop", issuetracker.ModeRaw)
	assert.Equal(t, 3, d.Total)
	assert.Equal(t, 1, d.Succeeded)
	assert.Equal(t, 1, d.Failed)
	assert.Equal(t, 1, d.Skipped)
	assert.Equal(t, EntryFailed, d.Entries[1].Status)
	assert.Equal(t, 500, d.Entries[1].Error.StatusCode)

	s := d.Summary()
	assert.Len(t, s.KeyMetrics, 2)
	assert.Equal(t, 1, s.WarningsCount)

	var buf bytes.Buffer
	require.NoError(t, d.WriteText(&buf))
	assert.Contains(t, buf.String(), "#2 failed [ISSUE.API_FAILED]")

	empty := NewBulkData([]int64{5}, nil, "stop", issuetracker.ModeDecoded)
	assert.Equal(t, 1, empty.Skipped)
	assert.Empty(t, empty.Entries)
}

func TestIssueData_WriteText(t *testing.T) {
	body := issuetrackertest.IssueJSON(7)

	var buf bytes.Buffer
	d := NewIssueData(7, issuetrackertest.ResponseFor(200, body, issuetracker.ModeDecoded))
	require.NoError(t, d.WriteText(&buf))
	assert.Contains(t, buf.String(), "#7 Задача 7 [open] (bug)")
	assert.Contains(t, buf.String(), "/issues/7")

	buf.Reset()
	d = NewIssueData(7, issuetracker.Raw(200, "plain text"))
	require.NoError(t, d.WriteText(&buf))
	assert.Equal(t, "HTTP 200\nplain text\n", buf.String())
}

func TestIssueListData(t *testing.T) {
	resp := issuetrackertest.ResponseFor(200, issuetrackertest.IssueListJSON(), issuetracker.ModeDecoded)
	d := NewIssueListData(resp)
	assert.Equal(t, 2, d.Count)

	var buf bytes.Buffer
	require.NoError(t, d.WriteText(&buf))
	assert.Contains(t, buf.String(), "Задач: 2")

	raw := NewIssueListData(issuetracker.Raw(200, "[]"))
	assert.Equal(t, -1, raw.Count)
}

func TestReport_JSONConformsToSchema(t *testing.T) {
	var buf bytes.Buffer
	deps := Deps{Logger: logging.NewNopLogger(), Writer: output.NewJSONWriter(), Stdout: &buf}
	ctx := tracing.WithTraceID(context.Background(), tracing.GenerateTraceID())

	report := NewReport(ctx, deps, &config.Config{}, "get-issue")
	require.NoError(t, report.Success(NewIssueData(1, issuetrackertest.ResponseFor(200, issuetrackertest.IssueJSON(1), issuetracker.ModeDecoded)), nil))
	testutil.RequireResultSchema(t, buf.Bytes())

	buf.Reset()
	cause := &issuetracker.TransportError{Code: issuetracker.ErrIssueAuth, StatusCode: 401, Method: "GET", Message: "неожиданный статус"}
	err := NewReport(ctx, deps, &config.Config{}, "get-issue").Fail(cause, nil)
	assert.Same(t, cause, err)
	testutil.RequireResultSchema(t, buf.Bytes())

	var result output.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, output.StatusError, result.Status)
	assert.Equal(t, issuetracker.ErrIssueAuth, result.Error.Code)
	assert.Equal(t, 401, result.Error.StatusCode)
	assert.Equal(t, tracing.TraceIDFromContext(ctx), result.Metadata.TraceID)
}

func TestNewClientFactory(t *testing.T) {
	srv := issuetrackertest.NewServer(t)
	collector := metrics.NewNopCollector()
	factory := NewClientFactory(logging.NewNopLogger(), collector)

	cfg := &config.Config{
		APIURL:      srv.URL,
		AccessToken: issuetrackertest.TestToken,
		Owner:       issuetrackertest.TestOwner,
		Repo:        issuetrackertest.TestRepo,
		BulkPolicy:  "continue",
	}
	client, err := factory(cfg)
	require.NoError(t, err)

	resp, err := client.GetIssue(context.Background(), 3, issuetracker.ModeDecoded)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "token "+issuetrackertest.TestToken, reqs[0].Header.Get("Authorization"))

	cfg.BulkPolicy = "sometimes"
	_, err = factory(cfg)
	assert.Error(t, err)

	_, err = factory(nil)
	assert.Error(t, err)
}

func TestDeps_Defaults(t *testing.T) {
	d := Deps{}
	assert.NotNil(t, d.Out())
	assert.NotNil(t, d.Log())
	assert.IsType(t, &output.JSONWriter{}, d.OutputWriter(&config.Config{OutputFormat: "JSON"}))
	assert.IsType(t, &output.TextWriter{}, d.OutputWriter(nil))

	_, err := d.Client(&config.Config{})
	assert.Error(t, err)
}
