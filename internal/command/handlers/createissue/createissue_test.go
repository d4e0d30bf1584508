package createissue

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/apk-issues/internal/adapter/issuetracker"
	"github.com/Kargones/apk-issues/internal/adapter/issuetracker/issuetrackertest"
	"github.com/Kargones/apk-issues/internal/command/handlers/shared"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/pkg/logging"
	"github.com/Kargones/apk-issues/internal/pkg/output"
	"github.com/Kargones/apk-issues/internal/pkg/testutil"
)

func newDeps(buf *bytes.Buffer, client issuetracker.API) shared.Deps {
	return shared.Deps{
		Logger: logging.NewNopLogger(),
		Stdout: buf,
		NewClient: func(*config.Config, ...issuetracker.Option) (issuetracker.API, error) {
			return client, nil
		},
	}
}

func jsonConfig() *config.Config {
	cfg := &config.Config{OutputFormat: "json", Owner: "octo", Repo: "hello"}
	cfg.Input.GHATitle = "Новая задача"
	cfg.Input.GHABody = "описание"
	cfg.Input.GHAState = "open"
	cfg.Labels = []string{"bug", "ci"}
	return cfg
}

func TestHandler_Names(t *testing.T) {
	assert.Equal(t, "create-issue", New(shared.Deps{}).Name())
	assert.Equal(t, "create-issue-from-json", NewFromJSON(shared.Deps{}).Name())
	assert.NotEqual(t, New(shared.Deps{}).Description(), NewFromJSON(shared.Deps{}).Description())
}

func TestExecute_FromFields(t *testing.T) {
	var got issuetracker.IssueFields
	mock := issuetrackertest.NewMockClient()
	mock.CreateIssueFunc = func(_ context.Context, fields issuetracker.IssueFields, mode issuetracker.ResponseMode) (*issuetracker.Response, error) {
		got = fields
		assert.Equal(t, issuetracker.ModeDecoded, mode)
		return issuetrackertest.ResponseFor(201, issuetrackertest.IssueJSON(42), mode), nil
	}

	var buf bytes.Buffer
	err := New(newDeps(&buf, mock)).Execute(context.Background(), jsonConfig())
	require.NoError(t, err)

	assert.Equal(t, "Новая задача", got.Title)
	assert.Equal(t, []string{"bug", "ci"}, got.Labels)

	testutil.RequireResultSchema(t, buf.Bytes())
	var result output.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, output.StatusSuccess, result.Status)
	assert.Equal(t, "create-issue", result.Command)

	data := result.Data.(map[string]any)
	assert.Equal(t, "decoded", data["mode"])
	assert.EqualValues(t, 201, data["status_code"])
	assert.EqualValues(t, 42, data["response"].(map[string]any)["number"])
}

func TestExecute_FromJSON_Raw(t *testing.T) {
	cfg := jsonConfig()
	cfg.Raw = true
	cfg.Input.GHAIssueJSON = `{"title":"из json","milestone":3}`

	var got issuetracker.IssueRequest
	mock := issuetrackertest.NewMockClient()
	mock.CreateIssueFromMapFunc = func(_ context.Context, contents issuetracker.IssueRequest, mode issuetracker.ResponseMode) (*issuetracker.Response, error) {
		got = contents
		assert.Equal(t, issuetracker.ModeRaw, mode)
		return issuetracker.Raw(201, `{"number":5}`), nil
	}

	var buf bytes.Buffer
	require.NoError(t, NewFromJSON(newDeps(&buf, mock)).Execute(context.Background(), cfg))

	assert.Equal(t, "из json", got["title"])
	assert.EqualValues(t, 3, got["milestone"])

	var result output.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	data := result.Data.(map[string]any)
	assert.Equal(t, "raw", data["mode"])
	assert.Equal(t, `{"number":5}`, data["response"])
}

func TestExecute_FromJSON_InvalidInput(t *testing.T) {
	cfg := jsonConfig()
	cfg.Input.GHAIssueJSON = `["not","object"]`

	mock := issuetrackertest.NewMockClient()
	mock.CreateIssueFromMapFunc = func(context.Context, issuetracker.IssueRequest, issuetracker.ResponseMode) (*issuetracker.Response, error) {
		t.Fatal("клиент не должен вызываться")
		return nil, nil
	}

	var buf bytes.Buffer
	err := NewFromJSON(newDeps(&buf, mock)).Execute(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, issuetracker.IsValidationError(err))

	testutil.RequireResultSchema(t, buf.Bytes())
	assert.Contains(t, buf.String(), issuetracker.ErrIssueValidation)
}

func TestExecute_TransportError(t *testing.T) {
	mock := issuetrackertest.NewMockClient()
	mock.CreateIssueFunc = func(context.Context, issuetracker.IssueFields, issuetracker.ResponseMode) (*issuetracker.Response, error) {
		return nil, &issuetracker.TransportError{
			Code: issuetracker.ErrIssueAPI, Method: "POST", StatusCode: 422, ExpectedStatus: 201,
			Message: "неожиданный статус",
		}
	}

	var buf bytes.Buffer
	err := New(newDeps(&buf, mock)).Execute(context.Background(), jsonConfig())
	require.Error(t, err)
	assert.Equal(t, 422, issuetracker.StatusCode(err))

	var result output.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, output.StatusError, result.Status)
	assert.Equal(t, 422, result.Error.StatusCode)
}

func TestExecute_ClientFactoryError(t *testing.T) {
	var buf bytes.Buffer
	deps := shared.Deps{
		Stdout: &buf,
		NewClient: func(*config.Config, ...issuetracker.Option) (issuetracker.API, error) {
			return nil, errors.New("нет клиента")
		},
	}
	cfg := jsonConfig()
	cfg.OutputFormat = "text"

	err := New(deps).Execute(context.Background(), cfg)
	require.EqualError(t, err, "нет клиента")
	assert.Contains(t, buf.String(), "create-issue: error")
	assert.Contains(t, buf.String(), "Error [UNKNOWN]: нет клиента")
}

func TestExecute_TextOutput(t *testing.T) {
	cfg := jsonConfig()
	cfg.OutputFormat = "text"

	var buf bytes.Buffer
	require.NoError(t, New(newDeps(&buf, issuetrackertest.NewMockClient())).Execute(context.Background(), cfg))
	assert.Contains(t, buf.String(), "create-issue: success")
	assert.Contains(t, buf.String(), "#1 Задача 1 [open]")
}
