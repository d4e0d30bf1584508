package updateissue

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/apk-issues/internal/adapter/issuetracker"
	"github.com/Kargones/apk-issues/internal/adapter/issuetracker/issuetrackertest"
	"github.com/Kargones/apk-issues/internal/command/handlers/shared"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/pkg/logging"
	"github.com/Kargones/apk-issues/internal/pkg/metrics"
	"github.com/Kargones/apk-issues/internal/pkg/output"
	"github.com/Kargones/apk-issues/internal/pkg/testutil"
)

// serverConfig указывает на тестовый сервер трекера.
func serverConfig(srv *issuetrackertest.Server) *config.Config {
	cfg := &config.Config{
		OutputFormat: "json",
		APIURL:       srv.URL,
		AccessToken:  issuetrackertest.TestToken,
		Owner:        issuetrackertest.TestOwner,
		Repo:         issuetrackertest.TestRepo,
		IssueNumber:  2,
	}
	cfg.Input.GHATitle = "Исправлено"
	cfg.Input.GHAState = "closed"
	return cfg
}

func serverDeps(buf *bytes.Buffer) shared.Deps {
	return shared.Deps{
		Logger:    logging.NewNopLogger(),
		Stdout:    buf,
		NewClient: shared.NewClientFactory(logging.NewNopLogger(), metrics.NewNopCollector()),
	}
}

func TestHandler_Names(t *testing.T) {
	assert.Equal(t, "update-issue", New(shared.Deps{}).Name())
	assert.Equal(t, "update-issue-from-json", NewFromJSON(shared.Deps{}).Name())
}

func TestExecute_PatchesIssue(t *testing.T) {
	srv := issuetrackertest.NewServer(t)

	var buf bytes.Buffer
	require.NoError(t, New(serverDeps(&buf)).Execute(context.Background(), serverConfig(srv)))

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPatch, reqs[0].Method)
	assert.Equal(t, issuetrackertest.IssuePath(2), reqs[0].Path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(reqs[0].Body, &sent))
	assert.Equal(t, "Исправлено", sent["title"])
	assert.Equal(t, "closed", sent["state"])

	testutil.RequireResultSchema(t, buf.Bytes())
	var result output.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.EqualValues(t, 2, result.Data.(map[string]any)["issue_number"])
}

func TestExecute_FromJSON(t *testing.T) {
	srv := issuetrackertest.NewServer(t)
	cfg := serverConfig(srv)
	cfg.Input.GHAIssueJSON = `{"title":"только заголовок"}`

	var buf bytes.Buffer
	require.NoError(t, NewFromJSON(serverDeps(&buf)).Execute(context.Background(), cfg))

	var sent map[string]any
	require.NoError(t, json.Unmarshal(srv.Requests()[0].Body, &sent))
	assert.Equal(t, map[string]any{"title": "только заголовок"}, sent)
}

func TestExecute_MissingTitle_NoRequest(t *testing.T) {
	srv := issuetrackertest.NewServer(t)
	cfg := serverConfig(srv)
	cfg.Input.GHATitle = "   "

	var buf bytes.Buffer
	err := New(serverDeps(&buf)).Execute(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, issuetracker.IsValidationError(err))
	assert.Empty(t, srv.Requests())
}

func TestExecute_UnexpectedStatus(t *testing.T) {
	srv := issuetrackertest.NewServer(t)
	// PATCH ожидает 201, 200 считается ошибкой.
	srv.Reply(http.MethodPatch, issuetrackertest.IssuePath(2), issuetrackertest.Reply{Status: http.StatusOK, Body: issuetrackertest.IssueJSON(2)})

	var buf bytes.Buffer
	err := New(serverDeps(&buf)).Execute(context.Background(), serverConfig(srv))
	require.Error(t, err)
	assert.True(t, issuetracker.IsAPIError(err))

	testutil.RequireResultSchema(t, buf.Bytes())
	var result output.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, http.StatusOK, result.Error.StatusCode)
	assert.NotContains(t, buf.String(), issuetrackertest.TestToken)
}
