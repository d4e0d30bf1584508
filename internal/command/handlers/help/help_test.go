package help

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/apk-issues/internal/command"
	"github.com/Kargones/apk-issues/internal/command/handlers/shared"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/pkg/testutil"
)

type stubHandler struct{ name, desc string }

func (s *stubHandler) Name() string                                      { return s.name }
func (s *stubHandler) Description() string                               { return s.desc }
func (s *stubHandler) Execute(_ context.Context, _ *config.Config) error { return nil }

func registerStubs(t *testing.T, buf *bytes.Buffer) *Handler {
	t.Helper()
	command.Reset()
	t.Cleanup(command.Reset)

	h := New(shared.Deps{Stdout: buf})
	require.NoError(t, command.Register(h))
	require.NoError(t, command.Register(&stubHandler{name: "get-issue", desc: "Получение задачи"}))
	require.NoError(t, command.Register(&stubHandler{name: "create-issue-from-json", desc: "Создание из JSON"}))
	return h
}

func TestExecute_Text(t *testing.T) {
	var buf bytes.Buffer
	h := registerStubs(t, &buf)

	require.NoError(t, h.Execute(context.Background(), &config.Config{}))

	out := buf.String()
	assert.Contains(t, out, "Команды (INPUT_COMMAND):")
	assert.Contains(t, out, "  create-issue-from-json  Создание из JSON\n")
	assert.Contains(t, out, "  get-issue               Получение задачи\n")
	assert.Less(t, strings.Index(out, "create-issue-from-json"), strings.Index(out, "get-issue"))
}

func TestExecute_JSON(t *testing.T) {
	var buf bytes.Buffer
	h := registerStubs(t, &buf)

	require.NoError(t, h.Execute(context.Background(), &config.Config{OutputFormat: "json"}))
	testutil.RequireResultSchema(t, buf.Bytes())

	var result struct {
		Data Data `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result.Data.Commands, 3)
	assert.Equal(t, "create-issue-from-json", result.Data.Commands[0].Name)
	assert.Equal(t, "help", result.Data.Commands[1].Name)
}
