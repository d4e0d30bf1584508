package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSchema(t *testing.T) *jsonschema.Schema {
	t.Helper()
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(filepath.Join("testdata", "schema", "result.schema.json"))
	require.NoError(t, err, "не удалось загрузить JSON Schema")
	return schema
}

func validate(t *testing.T, schema *jsonschema.Schema, raw []byte) error {
	t.Helper()
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	require.NoError(t, err)
	return schema.Validate(doc)
}

func TestJSONWriter_SchemaValidation(t *testing.T) {
	schema := loadSchema(t)

	summary := NewSummaryInfo()
	summary.AddMetric("Задач обновлено", "2", "шт")

	tests := []struct {
		name   string
		result *Result
		valid  bool
	}{
		{
			name: "успех с данными задачи",
			result: &Result{
				Status:   StatusSuccess,
				Command:  "get-issue",
				Data:     map[string]any{"number": 1, "title": "t"},
				Metadata: &Metadata{DurationMs: 15, APIVersion: "v1", TraceID: "0123456789abcdef0123456789abcdef"},
			},
			valid: true,
		},
		{
			name: "успех со сводкой",
			result: &Result{
				Status:   StatusSuccess,
				Command:  "update-issues",
				Metadata: &Metadata{DurationMs: 15, APIVersion: "v1"},
				Summary:  summary,
			},
			valid: true,
		},
		{
			name: "ошибка транспорта",
			result: &Result{
				Status:   StatusError,
				Command:  "get-issue",
				Error:    &ErrorInfo{Code: "ISSUE.NOT_FOUND", Message: "не найдено", StatusCode: 404},
				Metadata: &Metadata{DurationMs: 1, APIVersion: "v1"},
			},
			valid: true,
		},
		{
			name:   "ошибка без error",
			result: &Result{Status: StatusError, Command: "get-issue"},
			valid:  false,
		},
		{
			name:   "неизвестный статус",
			result: &Result{Status: "partial", Command: "get-issue"},
			valid:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewJSONWriter().Write(&buf, tt.result))

			err := validate(t, schema, buf.Bytes())
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestJSONWriter_SummaryMovedToMetadataWithoutMutation(t *testing.T) {
	summary := NewSummaryInfo()
	summary.AddWarning("задача 3 не обновлена")
	meta := &Metadata{DurationMs: 5, APIVersion: "v1"}
	result := &Result{Status: StatusSuccess, Command: "update-issues", Metadata: meta, Summary: summary}

	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter().Write(&buf, result))

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	metadata := parsed["metadata"].(map[string]any)
	assert.Equal(t, 1.0, metadata["summary"].(map[string]any)["warnings_count"])
	assert.Nil(t, meta.Summary, "исходная Metadata не должна меняться")
	assert.NotContains(t, parsed, "Summary")
}

func TestJSONWriter_Nil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter().Write(&buf, nil))
	assert.Equal(t, "null\n", buf.String())
}

type customText struct{}

func (customText) WriteText(w io.Writer) error {
	_, err := fmt.Fprintln(w, "#1 Тестовая задача [open]")
	return err
}

func TestTextWriter_Write(t *testing.T) {
	tests := []struct {
		name        string
		result      *Result
		contains    []string
		notContains []string
	}{
		{
			name:     "успех с JSON данными",
			result:   &Result{Status: StatusSuccess, Command: "get-issue", Data: map[string]int{"number": 7}},
			contains: []string{"get-issue: success", `"number": 7`},
		},
		{
			name:     "собственное текстовое представление",
			result:   &Result{Status: StatusSuccess, Command: "get-issue", Data: customText{}},
			contains: []string{"#1 Тестовая задача [open]"},
		},
		{
			name: "ошибка со статусом HTTP",
			result: &Result{
				Status:   StatusError,
				Command:  "get-issue",
				Error:    &ErrorInfo{Code: "ISSUE.API_FAILED", Message: "unexpected status", StatusCode: 500},
				Metadata: &Metadata{DurationMs: 1200},
			},
			contains:    []string{"Error [ISSUE.API_FAILED] (HTTP 500): unexpected status"},
			notContains: []string{"Сводка"},
		},
		{
			name: "сводка с метриками",
			result: &Result{
				Status:   StatusSuccess,
				Command:  "update-issues",
				Metadata: &Metadata{DurationMs: 65000},
				Summary:  &SummaryInfo{KeyMetrics: []KeyMetric{{Name: "Задач обновлено", Value: "3", Unit: "шт"}}},
			},
			contains: []string{"📊 Сводка", "1м 5с", "📈 Задач обновлено: 3 шт"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewTextWriter().Write(&buf, tt.result))
			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "999мс", formatDuration(999))
	assert.Equal(t, "1.5с", formatDuration(1500))
	assert.Equal(t, "2м 0с", formatDuration(120000))
}

func TestNewWriter(t *testing.T) {
	assert.IsType(t, &JSONWriter{}, NewWriter("JSON"))
	assert.IsType(t, &TextWriter{}, NewWriter("text"))
	assert.IsType(t, &TextWriter{}, NewWriter("yaml"))
}
