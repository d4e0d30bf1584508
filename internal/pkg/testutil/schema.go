package testutil

import (
	"bytes"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/require"
)

// ResultSchemaPath возвращает путь к JSON Schema результата команды.
func ResultSchemaPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "output", "testdata", "schema", "result.schema.json")
}

// RequireResultSchema проверяет, что raw — JSON результат команды,
// соответствующий схеме.
func RequireResultSchema(t *testing.T, raw []byte) {
	t.Helper()
	schema, err := jsonschema.NewCompiler().Compile(ResultSchemaPath())
	require.NoError(t, err, "не удалось загрузить JSON Schema")

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	require.NoError(t, err, "вывод не является JSON: %s", raw)
	require.NoError(t, schema.Validate(doc), "вывод не соответствует схеме: %s", raw)
}
