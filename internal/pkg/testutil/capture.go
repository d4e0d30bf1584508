// Package testutil содержит общие утилиты для тестов.
package testutil

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureStdout выполняет fn с перехваченным os.Stdout и возвращает вывод.
// Pipe вычитывается параллельно, поэтому большой вывод не блокирует fn.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err, "не удалось создать pipe для stdout")

	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	var buf bytes.Buffer
	done := make(chan error, 1)
	go func() {
		_, readErr := buf.ReadFrom(r)
		done <- readErr
	}()

	fn()

	_ = w.Close() //nolint:errcheck // test helper pipe close
	require.NoError(t, <-done, "не удалось прочитать stdout")
	return buf.String()
}
