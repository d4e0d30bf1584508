// Package progress отображает ход пакетных операций: progress bar
// в терминале или записи в лог в CI.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/Kargones/apk-issues/internal/pkg/logging"
)

// DefaultThrottleInterval — минимальный интервал между перерисовками bar.
const DefaultThrottleInterval = 200 * time.Millisecond

// Progress отображает прогресс операции из Total шагов.
type Progress interface {
	// Start начинает отсчёт.
	Start(message string)
	// Update сообщает, что выполнено current шагов.
	Update(current int64, message string)
	// Finish завершает вывод.
	Finish()
}

// Options конфигурирует Progress.
type Options struct {
	// Enabled == false всегда даёт NoopProgress.
	Enabled bool

	Total int64

	// Output — обычно os.Stderr, чтобы не смешиваться с результатом в stdout.
	Output io.Writer

	// Logger используется вне терминала.
	Logger logging.Logger

	ThrottleInterval time.Duration
}

// New выбирает реализацию: bar для терминала, лог для CI,
// NoopProgress если отображение выключено или нечего показывать.
func New(opts Options) Progress {
	if !opts.Enabled || opts.Total <= 0 {
		return NewNoOp()
	}
	if opts.ThrottleInterval == 0 {
		opts.ThrottleInterval = DefaultThrottleInterval
	}
	if IsTTY(opts.Output) {
		return NewBarProgress(opts)
	}
	if opts.Logger != nil {
		return NewLogProgress(opts)
	}
	return NewNoOp()
}

// IsTTY проверяет, является ли writer терминалом.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// FormatDuration форматирует duration как "45s", "5m 30s" или "1h 7m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	switch {
	case d < 0:
		return "0s"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		if s := int(d.Seconds()) % 60; s != 0 {
			return fmt.Sprintf("%dm %ds", int(d.Minutes()), s)
		}
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	}
}

func percentOf(current, total int64) int {
	if total <= 0 {
		return 0
	}
	p := int(current * 100 / total)
	if p > 100 {
		return 100
	}
	return p
}
