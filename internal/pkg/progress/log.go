package progress

import (
	"time"
)

// LogProgress пишет прогресс в лог при пересечении каждых 25%.
// Подходит для CI, где stderr не терминал.
type LogProgress struct {
	opts     Options
	start    time.Time
	reported int
	message  string
}

// NewLogProgress создаёт LogProgress.
func NewLogProgress(opts Options) *LogProgress {
	return &LogProgress{opts: opts}
}

func (p *LogProgress) Start(message string) {
	p.start = time.Now()
	p.message = message
	p.reported = 0
	p.opts.Logger.Info("Операция начата", "message", message, "total", p.opts.Total)
}

func (p *LogProgress) Update(current int64, message string) {
	if message != "" {
		p.message = message
	}
	step := (percentOf(current, p.opts.Total) / 25) * 25
	if step <= p.reported || step >= 100 {
		return
	}
	p.reported = step
	p.opts.Logger.Info("Прогресс операции",
		"percent", step,
		"current", current,
		"total", p.opts.Total,
		"elapsed", FormatDuration(time.Since(p.start)),
		"message", p.message,
	)
}

func (p *LogProgress) Finish() {
	p.opts.Logger.Info("Операция завершена", "duration", FormatDuration(time.Since(p.start)))
}
