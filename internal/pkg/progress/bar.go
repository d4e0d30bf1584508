package progress

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const barWidth = 30

// BarProgress рисует progress bar в терминале: [=====>    ] 2/5 40% | #17
type BarProgress struct {
	mu       sync.Mutex
	opts     Options
	start    time.Time
	current  int64
	lastDraw time.Time
	message  string
}

// NewBarProgress создаёт BarProgress.
func NewBarProgress(opts Options) *BarProgress {
	return &BarProgress{opts: opts}
}

func (p *BarProgress) Start(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.start = time.Now()
	p.message = message
	p.current = 0
	p.lastDraw = time.Time{}
	p.draw()
}

func (p *BarProgress) Update(current int64, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = current
	if message != "" {
		p.message = message
	}
	if current < p.opts.Total && time.Since(p.lastDraw) < p.opts.ThrottleInterval {
		return
	}
	p.draw()
}

// Finish перерисовывает bar с фактическим числом шагов и переводит строку.
func (p *BarProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draw()
	_, _ = fmt.Fprintf(p.opts.Output, " | %s\n", FormatDuration(time.Since(p.start))) //nolint:errcheck // terminal output
}

func (p *BarProgress) draw() {
	p.lastDraw = time.Now()
	percent := percentOf(p.current, p.opts.Total)

	line := fmt.Sprintf("\r%s %d/%d %d%%", renderBar(percent), p.current, p.opts.Total, percent)
	if p.message != "" {
		line += " | " + p.message
	}
	// \033[K очищает хвост предыдущей, более длинной строки.
	_, _ = fmt.Fprint(p.opts.Output, line+"\033[K") //nolint:errcheck // terminal output
}

func renderBar(percent int) string {
	filled := percent * barWidth / 100

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < barWidth; i++ {
		switch {
		case i < filled:
			b.WriteByte('=')
		case i == filled && filled > 0 && filled < barWidth:
			b.WriteByte('>')
		default:
			b.WriteByte(' ')
		}
	}
	b.WriteByte(']')
	return b.String()
}
