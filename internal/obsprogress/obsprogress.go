// Package obsprogress renders a terminal progress bar for long-running
// sieve calls: a delta-based Update/atomic-counter design, with
// rendering gated on stderr actually being a terminal (via
// github.com/mattn/go-isatty) so redirected output is never interleaved
// with carriage-return updates.
package obsprogress

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"
)

// Bar is a terminal progress bar that writes to stderr, a no-op when
// stderr is not a terminal.
type Bar struct {
	total       int64
	completed   atomic.Int64
	width       int
	startTime   time.Time
	description string
	interactive bool
	mu          sync.Mutex
}

// New builds a progress bar for total units of work.
func New(total int64, description string) *Bar {
	fd := os.Stderr.Fd()
	return &Bar{
		total:       total,
		width:       40,
		description: description,
		startTime:   time.Now(),
		interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// Update advances the bar by delta units and redraws it.
func (b *Bar) Update(delta int64) {
	b.completed.Add(delta)
	if !b.interactive {
		return
	}
	b.mu.Lock()
	b.render()
	b.mu.Unlock()
}

// Finish sets the bar to 100% and emits a trailing newline.
func (b *Bar) Finish() {
	b.completed.Store(b.total)
	if !b.interactive {
		return
	}
	b.mu.Lock()
	b.render()
	fmt.Fprintln(os.Stderr)
	b.mu.Unlock()
}

func (b *Bar) render() {
	if b.total == 0 {
		return
	}
	completed := b.completed.Load()
	percent := float64(completed) / float64(b.total)
	if percent > 1.0 {
		percent = 1.0
	}
	filled := int(percent * float64(b.width))

	elapsed := time.Since(b.startTime)
	rate := float64(completed) / elapsed.Seconds()

	fmt.Fprintf(os.Stderr, "\r%s: [%s%s] %3.0f%% | %d/%d | %s",
		b.description,
		strings.Repeat("=", filled),
		strings.Repeat(" ", b.width-filled),
		percent*100,
		completed,
		b.total,
		FormatRate(rate))
}

// FormatRate renders a per-second rate with a K/M suffix.
func FormatRate(rate float64) string {
	switch {
	case rate >= 1_000_000:
		return fmt.Sprintf("%.1fM/s", rate/1_000_000)
	case rate >= 1_000:
		return fmt.Sprintf("%.1fK/s", rate/1_000)
	default:
		return fmt.Sprintf("%.0f/s", rate)
	}
}

// FormatCount renders n with comma thousands separators.
func FormatCount(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	digits := len(s)
	if digits <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var sb strings.Builder
	offset := digits % 3
	if offset == 0 {
		offset = 3
	}
	sb.WriteString(s[:offset])
	for i := offset; i < digits; i += 3 {
		sb.WriteByte(',')
		sb.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}
