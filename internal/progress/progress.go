// Package progress renders a live scan counter on a writer, typically
// stderr, while a directory scan is running.
package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var frames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// Counter displays an animated braille spinner with a done/total file count
// next to a fixed verb, rewriting the same line via \r. It is safe for
// concurrent use; Advance may be called from any scan worker.
type Counter struct {
	mu      sync.Mutex
	w       io.Writer
	verb    string
	done    int
	total   int
	quit    chan struct{}
	idle    chan struct{}
	stopped bool
}

// NewCounter creates a counter that writes to w. verb is the leading text,
// e.g. "Scanning files".
func NewCounter(w io.Writer, verb string) *Counter {
	return &Counter{w: w, verb: verb}
}

// Start begins the animation. The counter reads 0/0 until Advance is called.
func (c *Counter) Start() {
	c.mu.Lock()
	c.quit = make(chan struct{})
	c.idle = make(chan struct{})
	c.stopped = false
	c.mu.Unlock()

	go c.loop()
}

// Advance records scan progress. The displayed line catches up on the next
// animation tick rather than on every call, so hot scan loops stay cheap.
func (c *Counter) Advance(done, total int) {
	c.mu.Lock()
	c.done = done
	c.total = total
	c.mu.Unlock()
}

// Stop halts the animation and clears the line. It is idempotent.
func (c *Counter) Stop() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	width := len(c.line(' '))
	c.mu.Unlock()

	close(c.quit)
	// Wait for the render loop so the clear below is the last write.
	<-c.idle

	c.mu.Lock()
	fmt.Fprintf(c.w, "\r%s\r", strings.Repeat(" ", width+4))
	c.mu.Unlock()
}

func (c *Counter) loop() {
	defer close(c.idle)

	tick := time.NewTicker(80 * time.Millisecond)
	defer tick.Stop()

	i := 0
	for {
		select {
		case <-c.quit:
			return
		case <-tick.C:
			// Pad so a shrinking count never leaves stale characters behind.
			c.mu.Lock()
			fmt.Fprintf(c.w, "%-80s", "\r"+c.line(frames[i%len(frames)]))
			c.mu.Unlock()
			i++
		}
	}
}

// line formats one display line. Callers hold c.mu.
func (c *Counter) line(frame rune) string {
	return fmt.Sprintf("%c %s %d/%d", frame, c.verb, c.done, c.total)
}
