// Package logfile appends text to files from a single background worker so
// writes to the same path never interleave.
package logfile

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// TimestampLayout prefixes the first line of every formatted entry.
const TimestampLayout = "2006-01-02 15:04:05.000"

const queueSize = 256

type entry struct {
	path string
	data string
	raw  bool
}

// Writer owns the worker goroutine and its open files.
// The zero value is ready to use; the worker starts on the first Write.
type Writer struct {
	mu    sync.Mutex
	queue chan entry
	done  chan struct{}

	// now is replaced in tests.
	now func() time.Time
}

// Write queues data for path and returns once it is queued.
// Raw entries are written as is; otherwise the first line is timestamped and
// each following line is indented with " - ".
func (w *Writer) Write(path, data string, raw bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.queue == nil {
		w.queue = make(chan entry, queueSize)
		w.done = make(chan struct{})
		go w.run(w.queue, w.done)
	}
	w.queue <- entry{path: path, data: data, raw: raw}
}

// CloseAll drains queued writes, closes every file and stops the worker.
// A later Write starts a fresh worker.
func (w *Writer) CloseAll() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.queue == nil {
		return
	}
	close(w.queue)
	<-w.done
	w.queue = nil
	w.done = nil
}

func (w *Writer) run(queue <-chan entry, done chan<- struct{}) {
	files := make(map[string]*os.File)
	defer func() {
		for path, f := range files {
			if err := f.Close(); err != nil {
				slog.Warn("closing log file", "path", path, "err", err)
			}
		}
		close(done)
	}()

	for e := range queue {
		f, ok := files[e.path]
		if !ok {
			var err error
			f, err = open(e.path)
			if err != nil {
				slog.Warn("opening log file", "path", e.path, "err", err)
				continue
			}
			files[e.path] = f
		}
		if _, err := f.WriteString(w.format(e)); err != nil {
			slog.Warn("writing log file", "path", e.path, "err", err)
		}
	}
}

func (w *Writer) format(e entry) string {
	if e.raw {
		return e.data
	}
	now := time.Now
	if w.now != nil {
		now = w.now
	}

	var sb strings.Builder
	lines := strings.Split(e.data, "\n")
	sb.WriteString("[")
	sb.WriteString(now().UTC().Format(TimestampLayout))
	sb.WriteString("] ")
	sb.WriteString(lines[0])
	sb.WriteString("\n")
	for _, line := range lines[1:] {
		sb.WriteString(" - ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func open(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

var std Writer

// Write queues data on the process-wide writer.
func Write(path, data string, raw bool) {
	std.Write(path, data, raw)
}

// CloseAll flushes and closes the process-wide writer.
func CloseAll() {
	std.CloseAll()
}
