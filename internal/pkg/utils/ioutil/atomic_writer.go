// Package ioutil contains writers shared by the logger and the terminal tests.
package ioutil

import (
	"bytes"
	"io"

	"github.com/sasha-s/go-deadlock"
)

// AtomicWriter is a buffer safe for concurrent writes.
// Written bytes can be mirrored to other writers, see ConnectTo.
type AtomicWriter struct {
	mutex   *deadlock.Mutex
	buffer  *bytes.Buffer
	mirrors []io.Writer
}

func NewAtomicWriter() *AtomicWriter {
	return &AtomicWriter{mutex: &deadlock.Mutex{}, buffer: &bytes.Buffer{}}
}

// ConnectTo mirrors all following writes to the writer.
func (w *AtomicWriter) ConnectTo(writer io.Writer) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.mirrors = append(w.mirrors, writer)
}

func (w *AtomicWriter) Write(p []byte) (int, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	for _, mirror := range w.mirrors {
		if _, err := mirror.Write(p); err != nil {
			return 0, err
		}
	}
	return w.buffer.Write(p)
}

func (w *AtomicWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Sync implements zapcore.WriteSyncer.
func (w *AtomicWriter) Sync() error {
	return nil
}

func (w *AtomicWriter) Truncate() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.buffer.Reset()
}

func (w *AtomicWriter) String() string {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.buffer.String()
}

func (w *AtomicWriter) StringAndTruncate() string {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	out := w.buffer.String()
	w.buffer.Reset()
	return out
}
