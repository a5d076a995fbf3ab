package runtime

import (
	"io"
	"sync"
)

// Reader that closes a channel when the wrapped reader reaches [io.EOF].
//
// The eof channel is closed at most once, so it is safe to wait on from
// several goroutines. Other errors leave it open.
type eofReader struct {
	r    io.Reader
	once sync.Once
	eof  chan struct{}
}

func newEOFReader(r io.Reader) *eofReader {
	return &eofReader{r: r, eof: make(chan struct{})}
}

func (e *eofReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if err == io.EOF {
		e.once.Do(func() { close(e.eof) })
	}
	return n, err
}
