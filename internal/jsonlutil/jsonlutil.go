// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Buffered writers are pooled across streams; encoders are cheap and tied to
// one writer, so each stream makes its own.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start spins up a JSONL encoder goroutine for values of type T.
//   - encode: converts one value to its wire type and calls enc.Encode
//   - isBroken: recognizes broken/closed pipe errors to suppress them
//
// Close the returned channel when done and read the error channel once.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		for v := range in {
			if err := encode(enc, v); err != nil {
				// Drain so the producer never blocks on a dead stream.
				for range in {
				}
				done <- err
				return
			}
		}
		if err := bw.Flush(); err != nil && (isBroken == nil || !isBroken(err)) {
			done <- err
			return
		}
		done <- nil
	}()

	return in, done
}

// WriteAll streams items as JSON lines and waits for the encoder to finish.
func WriteAll[T any](out io.Writer, items []T, encode func(*json.Encoder, T) error, isBroken func(error) bool) error {
	in, done := Start(out, len(items), encode, isBroken)
	for _, it := range items {
		in <- it
	}
	close(in)
	return <-done
}
