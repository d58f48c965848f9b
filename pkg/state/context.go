package state

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/bbxsynth/chipvoice/pkg/param"
	"github.com/bbxsynth/chipvoice/pkg/synth"
)

// ErrContextCanceled is returned when an operation is canceled via context
var ErrContextCanceled = errors.New("operation canceled")

// ctxReader/ctxWriter check ctx.Done() between each chunked read/write,
// so a save or load triggered from a cancelable host callback can bail
// out promptly instead of blocking on a slow disk.
const ioChunkSize = 4096

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	select {
	case <-c.ctx.Done():
		return 0, ErrContextCanceled
	default:
	}
	if len(p) > ioChunkSize {
		p = p[:ioChunkSize]
	}
	return c.r.Read(p)
}

type ctxWriter struct {
	ctx context.Context
	w   io.Writer
}

func (c ctxWriter) Write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		select {
		case <-c.ctx.Done():
			return written, ErrContextCanceled
		default:
		}
		end := written + ioChunkSize
		if end > len(p) {
			end = len(p)
		}
		n, err := c.w.Write(p[written:end])
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// SaveWithContext saves the parameter and envelope state, aborting
// early if ctx is canceled mid-write.
func (c *Codec) SaveWithContext(ctx context.Context, w io.Writer, params *param.Manager, envelopes []synth.EnvelopeBinding) error {
	select {
	case <-ctx.Done():
		return ErrContextCanceled
	default:
	}
	return c.Save(ctxWriter{ctx: ctx, w: w}, params, envelopes)
}

// LoadWithContext loads state, aborting early if ctx is canceled
// mid-read.
func (c *Codec) LoadWithContext(ctx context.Context, r io.Reader, params *param.Manager) ([]synth.EnvelopeBinding, error) {
	select {
	case <-ctx.Done():
		return nil, ErrContextCanceled
	default:
	}
	return c.Load(ctxReader{ctx: ctx, r: r}, params)
}

// SaveAsyncResult carries the outcome of an asynchronous save.
type SaveAsyncResult struct {
	Error error
	Done  chan struct{}
}

// SaveAsync saves in a background goroutine under a fixed timeout,
// for a host that wants to kick off a state save without blocking its
// calling thread.
func (c *Codec) SaveAsync(w io.Writer, params *param.Manager, envelopes []synth.EnvelopeBinding) *SaveAsyncResult {
	result := &SaveAsyncResult{Done: make(chan struct{})}
	go func() {
		defer close(result.Done)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		result.Error = c.SaveWithContext(ctx, w, params, envelopes)
	}()
	return result
}

// LoadAsyncResult carries the outcome of an asynchronous load.
type LoadAsyncResult struct {
	Envelopes []synth.EnvelopeBinding
	Error     error
	Done      chan struct{}
}

// LoadAsync loads in a background goroutine under a fixed timeout.
func (c *Codec) LoadAsync(r io.Reader, params *param.Manager) *LoadAsyncResult {
	result := &LoadAsyncResult{Done: make(chan struct{})}
	go func() {
		defer close(result.Done)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		result.Envelopes, result.Error = c.LoadWithContext(ctx, r, params)
	}()
	return result
}
