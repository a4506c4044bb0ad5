// Package redis consumes lifecycle events from a Redis list, so an engine
// on another machine can push events that a local console renders.
package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aretw0/live/pkg/domain"
	"github.com/aretw0/live/pkg/eventstream"
	backend "github.com/redis/go-redis/v9"
)

// DefaultKey is the list events are pushed to.
const DefaultKey = "live:events"

// Source pops JSON event envelopes from a Redis list.
type Source struct {
	client       *backend.Client
	key          string
	blockTimeout time.Duration
}

// Option configures a Source.
type Option func(*Source)

// WithKey sets the list key.
func WithKey(key string) Option {
	return func(s *Source) {
		if key != "" {
			s.key = key
		}
	}
}

// WithBlockTimeout sets how long one BLPOP waits before the context is
// rechecked. BLPOP counts whole seconds, so shorter values wait one second.
func WithBlockTimeout(d time.Duration) Option {
	return func(s *Source) {
		if d < time.Second {
			d = time.Second
		}
		s.blockTimeout = d.Truncate(time.Second)
	}
}

// New creates a source connected to the given server.
func New(address, password string, db int, opts ...Option) *Source {
	return NewFromClient(backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	}), opts...)
}

// NewFromClient creates a source from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Source {
	s := &Source{
		client:       client,
		key:          DefaultKey,
		blockTimeout: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the list key.
func (s *Source) Key() string {
	return s.key
}

// Ping checks connectivity.
func (s *Source) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Next blocks until an event is available or ctx is done. A payload that
// cannot be decoded is consumed and reported as an error.
func (s *Source) Next(ctx context.Context) (domain.Event, error) {
	for {
		if err := ctxDone(ctx); err != nil {
			return domain.Event{}, err
		}

		res, err := s.client.BLPop(ctx, s.blockTimeout, s.key).Result()
		if errors.Is(err, backend.Nil) {
			continue
		}
		if err != nil {
			if ctxErr := ctxDone(ctx); ctxErr != nil {
				return domain.Event{}, ctxErr
			}
			return domain.Event{}, fmt.Errorf("%w: redis pop failed: %w", eventstream.ErrFatal, err)
		}

		// BLPOP replies with [key, value].
		if len(res) != 2 {
			continue
		}
		return eventstream.DecodeJSON([]byte(res[1]))
	}
}

// Push appends ev to the list. Producers and tests use it.
func (s *Source) Push(ctx context.Context, ev domain.Event) error {
	data, err := eventstream.EncodeJSON(ev)
	if err != nil {
		return err
	}
	if err := s.client.RPush(ctx, s.key, data).Err(); err != nil {
		return fmt.Errorf("redis push failed: %w", err)
	}
	return nil
}

// Reader binds the source to ctx as an eventstream.Reader. Cancellation of
// ctx ends the stream with io.EOF.
func (s *Source) Reader(ctx context.Context) eventstream.Reader {
	return &boundReader{ctx: ctx, src: s}
}

// Close closes the underlying client.
func (s *Source) Close() error {
	return s.client.Close()
}

// ctxDone also reports an expired deadline whose timer has not fired yet,
// since the connection deadline can trip first.
func ctxDone(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dl, ok := ctx.Deadline(); ok && !time.Now().Before(dl) {
		return context.DeadlineExceeded
	}
	return nil
}

type boundReader struct {
	ctx context.Context
	src *Source
}

func (r *boundReader) Next() (domain.Event, error) {
	ev, err := r.src.Next(r.ctx)
	if err != nil && ctxDone(r.ctx) != nil {
		return domain.Event{}, io.EOF
	}
	return ev, err
}
