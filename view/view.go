package view

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/seiscube/axis"
)

// Decoder decodes the record stored at a zero-based position.
type Decoder[V any] func(ctx context.Context, index int) (V, error)

// Observer is notified after every decoding call on a view.
//
// records is the number of records requested; err is nil on success.
type Observer func(ctx context.Context, view string, records int, d time.Duration, err error)

type options struct {
	observer Observer
}

// Option configures a View.
type Option func(*options)

// WithObserver installs an Observer.
func WithObserver(fn Observer) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// Item is a key and its decoded record.
type Item[K comparable, V any] struct {
	Key   K
	Value V
}

// View is a read-only ordered map from keys to decoded records.
//
// A View holds no mutable state. It is safe for concurrent use if its
// Decoder is.
type View[K comparable, V any] struct {
	name      string
	storageID string
	keys      KeySet[K]
	decode    Decoder[V]
	observer  Observer
}

// New creates a View named name over keys, decoding records with decode.
func New[K comparable, V any](name, storageID string, keys KeySet[K], decode Decoder[V], optFns ...Option) *View[K, V] {
	var opts options
	for _, fn := range optFns {
		fn(&opts)
	}
	return &View[K, V]{
		name:      name,
		storageID: storageID,
		keys:      keys,
		decode:    decode,
		observer:  opts.observer,
	}
}

// Name returns the view name, e.g. "inline".
func (v *View[K, V]) Name() string { return v.name }

// StorageID identifies the volume the view reads from.
func (v *View[K, V]) StorageID() string { return v.storageID }

// Len returns the number of keys.
func (v *View[K, V]) Len() int { return v.keys.Len() }

// Contains reports whether key is part of the view.
func (v *View[K, V]) Contains(key K) bool {
	_, ok := v.keys.Index(key)
	return ok
}

// Index returns the zero-based position of key.
func (v *View[K, V]) Index(key K) (int, bool) { return v.keys.Index(key) }

// Keys returns the keys in storage order.
func (v *View[K, V]) Keys() []K {
	out := make([]K, v.keys.Len())
	for i := range out {
		out[i] = v.keys.At(i)
	}
	return out
}

// Get decodes the record for key.
func (v *View[K, V]) Get(ctx context.Context, key K) (V, error) {
	i, ok := v.keys.Index(key)
	if !ok {
		var zero V
		err := &KeyError{View: v.name, Key: key}
		v.observe(ctx, 1, 0, err)
		return zero, err
	}
	return v.At(ctx, i)
}

// At decodes the record at position i.
func (v *View[K, V]) At(ctx context.Context, i int) (V, error) {
	start := time.Now()

	if i < 0 || i >= v.keys.Len() {
		var zero V
		err := fmt.Errorf("%s: position %d of %d: %w", v.name, i, v.keys.Len(), axis.ErrOutOfRange)
		v.observe(ctx, 1, time.Since(start), err)
		return zero, err
	}

	rec, err := v.decode(ctx, i)
	if err != nil {
		err = fmt.Errorf("%s %v: %w", v.name, v.keys.At(i), err)
	}
	v.observe(ctx, 1, time.Since(start), err)
	return rec, err
}

// Slice decodes the records selected by a positional slice over the keys.
//
// r follows half-open slice normalisation against Len: negative positions
// count from the end and out-of-bounds positions are clamped. Every selected
// record is decoded before Slice returns.
func (v *View[K, V]) Slice(ctx context.Context, r axis.Range) ([]V, error) {
	start := time.Now()

	pos, err := r.Positions(v.keys.Len())
	if err != nil {
		err = fmt.Errorf("%s slice %s: %w", v.name, r, err)
		v.observe(ctx, 0, time.Since(start), err)
		return nil, err
	}

	out := make([]V, len(pos))
	for n, i := range pos {
		rec, err := v.decode(ctx, i)
		if err != nil {
			err = fmt.Errorf("%s %v: %w", v.name, v.keys.At(i), err)
			v.observe(ctx, len(pos), time.Since(start), err)
			return nil, err
		}
		out[n] = rec
	}

	v.observe(ctx, len(pos), time.Since(start), nil)
	return out, nil
}

// Values decodes every record in key order.
func (v *View[K, V]) Values(ctx context.Context) ([]V, error) {
	return v.Slice(ctx, axis.All())
}

// Items decodes every record and pairs it with its key.
func (v *View[K, V]) Items(ctx context.Context) ([]Item[K, V], error) {
	vals, err := v.Values(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Item[K, V], len(vals))
	for i, val := range vals {
		out[i] = Item[K, V]{Key: v.keys.At(i), Value: val}
	}
	return out, nil
}

func (v *View[K, V]) observe(ctx context.Context, records int, d time.Duration, err error) {
	if v.observer != nil {
		v.observer(ctx, v.name, records, d, err)
	}
}
