// File: ring/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import "go.uber.org/zap"

// Options is the plain-struct form of a buffer configuration.
type Options struct {
	Capacity    int
	MaxCapacity int
	Growable    bool
	Overwriting bool
	Logger      *zap.Logger
}

// Option customizes buffer construction.
type Option func(*Options)

// WithGrowable enables doubling the capacity on overflow.
func WithGrowable(on bool) Option {
	return func(o *Options) {
		o.Growable = on
	}
}

// WithOverwriting enables evicting the opposite end on overflow.
func WithOverwriting(on bool) Option {
	return func(o *Options) {
		o.Overwriting = on
	}
}

// WithMaxCapacity caps automatic and explicit growth. Zero means unlimited.
func WithMaxCapacity(n int) Option {
	return func(o *Options) {
		o.MaxCapacity = n
	}
}

// WithLogger routes growth and eviction events to l at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
