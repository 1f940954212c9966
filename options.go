// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package csvrow

import "github.com/rs/zerolog"

// Option configures the file driver.
type Option func(*options)

type options struct {
	logger      zerolog.Logger
	maxLineSize int
	concurrency int
}

func newOptions(opts []Option) options {
	o := options{
		logger:      zerolog.Nop(),
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger the driver reports progress and failures to.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMaxLineSize bounds the length of one input line in bytes, line
// terminator excluded. A longer line is a fault wrapping
// [bufio.ErrTooLong]. Values below 1 are ignored. By default lines are
// unbounded.
func WithMaxLineSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLineSize = n
		}
	}
}

// WithConcurrency bounds how many files [ParseAll] reads at once.
// Values below 1 are ignored. The default is 4.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
