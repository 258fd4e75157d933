package sink

import "github.com/mpelleau/cnf2lightswitch/pkg/render/theme"

// Option configures an emitter.
type Option func(*options)

type options struct {
	theme theme.Theme
}

// WithTheme overrides the default theme.
func WithTheme(th theme.Theme) Option {
	return func(o *options) { o.theme = th }
}

func newOptions(opts ...Option) options {
	o := options{theme: theme.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
