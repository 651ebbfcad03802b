package sparkles

// BoundsCalculator computes the bounds around the adapter data. The result must keep
// MinX <= MaxX and MinY <= MaxY.
type BoundsCalculator func(ds DataSource) Bounds

type Options struct {
	boundsCalculator BoundsCalculator
	listener         OnDataChangedListener
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		boundsCalculator: DefaultBounds,
	}

	for _, o := range option {
		o(opts)
	}

	if opts.boundsCalculator == nil {
		opts.boundsCalculator = DefaultBounds
	}

	return opts
}

func BoundsCalculatorOption(fn BoundsCalculator) Option {
	return func(o *Options) {
		o.boundsCalculator = fn
	}
}

func ListenerOption(listener OnDataChangedListener) Option {
	return func(o *Options) {
		o.listener = listener
	}
}
