package metricify

// ConvertOptions holds options for document conversion.
type ConvertOptions struct {
	Config      *RenderConfig
	AllElements bool
	Fragment    bool
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithTargetClass limits HTML conversion to elements with the given class.
// The default config is copied, not modified.
func WithTargetClass(class string) Option {
	return func(opts *ConvertOptions) {
		base := opts.Config
		if base == nil {
			base = DefaultConfig()
		}
		config := *base
		config.TargetClass = class
		opts.Config = &config
	}
}

// WithAllElements converts text anywhere in the HTML body instead of only
// in elements with the target class.
func WithAllElements(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.AllElements = enable
	}
}

// WithFragment treats HTML input as a fragment: no <html>, <head> or
// <body> is added to the output.
func WithFragment(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Fragment = enable
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Config == nil {
		options.Config = DefaultConfig()
	}
	return options
}
