package engine

// Option configures an Engine at construction (cf. the functional-options
// pattern used throughout golang.org/x/text, e.g. idna.Option).
type Option func(*config)

type config struct {
	alternativeMargin int
}

func defaultConfig() config {
	return config{alternativeMargin: 20}
}

// WithAlternativeMargin sets how close in score another edge sharing a
// best-path edge's span must be to be reported as an alternative under
// ShapeAlternatives (spec.md §4.5). The default is 20.
func WithAlternativeMargin(margin int) Option {
	return func(c *config) {
		c.alternativeMargin = margin
	}
}
