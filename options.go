package spirvmeta

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/apparentlymart/spirv-meta/registry"
)

// Option configures a generation call.
type Option func(*config)

type config struct {
	vendorTags []string
	format     registry.Format
	docs       bool

	// logger receives debug output about normalization. The default
	// discards everything.
	logger logrus.FieldLogger

	// dump, if set, receives a dump of the normalized registry before it
	// is rendered.
	dump func(*registry.Registry)
}

func newConfig(opts []Option) *config {
	c := &config{format: registry.Auto}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.logger = l
	}
	return c
}

// WithVendorTags replaces the vendor tags that identifiers keep together as
// one word. See ident.DefaultTags for the default set.
func WithVendorTags(tags ...string) Option {
	return func(c *config) {
		c.vendorTags = append([]string(nil), tags...)
	}
}

// WithFormat forces the grammar to be decoded as JSON or XML instead of
// detecting the encoding from its content.
func WithFormat(f registry.Format) Option {
	return func(c *config) {
		c.format = f
	}
}

// WithDocComments enables capability doc comments in the generated code.
func WithDocComments(enabled bool) Option {
	return func(c *config) {
		c.docs = enabled
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithDump registers a function that is called with the normalized
// registry just before rendering.
func WithDump(fn func(*registry.Registry)) Option {
	return func(c *config) {
		c.dump = fn
	}
}
