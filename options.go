package yamlq

import (
	"errors"
	"io"
	"os"

	"go.uber.org/fx"
)

// ErrEmptyDocument is returned when no document path was configured.
var ErrEmptyDocument = errors.New("document path must not be empty")

// Options holds configuration settings for the application.
type Options struct {
	Document string
	Query    string
	Output   io.Writer
	Modules  []fx.Option
	LogLevel string
}

// SetDefaults sets default values for unset options.
func (o *Options) SetDefaults() {
	if o.Output == nil {
		o.Output = os.Stdout
	}
}

// Validate validates the options. An empty query path is valid; it addresses
// the document root.
func (o *Options) Validate() error {
	if o.Document == "" {
		return ErrEmptyDocument
	}

	return nil
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithDocument sets the path of the document file to query.
func WithDocument(path string) Option {
	return func(opts *Options) {
		opts.Document = path
	}
}

// WithQuery sets the path expression resolved against the document. Paths
// use dot and bracket notation, such as "servers[0].host"; the empty string
// and "." address the document root.
func WithQuery(path string) Option {
	return func(opts *Options) {
		opts.Query = path
	}
}

// WithOutput sets the writer that receives the rendered result.
// Defaults to standard output.
func WithOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.Output = w
	}
}

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}
