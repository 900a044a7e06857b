// Package yamlq extracts values from YAML documents addressed by dot/bracket
// path expressions. An App wires the document source, the parsing strategy,
// and the render pipeline through an Fx container and executes one query per
// run.
package yamlq

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bitmage/yamlq/load"
	"github.com/bitmage/yamlq/load/fetcher/file"
	"github.com/bitmage/yamlq/logging"
	"github.com/bitmage/yamlq/query"
	"github.com/bitmage/yamlq/render"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// Request is the unit of work handed to the container: one document to load
// and one path expression to resolve against it.
type Request struct {
	Document string
	Path     string
}

// outcome carries the pipeline result out of the container. The start hook
// stores the error here instead of returning it, so user-facing failures
// surface without container framing around them.
type outcome struct {
	text string
	err  error
}

// App is a configured single-query pipeline using Fx.
type App struct {
	app     *fx.App
	options Options
	result  *outcome
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	options.SetDefaults()

	result := &outcome{}

	return &App{
		app:     configure(&options, result),
		options: options,
		result:  result,
	}
}

func configure(options *Options, result *outcome) *fx.App {
	logger := createLogger(options.LogLevel, os.Stderr)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logger),
		fx.Supply(Request{Document: options.Document, Path: options.Query}),
		fx.Provide(
			fx.Annotate(
				newDocumentSource,
				fx.As(new(load.Source)),
			),
			load.Active,
		),
		fx.Invoke(func(lifecycle fx.Lifecycle, request Request, src load.Source, parser load.Parser, logger *slog.Logger) {
			lifecycle.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					result.text, result.err = execute(request, src, parser, logger)

					return nil
				},
			})
		}),
		fx.Options(options.Modules...),
	)
}

func newDocumentSource(request Request) *file.Source {
	return file.NewSource(request.Document)
}

// execute loads the document and renders the value at the requested path.
// Absence of the addressed value is a successful empty result.
func execute(request Request, src load.Source, parser load.Parser, logger *slog.Logger) (string, error) {
	root, err := load.Document(src, parser)
	if err != nil {
		return "", err
	}

	value, found := query.Resolve(root, request.Path)
	if !found {
		logger.Debug("path not found", slog.String("path", request.Path))

		return "", nil
	}

	return render.Text(value)
}

func createLogger(level string, w io.Writer) *slog.Logger {
	config := logging.Config{Level: level}

	return logging.NewLogger(config, w)
}

// Run executes the query once: it validates the options, starts and stops
// the Fx application, and writes the rendered result followed by a newline
// to the configured output.
func (app *App) Run() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	if err := app.options.Validate(); err != nil {
		return err
	}

	if err := app.Start(); err != nil {
		return err
	}

	if err := app.Stop(); err != nil {
		return err
	}

	if app.result.err != nil {
		return app.result.err
	}

	if _, err := fmt.Fprintln(app.options.Output, app.result.text); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
