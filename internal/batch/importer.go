package batch

import (
	"context"
	"errors"
	"io"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"rpslkit/internal/diagnostic"
	"rpslkit/internal/rpsl"
	"rpslkit/internal/schema"
)

// Result is the outcome of parsing one record.
type Result struct {
	Record

	// Object is nil when Err is set.
	Object *rpsl.Object
	// Err is set when the object class is unknown.
	Err error
}

// Valid reports whether the record parsed into an object without errors.
func (r Result) Valid() bool {
	return r.Err == nil && r.Object != nil && r.Object.Valid()
}

// Messages returns the object's messages. A record whose class is unknown
// yields a single KindUnknownClass error.
func (r Result) Messages() diagnostic.Messages {
	var msgs diagnostic.Messages

	switch {
	case r.Err != nil:
		msgs.AddError(diagnostic.KindUnknownClass, r.Err.Error(), "", 0)
	case r.Object != nil:
		msgs.Merge(*r.Object.Messages())
	}

	return msgs
}

// Summary counts the results of a run.
type Summary struct {
	Objects      int
	Valid        int
	Invalid      int
	WithWarnings int
	UnknownClass int
}

// Importer parses records against a registry.
type Importer struct {
	registry *schema.Registry
	strict   bool
	workers  int
	logger   zerolog.Logger
}

// Option configures an Importer.
type Option func(*Importer)

// WithStrict selects strict or relaxed validation. Strict is the default.
func WithStrict(strict bool) Option {
	return func(im *Importer) { im.strict = strict }
}

// WithWorkers bounds the number of objects parsed at once.
func WithWorkers(n int) Option {
	return func(im *Importer) {
		if n > 0 {
			im.workers = n
		}
	}
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(logger zerolog.Logger) Option {
	return func(im *Importer) { im.logger = logger }
}

// New creates an importer for the classes in registry.
func New(registry *schema.Registry, opts ...Option) *Importer {
	im := &Importer{
		registry: registry,
		strict:   true,
		workers:  runtime.NumCPU(),
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(im)
	}

	return im
}

// ReadAll splits r into records and parses them.
func (im *Importer) ReadAll(ctx context.Context, r io.Reader) ([]Result, Summary, error) {
	records, err := Split(r)
	if err != nil {
		return nil, Summary{}, err
	}

	return im.Run(ctx, records)
}

// Run parses records concurrently and returns the results in input order.
// Only cancellation of ctx is returned as an error; problems with individual
// objects are reported in their Result.
func (im *Importer) Run(ctx context.Context, records []Record) ([]Result, Summary, error) {
	results := make([]Result, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(im.workers)

	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = im.parse(rec)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	summary := summarize(results)
	im.logger.Info().
		Int("objects", summary.Objects).
		Int("valid", summary.Valid).
		Int("invalid", summary.Invalid).
		Int("unknown_class", summary.UnknownClass).
		Bool("strict", im.strict).
		Msg("batch parsed")

	return results, summary, nil
}

func (im *Importer) parse(rec Record) Result {
	obj, err := rpsl.FromText(rec.Text, im.registry, im.strict)
	if err != nil {
		var unknown *schema.UnknownClassError
		if errors.As(err, &unknown) {
			im.logger.Warn().Int("line", rec.StartLine).Str("class", unknown.Class).Msg("unknown object class")
		}

		return Result{Record: rec, Err: err}
	}

	log := im.logger.With().Int("line", rec.StartLine).Str("class", obj.Class()).Str("pk", obj.PK()).Logger()

	if msgs := obj.Messages(); msgs.HasErrors() {
		log.Warn().Strs("errors", msgs.ErrorStrings()).Msg("object rejected")
	} else {
		log.Debug().Int("warnings", len(msgs.Warnings)).Msg("object accepted")
	}

	return Result{Record: rec, Object: obj}
}

func summarize(results []Result) Summary {
	s := Summary{Objects: len(results)}

	for _, r := range results {
		switch {
		case r.Err != nil:
			s.UnknownClass++
			s.Invalid++
		case r.Object.Valid():
			s.Valid++
		default:
			s.Invalid++
		}

		if r.Object != nil && r.Object.Messages().HasWarnings() {
			s.WithWarnings++
		}
	}

	return s
}
