package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"rpslkit/internal/batch"
)

// source is one input stream with its parse results.
type source struct {
	name    string
	results []batch.Result
	summary batch.Summary
}

// readSources parses every named file, or stdin when none (or "-") is given.
func readSources(ctx context.Context, stdin io.Reader, args []string) ([]source, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	im := batch.New(registry,
		batch.WithStrict(cfg.Strict),
		batch.WithWorkers(cfg.Workers),
		batch.WithLogger(logger),
	)

	sources := make([]source, 0, len(args))

	for _, name := range args {
		src, err := readSource(ctx, im, stdin, name)
		if err != nil {
			return nil, err
		}

		sources = append(sources, src)
	}

	return sources, nil
}

func readSource(ctx context.Context, im *batch.Importer, stdin io.Reader, name string) (source, error) {
	r := stdin

	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return source{}, fmt.Errorf("open %s: %w", name, err)
		}
		defer f.Close()

		r = f
	} else {
		name = "<stdin>"
	}

	results, summary, err := im.ReadAll(ctx, r)
	if err != nil {
		return source{}, fmt.Errorf("%s: %w", name, err)
	}

	logger.Debug().Str("source", name).Int("objects", summary.Objects).Msg("source read")

	return source{name: name, results: results, summary: summary}, nil
}
