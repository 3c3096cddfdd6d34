// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package check runs the validator over a batch of schema files and records
// the outcome of each file in a report.
package check

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/dacolabs/schemalint/internal/report"
	"github.com/dacolabs/schemalint/internal/schema"
	"github.com/dacolabs/schemalint/internal/validate"
)

// State is the processing stage a file has reached.
type State string

// File states. A file moves from Loaded to Checked, then to Reported, and in
// fix mode on to Rewritten. Failed ends processing of the file.
const (
	Loaded    State = "loaded"
	Checked   State = "checked"
	Reported  State = "reported"
	Rewritten State = "rewritten"
	Failed    State = "failed"
)

// ConfirmFunc asks whether renamed fields may be written back to path.
type ConfirmFunc func(ctx context.Context, path string, renamed int) (bool, error)

// Options configure a Runner.
type Options struct {
	Validator *validate.Validator
	Mode      validate.Mode
	// Jobs is the number of files checked concurrently. Values below 1 mean 1.
	Jobs int
	// Confirm is consulted before each rewrite in fix mode. Nil writes
	// without asking.
	Confirm ConfirmFunc
}

// Runner checks files and feeds an Aggregator.
type Runner struct {
	opts Options
}

// NewRunner creates a Runner.
func NewRunner(opts Options) *Runner {
	if opts.Jobs < 1 {
		opts.Jobs = 1
	}
	if opts.Mode == "" {
		opts.Mode = validate.Lint
	}
	return &Runner{opts: opts}
}

type outcome struct {
	path   string
	doc    *schema.Document
	result validate.Result
	err    error
	code   int
}

// Run checks every file and records the results in agg, grouped in the
// order of paths. Files are loaded and validated concurrently up to Jobs;
// rewrites happen one at a time afterwards. A failing file never stops the
// others. Run only returns an error when ctx is cancelled or a confirmation
// prompt fails.
func (r *Runner) Run(ctx context.Context, paths []string, agg *report.Aggregator) error {
	outcomes := make([]outcome, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.checkFile(gctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, o := range outcomes {
		if err := r.record(ctx, o, agg); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) checkFile(ctx context.Context, path string) outcome {
	log := zerolog.Ctx(ctx).With().Str("file", path).Logger()

	doc, err := schema.Load(path)
	if err != nil {
		code := report.ExitViolations
		if errors.Is(err, schema.ErrRead) {
			code = report.ExitConfigError
		}
		log.Debug().Err(err).Str("state", string(Failed)).Msg("load failed")
		return outcome{path: path, err: err, code: code}
	}
	fields := 0
	schema.Walk(doc.Fields, func(*schema.Field, []string) bool {
		fields++
		return true
	})
	log.Debug().Str("state", string(Loaded)).Str("format", string(doc.Format)).Int("fields", fields).Msg("schema loaded")

	res := r.opts.Validator.Validate(doc.Fields, r.opts.Mode)
	for i := range res.Violations {
		res.Violations[i] = res.Violations[i].InFile(path)
	}
	log.Debug().Str("state", string(Checked)).Int("violations", len(res.Violations)).Int("renamed", res.Renamed).Msg("schema checked")

	return outcome{path: path, doc: doc, result: res}
}

func (r *Runner) record(ctx context.Context, o outcome, agg *report.Aggregator) error {
	log := zerolog.Ctx(ctx).With().Str("file", o.path).Logger()

	agg.AddFile(o.path)
	if o.err != nil {
		agg.RecordFailure(o.path, o.err, o.code)
		return nil
	}
	for _, v := range o.result.Violations {
		agg.Record(v)
	}
	log.Debug().Str("state", string(Reported)).Msg("violations recorded")

	if r.opts.Mode != validate.Fix || o.result.Renamed == 0 {
		return nil
	}

	if r.opts.Confirm != nil {
		ok, err := r.opts.Confirm(ctx, o.path, o.result.Renamed)
		if err != nil {
			return err
		}
		if !ok {
			log.Info().Msg("rewrite skipped")
			return nil
		}
	}

	if err := schema.WriteFile(o.doc.WithFields(o.result.Fields)); err != nil {
		log.Error().Err(err).Str("state", string(Failed)).Msg("rewrite failed")
		agg.RecordFailure(o.path, err, report.ExitViolations)
		return nil
	}
	agg.MarkRewritten(o.path)
	log.Info().Str("state", string(Rewritten)).Int("renamed", o.result.Renamed).Msg("schema rewritten")
	return nil
}
