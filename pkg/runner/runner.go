// Package runner drives the timetable pipeline over many groups.
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/viktor-yakubiv/lp/pkg/logger"
	"github.com/viktor-yakubiv/lp/pkg/scraper"
	"github.com/viktor-yakubiv/lp/pkg/timetable"
)

// Source produces the timetable of one group.
type Source interface {
	FetchTimetable(ctx context.Context, p *timetable.Parser, target scraper.Target) (*timetable.Result, error)
}

// Sink receives finished timetables.
type Sink interface {
	WriteResult(ctx context.Context, r *timetable.Result) error
	WriteBatch(ctx context.Context, results []*timetable.Result) error
}

// Failure records a group whose timetable could not be produced or written.
type Failure struct {
	Target scraper.Target
	Err    error
}

// Report is the outcome of a run.
type Report struct {
	Results  []*timetable.Result
	Failures []Failure
}

// Err joins the failures of the run, nil when every group succeeded.
func (r *Report) Err() error {
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, fmt.Errorf("%s: %w", f.Target, f.Err))
	}
	return errors.Join(errs...)
}

// Runner processes groups one after another.
type Runner struct {
	Source Source
	Parser *timetable.Parser
	Sinks  []Sink
	Log    *logger.Logger

	// Iterative hands every result to the sinks as soon as it is built
	// instead of writing the whole batch at the end.
	Iterative bool
}

// Run fetches and parses the timetable of every target. A failing group is
// recorded in the report and the run moves on; only cancellation of ctx
// or a failing batch write stops it.
func (r *Runner) Run(ctx context.Context, targets []scraper.Target) (*Report, error) {
	log := r.Log
	if log == nil {
		log = logger.Discard()
	}
	parser := r.Parser
	if parser == nil {
		parser = timetable.NewParser(timetable.DefaultVocabulary())
	}

	report := &Report{Results: []*timetable.Result{}}
	log.Info("Found %d groups. Starting accumulation of data...", len(targets))

	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		log.Debug("[%d/%d] Fetching timetable for group %s at %s", i+1, len(targets), target.Group, target.Institute)
		result, err := r.Source.FetchTimetable(ctx, parser, target)
		if err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			log.Error("%s: %v", target, err)
			report.Failures = append(report.Failures, Failure{Target: target, Err: err})
			continue
		}
		log.Data(fmt.Sprintf("Fetched timetable group %s at %s", target.Group, target.Institute), result)

		if r.Iterative {
			if err := r.writeResult(ctx, result); err != nil {
				log.Error("%s: %v", target, err)
				report.Failures = append(report.Failures, Failure{Target: target, Err: err})
				continue
			}
			log.Info("Written %s", target)
		}
		report.Results = append(report.Results, result)
	}

	if !r.Iterative {
		for _, sink := range r.Sinks {
			if err := sink.WriteBatch(ctx, report.Results); err != nil {
				return report, fmt.Errorf("write results: %w", err)
			}
		}
	}

	log.Info("Processed %d groups, %d failed", len(targets), len(report.Failures))
	return report, nil
}

func (r *Runner) writeResult(ctx context.Context, result *timetable.Result) error {
	for _, sink := range r.Sinks {
		if err := sink.WriteResult(ctx, result); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}
