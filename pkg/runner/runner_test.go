package runner

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viktor-yakubiv/lp/pkg/logger"
	"github.com/viktor-yakubiv/lp/pkg/scraper"
	"github.com/viktor-yakubiv/lp/pkg/timetable"
)

type fakeSource struct {
	failing map[string]error
	calls   []scraper.Target
	onFetch func()
}

func (s *fakeSource) FetchTimetable(_ context.Context, _ *timetable.Parser, target scraper.Target) (*timetable.Result, error) {
	s.calls = append(s.calls, target)
	if s.onFetch != nil {
		s.onFetch()
	}
	if err := s.failing[target.Group]; err != nil {
		return nil, err
	}
	return &timetable.Result{Faculty: target.Institute, Group: target.Group}, nil
}

type fakeSink struct {
	results []*timetable.Result
	batches [][]*timetable.Result
	err     error
}

func (s *fakeSink) WriteResult(_ context.Context, r *timetable.Result) error {
	if s.err != nil {
		return s.err
	}
	s.results = append(s.results, r)
	return nil
}

func (s *fakeSink) WriteBatch(_ context.Context, results []*timetable.Result) error {
	if s.err != nil {
		return s.err
	}
	s.batches = append(s.batches, results)
	return nil
}

var targets = []scraper.Target{
	{Institute: "ІКНІ", Group: "ПЗ-11"},
	{Institute: "ІКНІ", Group: "ПЗ-12"},
	{Institute: "ІМФН", Group: "ПМ-21"},
}

func TestRun_Batch(t *testing.T) {
	source := &fakeSource{}
	sink := &fakeSink{}
	r := &Runner{Source: source, Sinks: []Sink{sink}}

	report, err := r.Run(context.Background(), targets)
	require.NoError(t, err)
	require.NoError(t, report.Err())

	assert.Equal(t, targets, source.calls)
	assert.Empty(t, sink.results)
	require.Len(t, sink.batches, 1)
	assert.Len(t, sink.batches[0], 3)
	assert.Equal(t, "ПМ-21", sink.batches[0][2].Group)
}

func TestRun_ContinuesAfterFailure(t *testing.T) {
	fetchErr := errors.New("connection reset")
	source := &fakeSource{failing: map[string]error{"ПЗ-12": fetchErr}}
	sink := &fakeSink{}

	var out bytes.Buffer
	r := &Runner{Source: source, Sinks: []Sink{sink}, Log: logger.New(&out, logger.LevelQuiet, false)}

	report, err := r.Run(context.Background(), targets)
	require.NoError(t, err)

	assert.Len(t, source.calls, 3)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, targets[1], report.Failures[0].Target)
	assert.ErrorIs(t, report.Err(), fetchErr)
	assert.Contains(t, report.Err().Error(), "ІКНІ/ПЗ-12")
	assert.Len(t, report.Results, 2)
	assert.Len(t, sink.batches[0], 2)
	assert.Contains(t, out.String(), "connection reset")
}

func TestRun_Iterative(t *testing.T) {
	sink := &fakeSink{}
	second := &fakeSink{}
	r := &Runner{Source: &fakeSource{}, Sinks: []Sink{sink, second}, Iterative: true}

	report, err := r.Run(context.Background(), targets)
	require.NoError(t, err)

	assert.Len(t, report.Results, 3)
	assert.Len(t, sink.results, 3)
	assert.Len(t, second.results, 3)
	assert.Empty(t, sink.batches)
}

func TestRun_IterativeWriteFailure(t *testing.T) {
	sink := &fakeSink{err: errors.New("disk full")}
	r := &Runner{Source: &fakeSource{}, Sinks: []Sink{sink}, Iterative: true}

	report, err := r.Run(context.Background(), targets)
	require.NoError(t, err)
	assert.Len(t, report.Failures, 3)
	assert.Empty(t, report.Results)
}

func TestRun_BatchWriteFailure(t *testing.T) {
	r := &Runner{Source: &fakeSource{}, Sinks: []Sink{&fakeSink{err: errors.New("disk full")}}}

	report, err := r.Run(context.Background(), targets)
	require.Error(t, err)
	assert.Len(t, report.Results, 3)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	source := &fakeSource{onFetch: cancel}
	sink := &fakeSink{}
	r := &Runner{Source: source, Sinks: []Sink{sink}}

	_, err := r.Run(ctx, targets)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, source.calls, 1)
	assert.Empty(t, sink.batches)
}
