package main

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dropsync/internal/app"
	"go.trai.ch/dropsync/internal/core/domain"
	"go.trai.ch/dropsync/internal/core/ports"
)

type nopLogger struct {
	errored int
}

func (l *nopLogger) Debug(string) {}
func (l *nopLogger) Info(string)  {}
func (l *nopLogger) Warn(string)  {}
func (l *nopLogger) Error(error)  { l.errored++ }

type stubNotifier struct{}

func (stubNotifier) Start(context.Context, string) error { return nil }
func (stubNotifier) Stop() error                         { return nil }
func (stubNotifier) Close() error                        { return nil }
func (stubNotifier) Changes() iter.Seq[ports.ChangeSignal] {
	return func(func(ports.ChangeSignal) bool) {}
}

type stubResolver struct {
	rootErr error
}

func (r stubResolver) UserStorageRoot() (string, error) { return "", r.rootErr }
func (r stubResolver) LoadedAppPath(string) (string, error) {
	return "", domain.ErrAppNotLoaded
}

type stubEnumerator struct{}

func (stubEnumerator) List(string) (iter.Seq[ports.Entry], error) {
	return func(func(ports.Entry) bool) {}, nil
}

type stubMerger struct{}

func (stubMerger) Merge(context.Context, string, string) (domain.MergeStats, error) {
	return domain.MergeStats{}, nil
}

func newTestComponents(resolver ports.StorageResolver) (*app.Components, *nopLogger) {
	log := &nopLogger{}
	cfg := ports.Config{Environment: domain.EnvDevelopment, DropRoot: "drop", StorageRoot: "apps"}
	application := app.New(cfg, log, stubNotifier{}, resolver, stubEnumerator{}, stubMerger{})
	return &app.Components{App: application, Logger: log}, log
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components, _ := newTestComponents(stubResolver{})

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	components, log := newTestComponents(stubResolver{rootErr: domain.ErrRootNotFound})

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"sync"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, 1, log.errored)
}
