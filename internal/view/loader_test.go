package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderReady(t *testing.T) {
	l := NewLoader[[]string]()

	page, applied := l.Load(context.Background(), func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	}, func(s []string) bool { return len(s) == 0 })

	require.True(t, applied)
	assert.Equal(t, StateReady, page.State)
	assert.Equal(t, []string{"a", "b"}, page.Data)
	assert.Equal(t, StateReady, l.State())
}

func TestLoaderEmptyIsNotErrorNorLoading(t *testing.T) {
	l := NewLoader[[]string]()

	page, applied := l.Load(context.Background(), func(ctx context.Context) ([]string, error) {
		return nil, nil
	}, func(s []string) bool { return len(s) == 0 })

	require.True(t, applied)
	assert.Equal(t, StateEmpty, page.State)
	assert.NotEqual(t, StateError, page.State)
	assert.NotEqual(t, StateLoading, l.State())
}

func TestLoaderErrorExposesRetry(t *testing.T) {
	l := NewLoader[[]string]()

	page, applied := l.Load(context.Background(), func(ctx context.Context) ([]string, error) {
		return nil, errors.New("fetch failed")
	}, nil)

	require.True(t, applied)
	assert.Equal(t, StateError, page.State)
	assert.True(t, page.Retry)
	assert.Equal(t, "fetch failed", page.Error)
}

func TestLoaderRetryReentersLoadingExactlyOnce(t *testing.T) {
	l := NewLoader[[]string]()

	var transitions []State
	l.OnTransition = func(s State) { transitions = append(transitions, s) }

	// First mount fails.
	_, _ = l.Load(context.Background(), func(ctx context.Context) ([]string, error) {
		return nil, errors.New("boom")
	}, nil)

	// User-initiated retry succeeds.
	page, applied := l.Load(context.Background(), func(ctx context.Context) ([]string, error) {
		return []string{"x"}, nil
	}, func(s []string) bool { return len(s) == 0 })

	require.True(t, applied)
	assert.Equal(t, StateReady, page.State)
	assert.Equal(t, []State{StateLoading, StateError, StateLoading, StateReady}, transitions)
}

func TestLoaderDiscardsResultAfterCancellation(t *testing.T) {
	l := NewLoader[[]string]()
	ctx, cancel := context.WithCancel(context.Background())

	_, applied := l.Load(ctx, func(ctx context.Context) ([]string, error) {
		cancel() // the mount goes away while the request is in flight
		return []string{"late"}, nil
	}, nil)

	assert.False(t, applied)
}

func TestLoaderDiscardsSupersededResult(t *testing.T) {
	l := NewLoader[int]()

	started := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan struct{})

	go func() {
		defer close(firstDone)
		_, applied := l.Load(context.Background(), func(ctx context.Context) (int, error) {
			close(started)
			<-release // resolves only after the second Load took over
			return 1, nil
		}, nil)
		assert.False(t, applied)
	}()

	// Second Load bumps the generation while the first is suspended.
	<-started
	page, applied := l.Load(context.Background(), func(ctx context.Context) (int, error) {
		return 2, nil
	}, nil)
	require.True(t, applied)
	assert.Equal(t, 2, page.Data)

	close(release)
	<-firstDone
	assert.Equal(t, StateReady, l.State())
}
