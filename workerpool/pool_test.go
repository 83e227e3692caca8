package workerpool_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/fska/workerpool"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidThreadCount(t *testing.T) {
	_, err := workerpool.New(0)
	require.ErrorIs(t, err, workerpool.ErrInvalidThreadCount)
}

func TestSubmitRunsTask(t *testing.T) {
	p, err := workerpool.New(2)
	require.NoError(t, err)
	defer p.Close()

	var ran int32
	f := p.Submit(func() error {
		atomic.AddInt32(&ran, 1)
		return nil
	})
	require.NoError(t, f.Get())
	require.EqualValues(t, 1, atomic.LoadInt32(&ran))
}

func TestSubmitPropagatesError(t *testing.T) {
	p, err := workerpool.New(1)
	require.NoError(t, err)
	defer p.Close()

	wantErr := errors.New("boom")
	f := p.Submit(func() error { return wantErr })
	require.ErrorIs(t, f.Get(), wantErr)
}

func TestThreadCount(t *testing.T) {
	p, err := workerpool.New(4)
	require.NoError(t, err)
	defer p.Close()
	require.Equal(t, 4, p.ThreadCount())
}

func TestManyConcurrentSubmits(t *testing.T) {
	p, err := workerpool.New(8)
	require.NoError(t, err)
	defer p.Close()

	const n = 500
	var sum int64
	futures := make([]*workerpool.Future, n)
	for i := 0; i < n; i++ {
		i := i
		futures[i] = p.Submit(func() error {
			atomic.AddInt64(&sum, int64(i))
			return nil
		})
	}
	for _, f := range futures {
		require.NoError(t, f.Get())
	}

	want := int64(n * (n - 1) / 2)
	require.Equal(t, want, sum)
}

func TestSubmitAfterCloseReturnsErrClosed(t *testing.T) {
	p, err := workerpool.New(1)
	require.NoError(t, err)
	p.Close()

	f := p.Submit(func() error { return nil })
	require.ErrorIs(t, f.Get(), workerpool.ErrClosed)
}

func TestCloseDrainsOutstandingTasks(t *testing.T) {
	p, err := workerpool.New(4)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var completed int32
	const n = 50
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			p.Submit(func() error {
				atomic.AddInt32(&completed, 1)
				return nil
			})
		}()
	}
	wg.Wait()
	p.Close()

	require.EqualValues(t, n, atomic.LoadInt32(&completed))
}

func TestCloseIsIdempotent(t *testing.T) {
	p, err := workerpool.New(1)
	require.NoError(t, err)
	p.Close()
	require.NotPanics(t, func() { p.Close() })
}
