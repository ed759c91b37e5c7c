package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencer_FIFO(t *testing.T) {
	s := NewSequencer("fifo-" + t.Name())
	ctx := context.Background()

	release := make(chan struct{})
	started := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = WithExclusiveAccess(ctx, s, func(context.Context) (int, error) {
			close(started)
			<-release
			return 0, nil
		})
	}()
	<-started

	var mu sync.Mutex
	var order []int
	const n = 5
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = WithExclusiveAccess(ctx, s, func(context.Context) (int, error) {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return i, nil
			})
		}()
		// 等上一个进入队列再提交下一个
		require.Eventually(t, func() bool {
			return testutil.ToFloat64(seqPending.WithLabelValues(s.Name())) == float64(i+2)
		}, time.Second, time.Millisecond)
		time.Sleep(5 * time.Millisecond)
	}

	close(release)
	wg.Wait()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestSequencer_NoOverlap(t *testing.T) {
	s := NewSequencer("overlap-" + t.Name())
	ctx := context.Background()

	var inside, maxInside int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = WithExclusiveAccess(ctx, s, func(context.Context) (struct{}, error) {
				mu.Lock()
				inside++
				maxInside = max(maxInside, inside)
				mu.Unlock()
				time.Sleep(100 * time.Microsecond)
				mu.Lock()
				inside--
				mu.Unlock()
				return struct{}{}, nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxInside)
}

func TestSequencer_ErrorAndPanicReleaseSlot(t *testing.T) {
	s := NewSequencer("release-" + t.Name())
	ctx := context.Background()

	boom := errors.New("boom")
	_, err := WithExclusiveAccess(ctx, s, func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	assert.Panics(t, func() {
		_, _ = WithExclusiveAccess(ctx, s, func(context.Context) (int, error) { panic("kaboom") })
	})

	v, err := WithExclusiveAccess(ctx, s, func(context.Context) (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestSequencer_IgnoresCancellation(t *testing.T) {
	s := NewSequencer("cancel-" + t.Name())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	_, err := WithExclusiveAccess(ctx, s, func(ctx context.Context) (struct{}, error) {
		ran = true
		return struct{}{}, ctx.Err()
	})
	require.NoError(t, err)
	assert.True(t, ran)
}
