package lidarr

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacerSpacing(t *testing.T) {
	// 50 req/s: consecutive dispatches must be at least 20ms apart.
	p := newPacer(50)
	ctx := context.Background()

	var stamps []time.Time
	for i := 0; i < 4; i++ {
		require.NoError(t, p.acquire(ctx))
		stamps = append(stamps, time.Now())
	}

	// Allow a small tolerance for scheduler granularity.
	const tolerance = 2 * time.Millisecond
	for i := 1; i < len(stamps); i++ {
		gap := stamps[i].Sub(stamps[i-1])
		assert.GreaterOrEqual(t, gap, 20*time.Millisecond-tolerance, "gap %d", i)
	}
}

func TestPacerDisabled(t *testing.T) {
	for _, perSecond := range []float64{0, -1} {
		p := newPacer(perSecond)
		assert.Nil(t, p.limiter)

		start := time.Now()
		for i := 0; i < 100; i++ {
			require.NoError(t, p.acquire(context.Background()))
		}
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	}
}

func TestPacerContextCancelled(t *testing.T) {
	p := newPacer(1)
	ctx, cancel := context.WithCancel(context.Background())

	// First acquire is immediate; the second would wait a full second.
	require.NoError(t, p.acquire(ctx))
	cancel()
	assert.Error(t, p.acquire(ctx))
}

func TestPacerConcurrentAcquire(t *testing.T) {
	p := newPacer(100)

	var (
		mu     sync.Mutex
		stamps []time.Time
		wg     sync.WaitGroup
	)

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, p.acquire(context.Background()))
			mu.Lock()
			stamps = append(stamps, time.Now())
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Slice(stamps, func(i, j int) bool { return stamps[i].Before(stamps[j]) })

	const tolerance = 2 * time.Millisecond
	for i := 1; i < len(stamps); i++ {
		gap := stamps[i].Sub(stamps[i-1])
		assert.GreaterOrEqual(t, gap, 10*time.Millisecond-tolerance, "gap %d", i)
	}
}
