package extract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaceTimeout_OpWins(t *testing.T) {
	got, err := RaceTimeout(context.Background(), time.Second, func(ctx context.Context) (string, error) {
		return "done", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "done", got)
}

func TestRaceTimeout_OpError(t *testing.T) {
	opErr := errors.New("boom")
	_, err := RaceTimeout(context.Background(), time.Second, func(ctx context.Context) (int, error) {
		return 0, opErr
	})
	assert.ErrorIs(t, err, opErr)
}

func TestRaceTimeout_TimerWins(t *testing.T) {
	got, err := RaceTimeout(context.Background(), 10*time.Millisecond, func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "too late", ctx.Err()
	})
	assert.ErrorIs(t, err, ErrStageTimeout)
	assert.Empty(t, got)
}

func TestRaceTimeout_OpSeesCancellation(t *testing.T) {
	canceled := make(chan struct{})
	_, err := RaceTimeout(context.Background(), 10*time.Millisecond, func(ctx context.Context) (string, error) {
		<-ctx.Done()
		close(canceled)
		return "", ctx.Err()
	})
	require.ErrorIs(t, err, ErrStageTimeout)

	select {
	case <-canceled:
	case <-time.After(time.Second):
		t.Fatal("losing op never observed cancellation")
	}
}

func TestRaceTimeout_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RaceTimeout(ctx, time.Second, func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	assert.ErrorIs(t, err, context.Canceled)
}
