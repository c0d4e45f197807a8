package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/StudySpaceOptimizer/backend/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

var testLoc = time.FixedZone("GMT+8", 8*3600)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_RunsMaintenance(t *testing.T) {
	maintenance := mocks.NewMockMaintenanceRunner(t)
	log := newTestLogger(t)

	s := New(maintenance, testLoc, log)
	// 50ms before local midnight, so the first tick fires almost at once.
	s.now = func() time.Time {
		return time.Date(2026, 9, 1, 23, 59, 59, int(950*time.Millisecond), testLoc)
	}

	maintenance.EXPECT().RunDaily(mock.Anything).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(maintenance.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	maintenance := mocks.NewMockMaintenanceRunner(t)
	log := newTestLogger(t)

	s := New(maintenance, testLoc, log)
	s.now = func() time.Time {
		return time.Date(2026, 9, 1, 23, 59, 59, int(950*time.Millisecond), testLoc)
	}

	maintenance.EXPECT().RunDaily(mock.Anything).Return(errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(maintenance.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	maintenance := mocks.NewMockMaintenanceRunner(t)
	log := newTestLogger(t)

	s := New(maintenance, testLoc, log) // next midnight is hours away

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_UntilNextMidnight(t *testing.T) {
	s := New(mocks.NewMockMaintenanceRunner(t), testLoc, newTestLogger(t))
	s.now = func() time.Time {
		return time.Date(2026, 9, 1, 22, 0, 0, 0, testLoc)
	}

	assert.Equal(t, 2*time.Hour, s.untilNextMidnight())
}
