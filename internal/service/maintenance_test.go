package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
	"github.com/StudySpaceOptimizer/backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestMaintenanceService(t *testing.T, blackoutRepo *mocks.MockBlackoutRepo, seedDays int, logDir string) *MaintenanceService {
	t.Helper()

	svc := NewMaintenanceService(blackoutRepo, newTestLogger(t), testLoc, seedDays, logDir, 7)
	svc.now = func() time.Time { return testNow }

	return svc
}

func TestMaintenanceService_SeedBlackoutWindows_Weekday(t *testing.T) {
	blackoutRepo := mocks.NewMockBlackoutRepo(t)
	svc := newTestMaintenanceService(t, blackoutRepo, 0, "")

	// 2026-09-01 is a Tuesday.
	morning := domain.TimeSlot{
		StartTime: time.Date(2026, 9, 1, 0, 0, 0, 0, testLoc).Unix(),
		EndTime:   time.Date(2026, 9, 1, 8, 0, 0, 0, testLoc).Unix(),
	}
	evening := domain.TimeSlot{
		StartTime: time.Date(2026, 9, 1, 22, 0, 0, 0, testLoc).Unix(),
		EndTime:   time.Date(2026, 9, 1, 23, 59, 59, 0, testLoc).Unix(),
	}

	blackoutRepo.EXPECT().Overlaps(mock.Anything, morning).Return(false, nil)
	blackoutRepo.EXPECT().Insert(mock.Anything, morning).Return(nil)
	blackoutRepo.EXPECT().Overlaps(mock.Anything, evening).Return(false, nil)
	blackoutRepo.EXPECT().Insert(mock.Anything, evening).Return(nil)

	require.NoError(t, svc.SeedBlackoutWindows(context.Background()))
}

func TestMaintenanceService_SeedBlackoutWindows_Weekend(t *testing.T) {
	blackoutRepo := mocks.NewMockBlackoutRepo(t)
	svc := newTestMaintenanceService(t, blackoutRepo, 0, "")
	// 2026-09-05 is a Saturday.
	svc.now = func() time.Time { return time.Date(2026, 9, 5, 10, 0, 0, 0, testLoc) }

	morning := domain.TimeSlot{
		StartTime: time.Date(2026, 9, 5, 0, 0, 0, 0, testLoc).Unix(),
		EndTime:   time.Date(2026, 9, 5, 9, 0, 0, 0, testLoc).Unix(),
	}
	evening := domain.TimeSlot{
		StartTime: time.Date(2026, 9, 5, 17, 0, 0, 0, testLoc).Unix(),
		EndTime:   time.Date(2026, 9, 5, 23, 59, 59, 0, testLoc).Unix(),
	}

	blackoutRepo.EXPECT().Overlaps(mock.Anything, morning).Return(false, nil)
	blackoutRepo.EXPECT().Insert(mock.Anything, morning).Return(nil)
	blackoutRepo.EXPECT().Overlaps(mock.Anything, evening).Return(false, nil)
	blackoutRepo.EXPECT().Insert(mock.Anything, evening).Return(nil)

	require.NoError(t, svc.SeedBlackoutWindows(context.Background()))
}

func TestMaintenanceService_SeedBlackoutWindows_SkipsExisting(t *testing.T) {
	blackoutRepo := mocks.NewMockBlackoutRepo(t)
	svc := newTestMaintenanceService(t, blackoutRepo, 1, "")

	blackoutRepo.EXPECT().Overlaps(mock.Anything, mock.Anything).Return(true, nil).Times(4)

	require.NoError(t, svc.SeedBlackoutWindows(context.Background()))
	blackoutRepo.AssertNotCalled(t, "Insert")
}

func TestMaintenanceService_PruneLogs(t *testing.T) {
	dir := t.TempDir()

	stale := filepath.Join(dir, "2026-08-20.log")
	fresh := filepath.Join(dir, "2026-09-01.log")
	other := filepath.Join(dir, "notes.txt")
	for _, path := range []string{stale, fresh, other} {
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}

	blackoutRepo := mocks.NewMockBlackoutRepo(t)
	svc := newTestMaintenanceService(t, blackoutRepo, 0, dir)

	svc.pruneLogs()

	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
	assert.FileExists(t, other)
}
