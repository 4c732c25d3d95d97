package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// MockDayAdvancer for testing
type MockDayAdvancer struct {
	mock.Mock
}

func (m *MockDayAdvancer) AdvanceDay(ctx context.Context) (*domain.TickRun, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TickRun), args.Error(1)
}

func TestNextTickDelay(t *testing.T) {
	plus7 := time.FixedZone("UTC+7", 7*60*60)
	tests := []struct {
		name     string
		now      time.Time
		hour     int
		location *time.Location
		want     time.Duration
	}{
		{
			name:     "one hour after midnight waits 23 hours",
			now:      time.Date(2026, 2, 2, 1, 0, 0, 0, plus7),
			hour:     0,
			location: plus7,
			want:     23 * time.Hour,
		},
		{
			name:     "a minute before midnight",
			now:      time.Date(2026, 2, 2, 23, 59, 0, 0, plus7),
			hour:     0,
			location: plus7,
			want:     time.Minute,
		},
		{
			name:     "exactly on the hour schedules tomorrow",
			now:      time.Date(2026, 2, 2, 6, 0, 0, 0, time.UTC),
			hour:     6,
			location: time.UTC,
			want:     24 * time.Hour,
		},
		{
			name:     "later the same day",
			now:      time.Date(2026, 2, 2, 3, 30, 0, 0, time.UTC),
			hour:     6,
			location: time.UTC,
			want:     150 * time.Minute,
		},
		{
			name:     "now given in another zone",
			now:      time.Date(2026, 2, 2, 16, 0, 0, 0, time.UTC), // 23:00 in UTC+7
			hour:     0,
			location: plus7,
			want:     time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextTickDelay(tt.now, tt.hour, tt.location))
		})
	}
}

func TestDailyTickWorker_StartAndShutdown(t *testing.T) {
	svc := new(MockDayAdvancer)
	worker := NewDailyTickWorker(svc, 0, time.UTC)
	worker.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, worker.Shutdown(ctx))

	// A second shutdown is harmless
	require.NoError(t, worker.Shutdown(ctx))
	svc.AssertNotCalled(t, "AdvanceDay", mock.Anything)
}

func TestDailyTickWorker_ExecuteTick(t *testing.T) {
	svc := new(MockDayAdvancer)
	called := make(chan struct{})
	svc.On("AdvanceDay", mock.Anything).
		Run(func(args mock.Arguments) { close(called) }).
		Return(&domain.TickRun{Day: 4, ItemsUpdated: 9}, nil).Once()

	worker := NewDailyTickWorker(svc, 0, time.UTC)
	worker.executeTick()

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("AdvanceDay was not called")
	}

	require.NoError(t, worker.Shutdown(context.Background()))
	svc.AssertExpectations(t)
}

func TestDailyTickWorker_ExecuteTickFailure(t *testing.T) {
	svc := new(MockDayAdvancer)
	svc.On("AdvanceDay", mock.Anything).Return(nil, errors.New("db down")).Once()

	worker := NewDailyTickWorker(svc, 0, time.UTC)
	worker.executeTick()

	require.NoError(t, worker.Shutdown(context.Background()))
	svc.AssertExpectations(t)
}

func TestDailyTickWorker_FireEarlyReschedules(t *testing.T) {
	svc := new(MockDayAdvancer)
	worker := NewDailyTickWorker(svc, 6, time.UTC)
	// Five minutes before the tick hour is well outside jitter tolerance
	worker.now = func() time.Time { return time.Date(2026, 2, 2, 5, 55, 0, 0, time.UTC) }

	worker.fire()

	require.NoError(t, worker.Shutdown(context.Background()))
	svc.AssertNotCalled(t, "AdvanceDay", mock.Anything)
}

func TestDailyTickWorker_FireOnTime(t *testing.T) {
	svc := new(MockDayAdvancer)
	svc.On("AdvanceDay", mock.Anything).Return(&domain.TickRun{Day: 1}, nil).Once()

	worker := NewDailyTickWorker(svc, 6, time.UTC)
	worker.now = func() time.Time { return time.Date(2026, 2, 2, 6, 0, 1, 0, time.UTC) }

	worker.fire()

	require.NoError(t, worker.Shutdown(context.Background()))
	svc.AssertExpectations(t)
}

func TestDailyTickWorker_FireAfterShutdownIsNoop(t *testing.T) {
	svc := new(MockDayAdvancer)
	worker := NewDailyTickWorker(svc, 6, time.UTC)
	worker.now = func() time.Time { return time.Date(2026, 2, 2, 6, 0, 0, 0, time.UTC) }

	require.NoError(t, worker.Shutdown(context.Background()))
	worker.fire()
	svc.AssertNotCalled(t, "AdvanceDay", mock.Anything)
}

func TestDailyTickWorker_ExecuteTickAfterShutdownIsNoop(t *testing.T) {
	svc := new(MockDayAdvancer)
	worker := NewDailyTickWorker(svc, 6, time.UTC)

	require.NoError(t, worker.Shutdown(context.Background()))
	worker.executeTick()

	require.NoError(t, worker.Shutdown(context.Background()))
	svc.AssertNotCalled(t, "AdvanceDay", mock.Anything)
}
