package daily

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GuildCoin_Go/internal/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestService(repo *FakeRepository, now time.Time) *service {
	return &service{
		repo:    repo,
		tracker: NewActivityTracker(),
		now:     fixedClock(now),
	}
}

func TestRewardAmount(t *testing.T) {
	tests := []struct {
		name   string
		streak int
		want   int64
	}{
		{"first day", 1, 1200},
		{"fifth day", 5, 2000},
		{"at bonus cap", 25, 6000},
		{"beyond bonus cap", 100, 6000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewardAmount(tt.streak))
		})
	}
}

func TestClaim_FirstEver(t *testing.T) {
	repo := NewFakeRepository()
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	reward, err := svc.claim(context.Background(), "user1")
	require.NoError(t, err)

	assert.Equal(t, 1, reward.Streak)
	assert.Equal(t, RewardAmount(1), reward.Amount)
	assert.Equal(t, reward.Amount, reward.NewBalance)
}

func TestClaim_ConsecutiveDayExtendsStreak(t *testing.T) {
	repo := NewFakeRepository()
	now := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	repo.SetClaim(domain.DailyClaim{
		UserID:    "user1",
		LastClaim: now.AddDate(0, 0, -1),
		Streak:    4,
	})
	svc := newTestService(repo, now)

	reward, err := svc.claim(context.Background(), "user1")
	require.NoError(t, err)

	assert.Equal(t, 5, reward.Streak)
	assert.Equal(t, RewardAmount(5), reward.Amount)
}

func TestClaim_GapResetsStreak(t *testing.T) {
	repo := NewFakeRepository()
	now := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	repo.SetClaim(domain.DailyClaim{
		UserID:    "user1",
		LastClaim: now.AddDate(0, 0, -3),
		Streak:    12,
	})
	svc := newTestService(repo, now)

	reward, err := svc.claim(context.Background(), "user1")
	require.NoError(t, err)

	assert.Equal(t, 1, reward.Streak)
	assert.Equal(t, RewardAmount(1), reward.Amount)
}

func TestClaim_SameDayRejected(t *testing.T) {
	repo := NewFakeRepository()
	now := time.Date(2025, 3, 11, 20, 0, 0, 0, time.UTC)
	repo.SetClaim(domain.DailyClaim{
		UserID:    "user1",
		LastClaim: time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC),
		Streak:    2,
	})
	svc := newTestService(repo, now)

	_, err := svc.claim(context.Background(), "user1")
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
}

func TestClaim_MidnightBoundary(t *testing.T) {
	// A claim late yesterday followed by one just after midnight still
	// counts as consecutive days.
	repo := NewFakeRepository()
	now := time.Date(2025, 3, 12, 0, 5, 0, 0, time.UTC)
	repo.SetClaim(domain.DailyClaim{
		UserID:    "user1",
		LastClaim: time.Date(2025, 3, 11, 23, 55, 0, 0, time.UTC),
		Streak:    1,
	})
	svc := newTestService(repo, now)

	reward, err := svc.claim(context.Background(), "user1")
	require.NoError(t, err)
	assert.Equal(t, 2, reward.Streak)
}

func TestClaim_DaysCompareInUTCRegardlessOfZone(t *testing.T) {
	// Timestamps carrying a non-UTC offset still compare by UTC calendar
	// day: a cross-midnight claim succeeds even when both instants fall on
	// the same local day in some other zone.
	repo := NewFakeRepository()
	west := time.FixedZone("UTC-2", -2*60*60)
	now := time.Date(2025, 3, 11, 22, 5, 0, 0, west) // Mar 12 00:05 UTC
	repo.SetClaim(domain.DailyClaim{
		UserID:    "user1",
		LastClaim: time.Date(2025, 3, 11, 23, 55, 0, 0, time.UTC),
		Streak:    1,
	})
	svc := newTestService(repo, now)

	reward, err := svc.claim(context.Background(), "user1")
	require.NoError(t, err)
	assert.Equal(t, 2, reward.Streak)

	// And two instants on the same UTC day are rejected even when their
	// offsets put them on different local days.
	east := time.FixedZone("UTC+10", 10*60*60)
	repo.SetClaim(domain.DailyClaim{
		UserID:    "user2",
		LastClaim: time.Date(2025, 3, 11, 10, 0, 0, 0, east), // Mar 11 00:00 UTC
		Streak:    1,
	})
	svc = newTestService(repo, time.Date(2025, 3, 11, 20, 0, 0, 0, time.UTC))

	_, err = svc.claim(context.Background(), "user2")
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
}

func TestSweep_PaysAfterThreshold(t *testing.T) {
	repo := NewFakeRepository()
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)
	ctx := context.Background()

	for i := 0; i < ActivityMinutesRequired-1; i++ {
		svc.MarkActive("user1")
		paid := svc.Sweep(ctx)
		assert.Empty(t, paid, "minute %d should not pay yet", i+1)
	}

	svc.MarkActive("user1")
	paid := svc.Sweep(ctx)
	require.Len(t, paid, 1)
	assert.Equal(t, "user1", paid[0].UserID)
	assert.Equal(t, RewardAmount(1), paid[0].Amount)

	// Counter resets after payout; further activity today does not pay again.
	assert.Equal(t, 0, svc.tracker.Minutes("user1"))
	for i := 0; i < ActivityMinutesRequired; i++ {
		svc.MarkActive("user1")
		svc.Sweep(ctx)
	}
	assert.Equal(t, paid[0].Amount, repo.Balance("user1"))
}

func TestSweep_IdleMinutesDoNotCount(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo, time.Now().UTC())
	ctx := context.Background()

	svc.MarkActive("user1")
	svc.Sweep(ctx)
	// Windows with no message leave the counter untouched.
	svc.Sweep(ctx)
	svc.Sweep(ctx)

	assert.Equal(t, 1, svc.tracker.Minutes("user1"))
}

func TestSweep_AlreadyClaimedClearsCounter(t *testing.T) {
	repo := NewFakeRepository()
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	repo.SetClaim(domain.DailyClaim{UserID: "user1", LastClaim: now, Streak: 3})
	svc := newTestService(repo, now)
	ctx := context.Background()

	for i := 0; i < ActivityMinutesRequired; i++ {
		svc.MarkActive("user1")
	}
	// One window with enough accumulated marks still counts as one minute,
	// so push through the threshold in separate windows.
	for i := 0; i < ActivityMinutesRequired; i++ {
		svc.MarkActive("user1")
		svc.Sweep(ctx)
	}

	assert.Empty(t, svc.Sweep(ctx))
	assert.Equal(t, 0, svc.tracker.Minutes("user1"))
	assert.Zero(t, repo.Balance("user1"))
}

func TestStatus(t *testing.T) {
	repo := NewFakeRepository()
	now := time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)
	ctx := context.Background()

	st, err := svc.Status(ctx, "user1")
	require.NoError(t, err)
	assert.False(t, st.ClaimedToday)
	assert.Zero(t, st.Streak)

	repo.SetClaim(domain.DailyClaim{UserID: "user1", LastClaim: now.Add(-time.Hour), Streak: 7})
	svc.MarkActive("user1")
	svc.tracker.Advance()

	st, err = svc.Status(ctx, "user1")
	require.NoError(t, err)
	assert.True(t, st.ClaimedToday)
	assert.Equal(t, 7, st.Streak)
	assert.Equal(t, 1, st.ActiveMinutes)
}

func TestReset(t *testing.T) {
	repo := NewFakeRepository()
	now := time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)
	repo.SetClaim(domain.DailyClaim{UserID: "user1", LastClaim: now, Streak: 9})
	svc := newTestService(repo, now)
	ctx := context.Background()

	svc.MarkActive("user1")
	svc.tracker.Advance()
	require.NoError(t, svc.Reset(ctx, "user1"))

	st, err := svc.Status(ctx, "user1")
	require.NoError(t, err)
	assert.False(t, st.ClaimedToday)
	assert.Zero(t, st.Streak)
	assert.Zero(t, st.ActiveMinutes)
}

func TestTracker_ConcurrentMark(t *testing.T) {
	tracker := NewActivityTracker()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				tracker.Mark("user1")
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	tracker.Advance()
	assert.Equal(t, 1, tracker.Minutes("user1"))
}
