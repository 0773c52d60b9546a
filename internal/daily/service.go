package daily

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/GuildCoin_Go/internal/domain"
	"github.com/osse101/GuildCoin_Go/internal/logger"
	"github.com/osse101/GuildCoin_Go/internal/metrics"
	"github.com/osse101/GuildCoin_Go/internal/repository"
)

// Reward is the outcome of a successful daily claim.
type Reward struct {
	UserID     string
	Amount     int64
	Streak     int
	NewBalance int64
}

// Status describes where a user stands with their daily reward.
type Status struct {
	ClaimedToday  bool
	Streak        int
	ActiveMinutes int
	LastClaim     time.Time
}

// Service tracks chat activity and pays the daily reward once a user has
// been active long enough.
type Service interface {
	// MarkActive records message activity for the current minute window.
	MarkActive(userID string)
	// Sweep closes the current minute window and pays every user who just
	// became eligible. Returns the rewards paid so callers can notify.
	Sweep(ctx context.Context) []Reward
	// Status reports claim and activity state for a user.
	Status(ctx context.Context, userID string) (Status, error)
	// Reset clears a user's claim record and activity counter.
	Reset(ctx context.Context, userID string) error
}

type service struct {
	repo    repository.Daily
	tracker *ActivityTracker
	now     func() time.Time
}

// NewService creates a daily reward service.
func NewService(repo repository.Daily) Service {
	return &service{
		repo:    repo,
		tracker: NewActivityTracker(),
		now:     time.Now,
	}
}

func (s *service) MarkActive(userID string) {
	s.tracker.Mark(userID)
}

func (s *service) Sweep(ctx context.Context) []Reward {
	log := logger.FromContext(ctx)

	var paid []Reward
	for _, userID := range s.tracker.Advance() {
		reward, err := s.claim(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyClaimed) {
				// Already paid today; stop counting until tomorrow.
				s.tracker.Reset(userID)
				continue
			}
			log.Error(LogMsgSweepFailed, "user_id", userID, "error", err)
			continue
		}
		s.tracker.Reset(userID)
		paid = append(paid, *reward)
	}
	return paid
}

// claim pays the daily reward, advancing or resetting the streak based on
// the previous claim date. The repository rejects a second claim on the
// same calendar day.
func (s *service) claim(ctx context.Context, userID string) (*Reward, error) {
	log := logger.FromContext(ctx)
	now := s.now().UTC()

	prev, err := s.repo.GetClaim(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetClaimFailed, err)
	}

	streak, err := nextStreak(prev, now)
	if err != nil {
		return nil, err
	}

	amount := RewardAmount(streak)
	newBalance, err := s.repo.RecordClaim(ctx, domain.DailyClaim{
		UserID:    userID,
		LastClaim: now,
		Streak:    streak,
	}, amount)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyClaimed) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgPayoutFailed, err)
	}

	metrics.DailyRewardsPaid.Inc()
	metrics.DailyRewardCoins.Add(float64(amount))
	log.Info(LogMsgRewardPaid, "user_id", userID, "amount", amount, "streak", streak)

	return &Reward{UserID: userID, Amount: amount, Streak: streak, NewBalance: newBalance}, nil
}

func (s *service) Status(ctx context.Context, userID string) (Status, error) {
	prev, err := s.repo.GetClaim(ctx, userID)
	if err != nil {
		return Status{}, fmt.Errorf(ErrMsgGetClaimFailed, err)
	}

	st := Status{ActiveMinutes: s.tracker.Minutes(userID)}
	if prev != nil {
		st.Streak = prev.Streak
		st.LastClaim = prev.LastClaim
		st.ClaimedToday = sameDay(prev.LastClaim, s.now().UTC())
	}
	return st, nil
}

func (s *service) Reset(ctx context.Context, userID string) error {
	if err := s.repo.ResetClaim(ctx, userID); err != nil {
		return err
	}
	s.tracker.Reset(userID)
	logger.FromContext(ctx).Info(LogMsgClaimReset, "user_id", userID)
	return nil
}

// RewardAmount computes the payout for a given streak.
func RewardAmount(streak int) int64 {
	bonus := int64(streak) * StreakBonus
	if bonus > MaxStreakBonus {
		bonus = MaxStreakBonus
	}
	return BaseReward + bonus
}

// nextStreak determines the streak value for a new claim. A claim dated
// yesterday continues the streak; anything older restarts it at 1.
func nextStreak(prev *domain.DailyClaim, now time.Time) (int, error) {
	if prev == nil {
		return 1, nil
	}
	last := prev.LastClaim.UTC()
	switch {
	case sameDay(last, now):
		return 0, domain.ErrAlreadyClaimed
	case sameDay(last.AddDate(0, 0, 1), now):
		return prev.Streak + 1, nil
	default:
		return 1, nil
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
