package daily

import "sync"

// ActivityTracker counts active minutes per user. A user is active in a
// minute if at least one of their messages arrived during it. Marking is
// idempotent within a window; Advance closes the window and bumps counters.
type ActivityTracker struct {
	mu      sync.Mutex
	minutes map[string]int
	seen    map[string]bool
}

func NewActivityTracker() *ActivityTracker {
	return &ActivityTracker{
		minutes: make(map[string]int),
		seen:    make(map[string]bool),
	}
}

// Mark records that the user sent a message in the current window.
func (t *ActivityTracker) Mark(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seen[userID] = true
}

// Advance closes the current window: every user seen during it gains one
// active minute. Returns the users whose counters have reached the
// eligibility threshold.
func (t *ActivityTracker) Advance() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var eligible []string
	for userID := range t.seen {
		t.minutes[userID]++
		if t.minutes[userID] >= ActivityMinutesRequired {
			eligible = append(eligible, userID)
		}
	}
	t.seen = make(map[string]bool)
	return eligible
}

// Minutes returns the active-minute count for a user.
func (t *ActivityTracker) Minutes(userID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.minutes[userID]
}

// Reset clears a user's counter, typically after their reward is paid.
func (t *ActivityTracker) Reset(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.minutes, userID)
	delete(t.seen, userID)
}
