package shop

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GuildCoin_Go/internal/domain"
)

// Session is a pending purchase awaiting confirmation. Only the user who
// opened it may confirm or cancel it.
type Session struct {
	UserID    string
	GuildID   string
	Item      domain.ShopItem
	CreatedAt time.Time
}

// sessionStore keeps pending purchases keyed by user and item, expiring
// them automatically after SessionTTL.
type sessionStore struct {
	lru *expirable.LRU[string, *Session]
}

func newSessionStore(size int, ttl time.Duration) *sessionStore {
	return &sessionStore{
		lru: expirable.NewLRU[string, *Session](size, nil, ttl),
	}
}

func sessionKey(userID string, itemID int) string {
	return fmt.Sprintf("%s:%d", userID, itemID)
}

// Put opens a session, replacing any prior session for the same item.
func (s *sessionStore) Put(sess *Session) {
	s.lru.Add(sessionKey(sess.UserID, sess.Item.ID), sess)
}

// Take removes and returns the session, or nil when absent or expired.
func (s *sessionStore) Take(userID string, itemID int) *Session {
	key := sessionKey(userID, itemID)
	sess, found := s.lru.Get(key)
	if !found {
		return nil
	}
	s.lru.Remove(key)
	return sess
}
