package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// nonceStore holds issued SIWE nonces until they are used or expire.
type nonceStore struct {
	mu      sync.Mutex
	expires map[string]time.Time
	ttl     time.Duration
	now     func() time.Time
}

func newNonceStore(ttl time.Duration) *nonceStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &nonceStore{
		expires: make(map[string]time.Time),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Issue returns a fresh alphanumeric nonce; SIWE forbids dashes.
func (s *nonceStore) Issue() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	var nonce [32]byte
	hexDigits := "0123456789abcdef"
	for i, b := range id {
		nonce[2*i] = hexDigits[b>>4]
		nonce[2*i+1] = hexDigits[b&0x0f]
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked()
	s.expires[string(nonce[:])] = s.now().Add(s.ttl)
	return string(nonce[:]), nil
}

func (s *nonceStore) Has(nonce string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked()
	_, ok := s.expires[nonce]
	return ok
}

func (s *nonceStore) Consume(nonce string) {
	s.mu.Lock()
	delete(s.expires, nonce)
	s.mu.Unlock()
}

func (s *nonceStore) evictLocked() {
	now := s.now()
	for nonce, exp := range s.expires {
		if !now.Before(exp) {
			delete(s.expires, nonce)
		}
	}
}
